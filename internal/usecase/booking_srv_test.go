package usecase

import (
	"strconv"
	"testing"
	"time"

	"monument-booking/internal/dto/request"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validBookingFields(monumentID uuid.UUID) map[string]string {
	return map[string]string{
		"monumentId":  monumentID.String(),
		"userName":    "Asha Rao",
		"userEmail":   "asha@example.com",
		"bookingDate": "2025-03-14",
		"bookingTime": "01:30 PM",
		"pax":         "2",
		"totalAmount": "1050",
	}
}

func expectBookingInsert(mock pgxmock.PgxPoolIface, monumentID uuid.UUID, pax int, total float64) *pgxmock.ExpectedExec {
	return mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(pgxmock.AnyArg(), monumentID, pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pax, total, pgxmock.AnyArg())
}

func expectAnyBookingInsert(mock pgxmock.PgxPoolIface) *pgxmock.ExpectedExec {
	a := pgxmock.AnyArg()
	return mock.ExpectExec(`INSERT INTO bookings`).WithArgs(a, a, a, a, a, a, a, a)
}

func TestCreateBooking_Success(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())
	monumentID := uuid.New()

	expectBookingInsert(mock, monumentID, 2, 1050).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	booking, err := svc.CreateBooking(t.Context(), validBookingFields(monumentID))
	require.NoError(t, err)
	require.NotNil(t, booking)

	_, err = uuid.Parse(booking.ID)
	assert.NoError(t, err)
	assert.Len(t, booking.Reference, 8)
	assert.Equal(t, monumentID.String(), booking.MonumentID)
	assert.Equal(t, "Asha Rao", booking.UserName)
	assert.Equal(t, 2, booking.Pax)
	assert.Equal(t, 1050.0, booking.TotalAmount)
	assert.True(t, booking.BookingDate.Equal(time.Date(2025, 3, 14, 13, 30, 0, 0, time.UTC)))
	assert.True(t, booking.CreatedAt.Equal(testNow))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_TrustsSubmittedTotal(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())
	monumentID := uuid.New()

	fields := validBookingFields(monumentID)
	fields["pax"] = "3"
	fields["totalAmount"] = "1"

	expectBookingInsert(mock, monumentID, 3, 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	booking, err := svc.CreateBooking(t.Context(), fields)
	require.NoError(t, err)
	assert.Equal(t, 1.0, booking.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_AnyValidInput(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

	for pax := MinPax; pax <= MaxPax; pax++ {
		monumentID := uuid.New()
		fields := validBookingFields(monumentID)
		fields["userName"] = gofakeit.Name()
		fields["userEmail"] = gofakeit.Email()
		fields["bookingTime"] = TimeSlots[pax%len(TimeSlots)]
		fields["pax"] = strconv.Itoa(pax)
		fields["totalAmount"] = strconv.Itoa(QuoteFor(pax).Total)

		expectBookingInsert(mock, monumentID, pax, float64(QuoteFor(pax).Total)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		booking, err := svc.CreateBooking(t.Context(), fields)
		require.NoError(t, err, "pax %d", pax)
		assert.NotEmpty(t, booking.ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBooking_ValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		modify func(map[string]string)
		want   string
	}{
		{"pax zero", func(f map[string]string) { f["pax"] = "0" }, "At least 1 person is required"},
		{"pax sixteen", func(f map[string]string) { f["pax"] = "16" }, "Maximum 15 people allowed"},
		{"pax blank coerces to zero", func(f map[string]string) { f["pax"] = "" }, "At least 1 person is required"},
		{"pax not a number", func(f map[string]string) { f["pax"] = "two" }, "Expected number, received nan"},
		{"pax fractional", func(f map[string]string) { f["pax"] = "2.5" }, "Expected integer, received float"},
		{"bad email", func(f map[string]string) { f["userEmail"] = "asha-at-example" }, "Valid email is required"},
		{"missing time", func(f map[string]string) { delete(f, "bookingTime") }, "Booking time is required"},
		{"missing date", func(f map[string]string) { f["bookingDate"] = "" }, "Booking date is required"},
		{"zero total", func(f map[string]string) { f["totalAmount"] = "0" }, "Total amount is required"},
		{
			"first message wins",
			func(f map[string]string) { f["monumentId"] = ""; f["userName"] = ""; f["pax"] = "0" },
			"Monument ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

			fields := validBookingFields(uuid.New())
			tt.modify(fields)

			booking, err := svc.CreateBooking(t.Context(), fields)
			assert.Nil(t, booking)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, errors.Is(err, ErrInvalidInput))
			// nothing reached the store
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateBooking_GenericFailure(t *testing.T) {
	tests := []struct {
		name   string
		modify func(map[string]string)
		marker error
		setup  func(mock pgxmock.PgxPoolIface)
	}{
		{
			name:   "malformed monument id",
			modify: func(f map[string]string) { f["monumentId"] = "not-a-uuid" },
			marker: ErrInvalidInput,
		},
		{
			name:   "impossible clock time",
			modify: func(f map[string]string) { f["bookingTime"] = "13:00 PM" },
			marker: ErrInvalidInput,
		},
		{
			name:   "store unavailable",
			marker: ErrStore,
			setup: func(mock pgxmock.PgxPoolIface) {
				expectAnyBookingInsert(mock).WillReturnError(assert.AnError)
			},
		},
		{
			name:   "unknown monument",
			marker: ErrInvalidInput,
			setup: func(mock pgxmock.PgxPoolIface) {
				expectAnyBookingInsert(mock).
					WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

			fields := validBookingFields(uuid.New())
			if tt.modify != nil {
				tt.modify(fields)
			}
			if tt.setup != nil {
				tt.setup(mock)
			}

			_, err := svc.CreateBooking(t.Context(), fields)
			require.Error(t, err)
			assert.Equal(t, MsgBookingFailed, err.Error())
			assert.True(t, errors.Is(err, tt.marker))
			assert.Equal(t, tt.marker == ErrStore, errors.Is(err, ErrStore))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBooking(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

	id, monumentID := uuid.New(), uuid.New()
	mock.ExpectQuery(`JOIN monuments`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(bookingJoinCols).AddRow(
			id, monumentID, "Asha Rao", "asha@example.com", testNow, 2, 1050.0, testNow,
			monumentID, "Qutub Minar", "A minaret", "https://ik.imagekit.io/q.jpg", "Delhi", 4.3, testNow, testNow,
		))

	got, err := svc.GetBooking(t.Context(), id.String())
	require.NoError(t, err)
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "Qutub Minar", got.Monument.Name)
	assert.Equal(t, 4, got.Monument.Stars.Full)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

	_, err := svc.GetBooking(t.Context(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	id := uuid.New()
	mock.ExpectQuery(`JOIN monuments`).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	_, err = svc.GetBooking(t.Context(), id.String())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, MsgBookingMissing, err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserBookings(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewBookingService(repo, testConfig(), testClock(), zap.NewNop())

	email := gofakeit.Email()
	monumentID := uuid.New()
	rows := pgxmock.NewRows(bookingJoinCols)
	for i := 0; i < 2; i++ {
		rows.AddRow(uuid.New(), monumentID, "Asha Rao", email, testNow, 2, 1050.0, testNow,
			monumentID, "Hampi", "Ruins", "https://ik.imagekit.io/h.jpg", "Karnataka", 5.0, testNow, testNow)
	}

	mock.ExpectQuery(`WHERE b.user_email = \$1`).WithArgs(email, 10, 10).WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).WithArgs(email).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	got, err := svc.GetUserBookings(t.Context(), email, &request.PaginatedRequest{Page: 2, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, got.Data, 2)
	assert.Equal(t, int64(12), got.Pagination.Total)
	assert.Equal(t, 2, got.Pagination.TotalPages)
	assert.Equal(t, email, got.Data[0].UserEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
