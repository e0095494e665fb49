package usecase

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"monument-booking/internal/ticket"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func expectBookingRow(mock pgxmock.PgxPoolIface, id uuid.UUID) {
	monumentID := uuid.New()
	mock.ExpectQuery(`JOIN monuments`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(bookingJoinCols).AddRow(
			id, monumentID, "Asha Rao", "asha@example.com", testNow, 2, 1050.0, testNow,
			monumentID, "Qutub Minar", "A minaret", "https://ik.imagekit.io/q.jpg", "Delhi", 4.3, testNow, testNow,
		))
}

func TestGetTicket(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewTicketService(repo, testConfig(), testClock(), zap.NewNop())

	id := uuid.New()
	expectBookingRow(mock, id)

	got, err := svc.GetTicket(t.Context(), id.String())
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(id.String()[28:]), got.Reference)

	var payload ticket.Payload
	require.NoError(t, json.Unmarshal([]byte(got.Payload), &payload))
	assert.Equal(t, id.String(), payload.BookingID)
	assert.Equal(t, ticket.PayloadType, payload.Type)
	assert.Equal(t, testNow.UnixMilli(), payload.Timestamp)
	assert.Equal(t, ticket.Checksum(id.String()), payload.Checksum)

	require.True(t, strings.HasPrefix(got.QRCode, "data:image/png;base64,"))
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got.QRCode, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenderPDF(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewTicketService(repo, testConfig(), testClock(), zap.NewNop())

	id := uuid.New()
	expectBookingRow(mock, id)

	doc, name, err := svc.RenderPDF(t.Context(), id.String())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Equal(t, "monument-ticket-"+id.String()[28:]+".pdf", name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenderQR_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	svc := NewTicketService(repo, testConfig(), testClock(), zap.NewNop())

	id := uuid.New()
	mock.ExpectQuery(`JOIN monuments`).WithArgs(id).WillReturnRows(pgxmock.NewRows(bookingJoinCols))

	_, err := svc.RenderQR(t.Context(), id.String(), 300)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenderQR_FreshPayloadEachTime(t *testing.T) {
	mock, repo := newMockRepo(t)
	clk := testClock()
	svc := NewTicketService(repo, testConfig(), clk, zap.NewNop())

	id := uuid.New()
	expectBookingRow(mock, id)
	first, err := svc.GetTicket(t.Context(), id.String())
	require.NoError(t, err)

	clk.Add(1500 * time.Millisecond)
	expectBookingRow(mock, id)
	second, err := svc.GetTicket(t.Context(), id.String())
	require.NoError(t, err)

	assert.NotEqual(t, first.Payload, second.Payload)
	assert.Equal(t, first.Reference, second.Reference)
}
