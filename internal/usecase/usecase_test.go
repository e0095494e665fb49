package usecase

import (
	"testing"
	"time"

	"monument-booking/internal/data/repository"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testNow         = time.Date(2025, 3, 10, 9, 15, 0, 0, time.UTC)
	monumentCols    = []string{"id", "name", "description", "image_url", "location", "rating", "created_at", "updated_at"}
	bookingJoinCols = []string{
		"id", "monument_id", "user_name", "user_email", "booking_date", "pax", "total_amount", "created_at",
		"m_id", "m_name", "m_description", "m_image_url", "m_location", "m_rating", "m_created_at", "m_updated_at",
	}
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:    utils.AppConfig{Name: "monument-booking", Timezone: "UTC"},
		Ticket: utils.TicketConfig{Currency: "INR", SupportEmail: "support@monuments.com"},
	}
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repository.NewRepository(mock, zap.NewNop())
}

func testClock() *clock.MockClock {
	return clock.NewMockClock(testNow)
}
