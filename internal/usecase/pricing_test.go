package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteFor(t *testing.T) {
	tests := []struct {
		pax         int
		ticketPrice int
		fee         int
		total       int
	}{
		{pax: 1, ticketPrice: 500, fee: 25, total: 525},
		{pax: 2, ticketPrice: 1000, fee: 50, total: 1050},
		{pax: 3, ticketPrice: 1500, fee: 75, total: 1575},
		{pax: 15, ticketPrice: 7500, fee: 375, total: 7875},
		{pax: 0, ticketPrice: 0, fee: 0, total: 0},
	}

	for _, tt := range tests {
		q := QuoteFor(tt.pax)
		assert.Equal(t, tt.ticketPrice, q.TicketPrice, "pax %d ticket price", tt.pax)
		assert.Equal(t, tt.fee, q.ConvenienceFee, "pax %d fee", tt.pax)
		assert.Equal(t, tt.total, q.Total, "pax %d total", tt.pax)
	}
}

func TestConvenienceFeeRoundsUp(t *testing.T) {
	for pax := 1; pax <= MaxPax; pax++ {
		q := QuoteFor(pax)
		assert.GreaterOrEqual(t, q.ConvenienceFee*100, q.TicketPrice*ConvenienceFeePercent)
		assert.Less(t, (q.ConvenienceFee-1)*100, q.TicketPrice*ConvenienceFeePercent)
	}
}
