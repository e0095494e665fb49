package usecase

const (
	UnitPrice             = 500
	ConvenienceFeePercent = 5
	MinPax                = 1
	MaxPax                = 15
)

// Quote is the price breakdown shown before a booking is submitted.
type Quote struct {
	Pax            int
	UnitPrice      int
	TicketPrice    int
	ConvenienceFee int
	Total          int
}

// QuoteFor prices pax visitors. The convenience fee is 5% of the ticket
// price, always rounded up to a whole unit.
func QuoteFor(pax int) Quote {
	ticketPrice := pax * UnitPrice
	fee := 0
	if ticketPrice > 0 {
		fee = (ticketPrice*ConvenienceFeePercent + 99) / 100
	}
	return Quote{
		Pax:            pax,
		UnitPrice:      UnitPrice,
		TicketPrice:    ticketPrice,
		ConvenienceFee: fee,
		Total:          ticketPrice + fee,
	}
}
