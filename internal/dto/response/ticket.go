package response

// TicketResponse is the on-screen ticket. QRCode is a base64 PNG data URL.
type TicketResponse struct {
	Reference string                `json:"reference"`
	Payload   string                `json:"payload"`
	QRCode    string                `json:"qrCode"`
	Booking   BookingDetailResponse `json:"booking"`
}

// QuoteResponse prices a visit before booking.
type QuoteResponse struct {
	Pax            int `json:"pax"`
	UnitPrice      int `json:"unitPrice"`
	TicketPrice    int `json:"ticketPrice"`
	ConvenienceFee int `json:"convenienceFee"`
	Total          int `json:"total"`
}

type UploadAuthResponse struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
