package ticket

import (
	"encoding/json"
	"strings"
	"time"
)

// PayloadType tags every ticket QR code.
const PayloadType = "MONUMENT_BOOKING"

// Payload is the JSON document encoded into a ticket QR code.
// Timestamp is the generation time in epoch milliseconds, so two renders
// of the same ticket never produce the same bytes.
type Payload struct {
	BookingID string `json:"bookingId"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Checksum  string `json:"checksum,omitempty"`
}

func NewPayload(bookingID string, generatedAt time.Time) Payload {
	return Payload{
		BookingID: bookingID,
		Type:      PayloadType,
		Timestamp: generatedAt.UnixMilli(),
		Checksum:  Checksum(bookingID),
	}
}

func (p Payload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Valid reports whether a scanned payload carries the ticket tag and a
// checksum matching its booking id. Payloads without a checksum pass on the tag.
func (p Payload) Valid() bool {
	if p.Type != PayloadType || p.BookingID == "" {
		return false
	}
	return p.Checksum == "" || p.Checksum == Checksum(p.BookingID)
}

// Reference is the short human booking code: the last 8 characters of the
// id, upper-cased.
func Reference(bookingID string) string {
	return strings.ToUpper(lastN(bookingID, 8))
}

// FileName is the download name of the PDF ticket.
func FileName(bookingID string) string {
	return "monument-ticket-" + lastN(bookingID, 8) + ".pdf"
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
