package response

import (
	"time"

	"monument-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	MonumentID  string    `json:"monumentId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	BookingDate time.Time `json:"bookingDate"`
	Pax         int       `json:"pax"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingDetailResponse is a booking with the monument it is for.
type BookingDetailResponse struct {
	BookingResponse
	Monument MonumentResponse `json:"monument"`
}

func BookingToResponse(b *entity.Booking, reference string) BookingResponse {
	return BookingResponse{
		ID:          b.ID.String(),
		Reference:   reference,
		MonumentID:  b.MonumentID.String(),
		UserName:    b.UserName,
		UserEmail:   b.UserEmail,
		BookingDate: b.BookingDate,
		Pax:         b.Pax,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}
}

func BookingToDetailResponse(b *entity.BookingWithMonument, reference string) BookingDetailResponse {
	return BookingDetailResponse{
		BookingResponse: BookingToResponse(&b.Booking, reference),
		Monument:        MonumentToResponse(&b.Monument),
	}
}
