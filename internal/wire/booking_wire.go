package wire

import (
	"monument-booking/internal/adaptor"
	"monument-booking/pkg/auth"
	"monument-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	ticketHandler *adaptor.TicketHandler,
	tokens *auth.Service,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/bookings - Create new booking from form fields
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Bookings made with the caller's email
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/bookings/{id} - Booking confirmation with monument
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

	// Ticket artifacts are regenerated on every request
	r.Get("/api/bookings/{id}/ticket", ticketHandler.GetTicket)
	r.Get("/api/bookings/{id}/ticket/qr", ticketHandler.GetQRCode)
	r.Get("/api/bookings/{id}/ticket/pdf", ticketHandler.DownloadPDF)
}
