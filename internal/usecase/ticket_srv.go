package usecase

import (
	"context"
	"encoding/base64"

	"monument-booking/internal/data/entity"
	"monument-booking/internal/data/repository"
	"monument-booking/internal/dto/response"
	"monument-booking/internal/ticket"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgQRFailed  = "Failed to generate QR code"
	msgPDFFailed = "Failed to generate PDF ticket"

	pdfQRSize = 150
)

// TicketService renders ticket artifacts on demand. Every call builds a
// fresh payload, so repeated renders differ only in the timestamp.
type TicketService interface {
	GetTicket(ctx context.Context, bookingID string) (*response.TicketResponse, error)
	RenderQR(ctx context.Context, bookingID string, size int) ([]byte, error)
	// RenderPDF returns the document and its download file name.
	RenderPDF(ctx context.Context, bookingID string) ([]byte, string, error)
}

type ticketService struct {
	repo   *repository.Repository
	config utils.TicketConfig
	app    utils.AppConfig
	clock  clock.Clock
	log    *zap.Logger
}

func NewTicketService(repo *repository.Repository, config *utils.Config, clk clock.Clock, log *zap.Logger) TicketService {
	return &ticketService{
		repo:   repo,
		config: config.Ticket,
		app:    config.App,
		clock:  clk,
		log:    log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) GetTicket(ctx context.Context, bookingID string) (*response.TicketResponse, error) {
	booking, err := loadBooking(ctx, s.repo.Booking, s.log, bookingID)
	if err != nil {
		return nil, err
	}

	content, png, err := s.qr(booking.ID.String(), ticket.CardQROptions(ticket.DefaultQRSize))
	if err != nil {
		return nil, err
	}

	reference := ticket.Reference(booking.ID.String())
	return &response.TicketResponse{
		Reference: reference,
		Payload:   content,
		QRCode:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Booking:   response.BookingToDetailResponse(booking, reference),
	}, nil
}

func (s *ticketService) RenderQR(ctx context.Context, bookingID string, size int) ([]byte, error) {
	booking, err := loadBooking(ctx, s.repo.Booking, s.log, bookingID)
	if err != nil {
		return nil, err
	}

	_, png, err := s.qr(booking.ID.String(), ticket.CardQROptions(ticket.ClampQRSize(size)))
	return png, err
}

func (s *ticketService) RenderPDF(ctx context.Context, bookingID string) ([]byte, string, error) {
	booking, err := loadBooking(ctx, s.repo.Booking, s.log, bookingID)
	if err != nil {
		return nil, "", err
	}

	id := booking.ID.String()
	_, png, err := s.qr(id, ticket.QROptions{Size: pdfQRSize})
	if err != nil {
		return nil, "", err
	}

	doc, err := ticket.RenderPDF(ticketDetails(booking), png, ticket.PDFOptions{
		Currency:     s.config.Currency,
		SupportEmail: s.config.SupportEmail,
		Location:     s.app.Location(),
		GeneratedAt:  s.clock.Now(),
	})
	if err != nil {
		s.log.Error("Failed to render PDF ticket", zap.Error(err), zap.String("booking_id", id))
		return nil, "", fail(ErrArtifact, msgPDFFailed, err)
	}

	s.log.Info("PDF ticket rendered", zap.String("booking_id", id), zap.Int("bytes", len(doc)))
	return doc, ticket.FileName(id), nil
}

// qr encodes a fresh payload for bookingID and rasterizes it.
func (s *ticketService) qr(bookingID string, opts ticket.QROptions) (string, []byte, error) {
	content, err := ticket.NewPayload(bookingID, s.clock.Now()).Encode()
	if err != nil {
		s.log.Error("Failed to encode QR payload", zap.Error(err), zap.String("booking_id", bookingID))
		return "", nil, fail(ErrArtifact, msgQRFailed, err)
	}

	png, err := ticket.RenderQR(content, opts)
	if err != nil {
		s.log.Error("Failed to render QR code", zap.Error(err), zap.String("booking_id", bookingID))
		return "", nil, fail(ErrArtifact, msgQRFailed, err)
	}
	return content, png, nil
}

func ticketDetails(b *entity.BookingWithMonument) ticket.Details {
	return ticket.Details{
		BookingID:    b.ID.String(),
		MonumentName: b.Monument.Name,
		Location:     b.Monument.Location,
		GuestName:    b.UserName,
		GuestEmail:   b.UserEmail,
		VisitAt:      b.BookingDate,
		Pax:          b.Pax,
		TotalAmount:  b.TotalAmount,
	}
}
