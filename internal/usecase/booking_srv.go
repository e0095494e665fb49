package usecase

import (
	"context"
	"time"

	"monument-booking/internal/data/entity"
	"monument-booking/internal/data/repository"
	"monument-booking/internal/dto/request"
	"monument-booking/internal/dto/response"
	"monument-booking/internal/ticket"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgForeignKeyViolation = "23503"

type BookingService interface {
	// CreateBooking validates raw form fields and stores one booking.
	// Failures carry a single message: the first validation message, or
	// MsgBookingFailed for anything past validation.
	CreateBooking(ctx context.Context, fields map[string]string) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
	GetUserBookings(ctx context.Context, email string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingDetailResponse], error)
}

type bookingService struct {
	repo  *repository.Repository
	loc   *time.Location
	clock clock.Clock
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, clk clock.Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		loc:   config.App.Location(),
		clock: clk,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, fields map[string]string) (*response.BookingResponse, error) {
	payload, verr := request.BookingFormFrom(fields).Validate()
	if verr != nil {
		s.log.Warn("Create booking validation failed", zap.Any("errors", verr.Fields))
		return nil, fail(ErrInvalidInput, verr.First(), nil)
	}

	monumentID, err := uuid.Parse(payload.MonumentID)
	if err != nil {
		s.log.Warn("Create booking with malformed monument ID",
			zap.String("monument_id", payload.MonumentID))
		return nil, fail(ErrInvalidInput, MsgBookingFailed, err)
	}

	visitAt, err := CombineDateTime(payload.BookingDate, payload.BookingTime, s.loc)
	if err != nil {
		s.log.Warn("Create booking with malformed date or time",
			zap.Error(err),
			zap.String("booking_date", payload.BookingDate),
			zap.String("booking_time", payload.BookingTime),
		)
		return nil, fail(ErrInvalidInput, MsgBookingFailed, err)
	}

	// the submitted total is stored as is
	if quote := QuoteFor(payload.Pax); float64(quote.Total) != payload.TotalAmount {
		s.log.Debug("Submitted total differs from quote",
			zap.Int("pax", payload.Pax),
			zap.Float64("submitted", payload.TotalAmount),
			zap.Int("quoted", quote.Total),
		)
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.clock.Now(),
		},
		MonumentID:  monumentID,
		UserName:    payload.UserName,
		UserEmail:   payload.UserEmail,
		BookingDate: visitAt,
		Pax:         payload.Pax,
		TotalAmount: payload.TotalAmount,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			s.log.Warn("Create booking for unknown monument",
				zap.String("monument_id", monumentID.String()))
			return nil, fail(ErrInvalidInput, MsgBookingFailed, err)
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("monument_id", monumentID.String()),
		)
		return nil, fail(ErrStore, MsgBookingFailed, err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("monument_id", monumentID.String()),
		zap.Int("pax", booking.Pax),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, ticket.Reference(booking.ID.String()))
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	booking, err := loadBooking(ctx, s.repo.Booking, s.log, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToDetailResponse(booking, ticket.Reference(booking.ID.String()))
	return &resp, nil
}

// loadBooking loads a booking with its monument. Malformed and unknown ids
// are both not found.
func loadBooking(ctx context.Context, bookings repository.BookingRepository, log *zap.Logger, bookingID string) (*entity.BookingWithMonument, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fail(ErrNotFound, MsgBookingMissing, err)
	}

	booking, err := bookings.FindByIDWithMonument(ctx, id)
	if err != nil {
		log.Error("Failed to get booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fail(ErrStore, "Failed to load booking", err)
	}
	if booking == nil {
		return nil, fail(ErrNotFound, MsgBookingMissing, nil)
	}
	return booking, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, email string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingDetailResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserEmail(ctx, email, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fail(ErrStore, "Failed to load bookings", err)
	}

	total, err := s.repo.Booking.CountByUserEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fail(ErrStore, "Failed to load bookings", err)
	}

	data := make([]response.BookingDetailResponse, 0, len(bookings))
	for _, b := range bookings {
		data = append(data, response.BookingToDetailResponse(b, ticket.Reference(b.ID.String())))
	}

	return response.NewPaginatedResponse(data, req.Page, limit, total), nil
}
