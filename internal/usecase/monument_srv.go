package usecase

import (
	"context"

	"monument-booking/internal/data/entity"
	"monument-booking/internal/data/repository"
	"monument-booking/internal/dto/request"
	"monument-booking/internal/dto/response"
	"monument-booking/pkg/clock"
	"monument-booking/pkg/utils"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MonumentService interface {
	GetMonuments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MonumentResponse], error)
	GetMonumentByID(ctx context.Context, monumentID string) (*response.MonumentDetailResponse, error)
	GetQuote(ctx context.Context, monumentID string, pax int) (*response.QuoteResponse, error)

	// CreateMonument returns a *utils.ValidationError with every field
	// message when the form is rejected.
	CreateMonument(ctx context.Context, fields map[string]string) (*response.MonumentDetailResponse, error)
}

type monumentService struct {
	repo  *repository.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewMonumentService(repo *repository.Repository, clk clock.Clock, log *zap.Logger) MonumentService {
	return &monumentService{
		repo:  repo,
		clock: clk,
		log:   log.With(zap.String("service", "monument")),
	}
}

func (s *monumentService) GetMonuments(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MonumentResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	monuments, err := s.repo.Monument.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get monuments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fail(ErrStore, "Failed to load monuments", err)
	}

	total, err := s.repo.Monument.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count monuments", zap.Error(err))
		return nil, fail(ErrStore, "Failed to load monuments", err)
	}

	data := make([]response.MonumentResponse, 0, len(monuments))
	for _, m := range monuments {
		data = append(data, response.MonumentToResponse(m))
	}

	return response.NewPaginatedResponse(data, req.Page, limit, total), nil
}

func (s *monumentService) GetMonumentByID(ctx context.Context, monumentID string) (*response.MonumentDetailResponse, error) {
	monument, err := s.findMonument(ctx, monumentID)
	if err != nil {
		return nil, err
	}

	resp := response.MonumentToDetailResponse(monument)
	return &resp, nil
}

func (s *monumentService) findMonument(ctx context.Context, monumentID string) (*entity.Monument, error) {
	id, err := uuid.Parse(monumentID)
	if err != nil {
		return nil, fail(ErrNotFound, MsgMonumentMissing, err)
	}

	monument, err := s.repo.Monument.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get monument", zap.Error(err), zap.String("monument_id", monumentID))
		return nil, fail(ErrStore, "Failed to load monument", err)
	}
	if monument == nil {
		return nil, fail(ErrNotFound, MsgMonumentMissing, nil)
	}
	return monument, nil
}

func (s *monumentService) GetQuote(ctx context.Context, monumentID string, pax int) (*response.QuoteResponse, error) {
	switch {
	case pax < MinPax:
		return nil, fail(ErrInvalidInput, request.BookingMessages["pax.num_min"], nil)
	case pax > MaxPax:
		return nil, fail(ErrInvalidInput, request.BookingMessages["pax.num_max"], nil)
	}

	if _, err := s.findMonument(ctx, monumentID); err != nil {
		return nil, err
	}

	resp := quoteToResponse(QuoteFor(pax))
	return &resp, nil
}

func quoteToResponse(q Quote) response.QuoteResponse {
	return response.QuoteResponse{
		Pax:            q.Pax,
		UnitPrice:      q.UnitPrice,
		TicketPrice:    q.TicketPrice,
		ConvenienceFee: q.ConvenienceFee,
		Total:          q.Total,
	}
}

func (s *monumentService) CreateMonument(ctx context.Context, fields map[string]string) (*response.MonumentDetailResponse, error) {
	payload, verr := request.MonumentFormFrom(fields).Validate()
	if verr != nil {
		s.log.Warn("Create monument validation failed", zap.Any("errors", verr.Fields))
		return nil, errors.Mark(verr, ErrInvalidInput)
	}

	now := s.clock.Now()
	monument := &entity.Monument{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        payload.Name,
		Description: payload.Description,
		ImageURL:    payload.ImageURL,
		Location:    payload.Location,
		Rating:      payload.Rating,
	}

	if err := s.repo.Monument.Create(ctx, monument); err != nil {
		s.log.Error("Failed to create monument", zap.Error(err), zap.String("name", payload.Name))
		formErr := utils.NewValidationError()
		formErr.Add(utils.FormErrorKey, MsgMonumentFailed)
		return nil, errors.Mark(errors.WithSecondaryError(formErr, err), ErrStore)
	}

	s.log.Info("Monument created",
		zap.String("monument_id", monument.ID.String()),
		zap.String("name", monument.Name),
		zap.Float64("rating", monument.Rating),
	)

	resp := response.MonumentToDetailResponse(monument)
	return &resp, nil
}
