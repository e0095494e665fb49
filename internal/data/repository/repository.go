package repository

import (
	"monument-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Monument MonumentRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Monument: NewMonumentRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
