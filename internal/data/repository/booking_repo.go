package repository

import (
	"context"
	"errors"
	"fmt"

	"monument-booking/internal/data/entity"
	"monument-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDWithMonument(ctx context.Context, id uuid.UUID) (*entity.BookingWithMonument, error)
	FindByUserEmail(ctx context.Context, email string, limit, offset int) ([]*entity.BookingWithMonument, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, monument_id, user_name, user_email, booking_date, pax, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.MonumentID,
		booking.UserName,
		booking.UserEmail,
		booking.BookingDate,
		booking.Pax,
		booking.TotalAmount,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("monument_id", booking.MonumentID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, monument_id, user_name, user_email, booking_date, pax, total_amount, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.MonumentID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.BookingDate,
		&booking.Pax,
		&booking.TotalAmount,
		&booking.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

const bookingWithMonumentColumns = `
	b.id, b.monument_id, b.user_name, b.user_email, b.booking_date, b.pax, b.total_amount, b.created_at,
	m.id, m.name, m.description, m.image_url, m.location, m.rating, m.created_at, m.updated_at
`

func scanBookingWithMonument(row pgx.Row) (*entity.BookingWithMonument, error) {
	var b entity.BookingWithMonument
	err := row.Scan(
		&b.ID,
		&b.MonumentID,
		&b.UserName,
		&b.UserEmail,
		&b.BookingDate,
		&b.Pax,
		&b.TotalAmount,
		&b.CreatedAt,
		&b.Monument.ID,
		&b.Monument.Name,
		&b.Monument.Description,
		&b.Monument.ImageURL,
		&b.Monument.Location,
		&b.Monument.Rating,
		&b.Monument.CreatedAt,
		&b.Monument.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindByIDWithMonument(ctx context.Context, id uuid.UUID) (*entity.BookingWithMonument, error) {
	query := `SELECT ` + bookingWithMonumentColumns + `
		FROM bookings b
		JOIN monuments m ON m.id = b.monument_id
		WHERE b.id = $1
	`

	booking, err := scanBookingWithMonument(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking with monument",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking with monument %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, email string, limit, offset int) ([]*entity.BookingWithMonument, error) {
	query := `SELECT ` + bookingWithMonumentColumns + `
		FROM bookings b
		JOIN monuments m ON m.id = b.monument_id
		WHERE b.user_email = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user email",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user email: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.BookingWithMonument
	for rows.Next() {
		booking, err := scanBookingWithMonument(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_email = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, email).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by user email", zap.Error(err))
		return 0, fmt.Errorf("count bookings by user email: %w", err)
	}

	return count, nil
}
