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

type MonumentRepository interface {
	Create(ctx context.Context, monument *entity.Monument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Monument, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Monument, error)
	CountAll(ctx context.Context) (int64, error)
}

type monumentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMonumentRepository(db database.PgxIface, log *zap.Logger) MonumentRepository {
	return &monumentRepository{
		db:  db,
		log: log.With(zap.String("repository", "monument")),
	}
}

func (r *monumentRepository) Create(ctx context.Context, monument *entity.Monument) error {
	query := `
		INSERT INTO monuments (id, name, description, image_url, location, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		monument.ID,
		monument.Name,
		monument.Description,
		monument.ImageURL,
		monument.Location,
		monument.Rating,
		monument.CreatedAt,
		monument.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create monument",
			zap.Error(err),
			zap.String("name", monument.Name),
			zap.String("location", monument.Location),
		)
		return fmt.Errorf("create monument %s: %w", monument.Name, err)
	}

	return nil
}

func (r *monumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Monument, error) {
	query := `
		SELECT id, name, description, image_url, location, rating, created_at, updated_at
		FROM monuments
		WHERE id = $1
	`

	var monument entity.Monument
	err := r.db.QueryRow(ctx, query, id).Scan(
		&monument.ID,
		&monument.Name,
		&monument.Description,
		&monument.ImageURL,
		&monument.Location,
		&monument.Rating,
		&monument.CreatedAt,
		&monument.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find monument by ID",
			zap.Error(err),
			zap.String("monument_id", id.String()),
		)
		return nil, fmt.Errorf("find monument by ID %s: %w", id.String(), err)
	}

	return &monument, nil
}

func (r *monumentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Monument, error) {
	query := `
		SELECT id, name, description, image_url, location, rating, created_at, updated_at
		FROM monuments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all monuments",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all monuments limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var monuments []*entity.Monument
	for rows.Next() {
		var monument entity.Monument
		err := rows.Scan(
			&monument.ID,
			&monument.Name,
			&monument.Description,
			&monument.ImageURL,
			&monument.Location,
			&monument.Rating,
			&monument.CreatedAt,
			&monument.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan monument row", zap.Error(err))
			return nil, fmt.Errorf("scan monument row: %w", err)
		}
		monuments = append(monuments, &monument)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate monument rows: %w", err)
	}

	return monuments, nil
}

func (r *monumentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM monuments`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count monuments", zap.Error(err))
		return 0, fmt.Errorf("count all monuments: %w", err)
	}

	return total, nil
}
