package repository

import (
	"testing"
	"time"

	"monument-booking/internal/data/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var monumentColumns = []string{"id", "name", "description", "image_url", "location", "rating", "created_at", "updated_at"}

func fakeMonument() *entity.Monument {
	now := time.Now()
	return &entity.Monument{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:         gofakeit.Company(),
		Description:  gofakeit.Name() + " built this place",
		ImageURL:     gofakeit.URL(),
		Location:     gofakeit.City(),
		Rating:       4.5,
	}
}

func TestMonumentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())
	monument := fakeMonument()

	mock.ExpectExec(`INSERT INTO monuments`).
		WithArgs(monument.ID, monument.Name, monument.Description, monument.ImageURL,
			monument.Location, monument.Rating, monument.CreatedAt, monument.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(t.Context(), monument))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())
	monument := fakeMonument()

	mock.ExpectExec(`INSERT INTO monuments`).
		WithArgs(monument.ID, monument.Name, monument.Description, monument.ImageURL,
			monument.Location, monument.Rating, monument.CreatedAt, monument.UpdatedAt).
		WillReturnError(assert.AnError)

	err = repo.Create(t.Context(), monument)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())
	want := fakeMonument()

	mock.ExpectQuery(`FROM monuments`).
		WithArgs(want.ID).
		WillReturnRows(pgxmock.NewRows(monumentColumns).
			AddRow(want.ID, want.Name, want.Description, want.ImageURL, want.Location, want.Rating, want.CreatedAt, want.UpdatedAt))

	got, err := repo.FindByID(t.Context(), want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.ImageURL, got.ImageURL)
	assert.Equal(t, want.Rating, got.Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepo_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())
	id := uuid.New()

	mock.ExpectQuery(`FROM monuments`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindByID(t.Context(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepo_FindAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())
	first, second := fakeMonument(), fakeMonument()

	mock.ExpectQuery(`FROM monuments`).
		WithArgs(10, 0).
		WillReturnRows(pgxmock.NewRows(monumentColumns).
			AddRow(first.ID, first.Name, first.Description, first.ImageURL, first.Location, first.Rating, first.CreatedAt, first.UpdatedAt).
			AddRow(second.ID, second.Name, second.Description, second.ImageURL, second.Location, second.Rating, second.CreatedAt, second.UpdatedAt))

	got, err := repo.FindAll(t.Context(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, first.Name, got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonumentRepo_CountAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMonumentRepository(mock, zap.NewNop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM monuments`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	total, err := repo.CountAll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
