package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"monument-booking/internal/imagestore"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) SignUploadAuth(now time.Time) (*imagestore.UploadAuth, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imagestore.UploadAuth), args.Error(1)
}

func (m *mockImageStore) Upload(ctx context.Context, fileName string, file io.Reader) (*imagestore.UploadResult, error) {
	args := m.Called(ctx, fileName, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*imagestore.UploadResult), args.Error(1)
}

func TestUploadAuth(t *testing.T) {
	store := new(mockImageStore)
	store.On("SignUploadAuth", testNow).
		Return(&imagestore.UploadAuth{Token: "1", Expire: 2, Signature: "sig", PublicKey: "pub"}, nil)

	svc := NewUploadService(store, testClock(), zap.NewNop())
	got, err := svc.UploadAuth(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "sig", got.Signature)
	assert.Equal(t, "pub", got.PublicKey)
	store.AssertExpectations(t)
}

func TestUploadAuth_NotConfigured(t *testing.T) {
	store := new(mockImageStore)
	store.On("SignUploadAuth", mock.Anything).Return(nil, imagestore.ErrNotConfigured)

	svc := NewUploadService(store, testClock(), zap.NewNop())
	_, err := svc.UploadAuth(t.Context())
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Equal(t, "ImageKit keys not configured", err.Error())
}

func TestUploadImage(t *testing.T) {
	body := strings.NewReader("jpeg")
	store := new(mockImageStore)
	store.On("Upload", mock.Anything, "taj.jpg", body).
		Return(&imagestore.UploadResult{URL: "https://ik.imagekit.io/demo/taj.jpg"}, nil)

	svc := NewUploadService(store, testClock(), zap.NewNop())
	got, err := svc.UploadImage(t.Context(), "taj.jpg", body)
	require.NoError(t, err)
	assert.Equal(t, "https://ik.imagekit.io/demo/taj.jpg", got.URL)
	store.AssertExpectations(t)
}

func TestUploadImage_Failure(t *testing.T) {
	store := new(mockImageStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	svc := NewUploadService(store, testClock(), zap.NewNop())
	_, err := svc.UploadImage(t.Context(), "taj.jpg", strings.NewReader("x"))
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Equal(t, MsgUploadFailed, err.Error())

	_, err = svc.UploadImage(t.Context(), "taj.jpg", nil)
	assert.Equal(t, MsgNoFile, err.Error())
}
