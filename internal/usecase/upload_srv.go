package usecase

import (
	"context"
	"io"
	"time"

	"monument-booking/internal/dto/response"
	"monument-booking/internal/imagestore"
	"monument-booking/pkg/clock"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	MsgUploadFailed   = "Upload failed"
	MsgNoFile         = "No file provided"
	msgKeysMissing    = "ImageKit keys not configured"
	msgUploadAuthFail = "Failed to generate authentication"
)

// ImageStore is the image hosting backend.
type ImageStore interface {
	SignUploadAuth(now time.Time) (*imagestore.UploadAuth, error)
	Upload(ctx context.Context, fileName string, file io.Reader) (*imagestore.UploadResult, error)
}

type UploadService interface {
	UploadAuth(ctx context.Context) (*response.UploadAuthResponse, error)
	UploadImage(ctx context.Context, fileName string, file io.Reader) (*response.UploadResponse, error)
}

type uploadService struct {
	store ImageStore
	clock clock.Clock
	log   *zap.Logger
}

func NewUploadService(store ImageStore, clk clock.Clock, log *zap.Logger) UploadService {
	return &uploadService{
		store: store,
		clock: clk,
		log:   log.With(zap.String("service", "upload")),
	}
}

func (s *uploadService) UploadAuth(ctx context.Context) (*response.UploadAuthResponse, error) {
	auth, err := s.store.SignUploadAuth(s.clock.Now())
	if errors.Is(err, imagestore.ErrNotConfigured) {
		s.log.Error("ImageKit credentials missing or placeholder")
		return nil, fail(ErrNotConfigured, msgKeysMissing, err)
	}
	if err != nil {
		s.log.Error("Failed to sign upload auth", zap.Error(err))
		return nil, fail(ErrUpstream, msgUploadAuthFail, err)
	}

	return &response.UploadAuthResponse{
		Token:     auth.Token,
		Expire:    auth.Expire,
		Signature: auth.Signature,
		PublicKey: auth.PublicKey,
	}, nil
}

func (s *uploadService) UploadImage(ctx context.Context, fileName string, file io.Reader) (*response.UploadResponse, error) {
	if file == nil {
		return nil, fail(ErrInvalidInput, MsgNoFile, nil)
	}

	res, err := s.store.Upload(ctx, fileName, file)
	if err != nil {
		s.log.Error("ImageKit upload error", zap.Error(err), zap.String("file_name", fileName))
		return nil, fail(ErrUpstream, MsgUploadFailed, err)
	}

	s.log.Info("Image uploaded", zap.String("file_name", fileName), zap.String("url", res.URL))
	return &response.UploadResponse{URL: res.URL}, nil
}
