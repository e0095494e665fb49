package usecase

import (
	"github.com/cockroachdb/errors"
)

// Error markers for categorization. Every error a service returns carries
// one of them and an Error() text that is safe to show to the caller.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStore         = errors.New("store operation failed")
	ErrArtifact      = errors.New("ticket generation failed")
	ErrUpstream      = errors.New("upstream service failed")
	ErrNotConfigured = errors.New("service not configured")
)

const (
	MsgBookingFailed   = "Failed to create booking. Please try again."
	MsgMonumentFailed  = "Failed to create monument."
	MsgBookingMissing  = "Booking not found"
	MsgMonumentMissing = "Monument not found"
)

// fail returns an error whose message is msg only. The cause, when present,
// is kept as a secondary error for logs and never reaches Error().
func fail(marker error, msg string, cause error) error {
	err := errors.New(msg)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	return errors.Mark(err, marker)
}
