package port

import (
	"context"
	"errors"
	"fmt"

	"adlens/internal/core/domain"
)

var (
	// ErrUnsupportedPlatform is fatal: the caller asked for a platform
	// outside the closed set.
	ErrUnsupportedPlatform = domain.ErrUnsupportedPlatform
	// ErrCredentialsNotFound is recoverable and means "not connected".
	ErrCredentialsNotFound = errors.New("credentials not found")
	// ErrDecryptionFailed is fatal: key rotation or data corruption.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrPlatformAPI matches every *PlatformAPIError via errors.Is.
	ErrPlatformAPI = errors.New("platform api error")
	// ErrUnsupportedOperation is fatal: the adapter cannot do this.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	ErrClientNotFound   = errors.New("client not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrSyncInProgress   = errors.New("sync already in progress")
	ErrNoSources        = errors.New("no connected sources requested")
	ErrInvalidArgument  = errors.New("invalid argument")
)

// APIErrorKind classifies a platform failure.
type APIErrorKind string

const (
	APIErrorAuth      APIErrorKind = "auth"
	APIErrorRateLimit APIErrorKind = "rate_limit"
	APIErrorNetwork   APIErrorKind = "network"
	APIErrorTimeout   APIErrorKind = "timeout"
	APIErrorResponse  APIErrorKind = "response"
)

// PlatformAPIError is a recoverable failure talking to a remote platform.
type PlatformAPIError struct {
	Platform   domain.Platform
	Kind       APIErrorKind
	StatusCode int
	Err        error
}

func (e *PlatformAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s api error (%s, status %d): %v", e.Platform, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s api error (%s): %v", e.Platform, e.Kind, e.Err)
}

func (e *PlatformAPIError) Unwrap() error { return e.Err }

func (e *PlatformAPIError) Is(target error) bool { return target == ErrPlatformAPI }

// NewPlatformAPIError classifies err. Context deadlines become timeouts,
// anything else without a status is a network failure.
func NewPlatformAPIError(platform domain.Platform, statusCode int, err error) *PlatformAPIError {
	kind := APIErrorResponse
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = APIErrorTimeout
	case statusCode == 401 || statusCode == 403:
		kind = APIErrorAuth
	case statusCode == 429:
		kind = APIErrorRateLimit
	case statusCode == 0:
		kind = APIErrorNetwork
	}
	return &PlatformAPIError{Platform: platform, Kind: kind, StatusCode: statusCode, Err: err}
}

// IsFatal reports whether err signals a configuration or integrity problem
// that must abort the whole operation instead of degrading one source.
func IsFatal(err error) bool {
	return errors.Is(err, ErrDecryptionFailed) ||
		errors.Is(err, ErrUnsupportedPlatform) ||
		errors.Is(err, ErrUnsupportedOperation)
}
