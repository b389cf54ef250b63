package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEntityNotFound is returned when a tracked artist or game does not exist
	ErrEntityNotFound = errors.New("tracked entity not found")

	// ErrReleaseNotFound is returned when a release is not found
	ErrReleaseNotFound = errors.New("release not found")

	// ErrUserNotFound is returned when a user cannot be resolved
	ErrUserNotFound = errors.New("user not found")

	// ErrNoCredentials is returned when a provider client is constructed
	// without the API credentials it needs; the scanner skips such providers
	ErrNoCredentials = errors.New("no API credentials configured")
)

// RateLimitedError is returned when an external provider signals rate
// limiting. It is distinguishable from generic failures so callers can
// apply a different backoff policy.
type RateLimitedError struct {
	Provider   ProviderName
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("provider %s rate limited, retry after %s", e.Provider, e.RetryAfter)
}

// IsRateLimited reports whether err is (or wraps) a RateLimitedError
func IsRateLimited(err error) bool {
	var rl *RateLimitedError
	return errors.As(err, &rl)
}
