package backend

import "time"

// RetryConfig holds retry configuration for idempotent backend requests.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int

	// Backoff is the wait between attempts.
	Backoff time.Duration
}

// DefaultRetryConfig allows a single retry after a short pause.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 2,
		Backoff:     500 * time.Millisecond,
	}
}

func (c RetryConfig) attempts() int {
	if c.MaxAttempts < 1 {
		return 1
	}
	return c.MaxAttempts
}
