package ports

import (
	"context"
	"time"
)

// ResetRateLimiter throttles password-recovery requests per account so the
// mail transport cannot be used as a spam vector.
type ResetRateLimiter interface {
	// Allow records one attempt for key and reports whether it stays within
	// threshold attempts per window.
	Allow(ctx context.Context, key string, threshold int, window time.Duration) (bool, error)
}
