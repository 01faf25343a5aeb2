// Package retry wraps persistence calls in a bounded
// exponential-backoff policy. The backing store has no client
// transactions, so transient failures are absorbed here and surfaced
// only once the attempt budget runs out.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the retry loop.
type Policy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy suits short request-scoped store calls.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     4,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

// Do runs op until it succeeds, the policy is exhausted or the context
// is done. Wrap non-retriable failures with Permanent to stop early.
func Do(ctx context.Context, policy Policy, op func() error) error {
	expBackoff := backoff.NewExponentialBackOff()
	if policy.InitialInterval > 0 {
		expBackoff.InitialInterval = policy.InitialInterval
	}
	if policy.MaxInterval > 0 {
		expBackoff.MaxInterval = policy.MaxInterval
	}

	maxRetries := uint64(0)
	if policy.MaxAttempts > 0 {
		maxRetries = policy.MaxAttempts - 1
	}

	return backoff.Retry(
		op,
		backoff.WithContext(backoff.WithMaxRetries(expBackoff, maxRetries), ctx),
	)
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
