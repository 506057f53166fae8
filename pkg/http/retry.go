package http

import (
	"context"
	"errors"
	"time"
)

// Default retry settings.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 1 * time.Second
)

// RetryableError is an interface for errors that know if they're retryable.
type RetryableError interface {
	error
	IsRetryable() bool
}

// ShouldRetry reports whether a failed attempt is worth repeating.
//
// Errors implementing RetryableError decide for themselves. Context
// cancellation is never retried. Any other error is treated as a transient
// network failure and retried.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var retryable RetryableError
	if errors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return true
}

// RetryStrategy defines how failed requests are retried.
// Attempts are numbered from 1.
type RetryStrategy interface {
	// MaxAttempts returns the total number of attempts allowed, including the first.
	MaxAttempts() int

	// ShouldRetry returns true if another attempt should follow the failed one.
	ShouldRetry(attempt int, err error) bool

	// RetryDelay returns how long to wait after the given failed attempt.
	RetryDelay(attempt int) time.Duration
}

// LinearBackoff waits BaseDelay × attempt before each retry.
//
// With BaseDelay=1s and Attempts=3 a failing call is tried at t=0, t=1s and
// t=3s, then the third error is returned.
type LinearBackoff struct {
	// BaseDelay is multiplied by the failed attempt number.
	// Defaults to 1 second if not set.
	BaseDelay time.Duration

	// Attempts is the total number of attempts, including the first.
	// Defaults to 3 if not set.
	Attempts int
}

// NewLinearBackoff creates a linear backoff strategy.
func NewLinearBackoff(baseDelay time.Duration, attempts int) *LinearBackoff {
	return &LinearBackoff{
		BaseDelay: baseDelay,
		Attempts:  attempts,
	}
}

// MaxAttempts implements RetryStrategy.MaxAttempts.
func (l *LinearBackoff) MaxAttempts() int {
	if l.Attempts <= 0 {
		return DefaultMaxAttempts
	}
	return l.Attempts
}

// ShouldRetry implements RetryStrategy.ShouldRetry.
func (l *LinearBackoff) ShouldRetry(attempt int, err error) bool {
	if attempt >= l.MaxAttempts() {
		return false
	}
	return ShouldRetry(err)
}

// RetryDelay implements RetryStrategy.RetryDelay.
func (l *LinearBackoff) RetryDelay(attempt int) time.Duration {
	base := l.BaseDelay
	if base == 0 {
		base = DefaultBaseDelay
	}
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(attempt)
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retrier runs an operation until it succeeds, fails permanently or runs out
// of attempts. Attempts never overlap.
type Retrier struct {
	// Strategy decides eligibility and delay.
	// Defaults to LinearBackoff with default settings.
	Strategy RetryStrategy

	// Sleep waits between attempts. Defaults to Sleep.
	Sleep SleepFunc

	// OnRetry is called before each delay with the attempt that failed.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Run calls op with 1-based attempt numbers and returns nil on the first
// success. The last error is returned unchanged once the strategy gives up.
// If ctx ends, the attempt's error (or ctx.Err() while sleeping) is returned
// without further attempts.
func (r *Retrier) Run(ctx context.Context, op func(ctx context.Context, attempt int) error) error {
	strategy := r.Strategy
	if strategy == nil {
		strategy = NewLinearBackoff(DefaultBaseDelay, DefaultMaxAttempts)
	}
	sleep := r.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	for attempt := 1; ; attempt++ {
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		if !strategy.ShouldRetry(attempt, err) {
			return err
		}

		delay := strategy.RetryDelay(attempt)
		if r.OnRetry != nil {
			r.OnRetry(attempt, delay, err)
		}
		if serr := sleep(ctx, delay); serr != nil {
			return serr
		}
	}
}
