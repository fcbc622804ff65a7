package sensor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Policy decides what happens when a source reports ErrSensorUnavailable.
//   - MaxRetries : retries after the first failure before giving up (0 = abort at once)
//   - Backoff    : wait before the first retry; doubles per retry
//   - MaxBackoff : cap for the doubled wait (0 = uncapped)
type Policy struct {
	MaxRetries int
	Backoff    time.Duration
	MaxBackoff time.Duration
}

// ExhaustedError is returned when every attempt of one Next call failed.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("sensor read failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// Retrying wraps a Source with a Policy. Errors other than
// ErrSensorUnavailable pass through untouched.
type Retrying struct {
	src    Source
	policy Policy

	// OnRetry, if set, is called before each wait.
	OnRetry func(attempt int, wait time.Duration, err error)

	sleep func(context.Context, time.Duration) error
}

func NewRetrying(src Source, p Policy) *Retrying {
	return &Retrying{src: src, policy: p, sleep: sleepCtx}
}

func (r *Retrying) Next(ctx context.Context) (int, error) {
	wait := r.policy.Backoff
	for attempt := 1; ; attempt++ {
		v, err := r.src.Next(ctx)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrSensorUnavailable) {
			return 0, err
		}
		if attempt > r.policy.MaxRetries {
			return 0, &ExhaustedError{Attempts: attempt, Err: err}
		}
		if r.OnRetry != nil {
			r.OnRetry(attempt, wait, err)
		}
		if serr := r.sleep(ctx, wait); serr != nil {
			return 0, serr
		}
		wait *= 2
		if r.policy.MaxBackoff > 0 && wait > r.policy.MaxBackoff {
			wait = r.policy.MaxBackoff
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
