// Package retry provides the retry loop shared by every destructive
// filesystem operation in durafs.
//
// Operations against a local filesystem fail transiently all the time:
// antivirus scanners hold short-lived locks, editors keep files open,
// removable volumes stall. The loop here retries an action a bounded
// number of times with a pause between attempts, then either re-raises
// the last failure or swallows it, depending on the policy.
package retry

import (
	"time"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/rs/zerolog"
)

// Policy describes how an operation is retried. The zero value is not
// valid; use BestEffort, Persistent, or build one by hand with
// Attempts >= 1.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int

	// Delay is the blocking pause between attempts.
	Delay time.Duration

	// RaiseOnExhaustion controls what happens when every attempt has
	// failed: re-raise the last failure, or return nil leaving state
	// unchanged.
	RaiseOnExhaustion bool

	// Backoff, when set, overrides Delay with a per-attempt pause.
	// The argument is the zero-based index of the attempt that just
	// failed.
	Backoff func(attempt int) time.Duration
}

// BestEffort tries once and swallows failure.
var BestEffort = Policy{Attempts: 1}

// Persistent retries up to attempts times with a fixed delay and
// re-raises the last failure on exhaustion.
func Persistent(attempts int, delay time.Duration) Policy {
	return Policy{Attempts: attempts, Delay: delay, RaiseOnExhaustion: true}
}

// CopyBackoff is the ramp used by copy and replace operations:
// 1s after the first failure, then 2s more per subsequent failure.
func CopyBackoff(attempt int) time.Duration {
	return time.Second + 2*time.Second*time.Duration(attempt)
}

// Do runs fn up to policy.Attempts times, sleeping between attempts.
// fn receives the zero-based attempt index so callers can adjust their
// behavior after a failed attempt (e.g. clear a read-only bit).
//
// A nil return from fn ends the loop immediately. When all attempts
// fail, Do returns a RETRY_EXHAUSTED error wrapping the last failure
// if the policy demands it, or nil otherwise. Intermediate failures
// are logged, never surfaced.
func Do(policy Policy, logger zerolog.Logger, op string, fn func(attempt int) error) error {
	if policy.Attempts < 1 {
		return errors.Newf(errors.ErrInvalidInput, "retry policy for %s needs at least one attempt, got %d", op, policy.Attempts)
	}

	var lastErr error
	for attempt := 0; attempt < policy.Attempts; attempt++ {
		if attempt > 0 {
			pause := policy.Delay
			if policy.Backoff != nil {
				pause = policy.Backoff(attempt - 1)
			}
			time.Sleep(pause)
		}

		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}

		logger.Debug().
			Err(lastErr).
			Str("operation", op).
			Int("attempt", attempt+1).
			Int("maxAttempts", policy.Attempts).
			Msg("Attempt failed")
	}

	if policy.RaiseOnExhaustion {
		return errors.Wrapf(lastErr, errors.ErrRetryExhausted,
			"%s failed after %d attempts", op, policy.Attempts)
	}

	logger.Warn().
		Err(lastErr).
		Str("operation", op).
		Int("attempts", policy.Attempts).
		Msg("Giving up silently")
	return nil
}
