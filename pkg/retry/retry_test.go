package retry_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/retry"
)

var testLogger = zerolog.Nop()

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := retry.Do(retry.Persistent(3, 0), testLogger, "noop", func(attempt int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := retry.Do(retry.Persistent(3, 0), testLogger, "flaky", func(attempt int) error {
		calls++
		if calls < 3 {
			return stderrors.New("locked")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustionRaises(t *testing.T) {
	calls := 0
	err := retry.Do(retry.Persistent(3, 0), testLogger, "doomed", func(attempt int) error {
		calls++
		return stderrors.New("still locked")
	})
	require.Error(t, err)
	assert.Equal(t, 3, calls, "operation must be attempted exactly Attempts times")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRetryExhausted))
	assert.Contains(t, err.Error(), "still locked")
}

func TestDoExhaustionSwallows(t *testing.T) {
	policy := retry.Policy{Attempts: 3}
	calls := 0
	err := retry.Do(policy, testLogger, "doomed", func(attempt int) error {
		calls++
		return stderrors.New("still locked")
	})
	assert.NoError(t, err, "silent policy must swallow the final failure")
	assert.Equal(t, 3, calls)
}

func TestDoPassesAttemptIndex(t *testing.T) {
	var seen []int
	_ = retry.Do(retry.Policy{Attempts: 3}, testLogger, "indexed", func(attempt int) error {
		seen = append(seen, attempt)
		return stderrors.New("fail")
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestDoRejectsInvalidPolicy(t *testing.T) {
	err := retry.Do(retry.Policy{Attempts: 0}, testLogger, "bad", func(attempt int) error {
		t.Fatal("fn must not run with an invalid policy")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestBestEffort(t *testing.T) {
	calls := 0
	err := retry.Do(retry.BestEffort, testLogger, "once", func(attempt int) error {
		calls++
		return stderrors.New("fail")
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCopyBackoff(t *testing.T) {
	assert.Equal(t, 1*time.Second, retry.CopyBackoff(0))
	assert.Equal(t, 3*time.Second, retry.CopyBackoff(1))
	assert.Equal(t, 5*time.Second, retry.CopyBackoff(2))
}

func TestDoUsesBackoffOverDelay(t *testing.T) {
	var pauses []int
	policy := retry.Policy{
		Attempts: 3,
		Delay:    time.Hour, // must be ignored
		Backoff: func(attempt int) time.Duration {
			pauses = append(pauses, attempt)
			return 0
		},
	}
	_ = retry.Do(policy, testLogger, "backoff", func(attempt int) error {
		return stderrors.New("fail")
	})
	assert.Equal(t, []int{0, 1}, pauses)
}
