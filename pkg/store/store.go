package store

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/durafs/pkg/logging"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

// DefaultCopyAttempts is the retry count for copy and replace
// operations when the caller does not override it.
const DefaultCopyAttempts = 3

// DefaultDeletePolicy retries a delete a few times and re-raises the
// last failure. Use retry.BestEffort for fire-and-forget cleanup.
var DefaultDeletePolicy = retry.Persistent(3, 500*time.Millisecond)

// Store owns all path-based operations. Safe for concurrent use on
// disjoint paths; operations on the same path race at the mercy of the
// host filesystem.
type Store struct {
	fs       afero.Fs
	platform Platform
	logger   zerolog.Logger
	tempRoot string
	backoff  func(attempt int) time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithFs replaces the backing filesystem. Mostly useful for tests with
// afero's MemMapFs or a failure-injecting wrapper.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) { s.fs = fs }
}

// WithPlatform replaces the host platform implementation.
func WithPlatform(p Platform) Option {
	return func(s *Store) { s.platform = p }
}

// WithTempRoot overrides the directory temporary resources are
// allocated under.
func WithTempRoot(root string) Option {
	return func(s *Store) { s.tempRoot = root }
}

// WithLogger replaces the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithCopyBackoff overrides the pause ramp between copy and replace
// attempts. Tests use this to retry without real sleeps.
func WithCopyBackoff(backoff func(attempt int) time.Duration) Option {
	return func(s *Store) { s.backoff = backoff }
}

// New creates a Store backed by the OS filesystem and the native
// platform implementation.
func New(opts ...Option) *Store {
	s := &Store{
		fs:       afero.NewOsFs(),
		platform: NativePlatform(),
		logger:   logging.GetLogger("store"),
		tempRoot: paths.TempRoot(),
		backoff:  retry.CopyBackoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// clearReadOnly makes path writable by its owner if a read-only mode
// currently blocks mutation. Errors are swallowed: the follow-up
// operation will surface the real failure.
func (s *Store) clearReadOnly(path string) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return
	}
	mode := info.Mode()
	if mode.Perm()&0200 != 0 {
		return
	}
	if err := s.fs.Chmod(path, mode.Perm()|0200); err != nil {
		s.logger.Debug().Err(err).Str("path", path).Msg("Could not clear read-only mode")
	}
}
