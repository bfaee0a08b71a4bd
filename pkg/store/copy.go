package store

import (
	"context"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

// copyPolicy is the retry shape copy and replace share: re-raise after
// the final attempt, with the 1s + 2s-per-failure ramp.
func (s *Store) copyPolicy(attempts int) retry.Policy {
	return retry.Policy{
		Attempts:          attempts,
		RaiseOnExhaustion: true,
		Backoff:           s.backoff,
	}
}

// CopyFile copies source over target, retrying transient failures.
// An existing target has its read-only mode cleared before each
// overwrite attempt. Reports Created when the target did not exist
// beforehand, Updated otherwise.
func (s *Store) CopyFile(source, target string, attempts int) (Outcome, error) {
	src, err := paths.Normalize(source)
	if err != nil {
		return Created, err
	}
	dst, err := paths.Normalize(target)
	if err != nil {
		return Created, err
	}

	outcome := Created
	if s.FileExists(dst) {
		outcome = Updated
	}

	err = retry.Do(s.copyPolicy(attempts), s.logger, "copy "+src, func(attempt int) error {
		// Read-only targets block the truncating open, so clear the
		// mode before every attempt, not only after a failure.
		if outcome == Updated {
			s.clearReadOnly(dst)
		}
		return s.writeFileFrom(dst, src)
	})
	if err != nil {
		return outcome, err
	}

	s.logger.Debug().
		Str("source", src).
		Str("target", dst).
		Stringer("outcome", outcome).
		Msg("File copied")
	return outcome, nil
}

// writeFileFrom streams source into target, truncating target, and
// syncs before reporting success.
func (s *Store) writeFileFrom(target, source string) error {
	in, err := s.fs.Open(source)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	return s.writeFile(target, in)
}

// writeFile drains r into target and syncs. On any failure the target
// may hold partial content, which is why callers always retry or
// surface the failure instead of reporting success.
func (s *Store) writeFile(target string, r io.Reader) error {
	out, err := s.fs.Create(target)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// CopyDir copies the tree rooted at source into target, creating
// target if needed and preserving relative directory names. An absent
// source is a no-op. Cancellation is checked once per file before each
// copy starts; a file copy already in flight runs to completion or
// failure first.
func (s *Store) CopyDir(ctx context.Context, source, target string, attempts int) error {
	src, err := paths.Normalize(source)
	if err != nil {
		return err
	}
	dst, err := paths.Normalize(target)
	if err != nil {
		return err
	}

	if !s.DirExists(src) {
		return nil
	}
	if err := s.fs.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dst)
	}

	entries, err := afero.ReadDir(s.fs, src)
	if err != nil {
		return err
	}

	// Direct files first, then recurse into children.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := s.CopyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), attempts); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := s.CopyDir(ctx, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), attempts); err != nil {
			return err
		}
	}
	return nil
}
