package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

// Replace writes content to target unless the bytes already on disk
// are identical. The whole sequence (parent mkdir, stat, digest
// compare, overwrite) retries as a unit on failure with the copy
// backoff ramp.
//
// Reports Created when the target did not exist, Unchanged when the
// existing content's digest equals the new content's, Updated
// otherwise. Updated and Created are only ever reported after the full
// content has been written and synced.
func (s *Store) Replace(target string, content io.ReadSeeker, attempts int) (Outcome, error) {
	p, err := paths.Normalize(target)
	if err != nil {
		return Created, err
	}

	outcome := Created
	err = retry.Do(s.copyPolicy(attempts), s.logger, "replace "+p, func(attempt int) error {
		if err := s.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}

		info, err := s.fs.Stat(p)
		if os.IsNotExist(err) {
			if _, err := content.Seek(0, io.SeekStart); err != nil {
				return err
			}
			if err := s.writeFile(p, content); err != nil {
				return err
			}
			outcome = Created
			return nil
		}
		if err != nil {
			return err
		}
		if info.IsDir() {
			// A caller error, but the retry loop still runs its course
			// before surfacing it.
			return errors.Newf(errors.ErrConflict, "replace target %s is a directory", p)
		}

		s.clearReadOnly(p)

		existingDigest, err := s.digestFile(p)
		if err != nil {
			return err
		}
		if _, err := content.Seek(0, io.SeekStart); err != nil {
			return err
		}
		newDigest, err := digestReader(content)
		if err != nil {
			return err
		}

		if digestsEqual(existingDigest, newDigest) {
			outcome = Unchanged
			return nil
		}

		if _, err := content.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := s.writeFile(p, content); err != nil {
			return err
		}
		outcome = Updated
		return nil
	})
	if err != nil {
		return outcome, err
	}

	s.logger.Info().
		Str("path", p).
		Stringer("outcome", outcome).
		Msg("File replaced")
	return outcome, nil
}
