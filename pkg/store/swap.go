package store

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

// OverwriteAndDelete promotes a fully-written temporary replacement to
// its final path. When the original does not exist the replacement is
// simply copied into place; otherwise the platform's atomic replace is
// used, so the original path always resolves to either the old or the
// new content. The replacement and the backup written by the atomic
// replace are deleted afterwards, best-effort.
func (s *Store) OverwriteAndDelete(original, replacement string) error {
	orig, err := paths.Normalize(original)
	if err != nil {
		return err
	}
	repl, err := paths.Normalize(replacement)
	if err != nil {
		return err
	}

	if !s.FileExists(orig) {
		if _, err := s.CopyFile(repl, orig, DefaultCopyAttempts); err != nil {
			return err
		}
		return s.DeleteFile(repl, retry.BestEffort)
	}

	backup := filepath.Join(filepath.Dir(orig), fmt.Sprintf("%s.%s.bak", filepath.Base(orig), uuid.NewString()))
	if err := s.platform.ReplaceFile(orig, repl, backup); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s with %s", orig, repl)
	}

	s.logger.Debug().
		Str("path", orig).
		Str("replacement", repl).
		Msg("File atomically replaced")

	// The atomic replace consumed the replacement; these are no-ops
	// when the paths are already gone.
	if err := s.DeleteFile(repl, retry.BestEffort); err != nil {
		return err
	}
	return s.DeleteFile(backup, retry.BestEffort)
}
