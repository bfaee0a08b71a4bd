package store

import (
	"os"

	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

// DeleteFile removes the file at path, retrying per policy. Blank paths
// and already-missing files are treated as satisfied: deletion is
// idempotent. After a failed attempt the read-only mode is cleared so
// a later attempt is not blocked by permissions.
//
// On exhaustion the last failure is re-raised or swallowed per policy.
func (s *Store) DeleteFile(path string, policy retry.Policy) error {
	if paths.IsBlank(path) {
		return nil
	}
	p, err := paths.Normalize(path)
	if err != nil {
		return err
	}

	return retry.Do(policy, s.logger, "delete file "+p, func(attempt int) error {
		if attempt > 0 {
			s.clearReadOnly(p)
		}
		if _, err := s.fs.Stat(p); os.IsNotExist(err) {
			return nil
		}
		return s.fs.Remove(p)
	})
}

// DeleteDir removes the directory at path, retrying per policy. The
// read-only mode is stripped from the directory entry itself before a
// retry. When recursive is set the whole subtree is removed.
func (s *Store) DeleteDir(path string, policy retry.Policy, recursive bool) error {
	if paths.IsBlank(path) {
		return nil
	}
	p, err := paths.Normalize(path)
	if err != nil {
		return err
	}

	return retry.Do(policy, s.logger, "delete directory "+p, func(attempt int) error {
		if attempt > 0 {
			s.clearReadOnly(p)
		}
		if _, err := s.fs.Stat(p); os.IsNotExist(err) {
			return nil
		}
		if recursive {
			return s.fs.RemoveAll(p)
		}
		return s.fs.Remove(p)
	})
}
