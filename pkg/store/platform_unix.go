//go:build unix

package store

import (
	"os"

	"golang.org/x/sys/unix"
)

// NativePlatform returns the platform implementation for the current OS.
func NativePlatform() Platform {
	return unixPlatform{}
}

type unixPlatform struct{}

// ReplaceFile hard-links the current target to backup, then renames the
// replacement over the target. rename(2) is atomic, so the target path
// always resolves to either the old or the new content.
func (unixPlatform) ReplaceFile(target, replacement, backup string) error {
	if err := os.Link(target, backup); err != nil {
		return err
	}
	if err := os.Rename(replacement, target); err != nil {
		// Leave the target untouched; the backup is now redundant.
		_ = os.Remove(backup)
		return err
	}
	return nil
}

func (unixPlatform) FreeSpace(path string) (uint64, bool, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, true, err
	}
	return st.Bavail * uint64(st.Bsize), true, nil
}
