//go:build !unix && !windows

package store

import "os"

// NativePlatform returns the platform implementation for the current OS.
func NativePlatform() Platform {
	return fallbackPlatform{}
}

// fallbackPlatform serves hosts without a native atomic replace or
// free-space query. Free-space checks report unsupported and are
// skipped by callers.
type fallbackPlatform struct{}

func (fallbackPlatform) ReplaceFile(target, replacement, backup string) error {
	if err := os.Rename(target, backup); err != nil {
		return err
	}
	if err := os.Rename(replacement, target); err != nil {
		// Restore the original so the logical path never stays missing.
		_ = os.Rename(backup, target)
		return err
	}
	return nil
}

func (fallbackPlatform) FreeSpace(path string) (uint64, bool, error) {
	return 0, false, nil
}
