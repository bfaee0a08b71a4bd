// Package paths provides centralized path handling for durafs.
// It implements XDG Base Directory compliance for the process-private
// temp root and normalizes every caller-supplied path before use.
package paths

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/durafs/pkg/errors"
)

// AppName is the directory name used for durafs-owned locations
// (temp root, config, logs). Not user-configurable.
const AppName = "durafs"

// TempDirName is the subdirectory for temporary resources
const TempDirName = "Temp"

// Normalize converts a path to its absolute, cleaned form. Relative
// paths resolve against the current working directory.
func Normalize(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "path must not be empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve path %q", path)
	}
	return abs, nil
}

// IsBlank reports whether a caller-supplied path is empty or whitespace.
// Destructive operations treat blank paths as a no-op rather than an error.
func IsBlank(path string) bool {
	return strings.TrimSpace(path) == ""
}

// TempRoot returns the process-private temp root,
// <data-home>/durafs/Temp. The directory is not created here.
func TempRoot() string {
	return filepath.Join(xdg.DataHome, AppName, TempDirName)
}

// sizeUnits in 1024-multiples, largest supported is TB
var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// HumanSize renders a byte count in the largest 1024-multiple unit it
// fills, truncated (not rounded) to one decimal. Counts below 1 KB are
// rendered as plain bytes.
func HumanSize(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%d bytes", n)
	}
	v := float64(n)
	unit := sizeUnits[0]
	for _, u := range sizeUnits {
		unit = u
		v /= 1024
		if v < 1024 {
			break
		}
	}
	return fmt.Sprintf("%.1f %s", math.Trunc(v*10)/10, unit)
}
