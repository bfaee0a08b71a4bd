package store

import (
	"os"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/paths"
)

// MinFreeSpace is the floor below which no destructive operation should
// run, regardless of what the caller asks for.
const MinFreeSpace uint64 = 500 * 1024 * 1024

// EnsureFreeSpace verifies that the volume containing path has at least
// max(required, MinFreeSpace) bytes available. Hosts that cannot answer
// the free-space query pass the check. Disk-space failures are
// deterministic and never retried.
func (s *Store) EnsureFreeSpace(path string, required uint64) error {
	p, err := paths.Normalize(path)
	if err != nil {
		return err
	}

	free, supported, err := s.platform.FreeSpace(p)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot query free space for %s", p)
	}
	if !supported {
		s.logger.Debug().Str("path", p).Msg("Free-space query unsupported on this host, skipping check")
		return nil
	}

	floor := required
	if floor < MinFreeSpace {
		floor = MinFreeSpace
	}

	if free < floor {
		host, _ := os.Hostname()
		s.logger.Warn().
			Str("path", p).
			Str("available", paths.HumanSize(free)).
			Str("required", paths.HumanSize(floor)).
			Msg("Volume is below the free-space floor")
		return errors.Newf(errors.ErrDiskSpace,
			"not enough free space on %s for %s: %s available, %s required",
			host, p, paths.HumanSize(free), paths.HumanSize(floor)).
			WithDetail("path", p).
			WithDetail("host", host).
			WithDetail("availableBytes", free).
			WithDetail("requiredBytes", floor)
	}
	return nil
}
