package store

// Platform abstracts the host calls a portable filesystem layer cannot
// express: atomic file replacement and volume free-space queries. One
// implementation exists per target OS; tests inject fakes.
//
// Platform operations act on real OS paths and bypass the Store's
// afero filesystem.
type Platform interface {
	// ReplaceFile atomically replaces target with replacement, writing
	// the prior target content to backup. After success, replacement no
	// longer exists at its old path. No external observer ever sees
	// target missing or half-written.
	ReplaceFile(target, replacement, backup string) error

	// FreeSpace reports the bytes available to this process on the
	// volume containing path. supported is false when the host cannot
	// answer, in which case callers skip their space checks.
	FreeSpace(path string) (free uint64, supported bool, err error)
}
