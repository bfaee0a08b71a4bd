// pkg/store/store_test.go
// TEST TYPE: Unit Test
// PURPOSE: Shared fixtures for store tests: in-memory filesystem,
// failure-injecting wrappers, and a fake platform.

package store_test

import (
	stderrors "errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/durafs/pkg/store"
)

// errLocked stands in for the transient lock errors an antivirus
// scanner or concurrent writer would cause.
var errLocked = stderrors.New("file is locked by another process")

// newMemStore builds a Store over a fresh MemMapFs with no sleeps
// between retry attempts.
func newMemStore(opts ...store.Option) (*store.Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	base := []store.Option{
		store.WithFs(fs),
		store.WithLogger(zerolog.Nop()),
		store.WithTempRoot("/durafs/Temp"),
		store.WithCopyBackoff(func(int) time.Duration { return 0 }),
	}
	return store.New(append(base, opts...)...), fs
}

// flakyFs wraps an afero.Fs and fails selected operations a set number
// of times before letting them through. Inverts the retrying-filesystem
// decorator: instead of absorbing failures it produces them.
type flakyFs struct {
	afero.Fs
	removeFailures int
	createFailures int
	removeCalls    int
	createCalls    int
	chmodCalls     []string
}

func (f *flakyFs) Remove(name string) error {
	f.removeCalls++
	if f.removeFailures > 0 {
		f.removeFailures--
		return errLocked
	}
	return f.Fs.Remove(name)
}

func (f *flakyFs) RemoveAll(path string) error {
	f.removeCalls++
	if f.removeFailures > 0 {
		f.removeFailures--
		return errLocked
	}
	return f.Fs.RemoveAll(path)
}

func (f *flakyFs) Create(name string) (afero.File, error) {
	f.createCalls++
	if f.createFailures > 0 {
		f.createFailures--
		return nil, errLocked
	}
	return f.Fs.Create(name)
}

func (f *flakyFs) Chmod(name string, mode os.FileMode) error {
	f.chmodCalls = append(f.chmodCalls, name)
	return f.Fs.Chmod(name, mode)
}

// fakePlatform answers free-space queries with canned values and
// refuses atomic replaces.
type fakePlatform struct {
	free      uint64
	supported bool
	err       error
}

func (p fakePlatform) ReplaceFile(target, replacement, backup string) error {
	return stderrors.New("fake platform cannot replace files")
}

func (p fakePlatform) FreeSpace(path string) (uint64, bool, error) {
	return p.free, p.supported, p.err
}
