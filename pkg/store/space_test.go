// pkg/store/space_test.go
// TEST TYPE: Unit Test
// PURPOSE: Free-space guard: floor enforcement, unsupported hosts,
// error details.

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/store"
)

const mib = 1024 * 1024

func TestEnsureFreeSpaceAboveFloor(t *testing.T) {
	s, _ := newMemStore(store.WithPlatform(fakePlatform{free: 600 * mib, supported: true}))

	assert.NoError(t, s.EnsureFreeSpace("/data", 100*mib))
}

func TestEnsureFreeSpaceFloorIsEnforced(t *testing.T) {
	// The floor is max(required, 500 MiB): 100 MiB free fails even for a
	// 100 MiB request.
	s, _ := newMemStore(store.WithPlatform(fakePlatform{free: 100 * mib, supported: true}))

	err := s.EnsureFreeSpace("/data", 100*mib)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDiskSpace))
}

func TestEnsureFreeSpaceRequiredAboveFloor(t *testing.T) {
	s, _ := newMemStore(store.WithPlatform(fakePlatform{free: 600 * mib, supported: true}))

	err := s.EnsureFreeSpace("/data", 700*mib)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDiskSpace))
}

func TestEnsureFreeSpaceUnsupportedHostSkips(t *testing.T) {
	s, _ := newMemStore(store.WithPlatform(fakePlatform{supported: false}))

	assert.NoError(t, s.EnsureFreeSpace("/data", 10*1024*mib))
}

func TestEnsureFreeSpaceErrorDetails(t *testing.T) {
	s, _ := newMemStore(store.WithPlatform(fakePlatform{free: mib, supported: true}))

	err := s.EnsureFreeSpace("/data", 0)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/data", details["path"])
	assert.Equal(t, uint64(mib), details["availableBytes"])
	assert.Equal(t, uint64(500*mib), details["requiredBytes"])
	assert.NotEmpty(t, details["host"])
	assert.Contains(t, err.Error(), "1.0 MB")
	assert.Contains(t, err.Error(), "500.0 MB")
}
