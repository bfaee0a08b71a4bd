//go:build windows

package store

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// NativePlatform returns the platform implementation for the current OS.
func NativePlatform() Platform {
	return windowsPlatform{}
}

type windowsPlatform struct{}

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procReplaceFileW = kernel32.NewProc("ReplaceFileW")
)

const replacefileIgnoreMergeErrors = 0x00000002

// ReplaceFile wraps the ReplaceFileW system call, which swaps the
// target's content for the replacement's and writes the prior target to
// backup in one host-level operation.
func (windowsPlatform) ReplaceFile(target, replacement, backup string) error {
	targetPtr, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return err
	}
	replacementPtr, err := windows.UTF16PtrFromString(replacement)
	if err != nil {
		return err
	}
	backupPtr, err := windows.UTF16PtrFromString(backup)
	if err != nil {
		return err
	}

	r1, _, callErr := procReplaceFileW.Call(
		uintptr(unsafe.Pointer(targetPtr)),
		uintptr(unsafe.Pointer(replacementPtr)),
		uintptr(unsafe.Pointer(backupPtr)),
		replacefileIgnoreMergeErrors,
		0, 0,
	)
	if r1 == 0 {
		return callErr
	}
	return nil
}

func (windowsPlatform) FreeSpace(path string) (uint64, bool, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, true, err
	}
	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeToCaller, &total, &totalFree); err != nil {
		return 0, true, err
	}
	return freeToCaller, true, nil
}
