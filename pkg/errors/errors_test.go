// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/durafs/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "conflict_error",
			code:    errors.ErrConflict,
			message: "target is a directory",
			wantStr: "[CONFLICT] target is a directory",
		},
		{
			name:    "disk_space_error",
			code:    errors.ErrDiskSpace,
			message: "not enough free space",
			wantStr: "[DISK_SPACE] not enough free space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("permission denied")
	err := errors.Wrap(inner, errors.ErrFileAccess, "cannot open target")

	if err.Wrapped != inner {
		t.Errorf("Wrap() wrapped = %v, want %v", err.Wrapped, inner)
	}

	want := "[FILE_ACCESS] cannot open target: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the error chain for errors.Is")
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrInternal, "nope"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrInternal, "nope %d", 1); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrRetryExhausted, "delete failed after %d attempts", 3)

	if !errors.IsErrorCode(err, errors.ErrRetryExhausted) {
		t.Error("IsErrorCode() should match the error's code")
	}
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Error("IsErrorCode() should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrRetryExhausted) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestIsAcrossWrapping(t *testing.T) {
	inner := errors.New(errors.ErrDiskSpace, "volume full")
	outer := errors.Wrap(inner, errors.ErrInternal, "space check failed")

	if !stderrors.Is(outer, errors.New(errors.ErrDiskSpace, "")) {
		t.Error("errors.Is should find the inner code through the chain")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrFileCopy, "copy failed")); got != errors.ErrFileCopy {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrFileCopy)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDiskSpace, "not enough free space").
		WithDetail("path", "/var/data").
		WithDetail("availableBytes", int64(1024))

	details := errors.GetErrorDetails(err)
	if details["path"] != "/var/data" {
		t.Errorf("WithDetail() path = %v, want /var/data", details["path"])
	}
	if details["availableBytes"] != int64(1024) {
		t.Errorf("WithDetail() availableBytes = %v, want 1024", details["availableBytes"])
	}
}
