package block

import (
	"errors"
	"fmt"
)

var (
	// ErrNilBackend is returned by NewBridge when no backend is supplied.
	ErrNilBackend = errors.New("block: nil backend")

	// ErrInvalidSize is returned when a negative input size is passed to Bound.
	ErrInvalidSize = errors.New("block: negative input size")

	// ErrInvalidRegion is the class of all region validation failures.
	// Match it with errors.Is; the concrete error is a *RegionError carrying
	// the offending offset, length and buffer size.
	ErrInvalidRegion = errors.New("block: invalid buffer region")

	// ErrBackendFailure is the class of all backend-reported failures.
	// Match it with errors.Is; the concrete error is a *BackendError carrying
	// the backend name, operation and raw result code.
	ErrBackendFailure = errors.New("block: backend failure")
)

// RegionError reports a region that violates the buffer-region invariant
// 0 <= Off, 0 <= Len, Off+Len <= Size.
type RegionError struct {
	Off  int // requested offset into the backing buffer
	Len  int // requested length
	Size int // length of the backing buffer
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("block: invalid buffer region: offset=%d length=%d buffer=%d", e.Off, e.Len, e.Size)
}

func (e *RegionError) Unwrap() error {
	return ErrInvalidRegion
}

// BackendError reports a failed backend operation. Code holds the backend's
// raw result when the failure was signaled through the numeric channel;
// Err holds the library error when one was returned.
type BackendError struct {
	Backend string // backend name, e.g. "lz4"
	Op      string // failed operation, e.g. "compress"
	Code    int    // raw backend result, meaningful when Err is nil
	Err     error  // underlying library error, may be nil
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("block: %s %s failed: %v", e.Backend, e.Op, e.Err)
	}

	return fmt.Sprintf("block: %s %s failed with code %d", e.Backend, e.Op, e.Code)
}

func (e *BackendError) Unwrap() error {
	return ErrBackendFailure
}
