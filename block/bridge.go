package block

import "fmt"

// Bridge is the validated adapter over a Backend.
//
// Every operation checks its arguments exhaustively before delegating, so
// an invalid offset or length is reported as a typed error instead of
// reaching the backend. The backend operates directly on the caller's
// buffers for the duration of the call; the bridge never copies data
// through an intermediate buffer and never mutates a source region.
type Bridge struct {
	backend Backend
}

// NewBridge creates a Bridge over the given backend.
//
// Returns:
//   - *Bridge: Bridge delegating to backend
//   - error: ErrNilBackend if backend is nil
func NewBridge(backend Backend) (*Bridge, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}

	return &Bridge{backend: backend}, nil
}

// Backend returns the wrapped backend.
func (br *Bridge) Backend() Backend {
	return br.backend
}

// Bound returns the worst-case compressed size for inputSize bytes.
//
// The bound is computed fresh on every call; it is deterministic for a
// given size within one backend, but callers must not cache it across
// backends.
//
// Returns:
//   - int: Worst-case compressed size, always positive
//   - error: ErrInvalidSize for a negative size, or *BackendError if the
//     backend reported a non-positive bound
func (br *Bridge) Bound(inputSize int) (int, error) {
	if inputSize < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, inputSize)
	}

	bound := br.backend.CompressBound(inputSize)
	if bound <= 0 {
		return 0, &BackendError{Backend: br.backend.Name(), Op: "compress bound", Code: bound}
	}

	return bound, nil
}

// Compress compresses the src region into the dst region and returns the
// number of bytes written, which is at most dst.Len.
//
// Both regions are validated against their backing buffers before the
// backend is invoked; a violation returns *RegionError and the backend is
// never called. The source region is not mutated.
func (br *Bridge) Compress(src, dst Region) (int, error) {
	if err := src.Validate(); err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	n, err := br.backend.Compress(dst.Bytes(), src.Bytes())
	if err != nil {
		return 0, &BackendError{Backend: br.backend.Name(), Op: "compress", Code: n, Err: err}
	}
	if n < 0 || (n == 0 && src.Len > 0) || n > dst.Len {
		// A zero result is only legal for empty input.
		return 0, &BackendError{Backend: br.backend.Name(), Op: "compress", Code: n}
	}

	return n, nil
}

// Decompress decompresses the src region into the dst region and returns
// the number of bytes produced. dst.Len is the declared capacity; the
// backend never writes past it regardless of what the compressed stream
// claims.
//
// Validation mirrors Compress. A malformed stream or insufficient capacity
// is reported as *BackendError, a recoverable error value, never a fault.
func (br *Bridge) Decompress(src, dst Region) (int, error) {
	if err := src.Validate(); err != nil {
		return 0, fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	n, err := br.backend.Decompress(dst.Bytes(), src.Bytes())
	if err != nil {
		return 0, &BackendError{Backend: br.backend.Name(), Op: "decompress", Code: n, Err: err}
	}
	if n < 0 || n > dst.Len {
		return 0, &BackendError{Backend: br.backend.Name(), Op: "decompress", Code: n}
	}

	return n, nil
}
