package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbruinink/lz4codec/block"
	"github.com/jbruinink/lz4codec/endian"
	"github.com/jbruinink/lz4codec/internal/pool"
)

// HeaderSize is the length of the original-size prefix in bytes.
const HeaderSize = 4

var (
	// ErrNilInput is returned when Encode or Decode receives a nil slice.
	// An empty, non-nil slice is valid input.
	ErrNilInput = errors.New("frame: nil input")

	// ErrMalformedFrame is the class of corrupt or foreign input to Decode:
	// a frame shorter than the header, or a negative declared size.
	ErrMalformedFrame = errors.New("frame: malformed frame")

	// ErrTooLarge is returned by Encode for inputs whose length does not
	// fit the header's 32-bit signed range.
	ErrTooLarge = errors.New("frame: input too large for length header")
)

// headerEngine fixes the header byte order. The wire format is big-endian
// regardless of the host.
var headerEngine = endian.GetBigEndianEngine()

// Codec produces and consumes compressed frames over a block.Bridge.
//
// The zero Codec is not usable; construct one with NewCodec. A Codec is
// stateless beyond its backend handle and safe for concurrent use.
type Codec struct {
	bridge *block.Bridge
}

// NewCodec creates a framed codec over the given backend.
//
// Returns:
//   - *Codec: Codec delegating to a validated bridge over backend
//   - error: block.ErrNilBackend if backend is nil
func NewCodec(backend block.Backend) (*Codec, error) {
	bridge, err := block.NewBridge(backend)
	if err != nil {
		return nil, err
	}

	return &Codec{bridge: bridge}, nil
}

// Backend returns the backend this codec compresses with.
func (c *Codec) Backend() block.Backend {
	return c.bridge.Backend()
}

// Encode compresses input and returns the frame: a 4-byte big-endian
// original-length header followed by the compressed payload, sized exactly.
//
// The input slice is not modified and not retained. Compression runs
// through a pooled scratch buffer; the returned frame is always a fresh
// allocation of exactly HeaderSize plus the compressed length, so no
// worst-case scratch bytes leak into it.
//
// Returns:
//   - []byte: The frame, at least HeaderSize bytes
//   - error: ErrNilInput, ErrTooLarge, or a block error (ErrBackendFailure
//     class) when the backend cannot produce output
func (c *Codec) Encode(input []byte) ([]byte, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	originalSize := len(input)
	if originalSize > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, originalSize)
	}

	bound, err := c.bridge.Bound(originalSize)
	if err != nil {
		return nil, err
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)
	scratch.Grow(bound)
	scratch.SetLength(bound)

	written, err := c.bridge.Compress(
		block.Region{Buf: input, Len: originalSize},
		block.Region{Buf: scratch.B, Len: bound},
	)
	if err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+written)
	headerEngine.PutUint32(out, uint32(originalSize))
	copy(out[HeaderSize:], scratch.B[:written])

	return out, nil
}

// Decode decompresses a frame produced by Encode and returns the original
// bytes.
//
// When the payload decompresses to fewer bytes than the header declares,
// the result is trimmed to what was actually produced; the returned slice
// is never longer than the decompressed data.
//
// Returns:
//   - []byte: The original bytes, length at most the declared size
//   - error: ErrNilInput, ErrMalformedFrame, or a block error
//     (ErrBackendFailure class) when the payload cannot be decompressed
func (c *Codec) Decode(frame []byte) ([]byte, error) {
	if frame == nil {
		return nil, ErrNilInput
	}
	if len(frame) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedFrame, len(frame), HeaderSize)
	}

	originalSize := int32(headerEngine.Uint32(frame))
	if originalSize < 0 {
		return nil, fmt.Errorf("%w: negative original size %d", ErrMalformedFrame, originalSize)
	}

	out := make([]byte, int(originalSize))
	compressedSize := len(frame) - HeaderSize

	read, err := c.bridge.Decompress(
		block.Region{Buf: frame, Off: HeaderSize, Len: compressedSize},
		block.Region{Buf: out, Len: int(originalSize)},
	)
	if err != nil {
		return nil, err
	}

	if read == int(originalSize) {
		return out, nil
	}

	// Header and payload disagree; return only what was produced.
	return out[:read], nil
}
