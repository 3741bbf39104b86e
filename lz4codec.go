// Package lz4codec provides a byte-buffer compression codec with a
// self-describing wire format: every compressed payload is prefixed with a
// 4-byte big-endian header holding the original uncompressed length.
//
// The heavy lifting is done by interchangeable block-compression backends
// (pure-Go LZ4 by default; S2, Snappy, and cgo-backed native LZ4 and Zstd
// are also built in). All offset and length validation happens before a
// backend touches a buffer, so a miscomputed range surfaces as a typed
// error instead of corrupting memory.
//
// # Basic Usage
//
// The package-level functions compress with the default LZ4 backend:
//
//	encoded, err := lz4codec.Encode(data)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := lz4codec.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//
// To pick a backend explicitly, build a codec and thread it through your
// application:
//
//	codec, err := lz4codec.NewCodec(block.KindS2)
//	if err != nil {
//	    return err
//	}
//	encoded, err := codec.Encode(data)
//
// Frames carry no algorithm tag: decode with a codec built on the same
// backend that encoded.
//
// # Errors
//
// Failures are distinct, errors.Is-matchable classes: frame.ErrNilInput,
// frame.ErrMalformedFrame, block.ErrInvalidRegion, block.ErrBackendFailure.
// Nothing is retried and no partially written output is ever returned.
package lz4codec

import (
	"github.com/jbruinink/lz4codec/block"
	"github.com/jbruinink/lz4codec/frame"
)

// NewCodec creates a framed codec over the built-in backend identified by
// kind. See block.Kinds for the kinds available in this build.
func NewCodec(kind block.Kind) (*frame.Codec, error) {
	backend, err := block.CreateBackend(kind)
	if err != nil {
		return nil, err
	}

	return frame.NewCodec(backend)
}

// defaultCodec backs the package-level Encode/Decode. It is stateless and
// immutable after construction.
var defaultCodec = func() *frame.Codec {
	codec, err := frame.NewCodec(block.LZ4Backend{})
	if err != nil {
		panic(err)
	}

	return codec
}()

// Encode compresses data with the default LZ4 backend and prefixes the
// result with its original length. See frame.Codec.Encode.
func Encode(data []byte) ([]byte, error) {
	return defaultCodec.Encode(data)
}

// Decode decompresses a frame produced by Encode. See frame.Codec.Decode.
func Decode(data []byte) ([]byte, error) {
	return defaultCodec.Decode(data)
}
