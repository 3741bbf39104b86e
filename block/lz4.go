package block

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

var errLZ4ShortDst = errors.New("destination smaller than worst-case bound")

// LZ4Backend is the default backend: pure-Go LZ4 block compression.
//
// It produces raw LZ4 blocks compatible with LZ4_compress_default and
// decompresses them with LZ4_decompress_safe semantics. Unlike the
// underlying library, Compress never reports incompressible input as a
// failure: such input is emitted as a literal-only block, which always
// fits within CompressBound.
type LZ4Backend struct{}

var _ Backend = LZ4Backend{}

func (LZ4Backend) Name() string {
	return "lz4"
}

func (LZ4Backend) CompressBound(inputSize int) int {
	if inputSize < 0 {
		return -1
	}

	return lz4.CompressBlockBound(inputSize)
}

func (LZ4Backend) Compress(dst, src []byte) (int, error) {
	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// CompressBlock signals incompressible input with a zero length.
		// Emit a literal-only block instead so the bounded-output contract
		// holds for all inputs, including the empty one.
		return emitLiteralBlock(dst, src)
	}

	return n, nil
}

func (LZ4Backend) Decompress(dst, src []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}

// emitLiteralBlock writes src into dst as a single LZ4 literal run:
// one token byte, optional length extension bytes, then the raw input.
// The result is a valid block of at most CompressBound(len(src)) bytes.
func emitLiteralBlock(dst, src []byte) (int, error) {
	n := len(src)
	if n < 15 {
		if len(dst) < 1+n {
			return 0, errLZ4ShortDst
		}
		dst[0] = byte(n) << 4
		copy(dst[1:], src)

		return 1 + n, nil
	}

	// Literal lengths >= 15 continue in extension bytes of 255 each,
	// terminated by a byte below 255.
	rem := n - 15
	if len(dst) < 2+rem/255+n {
		return 0, errLZ4ShortDst
	}
	dst[0] = 0xF0
	pos := 1
	for rem >= 255 {
		dst[pos] = 0xFF
		pos++
		rem -= 255
	}
	dst[pos] = byte(rem)
	pos++
	copy(dst[pos:], src)

	return pos + n, nil
}
