package block

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func TestLZ4CompressBoundMatchesLibrary(t *testing.T) {
	backend := LZ4Backend{}

	for _, size := range []int{0, 1, 1000, 1 << 20} {
		require.Equal(t, lz4.CompressBlockBound(size), backend.CompressBound(size))
	}
	require.Equal(t, -1, backend.CompressBound(-5))
}

func TestLZ4EmptyInputProducesBlock(t *testing.T) {
	require := require.New(t)

	backend := LZ4Backend{}

	dst := make([]byte, backend.CompressBound(0))
	n, err := backend.Compress(dst, []byte{})
	require.NoError(err)
	require.Equal(1, n, "empty input compresses to a single zero token")
	require.Equal(byte(0x00), dst[0])

	m, err := backend.Decompress([]byte{}, dst[:n])
	require.NoError(err)
	require.Equal(0, m)
}

func TestLZ4IncompressibleInputStaysWithinBound(t *testing.T) {
	require := require.New(t)

	backend := LZ4Backend{}

	src := make([]byte, 1000)
	rng := rand.New(rand.NewSource(7))
	rng.Read(src)

	bound := backend.CompressBound(len(src))
	dst := make([]byte, bound)

	n, err := backend.Compress(dst, src)
	require.NoError(err)
	require.Positive(n)
	require.LessOrEqual(n, bound)

	out := make([]byte, len(src))
	m, err := backend.Decompress(out, dst[:n])
	require.NoError(err)
	require.Equal(src, out[:m])
}

func TestEmitLiteralBlock(t *testing.T) {
	sizes := []int{0, 1, 14, 15, 16, 269, 270, 271, 525, 4096}

	for _, size := range sizes {
		src := make([]byte, size)
		for i := range src {
			src[i] = byte(i)
		}

		dst := make([]byte, lz4.CompressBlockBound(size))
		n, err := emitLiteralBlock(dst, src)
		require.NoError(t, err)
		require.LessOrEqual(t, n, len(dst))

		// The emitted block must be decodable by the regular decompressor.
		out := make([]byte, size)
		m, err := lz4.UncompressBlock(dst[:n], out)
		require.NoError(t, err)
		require.Equal(t, size, m)
		require.True(t, bytes.Equal(src, out[:m]))
	}
}

func TestEmitLiteralBlockShortDestination(t *testing.T) {
	src := make([]byte, 100)

	_, err := emitLiteralBlock(make([]byte, 50), src)
	require.ErrorIs(t, err, errLZ4ShortDst)

	_, err = emitLiteralBlock(make([]byte, 0), []byte{1})
	require.ErrorIs(t, err, errLZ4ShortDst)
}
