package frame

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/jbruinink/lz4codec/block"
)

func newLZ4Codec(t *testing.T) *Codec {
	t.Helper()

	codec, err := NewCodec(block.LZ4Backend{})
	require.NoError(t, err)

	return codec
}

func TestNewCodecNilBackend(t *testing.T) {
	codec, err := NewCodec(nil)
	require.ErrorIs(t, err, block.ErrNilBackend)
	require.Nil(t, codec)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := newLZ4Codec(t)

	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: []byte{}},
		{name: "single byte", input: []byte{0x42}},
		{name: "every byte value", input: allBytes},
		{name: "short text", input: []byte("hello, block world")},
		{name: "repetitive", input: bytes.Repeat([]byte{0x41}, 1000)},
		{name: "binary with zeros", input: append(make([]byte, 512), allBytes...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			encoded, err := codec.Encode(tt.input)
			require.NoError(err)
			require.GreaterOrEqual(len(encoded), HeaderSize)

			decoded, err := codec.Decode(encoded)
			require.NoError(err)
			require.True(bytes.Equal(tt.input, decoded))
			require.Len(decoded, len(tt.input))
		})
	}
}

func TestRoundTripLargePayloads(t *testing.T) {
	codec := newLZ4Codec(t)
	rng := rand.New(rand.NewSource(1234))

	for _, size := range []int{1 << 16, 1 << 20, 4 << 20} {
		t.Run(fmt.Sprintf("%dKiB", size/1024), func(t *testing.T) {
			require := require.New(t)

			input := make([]byte, size)
			rng.Read(input)

			encoded, err := codec.Encode(input)
			require.NoError(err)

			decoded, err := codec.Decode(encoded)
			require.NoError(err)
			require.Len(decoded, size)

			// Digest comparison keeps failure output readable for
			// multi-megabyte payloads.
			require.Equal(xxhash.Sum64(input), xxhash.Sum64(decoded))
		})
	}
}

func TestEncodeHeaderIsBigEndianLength(t *testing.T) {
	codec := newLZ4Codec(t)

	for _, size := range []int{0, 1, 255, 256, 1000, 65536, 1 << 20} {
		input := make([]byte, size)

		encoded, err := codec.Encode(input)
		require.NoError(t, err)

		declared := binary.BigEndian.Uint32(encoded[:HeaderSize])
		require.Equal(t, uint32(size), declared)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	require := require.New(t)

	codec := newLZ4Codec(t)

	encoded, err := codec.Encode([]byte{})
	require.NoError(err)
	require.GreaterOrEqual(len(encoded), HeaderSize)
	require.Equal([]byte{0x00, 0x00, 0x00, 0x00}, encoded[:HeaderSize])

	decoded, err := codec.Decode(encoded)
	require.NoError(err)
	require.Empty(decoded)
}

func TestEncodeCompressesRepetitiveInput(t *testing.T) {
	codec := newLZ4Codec(t)

	input := bytes.Repeat([]byte{0x41}, 1000)
	encoded, err := codec.Encode(input)
	require.NoError(t, err)
	require.Less(t, len(encoded), 1004, "1000 repeated bytes must shrink")

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestEncodeIncompressibleInputOverhead(t *testing.T) {
	codec := newLZ4Codec(t)

	input := make([]byte, 1000)
	rng := rand.New(rand.NewSource(99))
	rng.Read(input)

	encoded, err := codec.Encode(input)
	require.NoError(t, err)

	// Worst case is the backend bound plus the header; for 1000 bytes that
	// is a handful of bytes of overhead.
	bound := block.LZ4Backend{}.CompressBound(len(input))
	require.LessOrEqual(t, len(encoded), bound+HeaderSize)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestEncodeNilInput(t *testing.T) {
	codec := newLZ4Codec(t)

	encoded, err := codec.Encode(nil)
	require.ErrorIs(t, err, ErrNilInput)
	require.Nil(t, encoded)
}

func TestDecodeNilInput(t *testing.T) {
	codec := newLZ4Codec(t)

	decoded, err := codec.Decode(nil)
	require.ErrorIs(t, err, ErrNilInput)
	require.Nil(t, decoded)
}

func TestNilInputNeverReachesBackend(t *testing.T) {
	backend := &countingBackend{}
	codec, err := NewCodec(backend)
	require.NoError(t, err)

	_, _ = codec.Encode(nil)
	_, _ = codec.Decode(nil)
	_, _ = codec.Decode([]byte{0x01})

	require.Zero(t, backend.calls, "nil and short inputs must fail before any backend call")
}

func TestDecodeShortFrame(t *testing.T) {
	codec := newLZ4Codec(t)

	for _, frame := range [][]byte{{}, {0x00}, {0x00, 0x00}, {0x00, 0x00, 0x00}} {
		_, err := codec.Decode(frame)
		require.ErrorIs(t, err, ErrMalformedFrame)
	}
}

func TestDecodeNegativeDeclaredSize(t *testing.T) {
	codec := newLZ4Codec(t)

	frame := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00}
	_, err := codec.Decode(frame)
	require.ErrorIs(t, err, ErrMalformedFrame)

	frame = []byte{0x80, 0x00, 0x00, 0x00}
	_, err = codec.Decode(frame)
	require.ErrorIs(t, err, ErrMalformedFrame)
}

func TestDecodeCorruptPayload(t *testing.T) {
	require := require.New(t)

	codec := newLZ4Codec(t)

	// Valid header declaring 1000 bytes, payload that claims a literal run
	// far longer than the payload itself.
	corrupt := []byte{0x00, 0x00, 0x03, 0xE8, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

	_, err := codec.Decode(corrupt)
	require.Error(err)
	require.ErrorIs(err, block.ErrBackendFailure)
}

func TestDecodeTrimsShortPayload(t *testing.T) {
	require := require.New(t)

	codec := newLZ4Codec(t)

	original := bytes.Repeat([]byte{0x7A}, 500)
	encoded, err := codec.Encode(original)
	require.NoError(err)

	// Inflate the declared size: header says 1000, payload holds 500.
	binary.BigEndian.PutUint32(encoded[:HeaderSize], 1000)

	decoded, err := codec.Decode(encoded)
	require.NoError(err)
	require.Len(decoded, 500, "result must be exactly the bytes produced, not the declared size")
	require.Equal(original, decoded)
}

func TestEncodeDoesNotRetainOrMutateInput(t *testing.T) {
	require := require.New(t)

	codec := newLZ4Codec(t)

	input := bytes.Repeat([]byte("xyz"), 100)
	snapshot := bytes.Clone(input)

	encoded, err := codec.Encode(input)
	require.NoError(err)
	require.Equal(snapshot, input, "source must not be mutated")

	// Mutating the input afterwards must not affect the frame.
	before := bytes.Clone(encoded)
	for i := range input {
		input[i] = 0
	}
	require.Equal(before, encoded)
}

func TestConcurrentRoundTrips(t *testing.T) {
	codec := newLZ4Codec(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(seed))
			for j := 0; j < 50; j++ {
				input := make([]byte, 1+rng.Intn(8192))
				rng.Read(input)

				encoded, err := codec.Encode(input)
				if err != nil {
					t.Error(err)
					return
				}
				decoded, err := codec.Decode(encoded)
				if err != nil {
					t.Error(err)
					return
				}
				if !bytes.Equal(input, decoded) {
					t.Error("round trip mismatch")
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
}

func TestRoundTripAcrossBuiltinBackends(t *testing.T) {
	for _, kind := range block.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			require := require.New(t)

			backend, err := block.CreateBackend(kind)
			require.NoError(err)

			codec, err := NewCodec(backend)
			require.NoError(err)

			input := bytes.Repeat([]byte("backend payload "), 256)
			encoded, err := codec.Encode(input)
			require.NoError(err)

			decoded, err := codec.Decode(encoded)
			require.NoError(err)
			require.Equal(input, decoded)
		})
	}
}

// countingBackend fails every primitive; tests use it to prove argument
// validation happens first.
type countingBackend struct {
	calls int
}

func (b *countingBackend) Name() string {
	return "counting"
}

func (b *countingBackend) CompressBound(inputSize int) int {
	b.calls++
	return -1
}

func (b *countingBackend) Compress(dst, src []byte) (int, error) {
	b.calls++
	return -1, nil
}

func (b *countingBackend) Decompress(dst, src []byte) (int, error) {
	b.calls++
	return -1, nil
}

func TestEncodeSurfacesBoundFailure(t *testing.T) {
	codec, err := NewCodec(&countingBackend{})
	require.NoError(t, err)

	_, err = codec.Encode([]byte("data"))
	require.ErrorIs(t, err, block.ErrBackendFailure)
}
