//go:build cgo

package block

import (
	golz4 "github.com/hungys/go-lz4"
)

func init() {
	builtinBackends[KindLZ4Native] = NativeLZ4Backend{}
}

// NativeLZ4Backend calls the reference C LZ4 library through cgo.
//
// It is wire-compatible with LZ4Backend: blocks produced by one
// decompress with the other. Only available in cgo builds.
type NativeLZ4Backend struct{}

var _ Backend = NativeLZ4Backend{}

func (NativeLZ4Backend) Name() string {
	return "lz4-native"
}

func (NativeLZ4Backend) CompressBound(inputSize int) int {
	if inputSize < 0 {
		return -1
	}

	return golz4.CompressBound(inputSize)
}

func (NativeLZ4Backend) Compress(dst, src []byte) (int, error) {
	return golz4.CompressDefault(src, dst)
}

func (NativeLZ4Backend) Decompress(dst, src []byte) (int, error) {
	return golz4.DecompressSafe(src, dst)
}
