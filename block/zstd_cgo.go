//go:build cgo

package block

import (
	"fmt"

	"github.com/DataDog/zstd"
)

func init() {
	builtinBackends[KindZstd] = ZstdBackend{}
}

// ZstdBackend compresses with the native Zstandard library through cgo.
// Only available in cgo builds.
type ZstdBackend struct{}

var _ Backend = ZstdBackend{}

func (ZstdBackend) Name() string {
	return "zstd"
}

func (ZstdBackend) CompressBound(inputSize int) int {
	if inputSize < 0 {
		return -1
	}

	return zstd.CompressBound(inputSize)
}

func (ZstdBackend) Compress(dst, src []byte) (int, error) {
	d, err := zstd.Compress(dst, src)
	if err != nil {
		return 0, err
	}
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("zstd: destination buffer too short: %d < %d", len(dst), len(d))
	}

	return len(d), nil
}

func (ZstdBackend) Decompress(dst, src []byte) (int, error) {
	d, err := zstd.Decompress(dst, src)
	if err != nil {
		return 0, err
	}
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("zstd: destination buffer too short: %d < %d", len(dst), len(d))
	}

	return len(d), nil
}
