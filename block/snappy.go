package block

import (
	"fmt"

	"github.com/golang/snappy"
)

// SnappyBackend compresses with Snappy block encoding.
type SnappyBackend struct{}

var _ Backend = SnappyBackend{}

func (SnappyBackend) Name() string {
	return "snappy"
}

func (SnappyBackend) CompressBound(inputSize int) int {
	if inputSize < 0 {
		return -1
	}

	// MaxEncodedLen returns -1 for oversized inputs.
	return snappy.MaxEncodedLen(inputSize)
}

func (SnappyBackend) Compress(dst, src []byte) (int, error) {
	bound := snappy.MaxEncodedLen(len(src))
	if bound < 0 || len(dst) < bound {
		// snappy.Encode allocates its own buffer when dst is short, which
		// would break the write-into-destination contract.
		return 0, fmt.Errorf("snappy: destination buffer too short: %d < %d", len(dst), bound)
	}

	d := snappy.Encode(dst, src)
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("snappy: encode escaped destination buffer: %d bytes", len(d))
	}

	return len(d), nil
}

func (SnappyBackend) Decompress(dst, src []byte) (int, error) {
	d, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, err
	}
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("snappy: destination buffer too short: %d < %d", len(dst), len(d))
	}

	return len(d), nil
}
