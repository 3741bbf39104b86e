package block

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Backend compresses with S2, the Snappy-derived block format.
type S2Backend struct{}

var _ Backend = S2Backend{}

func (S2Backend) Name() string {
	return "s2"
}

func (S2Backend) CompressBound(inputSize int) int {
	if inputSize < 0 {
		return -1
	}

	// MaxEncodedLen returns a negative value for oversized inputs.
	return s2.MaxEncodedLen(inputSize)
}

func (S2Backend) Compress(dst, src []byte) (int, error) {
	bound := s2.MaxEncodedLen(len(src))
	if bound < 0 || len(dst) < bound {
		// s2.Encode allocates its own buffer when dst is short, which would
		// break the write-into-destination contract.
		return 0, fmt.Errorf("s2: destination buffer too short: %d < %d", len(dst), bound)
	}

	d := s2.Encode(dst, src)
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("s2: encode escaped destination buffer: %d bytes", len(d))
	}

	return len(d), nil
}

func (S2Backend) Decompress(dst, src []byte) (int, error) {
	d, err := s2.Decode(dst, src)
	if err != nil {
		return 0, err
	}
	if len(d) > 0 && len(dst) > 0 && &d[0] != &dst[0] {
		return 0, fmt.Errorf("s2: destination buffer too short: %d < %d", len(dst), len(d))
	}

	return len(d), nil
}
