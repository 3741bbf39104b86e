package block

import (
	"fmt"
	"slices"
)

// Kind identifies a built-in backend.
type Kind uint8

const (
	KindLZ4       Kind = 0x1 // KindLZ4 is the pure-Go LZ4 block backend.
	KindS2        Kind = 0x2 // KindS2 is the S2 block backend.
	KindSnappy    Kind = 0x3 // KindSnappy is the Snappy block backend.
	KindZstd      Kind = 0x4 // KindZstd is the native Zstandard backend (cgo builds only).
	KindLZ4Native Kind = 0x5 // KindLZ4Native is the native LZ4 backend (cgo builds only).
)

func (k Kind) String() string {
	switch k {
	case KindLZ4:
		return "LZ4"
	case KindS2:
		return "S2"
	case KindSnappy:
		return "Snappy"
	case KindZstd:
		return "Zstd"
	case KindLZ4Native:
		return "LZ4Native"
	default:
		return "Unknown"
	}
}

// builtinBackends maps kinds to their backend values. The cgo-gated
// backends register themselves from init, so the map is read-only after
// package initialization.
var builtinBackends = map[Kind]Backend{
	KindLZ4:    LZ4Backend{},
	KindS2:     S2Backend{},
	KindSnappy: SnappyBackend{},
}

// CreateBackend returns the built-in backend for the given kind.
//
// Returns:
//   - Backend: Stateless backend value, safe to share
//   - error: Unknown kind, or a kind that needs cgo in a non-cgo build
func CreateBackend(kind Kind) (Backend, error) {
	if b, ok := builtinBackends[kind]; ok {
		return b, nil
	}

	switch kind {
	case KindZstd, KindLZ4Native:
		return nil, fmt.Errorf("backend %s requires a cgo build", kind)
	default:
		return nil, fmt.Errorf("unsupported backend kind: %s", kind)
	}
}

// Kinds returns the backend kinds available in this build, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(builtinBackends))
	for k := range builtinBackends {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	return kinds
}
