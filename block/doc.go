// Package block provides safe, validated access to block-compression
// primitives: a worst-case output bound, a bounded compressor, and a safe
// decompressor that never writes past a declared capacity.
//
// The package is split into two layers:
//
//   - Backend: the innermost collaborator wrapping a concrete compression
//     library (pure-Go LZ4, S2, Snappy, or cgo bindings for native LZ4 and
//     Zstd). Backends operate on raw byte slices and keep the libraries'
//     sentinel conventions: a non-positive bound or a library error means
//     the operation failed.
//   - Bridge: the checked adapter the rest of the module calls. It accepts
//     Region views (buffer, offset, length) over caller-owned buffers,
//     performs exhaustive bounds validation before any backend call, and
//     converts sentinel results into typed errors.
//
// The underlying libraries assume valid, non-overlapping ranges. All range
// checking therefore happens in the Bridge; a Backend never sees a region
// that escapes its backing buffer.
//
// # Basic Usage
//
//	bridge, err := block.NewBridge(block.LZ4Backend{})
//	if err != nil {
//	    return err
//	}
//
//	bound, err := bridge.Bound(len(data))
//	if err != nil {
//	    return err
//	}
//
//	dst := make([]byte, bound)
//	n, err := bridge.Compress(
//	    block.Region{Buf: data, Len: len(data)},
//	    block.Region{Buf: dst, Len: bound},
//	)
//
// # Thread Safety
//
// Backends and the Bridge are stateless beyond their arguments; concurrent
// calls on independent buffers are safe. Two calls sharing a mutable
// destination region are the caller's responsibility, and passing
// overlapping ranges as both source and destination is unsupported.
package block
