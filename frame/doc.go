// Package frame implements the self-describing compressed-frame format:
// a 4-byte big-endian original-length header followed by the raw
// compressed payload.
//
// Layout, byte-exact:
//
//	bytes [0..4)   original uncompressed length, big-endian int32
//	bytes [4..end) compressed payload, understood only by the matching backend
//
// There is no magic number, no version byte and no checksum; the minimum
// valid frame is the 4-byte header alone. A frame is only consumed by a
// codec built on the same backend that produced it.
//
// # Basic Usage
//
//	codec, err := frame.NewCodec(block.LZ4Backend{})
//	if err != nil {
//	    return err
//	}
//
//	encoded, err := codec.Encode(data)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := codec.Decode(encoded)
//
// Encode and Decode are pure functions of their input: they keep no
// reference to caller buffers, allocate the returned slice fresh on every
// call, and are safe for concurrent use.
package frame
