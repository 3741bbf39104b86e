package block

// Backend is the block-compression collaborator wrapped by the Bridge.
//
// Implementations adapt one concrete compression library to three
// primitives operating on raw byte slices. They keep the library's own
// failure conventions (non-positive bounds, sentinel results, library
// errors); the Bridge is responsible for turning those into typed errors
// and for validating every range before a backend sees it.
//
// Implementations must be stateless or internally synchronized: the same
// Backend value is called concurrently from independent goroutines.
type Backend interface {
	// Name returns a short lowercase identifier, e.g. "lz4".
	Name() string

	// CompressBound returns the worst-case compressed size for inputSize
	// bytes. The bound depends only on the size, never on content.
	// A non-positive result means the size cannot be handled.
	CompressBound(inputSize int) int

	// Compress compresses src into dst and returns the number of bytes
	// written, which is at most len(dst). Compression fails if dst is
	// smaller than CompressBound(len(src)).
	Compress(dst, src []byte) (int, error)

	// Decompress decompresses src into dst and returns the number of bytes
	// produced. len(dst) is the declared capacity: no implementation may
	// write past it regardless of what the compressed stream claims.
	// Malformed input or insufficient capacity returns an error, never a
	// fault.
	Decompress(dst, src []byte) (int, error)
}
