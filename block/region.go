package block

// Region is a view over a sub-range of a caller-owned byte buffer.
// It never copies or owns memory; Buf remains the caller's.
//
// A region is valid when 0 <= Off, 0 <= Len and Off+Len <= len(Buf).
// The zero Region is a valid empty view.
type Region struct {
	Buf []byte
	Off int
	Len int
}

// NewRegion builds a validated region over buf.
//
// Returns:
//   - Region: The validated view
//   - error: *RegionError if the range escapes buf
func NewRegion(buf []byte, off, length int) (Region, error) {
	r := Region{Buf: buf, Off: off, Len: length}
	if err := r.Validate(); err != nil {
		return Region{}, err
	}

	return r, nil
}

// Validate checks the buffer-region invariant.
// The comparison is written so that Off+Len cannot overflow.
func (r Region) Validate() error {
	if r.Off < 0 || r.Len < 0 || r.Off > len(r.Buf) || r.Len > len(r.Buf)-r.Off {
		return &RegionError{Off: r.Off, Len: r.Len, Size: len(r.Buf)}
	}

	return nil
}

// Bytes returns the sub-slice the region describes. It shares memory with
// Buf. Only call it on a validated region; an invalid region panics.
func (r Region) Bytes() []byte {
	return r.Buf[r.Off : r.Off+r.Len]
}
