package compress

// NoOpCompressor is a pass-through codec used when compression is disabled.
//
// It is also convenient for benchmarking the encoding pipeline without
// compression overhead.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they keep the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is.
//
// The returned slice shares the input's underlying memory; callers must not
// modify the input afterwards if they keep the returned slice.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
