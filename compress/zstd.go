package compress

// ZstdCompressor provides Zstandard compression for exported series payloads.
//
// Zstd gives the best compression ratio of the built-in codecs and is the
// right choice when exports are archived or shipped over constrained links.
// For latency-sensitive paths prefer S2 or LZ4.
//
// Two implementations exist, selected at build time:
//   - pure Go (klauspost/compress/zstd) when cgo is unavailable
//   - gozstd (cgo bindings to libzstd) under the cgo build tag
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
