// Package compress provides the compression codecs used by tsmooth's binary
// export format.
//
// Each exported series payload (timestamps or values) can be compressed
// independently. Delta-encoded timestamp payloads compress extremely well;
// raw float64 value payloads benefit mostly from Zstd.
package compress

import (
	"fmt"

	"github.com/arloliu/tsmooth/format"
)

// Compressor compresses a single export payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
//
// Implementations must validate the input and return an error for corrupted
// data or data produced by a different algorithm. They must be safe for
// concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
