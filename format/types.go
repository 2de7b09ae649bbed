package format

type (
	ExportType      uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	ExportCSV    ExportType = 0x1 // ExportCSV represents comma-separated text output.
	ExportTSV    ExportType = 0x2 // ExportTSV represents tab-separated text output.
	ExportBinary ExportType = 0x3 // ExportBinary represents the columnar binary format.

	TypeRaw   EncodingType = 0x1 // TypeRaw represents raw fixed-width timestamps.
	TypeDelta EncodingType = 0x2 // TypeDelta represents delta-of-delta encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e ExportType) String() string {
	switch e {
	case ExportCSV:
		return "CSV"
	case ExportTSV:
		return "TSV"
	case ExportBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
