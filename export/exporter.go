package export

import (
	"fmt"
	"io"

	"github.com/arloliu/tsmooth/endian"
	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/format"
	"github.com/arloliu/tsmooth/internal/options"
	"github.com/arloliu/tsmooth/series"
)

// Exporter serializes a series to one of the supported output forms.
//
// An Exporter is immutable after New and safe for concurrent use.
type Exporter struct {
	exportType  format.ExportType
	tsEncoding  format.EncodingType
	compression format.CompressionType
	engine      endian.EndianEngine
	precision   int
}

// Option is a functional option for configuring an Exporter.
type Option = options.Option[*Exporter]

// WithType sets the output form. Defaults to CSV.
func WithType(t format.ExportType) Option {
	return options.New(func(e *Exporter) error {
		switch t {
		case format.ExportCSV, format.ExportTSV, format.ExportBinary:
			e.exportType = t
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidExportType, t)
		}
	})
}

// WithTimestampEncoding sets the timestamp encoding for the binary form:
// TypeRaw (fixed-width) or TypeDelta (delta-of-delta varint, much smaller for
// regular intervals). Ignored by the text forms. Defaults to TypeDelta.
func WithTimestampEncoding(enc format.EncodingType) Option {
	return options.New(func(e *Exporter) error {
		switch enc {
		case format.TypeRaw, format.TypeDelta:
			e.tsEncoding = enc
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidTimestampEncoding, enc)
		}
	})
}

// WithCompression sets the payload compression for the binary form. Ignored
// by the text forms. Defaults to CompressionNone.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(e *Exporter) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompressionType, comp)
		}
	})
}

// WithPrecision sets the number of significant digits for values in the text
// forms. -1 (the default) uses the shortest representation that round-trips
// exactly. Ignored by the binary form.
func WithPrecision(prec int) Option {
	return options.New(func(e *Exporter) error {
		if prec < -1 {
			return fmt.Errorf("%w: precision must be >= -1, got %d", errs.ErrInvalidConfig, prec)
		}
		e.precision = prec

		return nil
	})
}

// WithLittleEndian selects little-endian byte order for the binary form (the
// default, native on x86/x64/ARM).
func WithLittleEndian() Option {
	return options.NoError(func(e *Exporter) {
		e.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects big-endian byte order for the binary form.
func WithBigEndian() Option {
	return options.NoError(func(e *Exporter) {
		e.engine = endian.GetBigEndianEngine()
	})
}

// New creates an Exporter with the given options.
//
// Defaults: CSV output; for the binary form, delta timestamps, no
// compression, little-endian.
//
// Example:
//
//	exp, err := export.New(
//	    export.WithType(format.ExportBinary),
//	    export.WithCompression(format.CompressionZstd),
//	)
func New(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		exportType:  format.ExportCSV,
		tsEncoding:  format.TypeDelta,
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
		precision:   -1,
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Export serializes src and returns the encoded bytes.
//
// Returns errs.ErrEmptySeries for a nil or empty series; on error no output
// is produced.
func (e *Exporter) Export(src *series.Series) ([]byte, error) {
	if src.Len() == 0 {
		return nil, errs.ErrEmptySeries
	}

	switch e.exportType {
	case format.ExportCSV:
		return e.exportText(src, ','), nil
	case format.ExportTSV:
		return e.exportText(src, '\t'), nil
	case format.ExportBinary:
		return e.exportBinary(src)
	default:
		// unreachable: New validates the export type
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidExportType, e.exportType)
	}
}

// ExportTo serializes src into w and returns the number of bytes written.
func (e *Exporter) ExportTo(w io.Writer, src *series.Series) (int, error) {
	data, err := e.Export(src)
	if err != nil {
		return 0, err
	}

	return w.Write(data)
}
