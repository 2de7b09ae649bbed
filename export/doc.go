// Package export serializes smoothed series to tabular text or a compact
// columnar binary form, and parses either form back into a series.
//
// # Text forms
//
// CSV and TSV output is a header row followed by one timestamp/value row per
// sample:
//
//	timestamp,value
//	0,1.5
//	1000000,2.5
//
// Values use the shortest representation that round-trips exactly unless a
// precision is configured with WithPrecision.
//
// # Binary form
//
// The binary form stores timestamps and values as separate columnar
// payloads, each independently compressed (None, Zstd, S2, or LZ4).
// Timestamps can be stored raw or delta-of-delta encoded; regular sampling
// intervals collapse to about one byte per timestamp. Byte order is
// configurable and recorded in the header, so exports are portable across
// hosts.
//
// # Usage
//
//	exp, err := export.New(
//	    export.WithType(format.ExportBinary),
//	    export.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	data, err := exp.Export(smoothed)
//
//	// Later, or elsewhere:
//	restored, err := export.Import(data)
//
// Import auto-detects the form, so callers only need to know the
// configuration at export time.
package export
