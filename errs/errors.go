// Package errs defines the sentinel errors shared across tsmooth packages.
//
// Errors form a two-level hierarchy: base kinds describe the error category
// (ordering violation, invalid configuration, empty input, malformed payload),
// and specific sentinels wrap a base kind with more context. Callers can match
// either level with errors.Is:
//
//	err := sm.Append(ts, val)
//	if errors.Is(err, errs.ErrOutOfOrder) {
//	    // ordering violation, regardless of the specific sentinel
//	}
package errs

import (
	"errors"
	"fmt"
)

// Base error kinds. Every sentinel below wraps exactly one of these.
var (
	// ErrOutOfOrder indicates input that violates strict time ordering.
	ErrOutOfOrder = errors.New("out of order input")

	// ErrInvalidConfig indicates kernel or exporter parameters outside their valid range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyInput indicates an operation attempted on zero-length input.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidPayload indicates malformed or corrupted encoded data.
	ErrInvalidPayload = errors.New("invalid payload")
)

// Series errors.
var (
	// ErrOutOfOrderTimestamp occurs when an appended sample's timestamp is not
	// strictly greater than the last timestamp in the series.
	ErrOutOfOrderTimestamp = fmt.Errorf("%w: timestamp not strictly increasing", ErrOutOfOrder)

	// ErrEmptySeries occurs when an operation requires a non-empty series.
	ErrEmptySeries = fmt.Errorf("%w: series has no samples", ErrEmptyInput)
)

// Kernel configuration errors.
var (
	// ErrInvalidWindowSize occurs when a window size is non-positive or larger
	// than the input series.
	ErrInvalidWindowSize = fmt.Errorf("%w: window size out of range", ErrInvalidConfig)

	// ErrInvalidAlpha occurs when a smoothing coefficient is outside (0, 1].
	ErrInvalidAlpha = fmt.Errorf("%w: alpha out of range (0, 1]", ErrInvalidConfig)

	// ErrInvalidBeta occurs when a trend coefficient is outside (0, 1].
	ErrInvalidBeta = fmt.Errorf("%w: beta out of range (0, 1]", ErrInvalidConfig)

	// ErrInvalidKernelType occurs when a kernel type is not recognized.
	ErrInvalidKernelType = fmt.Errorf("%w: unknown kernel type", ErrInvalidConfig)

	// ErrInvalidParamCount occurs when a kernel factory receives the wrong
	// number of parameters for the requested kernel type.
	ErrInvalidParamCount = fmt.Errorf("%w: wrong number of kernel parameters", ErrInvalidConfig)
)

// Evaluation errors.
var (
	// ErrLengthMismatch occurs when two series of different lengths are compared.
	ErrLengthMismatch = fmt.Errorf("%w: series lengths differ", ErrInvalidConfig)

	// ErrTimestampMismatch occurs when two series being compared are not
	// aligned on the same timestamps.
	ErrTimestampMismatch = fmt.Errorf("%w: series timestamps are not aligned", ErrInvalidConfig)
)

// Export and import errors.
var (
	// ErrInvalidExportType occurs when an export type is not recognized.
	ErrInvalidExportType = fmt.Errorf("%w: unknown export type", ErrInvalidConfig)

	// ErrInvalidCompressionType occurs when a compression type is not recognized.
	ErrInvalidCompressionType = fmt.Errorf("%w: unknown compression type", ErrInvalidConfig)

	// ErrInvalidTimestampEncoding occurs when a timestamp encoding is not recognized.
	ErrInvalidTimestampEncoding = fmt.Errorf("%w: unknown timestamp encoding", ErrInvalidConfig)

	// ErrInvalidMagic occurs when binary data does not start with the tsmooth magic number.
	ErrInvalidMagic = fmt.Errorf("%w: bad magic number", ErrInvalidPayload)

	// ErrInvalidVersion occurs when binary data carries an unsupported format version.
	ErrInvalidVersion = fmt.Errorf("%w: unsupported format version", ErrInvalidPayload)

	// ErrInvalidHeaderSize occurs when binary data is too short to contain a header.
	ErrInvalidHeaderSize = fmt.Errorf("%w: header truncated", ErrInvalidPayload)

	// ErrInvalidRecord occurs when a text record cannot be parsed as a sample.
	ErrInvalidRecord = fmt.Errorf("%w: malformed record", ErrInvalidPayload)
)
