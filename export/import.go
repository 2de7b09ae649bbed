package export

import (
	"bytes"
	"io"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// Import parses previously exported data back into a series.
//
// The form is auto-detected: data starting with the binary magic number is
// decoded as the binary form, anything else is parsed as headered text
// (CSV or TSV). Round-trips with Export — exactly for the binary form,
// modulo the configured precision for the text forms.
//
// Returns errs.ErrEmptySeries for empty input and an error wrapping
// errs.ErrInvalidPayload for corrupted data.
func Import(data []byte) (*series.Series, error) {
	if len(data) == 0 {
		return nil, errs.ErrEmptySeries
	}

	if len(data) >= len(binaryMagic) && bytes.Equal(data[:len(binaryMagic)], binaryMagic[:]) {
		return importBinary(data)
	}

	return importText(data)
}

// ImportFrom reads all of r and imports the result.
func ImportFrom(r io.Reader) (*series.Series, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Import(data)
}
