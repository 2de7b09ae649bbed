package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/series"
)

// textHeader is the first row of every text export.
const textHeader = "timestamp,value"

// exportText renders src as separator-delimited rows with a header row.
func (e *Exporter) exportText(src *series.Series, sep byte) []byte {
	var sb strings.Builder
	// header + ~24 bytes per row is a reasonable starting estimate
	sb.Grow(len(textHeader) + 1 + src.Len()*24)

	if sep == ',' {
		sb.WriteString(textHeader)
	} else {
		sb.WriteString("timestamp")
		sb.WriteByte(sep)
		sb.WriteString("value")
	}
	sb.WriteByte('\n')

	for _, sample := range src.All() {
		sb.WriteString(strconv.FormatInt(sample.Ts, 10))
		sb.WriteByte(sep)
		sb.WriteString(strconv.FormatFloat(sample.Val, 'g', e.precision, 64))
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

// importText parses separator-delimited rows back into a series. The
// separator is detected from the header row; a header row is required.
func importText(data []byte) (*series.Series, error) {
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, errs.ErrEmptySeries
	}

	lines := strings.Split(text, "\n")

	sep, err := detectSeparator(lines[0])
	if err != nil {
		return nil, err
	}
	rows := lines[1:]
	if len(rows) == 0 {
		return nil, errs.ErrEmptySeries
	}

	out := series.New("", len(rows))
	for i, line := range rows {
		ts, val, err := parseRecord(line, sep)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := out.Append(ts, val); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func detectSeparator(header string) (string, error) {
	switch header {
	case "timestamp,value":
		return ",", nil
	case "timestamp\tvalue":
		return "\t", nil
	default:
		return "", fmt.Errorf("%w: unrecognized header %q", errs.ErrInvalidRecord, header)
	}
}

func parseRecord(line, sep string) (int64, float64, error) {
	tsField, valField, found := strings.Cut(line, sep)
	if !found {
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrInvalidRecord, line)
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(tsField), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad timestamp %q", errs.ErrInvalidRecord, tsField)
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(valField), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad value %q", errs.ErrInvalidRecord, valField)
	}

	return ts, val, nil
}
