package export

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/tsmooth/compress"
	"github.com/arloliu/tsmooth/endian"
	"github.com/arloliu/tsmooth/errs"
	"github.com/arloliu/tsmooth/format"
	"github.com/arloliu/tsmooth/internal/pool"
	"github.com/arloliu/tsmooth/series"
)

// Binary layout:
//
//	magic    [4]byte "TSM1"
//	version  uint8
//	endian   uint8 (0 = little, 1 = big)
//	tsEnc    uint8 (format.EncodingType)
//	comp     uint8 (format.CompressionType)
//	count    uint32  ┐
//	nameLen  uint16  │ all multi-byte fields in the
//	name     []byte  │ declared byte order
//	tsLen    uint32  │
//	tsData   []byte  │ timestamp payload, compressed per comp
//	valLen   uint32  │
//	valData  []byte  ┘ value payload, compressed per comp
//
// The timestamp payload is either fixed-width (TypeRaw) or delta-of-delta
// zigzag varints (TypeDelta, byte-order independent). The value payload is
// always fixed-width float64 bits.

var binaryMagic = [4]byte{'T', 'S', 'M', '1'}

const (
	binaryVersion    = 1
	binaryHeaderSize = 8 // magic + version + endian + tsEnc + comp

	endianLittle = 0
	endianBig    = 1
)

func (e *Exporter) exportBinary(src *series.Series) ([]byte, error) {
	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}

	tsBuf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(tsBuf)
	valBuf := pool.GetExportBuffer()
	defer pool.PutExportBuffer(valBuf)

	if e.tsEncoding == format.TypeDelta {
		encodeDeltaTimestamps(tsBuf, src)
	} else {
		tsBuf.Grow(src.Len() * 8)
		for ts := range src.Timestamps() {
			tsBuf.B = e.engine.AppendUint64(tsBuf.B, uint64(ts)) //nolint:gosec
		}
	}

	valBuf.Grow(src.Len() * 8)
	for val := range src.Values() {
		valBuf.B = e.engine.AppendUint64(valBuf.B, math.Float64bits(val))
	}

	tsPayload, err := codec.Compress(tsBuf.Bytes())
	if err != nil {
		return nil, err
	}
	valPayload, err := codec.Compress(valBuf.Bytes())
	if err != nil {
		return nil, err
	}

	name := src.Name()
	if len(name) > math.MaxUint16 {
		name = name[:math.MaxUint16]
	}

	out := make([]byte, 0, binaryHeaderSize+4+2+len(name)+4+len(tsPayload)+4+len(valPayload))
	out = append(out, binaryMagic[:]...)
	out = append(out, binaryVersion)
	if e.engine == endian.GetBigEndianEngine() {
		out = append(out, endianBig)
	} else {
		out = append(out, endianLittle)
	}
	out = append(out, byte(e.tsEncoding), byte(e.compression))
	out = e.engine.AppendUint32(out, uint32(src.Len())) //nolint:gosec
	out = e.engine.AppendUint16(out, uint16(len(name))) //nolint:gosec
	out = append(out, name...)
	out = e.engine.AppendUint32(out, uint32(len(tsPayload))) //nolint:gosec
	out = append(out, tsPayload...)
	out = e.engine.AppendUint32(out, uint32(len(valPayload))) //nolint:gosec
	out = append(out, valPayload...)

	return out, nil
}

// encodeDeltaTimestamps writes delta-of-delta zigzag varint timestamps.
//
// The first timestamp is a plain varint, the second a zigzag varint delta,
// and every later one a zigzag varint delta-of-delta. Regular intervals
// collapse to one byte per timestamp.
func encodeDeltaTimestamps(buf *pool.ByteBuffer, src *series.Series) {
	var temp [binary.MaxVarintLen64]byte
	var prevTS, prevDelta int64

	for i, sample := range src.All() {
		buf.Grow(binary.MaxVarintLen64)

		if i == 0 {
			n := binary.PutUvarint(temp[:], uint64(sample.Ts)) //nolint:gosec
			buf.MustWrite(temp[:n])
			prevTS = sample.Ts

			continue
		}

		delta := sample.Ts - prevTS
		valToEncode := delta
		if i > 1 {
			valToEncode = delta - prevDelta
		}
		prevDelta = delta
		prevTS = sample.Ts

		// Zigzag encode (efficient signed-to-unsigned mapping)
		zigzag := (valToEncode << 1) ^ (valToEncode >> 63)
		n := binary.PutUvarint(temp[:], uint64(zigzag)) //nolint:gosec
		buf.MustWrite(temp[:n])
	}
}

// decodeDeltaTimestamps reverses encodeDeltaTimestamps.
func decodeDeltaTimestamps(data []byte, count int) ([]int64, error) {
	// Each varint occupies at least one byte, so a count exceeding the payload
	// length is corrupt. Checked before allocating by the untrusted count.
	if count > len(data) {
		return nil, fmt.Errorf("%w: timestamp count %d exceeds payload size %d", errs.ErrInvalidPayload, count, len(data))
	}

	out := make([]int64, 0, count)
	offset := 0
	var prevTS, prevDelta int64

	for i := range count {
		raw, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: timestamp %d truncated", errs.ErrInvalidPayload, i)
		}
		offset += n

		switch i {
		case 0:
			prevTS = int64(raw) //nolint:gosec
		default:
			zigzag := int64(raw)                   //nolint:gosec
			decoded := (zigzag >> 1) ^ -(zigzag & 1) // zigzag decode
			if i == 1 {
				prevDelta = decoded
			} else {
				prevDelta += decoded
			}
			prevTS += prevDelta
		}
		out = append(out, prevTS)
	}

	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after timestamps", errs.ErrInvalidPayload, len(data)-offset)
	}

	return out, nil
}

func importBinary(data []byte) (*series.Series, error) {
	if len(data) < binaryHeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if [4]byte(data[:4]) != binaryMagic {
		return nil, errs.ErrInvalidMagic
	}
	if data[4] != binaryVersion {
		return nil, fmt.Errorf("%w: version %d", errs.ErrInvalidVersion, data[4])
	}

	var engine endian.EndianEngine
	switch data[5] {
	case endianLittle:
		engine = endian.GetLittleEndianEngine()
	case endianBig:
		engine = endian.GetBigEndianEngine()
	default:
		return nil, fmt.Errorf("%w: endian flag %d", errs.ErrInvalidPayload, data[5])
	}

	tsEncoding := format.EncodingType(data[6])
	if tsEncoding != format.TypeRaw && tsEncoding != format.TypeDelta {
		return nil, fmt.Errorf("%w: timestamp encoding %d", errs.ErrInvalidPayload, data[6])
	}

	codec, err := compress.GetCodec(format.CompressionType(data[7]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}

	rest := data[binaryHeaderSize:]
	if len(rest) < 6 {
		return nil, errs.ErrInvalidHeaderSize
	}

	count := int(engine.Uint32(rest[:4]))
	nameLen := int(engine.Uint16(rest[4:6]))
	rest = rest[6:]

	if len(rest) < nameLen {
		return nil, fmt.Errorf("%w: name truncated", errs.ErrInvalidPayload)
	}
	name := string(rest[:nameLen])
	rest = rest[nameLen:]

	tsData, rest, err := readPayload(rest, engine)
	if err != nil {
		return nil, err
	}
	valData, rest, err := readPayload(rest, engine)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, len(rest))
	}

	tsRaw, err := codec.Decompress(tsData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}
	valRaw, err := codec.Decompress(valData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}

	var timestamps []int64
	if tsEncoding == format.TypeDelta {
		timestamps, err = decodeDeltaTimestamps(tsRaw, count)
		if err != nil {
			return nil, err
		}
	} else {
		if len(tsRaw) != count*8 {
			return nil, fmt.Errorf("%w: timestamp payload size %d, want %d", errs.ErrInvalidPayload, len(tsRaw), count*8)
		}
		timestamps = make([]int64, count)
		for i := range count {
			timestamps[i] = int64(engine.Uint64(tsRaw[i*8:])) //nolint:gosec
		}
	}

	if len(valRaw) != count*8 {
		return nil, fmt.Errorf("%w: value payload size %d, want %d", errs.ErrInvalidPayload, len(valRaw), count*8)
	}
	values := make([]float64, count)
	for i := range count {
		values[i] = math.Float64frombits(engine.Uint64(valRaw[i*8:]))
	}

	out, err := series.FromValues(name, timestamps, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidPayload, err)
	}

	return out, nil
}

// readPayload reads a uint32 length prefix and the payload it describes.
func readPayload(data []byte, engine endian.EndianEngine) (payload, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%w: payload length truncated", errs.ErrInvalidPayload)
	}
	n := int(engine.Uint32(data[:4]))
	data = data[4:]
	if len(data) < n {
		return nil, nil, fmt.Errorf("%w: payload truncated, want %d bytes, have %d", errs.ErrInvalidPayload, n, len(data))
	}

	return data[:n], data[n:], nil
}
