// Package endian provides byte order utilities for binary encoding and decoding.
//
// It combines the standard library's binary.ByteOrder and binary.AppendByteOrder
// interfaces into a single EndianEngine interface so encoders can both read
// fixed-width values and append them without a scratch buffer.
//
// Most callers should use GetLittleEndianEngine, the default for tsmooth's
// binary export format:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, value)
//
// All functions and the returned engines are immutable, stateless, and safe
// for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness determines the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) comes first,
	// on a big-endian host the MSB (0x01) does.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
