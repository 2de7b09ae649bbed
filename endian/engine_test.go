package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	require.Equal(t, binary.ByteOrder(binary.LittleEndian), binary.ByteOrder(le))
	require.Equal(t, binary.ByteOrder(binary.BigEndian), binary.ByteOrder(be))

	buf := le.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), le.Uint32(buf))

	buf = be.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), be.Uint32(buf))
}

func TestNativeEndianness(t *testing.T) {
	// Exactly one of the probes must hold, and CheckEndianness must agree.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())

	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}
