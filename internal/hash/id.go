// Package hash provides xxHash64-based identifiers and fingerprints.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Digest is a streaming xxHash64 fingerprint builder.
//
// It is used to derive cache keys from series contents without materializing
// an intermediate byte slice. A zero Digest is not usable; obtain one via
// NewDigest.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest creates a new streaming fingerprint builder.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString feeds a string into the fingerprint.
func (fp *Digest) WriteString(s string) {
	_, _ = fp.d.WriteString(s)
}

// WriteUint64 feeds a fixed-width unsigned integer into the fingerprint.
func (fp *Digest) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(fp.buf[:], v)
	_, _ = fp.d.Write(fp.buf[:])
}

// WriteInt64 feeds a fixed-width signed integer into the fingerprint.
func (fp *Digest) WriteInt64(v int64) {
	fp.WriteUint64(uint64(v)) //nolint:gosec
}

// Sum64 returns the fingerprint accumulated so far.
func (fp *Digest) Sum64() uint64 {
	return fp.d.Sum64()
}
