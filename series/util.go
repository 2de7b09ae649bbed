package series

import "math"

// floatBits returns the IEEE 754 bit pattern of v, normalizing negative zero
// so that 0.0 and -0.0 fingerprint identically.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}
