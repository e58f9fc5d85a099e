package vmath

import (
	"math"
	"math/bits"
)

// Fixed is a Q16.16 fixed point number
type Fixed int32

// Q16.16 Fixed Point constants
const (
	FracBits = 16
	FracUnit = Fixed(1 << FracBits)
	FracMask = FracUnit - 1
	Half     = Fixed(1 << (FracBits - 1))
)

// --- Arithmetic ---

func FromInt(i int32) Fixed { return Fixed(i << FracBits) }
func ToInt(f Fixed) int32   { return int32(f >> FracBits) }

// FromRatio returns num/den in Q16.16, saturating on overflow
// A zero denominator saturates by the sign of num
func FromRatio(num, den int32) Fixed {
	if den == 0 {
		if num < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return saturate(MulDiv(int64(num), int64(FracUnit), int64(den)))
}

// Mul multiplies two Q16.16 values with a 64-bit intermediate
// Result saturates at the int32 range instead of wrapping
func Mul(a, b Fixed) Fixed {
	return saturate((int64(a) * int64(b)) >> FracBits)
}

// Div divides two Q16.16 values
// Quotients that would not fit return MaxInt32/MinInt32 by sign, division by zero included
func Div(a, b Fixed) Fixed {
	if (Abs(a) >> 14) >= Abs(b) {
		if (a ^ b) < 0 {
			return math.MinInt32
		}
		return math.MaxInt32
	}
	return Fixed((int64(a) << FracBits) / int64(b))
}

// MulWide multiplies a 64-bit map coordinate by a Q16.16 factor
// Uses a 128-bit intermediate so large coordinates do not overflow before the shift
// Results beyond int64 saturate at MaxInt64/MinInt64 by sign
func MulWide(v int64, f Fixed) int64 {
	if v == 0 || f == 0 {
		return 0
	}
	negative := (v < 0) != (f < 0)
	uv := uint64(v)
	if v < 0 {
		uv = uint64(-v)
	}
	uf := uint64(f)
	if f < 0 {
		uf = uint64(-int64(f))
	}

	hi, lo := bits.Mul64(uv, uf)
	// Q48.16 * Q16.16 product carries 16 extra fraction bits
	shifted := (hi << (64 - FracBits)) | (lo >> FracBits)
	if hi>>FracBits != 0 || shifted > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	result := int64(shifted)
	if negative {
		return -result
	}
	return result
}

// DivWide divides a 64-bit map coordinate by a Q16.16 factor
// Division by zero returns 0
func DivWide(v int64, f Fixed) int64 {
	if f == 0 {
		return 0
	}
	return MulDiv(v, int64(FracUnit), int64(f))
}

// MulDiv computes (a * b) / c with 128-bit intermediate
// Truncates toward zero, saturates when the quotient exceeds int64
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	neg := ((a < 0) != (b < 0)) != (c < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if c < 0 {
		c = -c
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, uint64(c))
	if q > math.MaxInt64 {
		if neg {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	r := int64(q)
	if neg {
		return -r
	}
	return r
}

// Abs returns absolute value
func Abs(x Fixed) Fixed {
	if x < 0 {
		return -x
	}
	return x
}

// Abs64 returns absolute value of a map coordinate
func Abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits f to [lo, hi]
func Clamp(f, lo, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func saturate(v int64) Fixed {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return Fixed(v)
}
