package vmath

import (
	"math"
)

// Angle is a binary angle, the full uint32 range maps to one rotation
// Wraparound on overflow is the intended modular behavior
type Angle uint32

// Binary angle constants
const (
	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xc0000000
)

// Fine angle LUT resolution
const (
	FineAngles    = 8192
	FineMask      = FineAngles - 1
	AngleToFine   = 19 // 32 - log2(FineAngles)
	fineQuarter   = FineAngles / 4
	fineTableSize = FineAngles + fineQuarter
)

func init() {
	// Sine over 5/4 of a rotation so cosine can index the same table with a quarter offset
	for i := 0; i < fineTableSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / FineAngles
		fineSine[i] = Fixed(math.Round(math.Sin(rad) * float64(FracUnit)))
	}
}

// fineSine is built once at init; every lookup afterwards is integer only
var fineSine [fineTableSize]Fixed

// Fine returns the LUT index for a binary angle
func (a Angle) Fine() int {
	return int(a>>AngleToFine) & FineMask
}

// Sin returns sine of a binary angle in Q16.16
func Sin(a Angle) Fixed {
	return fineSine[a.Fine()]
}

// Cos returns cosine of a binary angle in Q16.16
func Cos(a Angle) Fixed {
	return fineSine[a.Fine()+fineQuarter]
}

// AngleFromDegrees converts whole degrees to a binary angle
func AngleFromDegrees(deg int32) Angle {
	d := int64(deg) % 360
	if d < 0 {
		d += 360
	}
	return Angle((d << 32) / 360)
}

// Degrees converts a binary angle to the nearest whole degree in [0, 360)
func (a Angle) Degrees() int32 {
	return int32(((uint64(a)*360 + 1<<31) >> 32) % 360)
}
