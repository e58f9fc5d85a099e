package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-automap/vmath"
)

// maxFractionDigits bounds decimal input so the scaled numerator stays in int64
const maxFractionDigits = 9

// Ratio is a Q16.16 value read from TOML
// Accepts integers (8), decimals (0.125) and quoted fractions ("1/8")
type Ratio vmath.Fixed

// Fixed returns the ratio as a Q16.16 value
func (r Ratio) Fixed() vmath.Fixed { return vmath.Fixed(r) }

func (r *Ratio) UnmarshalText(text []byte) error {
	v, err := ParseRatio(string(text))
	if err != nil {
		return err
	}
	*r = Ratio(v)
	return nil
}

// MarshalText writes the ratio as a fraction of 65536, which reads back exactly
func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d/%d", int32(r), int32(vmath.FracUnit))), nil
}

// ParseRatio converts "n", "n.frac" or "n/d" to Q16.16, truncating toward zero
func ParseRatio(s string) (vmath.Fixed, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidRatio)
	}

	var num, den int64
	if n, d, ok := strings.Cut(s, "/"); ok {
		var err error
		if num, err = strconv.ParseInt(strings.TrimSpace(n), 10, 64); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
		}
		if den, err = strconv.ParseInt(strings.TrimSpace(d), 10, 64); err != nil || den == 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
		}
	} else {
		whole, frac, _ := strings.Cut(s, ".")
		if len(frac) > maxFractionDigits {
			frac = frac[:maxFractionDigits]
		}
		negative := strings.HasPrefix(whole, "-")
		digits := strings.TrimPrefix(strings.TrimPrefix(whole, "-"), "+") + frac
		if digits == "" || strings.ContainsAny(digits, "+-") {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
		}
		var err error
		if num, err = strconv.ParseInt(digits, 10, 64); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
		}
		if negative {
			num = -num
		}
		den = 1
		for range len(frac) {
			den *= 10
		}
	}

	v := vmath.MulDiv(num, int64(vmath.FracUnit), den)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidRatio, s)
	}
	return vmath.Fixed(v), nil
}
