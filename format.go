package geohash

import (
	"math"
	"strconv"
	"strings"
)

// Enough decimals to spell out any float64 exactly; the smallest subnormal is 2^-1074.
const maxDigits = 1074

// digits returns the number of decimals an error margin justifies: the rounded
// negative decimal exponent of the margin, less one, but never fewer than 1.
// Rounding is half-to-even. Margins too small to justify more than an exact
// rendering, including those that underflowed to 0, get maxDigits.
func digits(err float64) int {
	if err <= 0 {
		return maxDigits
	}

	d := int(math.RoundToEven(-math.Log10(err))) - 1
	switch {
	case d < 1:
		return 1
	case d > maxDigits:
		return maxDigits
	}

	return d
}

// formatCoord renders v rounded to the decimals err justifies, with trailing zeros
// after the decimal point removed. The decimal point itself is kept. FormatFloat
// rounds the exact binary value, ties to even.
func formatCoord(v, err float64) string {
	s := strconv.FormatFloat(v, 'f', digits(err), 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
	}

	// Drops the sign of negative zero, e.g. -0.0027 at 2 decimals.
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}

	return s
}
