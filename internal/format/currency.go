// Package format renders money amounts for record fields and reports.
package format

import (
	"math"
	"math/big"
	"strings"
)

// Currency renders v as "$X.XXM" at or above one million, "$X.XXK" at or above one
// thousand and "$X.XX" otherwise. Negative amounts always take the last form.
func Currency(v float64) string {
	switch {
	case v >= 1e6:
		return "$" + Fixed2(v/1e6) + "M"
	case v >= 1e3:
		return "$" + Fixed2(v/1e3) + "K"
	default:
		return "$" + Fixed2(v)
	}
}

// Fixed2 formats v with two decimals, rounding exact halves away from zero.
// The rounding is done on the exact binary value, so 1.125 becomes "1.13".
func Fixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}

// Millions converts dollars to millions rounded to two decimals.
func Millions(v float64) float64 {
	return math.Round(v/1e6*100) / 100
}
