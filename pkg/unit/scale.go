package unit

import (
	"math"
	"strconv"
	"strings"
)

// scaleFactors links adjacent units: entry i is the number of rank-i
// units in one rank-i+1 unit. Year (rank 7) is the coarsest unit and has
// no entry. This table is the single source of truth for all conversion
// arithmetic.
var scaleFactors = [numUnits - 1]float64{
	1000,     // milliseconds per second
	60,       // seconds per minute
	60,       // minutes per hour
	24,       // hours per day
	7,        // days per week
	4.345238, // weeks per month (average)
	12,       // months per year
}

// NextFactor returns the scale factor from u to the next coarser unit.
// The second return value is false for Year, which has no coarser
// neighbor.
func NextFactor(u Unit) (float64, bool) {
	if !u.Valid() || u == Year {
		return 0, false
	}
	return scaleFactors[u], true
}

// Rescale expresses n, given in the from unit, in the to unit. The value
// is unrounded; callers apply Round as needed. Invalid units are treated
// as Hour.
func Rescale(n float64, from, to Unit) float64 {
	if !from.Valid() {
		from = Hour
	}
	if !to.Valid() {
		to = Hour
	}

	cur, dst := int(from), int(to)
	switch {
	case dst < cur:
		// Toward a finer unit: multiply through each adjacency step.
		for cur > dst {
			n *= scaleFactors[cur-1]
			cur--
		}
	case dst > cur:
		// Toward a coarser unit: divide through each adjacency step.
		for cur < dst {
			n /= scaleFactors[cur]
			cur++
		}
	}
	return n
}

// Round rounds n to the given number of decimal digits. Rounding shifts
// the decimal exponent of the value's shortest representation, rounds
// half away from zero, and shifts back, so results match the decimal the
// caller sees rather than the nearest binary float (1.005 rounds to
// 1.01, not 1.00). A precision of zero or less rounds to the nearest
// integer.
func Round(n float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(n)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}

	shifted, ok := shiftExponent(n, precision)
	if !ok {
		return math.Round(n*math.Pow10(precision)) / math.Pow10(precision)
	}
	rounded := math.Round(shifted)
	out, ok := shiftExponent(rounded, -precision)
	if !ok {
		return n
	}
	return out
}

// shiftExponent multiplies n by 10^by through the decimal string form,
// preserving the decimal digits exactly.
func shiftExponent(n float64, by int) (float64, bool) {
	s := strconv.FormatFloat(n, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return 0, false
	}
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return 0, false
	}
	out, err := strconv.ParseFloat(s[:i+1]+strconv.Itoa(exp+by), 64)
	if err != nil || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}
