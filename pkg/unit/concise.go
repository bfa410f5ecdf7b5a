package unit

// Concise finds the most natural unit to display n in: the unit for
// which the rescaled value falls in the half-open range [1, nextFactor).
// 90 minutes becomes 1.5 hours; 0.25 hours becomes 15 minutes.
//
// Values below 1 millisecond stay in milliseconds, and values of a year
// or more stay in years no matter how large; there is nothing finer or
// coarser to walk to. Each intermediate step rounds at DefaultPrecision,
// so the returned value carries at most two decimal digits beyond the
// starting value's.
//
// The walk moves monotonically toward rank 0 or rank 7 and therefore
// takes at most eight steps. Invalid units are treated as Hour.
func Concise(n float64, u Unit) (float64, Unit) {
	if !u.Valid() {
		u = Hour
	}

	for {
		next, hasNext := NextFactor(u)
		switch {
		case n < 1:
			if u == Millisecond {
				return n, u
			}
			n = Round(Rescale(n, u, u-1), DefaultPrecision)
			u--
		case hasNext && n >= next:
			n = Round(Rescale(n, u, u+1), DefaultPrecision)
			u++
		default:
			return n, u
		}
	}
}
