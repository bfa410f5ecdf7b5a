package timespan

import (
	"time"

	"github.com/timespan-dev/timespan-go/pkg/unit"
)

// FromStd converts a time.Duration into a Duration held in
// milliseconds. Sub-millisecond components are preserved in the
// magnitude (500µs becomes 0.5 ms).
func FromStd(d time.Duration) Duration {
	return Duration{
		magnitude: float64(d) / float64(time.Millisecond),
		unit:      unit.Millisecond,
		precision: unit.DefaultPrecision,
	}
}

// Std returns the duration as a time.Duration. Magnitudes beyond the
// time.Duration range overflow as in any float-to-integer conversion.
func (d Duration) Std() time.Duration {
	ms := unit.Rescale(d.magnitude, d.unit, unit.Millisecond)
	return time.Duration(ms * float64(time.Millisecond))
}

// Cmp compares two durations on a common scale, ignoring display
// preferences. It returns -1 if d is shorter than other, 0 if they are
// equal, and 1 if d is longer.
func (d Duration) Cmp(other Duration) int {
	a := unit.Rescale(d.magnitude, d.unit, unit.Millisecond)
	b := unit.Rescale(other.magnitude, other.unit, unit.Millisecond)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
