package timespan

import (
	"strconv"
	"strings"

	"github.com/timespan-dev/timespan-go/pkg/unit"
)

// Duration is a span of time expressed in a single unit, plus the
// display preferences used when formatting it. The zero value is
// "0 ms" with whole-number rounding; most callers construct values
// with New, Convert, Concise, or Parse, which apply the default
// precision.
type Duration struct {
	magnitude float64
	unit      unit.Unit
	precision int
	abbr      bool
	// full marks explicitly requested full unit names. Tracked
	// separately so the zero value formats abbreviated by default.
	full bool
}

// Options configures a Duration at construction time.
type Options struct {
	// Precision is the number of decimal digits used when rounding
	// conversions. Zero or negative means the default (2).
	Precision int

	// Abbr selects abbreviated unit names when formatting. Nil means
	// the default (true).
	Abbr *bool
}

// New creates a Duration of the given magnitude and unit. Unrecognized
// unit names fall back to "hour". A nil opts uses the defaults:
// precision 2, abbreviated names.
func New(magnitude float64, unitName string, opts *Options) Duration {
	d := Duration{
		magnitude: magnitude,
		unit:      unit.Normalize(unitName),
		precision: unit.DefaultPrecision,
	}
	if opts != nil {
		if opts.Precision > 0 {
			d.precision = opts.Precision
		}
		if opts.Abbr != nil {
			d.full = !*opts.Abbr
		}
	}
	return d
}

// Default returns the default Duration: one hour.
func Default() Duration {
	return New(1, "hr", nil)
}

// Convert expresses n, given in the from unit, in the to unit, rounded
// to the given precision. Unrecognized unit names fall back to "hour".
// Precision may be omitted (default 2); an explicit 0 rounds to whole
// numbers, negative values use the default.
func Convert(n float64, from, to string, precision ...int) Duration {
	p := normPrecision(precision)
	target := unit.Normalize(to)
	return Duration{
		magnitude: unit.Round(unit.Rescale(n, unit.Normalize(from), target), p),
		unit:      target,
		precision: p,
	}
}

// Concise finds the most natural display unit for n: the coarsest unit
// where the value is at least 1 but below the factor to the next coarser
// unit. Intermediate rescaling steps round at the default precision
// regardless of the precision argument, which only carries into the
// returned Duration's display preference.
func Concise(n float64, unitName string, precision ...int) Duration {
	v, u := unit.Concise(n, unit.Normalize(unitName))
	return Duration{
		magnitude: v,
		unit:      u,
		precision: normPrecision(precision),
	}
}

// To returns the duration expressed in the given unit, rounded at the
// receiver's precision. Unrecognized unit names fall back to "hour".
func (d Duration) To(unitName string) Duration {
	target := unit.Normalize(unitName)
	return Duration{
		magnitude: unit.Round(unit.Rescale(d.magnitude, d.unit, target), d.precision),
		unit:      target,
		precision: d.precision,
		full:      d.full,
	}
}

// Convert is an alias for To.
func (d Duration) Convert(unitName string) Duration {
	return d.To(unitName)
}

// Concise returns the duration expressed in its most natural display
// unit. See the package-level Concise for the search semantics.
func (d Duration) Concise() Duration {
	v, u := unit.Concise(d.magnitude, d.unit)
	return Duration{
		magnitude: v,
		unit:      u,
		precision: d.precision,
		full:      d.full,
	}
}

// Magnitude returns the numeric magnitude.
func (d Duration) Magnitude() float64 {
	return d.magnitude
}

// Unit returns the unit.
func (d Duration) Unit() unit.Unit {
	return d.unit
}

// Precision returns the rounding precision in decimal digits.
func (d Duration) Precision() int {
	return d.precision
}

// Abbreviated reports whether formatting uses abbreviated unit names.
func (d Duration) Abbreviated() bool {
	return !d.full
}

// WithMagnitude returns a copy with the given magnitude.
func (d Duration) WithMagnitude(n float64) Duration {
	d.magnitude = n
	return d
}

// WithUnit returns a copy with the given unit. Unrecognized unit names
// are ignored and the copy keeps the current unit.
func (d Duration) WithUnit(unitName string) Duration {
	if u, ok := unit.Parse(unitName); ok {
		d.unit = u
	}
	return d
}

// WithPrecision returns a copy with the given rounding precision.
// Negative values are ignored.
func (d Duration) WithPrecision(precision int) Duration {
	if precision >= 0 {
		d.precision = precision
	}
	return d
}

// WithAbbr returns a copy that formats with abbreviated unit names when
// abbr is true, full names otherwise.
func (d Duration) WithAbbr(abbr bool) Duration {
	d.full = !abbr
	return d
}

// String renders the duration with a single space between magnitude and
// unit name, as in "1.5 hrs".
func (d Duration) String() string {
	return d.Format(" ")
}

// Format renders the duration as "<magnitude><sep><unit name>". The
// name is abbreviated or full per the Duration's preference and always
// pluralized unless it already ends in "s", even for a magnitude of
// one: "1 hrs".
func (d Duration) Format(sep string) string {
	name := d.unit.Abbr()
	if d.full {
		name = d.unit.String()
	}
	if !strings.HasSuffix(name, "s") {
		name += "s"
	}
	return strconv.FormatFloat(d.magnitude, 'f', -1, 64) + sep + name
}

// normPrecision resolves an optional precision argument: omitted or
// negative means the default, an explicit 0 is honored as whole-number
// rounding.
func normPrecision(precision []int) int {
	if len(precision) == 0 || precision[0] < 0 {
		return unit.DefaultPrecision
	}
	return precision[0]
}
