package unit

import "strings"

// Unit identifies one of the eight supported time units. The numeric
// value is the unit's rank: 0 is the finest unit (Millisecond), 7 the
// coarsest (Year).
type Unit uint8

const (
	// Millisecond is the finest supported unit.
	Millisecond Unit = 0

	// Second is 1000 milliseconds.
	Second Unit = 1

	// Minute is 60 seconds.
	Minute Unit = 2

	// Hour is 60 minutes. Hour is also the defensive default for
	// unrecognized unit names.
	Hour Unit = 3

	// Day is 24 hours.
	Day Unit = 4

	// Week is 7 days.
	Week Unit = 5

	// Month is 4.345238 weeks (average month length).
	Month Unit = 6

	// Year is 12 months. Year is the coarsest supported unit.
	Year Unit = 7

	// numUnits is the size of the unit table.
	numUnits = 8
)

// DefaultPrecision is the number of decimal digits used for rounding
// when no precision is requested.
const DefaultPrecision = 2

// fullNames holds the full unit names, indexed by rank.
var fullNames = [numUnits]string{
	"millisecond",
	"second",
	"minute",
	"hour",
	"day",
	"week",
	"month",
	"year",
}

// abbrNames holds the abbreviated unit names, indexed by rank.
var abbrNames = [numUnits]string{
	"ms",
	"s",
	"min",
	"hr",
	"day",
	"wk",
	"mo",
	"yr",
}

// String returns the full unit name.
func (u Unit) String() string {
	if !u.Valid() {
		return "unknown"
	}
	return fullNames[u]
}

// Abbr returns the abbreviated unit name.
func (u Unit) Abbr() string {
	if !u.Valid() {
		return "unknown"
	}
	return abbrNames[u]
}

// Valid reports whether u is a member of the unit table.
func (u Unit) Valid() bool {
	return u < numUnits
}

// spellings maps every accepted spelling (abbreviated, full, and plural
// forms, lowercase) to its unit.
var spellings = map[string]Unit{}

func init() {
	for i := 0; i < numUnits; i++ {
		u := Unit(i)
		for _, name := range []string{fullNames[i], abbrNames[i]} {
			spellings[name] = u
			if !strings.HasSuffix(name, "s") {
				spellings[name+"s"] = u
			}
		}
	}
}

// Parse resolves a unit name. It accepts abbreviated, full, and
// pluralized spellings, case-insensitively. The second return value
// reports whether the name was recognized.
func Parse(s string) (Unit, bool) {
	u, ok := spellings[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// Normalize resolves a unit name like Parse, falling back to Hour for
// unrecognized names. Conversion entry points use Normalize so that bad
// unit names degrade to a sane default instead of failing.
func Normalize(s string) Unit {
	if u, ok := Parse(s); ok {
		return u
	}
	return Hour
}
