package timespan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/timespan-dev/timespan-go/pkg/unit"
)

// ErrInvalidFormat indicates a string that Parse could not understand.
var ErrInvalidFormat = errors.New("invalid duration format")

// Parse parses the string form produced by Format: a number followed by
// a unit name, with or without whitespace between them. It accepts the
// same unit spellings as the rest of the package ("90 min", "1.5hr",
// "24 hrs", "2 weeks").
func Parse(s string) (Duration, error) {
	trimmed := strings.TrimSpace(s)

	i := 0
	for i < len(trimmed) {
		c := trimmed[i]
		if c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}

	numPart := trimmed[:i]
	unitPart := strings.TrimSpace(trimmed[i:])
	if numPart == "" || unitPart == "" {
		return Duration{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	n, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q: bad magnitude %q", ErrInvalidFormat, s, numPart)
	}

	u, ok := unit.Parse(unitPart)
	if !ok {
		return Duration{}, fmt.Errorf("%w: %q: unknown unit %q", ErrInvalidFormat, s, unitPart)
	}

	return Duration{
		magnitude: n,
		unit:      u,
		precision: unit.DefaultPrecision,
	}, nil
}
