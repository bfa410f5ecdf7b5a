package timespan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timespan-dev/timespan-go/pkg/timespan"
	"github.com/timespan-dev/timespan-go/pkg/unit"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in            string
		wantMagnitude float64
		wantUnit      unit.Unit
	}{
		{"90 min", 90, unit.Minute},
		{"1.5hr", 1.5, unit.Hour},
		{"24 hrs", 24, unit.Hour},
		{"2 weeks", 2, unit.Week},
		{"-30 s", -30, unit.Second},
		{"0.5 ms", 0.5, unit.Millisecond},
		{"  400 years  ", 400, unit.Year},
		{"1.5 HOURS", 1.5, unit.Hour},
	}

	for _, tt := range tests {
		d, err := timespan.Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.wantMagnitude, d.Magnitude(), "Parse(%q) magnitude", tt.in)
		assert.Equal(t, tt.wantUnit, d.Unit(), "Parse(%q) unit", tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"90",
		"min",
		"ninety min",
		"90 fortnights",
		"1.2.3 hr",
	} {
		_, err := timespan.Parse(in)
		require.Error(t, err, "Parse(%q)", in)
		assert.ErrorIs(t, err, timespan.ErrInvalidFormat, "Parse(%q)", in)
	}
}

// Format output always parses back to the same magnitude and unit.
func TestParseFormatRoundTrip(t *testing.T) {
	unitNames := []string{"ms", "s", "min", "hr", "day", "wk", "mo", "yr"}

	for _, name := range unitNames {
		for _, abbr := range []bool{true, false} {
			d := timespan.New(1.5, name, nil).WithAbbr(abbr)
			got, err := timespan.Parse(d.String())
			require.NoError(t, err, "Parse(%q)", d.String())
			assert.Equal(t, d.Magnitude(), got.Magnitude())
			assert.Equal(t, d.Unit(), got.Unit())
		}
	}
}
