package timespan_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/timespan-dev/timespan-go/pkg/timespan"
	"github.com/timespan-dev/timespan-go/pkg/unit"
)

func TestFromStd(t *testing.T) {
	d := timespan.FromStd(90 * time.Minute)
	assert.Equal(t, 5400000.0, d.Magnitude())
	assert.Equal(t, unit.Millisecond, d.Unit())

	concise := d.Concise()
	assert.Equal(t, 1.5, concise.Magnitude())
	assert.Equal(t, unit.Hour, concise.Unit())
}

func TestFromStdSubMillisecond(t *testing.T) {
	d := timespan.FromStd(500 * time.Microsecond)
	assert.Equal(t, 0.5, d.Magnitude())
	assert.Equal(t, unit.Millisecond, d.Unit())
}

func TestStd(t *testing.T) {
	assert.Equal(t, 90*time.Minute, timespan.New(1.5, "hr", nil).Std())
	assert.Equal(t, time.Second, timespan.New(1000, "ms", nil).Std())
	assert.Equal(t, -time.Minute, timespan.New(-60, "s", nil).Std())
}

func TestStdRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{
		time.Millisecond,
		time.Second,
		90 * time.Minute,
		24 * time.Hour,
	} {
		assert.Equal(t, d, timespan.FromStd(d).Std())
	}
}

func TestCmp(t *testing.T) {
	hour := timespan.New(1, "hr", nil)
	sixty := timespan.New(60, "min", nil)
	ninety := timespan.New(90, "min", nil)

	assert.Equal(t, 0, hour.Cmp(sixty))
	assert.Equal(t, -1, hour.Cmp(ninety))
	assert.Equal(t, 1, ninety.Cmp(hour))
}
