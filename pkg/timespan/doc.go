// Package timespan provides the Duration value object: a numeric
// magnitude in one time unit, convertible to any other supported unit
// and renderable as a human-readable string.
//
// # Value Semantics
//
// Duration is a small immutable value. Every operation returns a new
// Duration; nothing mutates the receiver. Values are safe to share and
// to use concurrently without locking. The zero value is "0 ms" with
// whole-number rounding; construct values with New, Convert, Concise,
// or Parse to get the default precision.
//
//	d := timespan.New(90, "min", nil)
//	d.To("hr")               // 1.5 hr
//	d.Concise().String()     // "1.5 hrs"
//	timespan.Convert(1000, "ms", "s") // 1 s
//
// # Display Preferences
//
// A Duration carries two display preferences: the rounding precision
// (decimal digits, default 2) and whether formatting uses abbreviated
// unit names (default true). Formatting always pluralizes the unit name
// unless it already ends in "s", including for a magnitude of one.
//
// # Tolerant Inputs
//
// Conversion never fails: unrecognized unit names fall back to "hour",
// and WithUnit ignores names it does not recognize. Only Parse and the
// decoding half of the codecs return errors, since malformed input
// there has no sensible fallback.
//
// # Encoding
//
// Duration marshals to JSON and YAML as its formatted string (for
// example "1.5 hrs") and to CBOR as a compact [magnitude, unit] pair.
// Magnitude and unit survive a round trip; precision and abbreviation
// are display preferences and reset to their defaults on decode.
package timespan
