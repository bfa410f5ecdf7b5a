package timespan

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/timespan-dev/timespan-go/pkg/unit"
)

// encMode is the CBOR encoder mode for Duration values.
// Configured for deterministic encoding.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for Duration values.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// cborDuration is the compact wire form: a [magnitude, unit-rank] pair.
type cborDuration struct {
	_         struct{} `cbor:",toarray"`
	Magnitude float64
	Unit      uint8
}

// MarshalCBOR encodes the duration as a [magnitude, unit-rank] array.
func (d Duration) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(cborDuration{
		Magnitude: d.magnitude,
		Unit:      uint8(d.unit),
	})
}

// UnmarshalCBOR decodes a [magnitude, unit-rank] array. An
// out-of-range unit rank falls back to Hour, matching the tolerance of
// the string entry points. Display preferences reset to their defaults.
func (d *Duration) UnmarshalCBOR(data []byte) error {
	var raw cborDuration
	if err := decMode.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding duration: %w", err)
	}

	u := unit.Unit(raw.Unit)
	if !u.Valid() {
		u = unit.Hour
	}
	*d = Duration{
		magnitude: raw.Magnitude,
		unit:      u,
		precision: unit.DefaultPrecision,
	}
	return nil
}

// MarshalJSON encodes the duration as its formatted string, for example
// "1.5 hrs".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a formatted duration string. Display
// preferences reset to their defaults.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding duration: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the duration as its formatted string.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a formatted duration string. Display
// preferences reset to their defaults.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("decoding duration: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
