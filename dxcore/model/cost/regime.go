/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cost

import (
	"encoding/json"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Regime names the gap-cost regime of a Model.
//
// Regime is derived from a Model (see Model.Regime) and is never stored in
// it, so the classification cannot drift from the costs. It is serializable
// so that result records and reports can label the regime they ran under.
type Regime int

const (
	// RegimeUnit is edit distance: Sub=1, Open=0, Extend=1.
	RegimeUnit Regime = iota

	// RegimeLinear charges per base only (Open=0) with arbitrary Sub and
	// Extend.
	RegimeLinear

	// RegimeAffine charges Open once per gap in addition to Extend per base.
	RegimeAffine
)

// Compile-time check that Regime implements model.Model.
var _ model.Model = (*Regime)(nil)

// Canonical names of the regimes, used in serialization and reports.
const (
	RegimeUnitStr   = "unit"
	RegimeLinearStr = "linear"
	RegimeAffineStr = "affine"
)

// String returns the canonical lowercase name of r.
//
//	RegimeUnit   -> "unit"
//	RegimeLinear -> "linear"
//	RegimeAffine -> "affine"
//
// An undefined value yields "unknown". Callers that need to emit only valid
// names SHOULD call Valid first.
func (r Regime) String() string {
	switch r {
	case RegimeUnit:
		return RegimeUnitStr
	case RegimeLinear:
		return RegimeLinearStr
	case RegimeAffine:
		return RegimeAffineStr
	default:
		return "unknown"
	}
}

// ParseRegime converts a textual representation into a Regime.
//
// The function accepts a small vocabulary and maps it to the constants:
//
//	"unit",   "Unit",   "UNIT"   -> RegimeUnit
//	"linear", "Linear", "LINEAR" -> RegimeLinear
//	"affine", "Affine", "AFFINE" -> RegimeAffine
//
// Any other input returns a *ParseError carrying the original string.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case RegimeUnitStr, "Unit", "UNIT":
		return RegimeUnit, nil
	case RegimeLinearStr, "Linear", "LINEAR":
		return RegimeLinear, nil
	case RegimeAffineStr, "Affine", "AFFINE":
		return RegimeAffine, nil
	default:
		return RegimeUnit, &errors.ParseError{Type: "Regime", Value: s}
	}
}

// Valid reports whether the Regime value is one of the defined constants.
//
// Values created by numeric casts or decoded from untrusted input MAY fall
// outside the defined range. Code that switches on a Regime SHOULD call Valid
// first.
func (r Regime) Valid() bool {
	return r == RegimeUnit || r == RegimeLinear || r == RegimeAffine
}

// TypeName returns "Regime", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (r Regime) TypeName() string {
	return "Regime"
}

// Redacted returns the same string representation as String.
//
// Regime values carry no sensitive data, so the redacted form is identical to
// the regular form. This method implements part of the model.Model interface.
func (r Regime) Redacted() string {
	return r.String()
}

// IsZero reports whether r is RegimeUnit, the zero value. RegimeUnit is
// valid.
func (r Regime) IsZero() bool {
	return r == RegimeUnit
}

// Equal reports whether other is a Regime or *Regime with the same value.
func (r Regime) Equal(other any) bool {
	switch v := other.(type) {
	case Regime:
		return r == v
	case *Regime:
		if v == nil {
			return false
		}
		return r == *v
	default:
		return false
	}
}

// Validate checks whether the Regime value is one of the defined constants.
//
// It returns nil for a defined constant and a *ValidationError otherwise. It
// is typically called after deserialization or a numeric cast.
func (r Regime) Validate() error {
	if !r.Valid() {
		return &errors.ValidationError{
			Type:   "Regime",
			Reason: "invalid Regime value",
			Value:  int(r),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Regime.
//
// A valid Regime is serialized as its canonical lowercase name (for example,
// "unit" or "affine"). An invalid value returns a *MarshalError and produces
// no output, so invalid values never reach a JSON payload silently.
func (r Regime) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Regime", Value: int(r)}
	}
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Regime.
//
// Both string and numeric JSON representations are accepted:
//
//   - String: any form ParseRegime accepts.
//
//   - Number: 0 (RegimeUnit), 1 (RegimeLinear), 2 (RegimeAffine).
//
// The string form is the stable representation; numbers are accepted for
// configurations that store enum values as integers. Malformed input or a
// value outside the defined range returns an *UnmarshalError or *ParseError
// describing the failure.
func (r *Regime) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Regime", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Regime", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseRegime(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Regime", Data: data, Reason: err.Error()}
	}
	*r = Regime(i)
	if !r.Valid() {
		return &errors.UnmarshalError{Type: "Regime", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Regime.
//
// A valid Regime is serialized as its canonical name. An invalid value returns a
// *MarshalError.
func (r Regime) MarshalYAML() (any, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Regime", Value: int(r)}
	}
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Regime.
//
// The scalar is resolved via ParseRegime; on failure the underlying *ParseError
// is returned.
func (r *Regime) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Regime", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseRegime(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Regime.
//
// The textual form is the same canonical name String returns. An invalid
// value returns a *MarshalError.
func (r Regime) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, &errors.MarshalError{Type: "Regime", Value: int(r)}
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Regime.
//
// ParseRegime is the single source of truth for the accepted vocabulary. On
// failure the underlying *ParseError is returned.
func (r *Regime) UnmarshalText(text []byte) error {
	parsed, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
