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

package cigar

import (
	"encoding/json"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Comparison selects how two sequence bytes are compared when deciding
// between Match and Sub.
type Comparison int

const (
	// Exact compares bytes as they are: 'a' and 'A' differ.
	Exact Comparison = iota

	// FoldCase treats ASCII letters of either case as equal, so soft-masked
	// (lowercase) regions still match their uppercase counterparts. Other
	// bytes are compared exactly.
	FoldCase
)

// Compile-time check that Comparison implements model.Model.
var _ model.Model = (*Comparison)(nil)

// Canonical names of the comparisons.
const (
	ExactStr    = "exact"
	FoldCaseStr = "fold-case"
)

// Same reports whether a and b are equal under c.
//
// Under Exact the bytes MUST be identical. Under FoldCase an ASCII letter
// also equals its other-case form; every other byte, including non-ASCII and
// punctuation such as '[' and '{', is still compared exactly.
//
// # Example
//
//	FoldCase.Same('a', 'A') // true
//	FoldCase.Same('[', '{') // false
//	Exact.Same('a', 'A')    // false
func (c Comparison) Same(a, b byte) bool {
	if a == b {
		return true
	}
	if c != FoldCase {
		return false
	}
	return isLetter(a) && isLetter(b) && a|0x20 == b|0x20
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// String returns the canonical name of c.
//
//	Exact    -> "exact"
//	FoldCase -> "fold-case"
//
// An undefined value yields "unknown".
func (c Comparison) String() string {
	switch c {
	case Exact:
		return ExactStr
	case FoldCase:
		return FoldCaseStr
	default:
		return "unknown"
	}
}

// ParseComparison converts a textual representation into a Comparison.
//
//	"exact", "Exact", "EXACT"                        -> Exact
//	"fold-case", "foldcase", "FoldCase", "FOLD-CASE" -> FoldCase
//
// Any other input returns a *ParseError carrying the original string.
func ParseComparison(s string) (Comparison, error) {
	switch s {
	case ExactStr, "Exact", "EXACT":
		return Exact, nil
	case FoldCaseStr, "foldcase", "FoldCase", "FOLD-CASE", "FOLDCASE":
		return FoldCase, nil
	default:
		return Exact, &errors.ParseError{Type: "Comparison", Value: s}
	}
}

// Valid reports whether the Comparison value is one of the defined constants.
//
// Values created by numeric casts or decoded from untrusted input MAY fall
// outside the defined range. Code that switches on a Comparison SHOULD call Valid
// first.
func (c Comparison) Valid() bool {
	return c == Exact || c == FoldCase
}

// TypeName returns "Comparison", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (c Comparison) TypeName() string {
	return "Comparison"
}

// Redacted returns the same string representation as String.
//
// Comparison values carry no sensitive data, so the redacted form is identical to
// the regular form. This method implements part of the model.Model interface.
func (c Comparison) Redacted() string {
	return c.String()
}

// IsZero reports whether c is Exact, the zero value.
func (c Comparison) IsZero() bool {
	return c == Exact
}

// Equal reports whether other is a Comparison or *Comparison with the same
// value.
func (c Comparison) Equal(other any) bool {
	switch v := other.(type) {
	case Comparison:
		return c == v
	case *Comparison:
		if v == nil {
			return false
		}
		return c == *v
	default:
		return false
	}
}

// Validate checks whether the Comparison value is one of the defined constants.
//
// It returns nil for a defined constant and a *ValidationError otherwise. It
// is typically called after deserialization or a numeric cast.
func (c Comparison) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{
			Type:   "Comparison",
			Reason: "invalid Comparison value",
			Value:  int(c),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Comparison.
//
// A valid Comparison is serialized as its canonical lowercase name (for example,
// "exact" or "fold-case"). An invalid value returns a *MarshalError and produces
// no output, so invalid values never reach a JSON payload silently.
func (c Comparison) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Comparison", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Comparison.
//
// Both string and numeric JSON representations are accepted:
//
//   - String: any form ParseComparison accepts.
//
//   - Number: 0 (Exact), 1 (FoldCase).
//
// The string form is the stable representation; numbers are accepted for
// configurations that store enum values as integers. Malformed input or a
// value outside the defined range returns an *UnmarshalError or *ParseError
// describing the failure.
func (c *Comparison) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Comparison", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Comparison", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseComparison(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Comparison", Data: data, Reason: err.Error()}
	}
	*c = Comparison(i)
	if !c.Valid() {
		return &errors.UnmarshalError{Type: "Comparison", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Comparison.
//
// A valid Comparison is serialized as its canonical name. An invalid value returns a
// *MarshalError.
func (c Comparison) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Comparison", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Comparison.
//
// The scalar is resolved via ParseComparison; on failure the underlying *ParseError
// is returned.
func (c *Comparison) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Comparison", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseComparison(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Comparison.
//
// The textual form is the same canonical name String returns. An invalid
// value returns a *MarshalError.
func (c Comparison) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Comparison", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Comparison.
//
// ParseComparison is the single source of truth for the accepted vocabulary. On
// failure the underlying *ParseError is returned.
func (c *Comparison) UnmarshalText(text []byte) error {
	parsed, err := ParseComparison(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Options configures the operations that inspect sequence bytes. The zero
// Options equals DefaultOptions.
type Options struct {
	// Comparison decides Match versus Sub. Exact by default.
	Comparison Comparison `json:"comparison" yaml:"comparison"`
}

// DefaultOptions compares bytes exactly. The package-level ResolveMatches,
// FromPath, CharPairs and Verify use it.
var DefaultOptions = Options{Comparison: Exact}
