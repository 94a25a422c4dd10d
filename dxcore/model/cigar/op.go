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
	"fmt"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/pos"
	"gopkg.in/yaml.v3"
)

// Op is a single alignment operation.
//
// Each Op consumes a fixed number of bases from each sequence, given by
// Delta as a (ref, query) step:
//
//	Op     Char  Delta  Consumes
//	Match  =     (1,1)  both, bases equal
//	Sub    X     (1,1)  both, bases differ
//	Ins    I     (0,1)  query only
//	Del    D     (1,0)  reference only
//
// Match and Sub share a delta; only the sequence bytes tell them apart.
type Op int

const (
	// Match aligns two equal bases.
	Match Op = iota

	// Sub aligns two different bases.
	Sub

	// Ins consumes one query base that has no counterpart in the reference.
	Ins

	// Del consumes one reference base that has no counterpart in the query.
	Del
)

// Compile-time check that Op implements model.Model.
var _ model.Model = (*Op)(nil)

// Canonical names of the operations, used as stable serialization tags.
const (
	MatchStr = "match"
	SubStr   = "sub"
	InsStr   = "ins"
	DelStr   = "del"
)

// deltas is the single source of truth for how far each Op advances in the
// reference and in the query. Every conversion between CIGARs, paths and
// verification goes through it.
var deltas = [...]pos.Pos{
	Match: {Ref: 1, Query: 1},
	Sub:   {Ref: 1, Query: 1},
	Ins:   {Ref: 0, Query: 1},
	Del:   {Ref: 1, Query: 0},
}

// chars holds the CIGAR character of each Op.
var chars = [...]byte{
	Match: '=',
	Sub:   'X',
	Ins:   'I',
	Del:   'D',
}

// Delta returns the (ref, query) step taken by a single o.
//
// The mapping is fixed and is shared by every conversion in this package:
//
//	Match -> (1,1)
//	Sub   -> (1,1)
//	Ins   -> (0,1)
//	Del   -> (1,0)
//
// Delta MUST only be called on a valid Op; it panics otherwise. Callers
// holding decoded values SHOULD call Validate first.
//
// # Example
//
//	p := pos.Start()
//	for _, op := range []Op{Match, Ins, Del} {
//		p = p.Add(op.Delta())
//	}
//	// p == pos.New(2, 2)
func (o Op) Delta() pos.Pos {
	if !o.Valid() {
		panic(fmt.Sprintf("cigar: no delta for invalid Op %d", int(o)))
	}
	return deltas[o]
}

// OpFromDelta is the inverse of Delta.
//
// A diagonal step (1,1) yields Match, since a step alone cannot tell a Match
// from a Sub; callers that have the sequences SHOULD pass the result through
// ResolveMatches. (0,1) yields Ins and (1,0) yields Del. Any other step,
// including (0,0) and steps longer than one base, returns ok == false and
// MUST NOT be used.
//
// # Example
//
//	op, ok := OpFromDelta(pos.New(0, 1))
//	// op == Ins, ok == true
//
//	_, ok = OpFromDelta(pos.New(2, 1))
//	// ok == false
func OpFromDelta(d pos.Pos) (op Op, ok bool) {
	switch d {
	case deltas[Match]:
		return Match, true
	case deltas[Ins]:
		return Ins, true
	case deltas[Del]:
		return Del, true
	default:
		return Match, false
	}
}

// Char returns the CIGAR character of o:
//
//	Match -> '='
//	Sub   -> 'X'
//	Ins   -> 'I'
//	Del   -> 'D'
//
// An invalid Op yields '?', which ParseOpChar rejects, so an invalid value
// never round-trips as a valid one.
func (o Op) Char() byte {
	if !o.Valid() {
		return '?'
	}
	return chars[o]
}

// ParseOpChar maps a CIGAR character to its Op.
//
// 'M' is accepted as an alias of '=' and decodes to Match; it is never
// produced by Char. Letters are case-sensitive, as in SAM. Any other byte
// returns a *ParseError.
func ParseOpChar(b byte) (Op, error) {
	switch b {
	case '=', 'M':
		return Match, nil
	case 'X':
		return Sub, nil
	case 'I':
		return Ins, nil
	case 'D':
		return Del, nil
	default:
		return Match, &errors.ParseError{Type: "Op", Value: string(rune(b)), Reason: "unknown CIGAR operation"}
	}
}

// ParseOp converts a textual representation into an Op.
//
// Canonical names, their capitalized forms and the CIGAR characters are
// accepted:
//
//	"match", "Match", "MATCH", "=", "M" -> Match
//	"sub",   "Sub",   "SUB",   "X"      -> Sub
//	"ins",   "Ins",   "INS",   "I"      -> Ins
//	"del",   "Del",   "DEL",   "D"      -> Del
func ParseOp(s string) (Op, error) {
	switch s {
	case MatchStr, "Match", "MATCH", "=", "M":
		return Match, nil
	case SubStr, "Sub", "SUB", "X":
		return Sub, nil
	case InsStr, "Ins", "INS", "I":
		return Ins, nil
	case DelStr, "Del", "DEL", "D":
		return Del, nil
	default:
		return Match, &errors.ParseError{Type: "Op", Value: s}
	}
}

// String returns the canonical name of o.
//
// The mapping is:
//
//	Match -> "match"
//	Sub   -> "sub"
//	Ins   -> "ins"
//	Del   -> "del"
//
// An undefined value yields "unknown". Callers that need to emit only valid
// names SHOULD call Valid first.
func (o Op) String() string {
	switch o {
	case Match:
		return MatchStr
	case Sub:
		return SubStr
	case Ins:
		return InsStr
	case Del:
		return DelStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Op value is one of the defined constants.
//
// Values created by numeric casts or decoded from untrusted input MAY fall
// outside the defined range. Code that switches on a Op SHOULD call Valid
// first.
func (o Op) Valid() bool {
	return o >= Match && o <= Del
}

// TypeName returns "Op", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (o Op) TypeName() string {
	return "Op"
}

// Redacted returns the same string representation as String.
//
// Op values carry no sensitive data, so the redacted form is identical to
// the regular form. This method implements part of the model.Model interface.
func (o Op) Redacted() string {
	return o.String()
}

// IsZero reports whether o is Match, the zero value. Match is valid.
func (o Op) IsZero() bool {
	return o == Match
}

// Equal reports whether other is an Op or *Op with the same value.
func (o Op) Equal(other any) bool {
	switch v := other.(type) {
	case Op:
		return o == v
	case *Op:
		if v == nil {
			return false
		}
		return o == *v
	default:
		return false
	}
}

// Validate checks whether the Op value is one of the defined constants.
//
// It returns nil for a defined constant and a *ValidationError otherwise. It
// is typically called after deserialization or a numeric cast.
func (o Op) Validate() error {
	if !o.Valid() {
		return &errors.ValidationError{
			Type:   "Op",
			Reason: "invalid Op value",
			Value:  int(o),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Op.
//
// A valid Op is serialized as its canonical lowercase name (for example,
// "match" or "ins"). An invalid value returns a *MarshalError and produces
// no output, so invalid values never reach a JSON payload silently.
func (o Op) MarshalJSON() ([]byte, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "Op", Value: int(o)}
	}
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Op.
//
// Both string and numeric JSON representations are accepted:
//
//   - String: any form ParseOp accepts.
//
//   - Number: 0 (Match), 1 (Sub), 2 (Ins), 3 (Del).
//
// The string form is the stable representation; numbers are accepted for
// configurations that store enum values as integers. Malformed input or a
// value outside the defined range returns an *UnmarshalError or *ParseError
// describing the failure.
func (o *Op) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Op", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Op", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseOp(s)
		if err != nil {
			return err
		}
		*o = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Op", Data: data, Reason: err.Error()}
	}
	*o = Op(i)
	if !o.Valid() {
		return &errors.UnmarshalError{Type: "Op", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Op.
//
// A valid Op is serialized as its canonical name. An invalid value returns a
// *MarshalError.
func (o Op) MarshalYAML() (any, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "Op", Value: int(o)}
	}
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Op.
//
// The scalar is resolved via ParseOp; on failure the underlying *ParseError
// is returned.
func (o *Op) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Op", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseOp(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Op.
//
// The textual form is the same canonical name String returns. An invalid
// value returns a *MarshalError.
func (o Op) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, &errors.MarshalError{Type: "Op", Value: int(o)}
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Op.
//
// ParseOp is the single source of truth for the accepted vocabulary. On
// failure the underlying *ParseError is returned.
func (o *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
