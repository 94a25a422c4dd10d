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
	"strconv"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/pos"
	"gopkg.in/yaml.v3"
)

// Elem is a run of Count consecutive copies of Op.
type Elem struct {
	Op    Op  `json:"op" yaml:"op"`
	Count int `json:"count" yaml:"count"`
}

// Compile-time check that Elem implements model.Model.
var _ model.Model = (*Elem)(nil)

// NewElem returns an Elem of n copies of op.
func NewElem(op Op, n int) Elem {
	return Elem{Op: op, Count: n}
}

// Delta returns the step of the whole run: Op.Delta scaled by Count.
func (e Elem) Delta() pos.Pos {
	return e.Op.Delta().Scale(e.Count)
}

// String renders the run in CIGAR notation, for example "3I".
func (e Elem) String() string {
	return strconv.Itoa(e.Count) + string(e.Op.Char())
}

// Redacted returns the same string as String.
func (e Elem) Redacted() string {
	return e.String()
}

// TypeName returns "Elem".
func (e Elem) TypeName() string {
	return "Elem"
}

// IsZero reports whether e is the zero Elem (Match with count 0).
func (e Elem) IsZero() bool {
	return e == Elem{}
}

// Equal reports whether e and other describe the same run.
func (e Elem) Equal(other Elem) bool {
	return e == other
}

// Validate checks that Op is defined and Count is at least 1.
func (e Elem) Validate() error {
	if err := e.Op.Validate(); err != nil {
		return err
	}
	if e.Count < 1 {
		return &errors.ValidationError{
			Type:   e.TypeName(),
			Field:  "Count",
			Reason: "must be at least 1",
			Value:  e.Count,
		}
	}
	return nil
}

// MarshalJSON encodes the run as {"op":"match","count":N}.
func (e Elem) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	type elem Elem
	return json.Marshal(elem(e))
}

// UnmarshalJSON decodes {"op":...,"count":N} and validates it.
func (e *Elem) UnmarshalJSON(data []byte) error {
	type elem Elem
	if err := json.Unmarshal(data, (*elem)(e)); err != nil {
		return &errors.UnmarshalError{Type: e.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := e.Validate(); err != nil {
		return &errors.UnmarshalError{Type: e.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML encodes the run as a mapping with keys op and count.
func (e Elem) MarshalYAML() (any, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	type elem Elem
	return elem(e), nil
}

// UnmarshalYAML decodes a mapping with keys op and count and validates it.
func (e *Elem) UnmarshalYAML(node *yaml.Node) error {
	type elem Elem
	if err := node.Decode((*elem)(e)); err != nil {
		return &errors.UnmarshalError{Type: e.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := e.Validate(); err != nil {
		return &errors.UnmarshalError{Type: e.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
