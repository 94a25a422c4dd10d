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

// Package cost defines the edit-cost arithmetic used to price alignments.
//
// A Model carries three non-negative costs: Sub per substituted base, Open
// once per gap (a maximal run of insertions or of deletions) and Extend per
// base inside a gap. A gap of length L therefore costs Open + L·Extend,
// charged once for the whole run. Matches are free.
//
// Three regimes are distinguished, see Regime:
//
//	unit    Sub=1, Open=0, Extend=1 (edit distance)
//	linear  Open=0
//	affine  Open>0
//
// ScoreModel re-expresses a Model as a match/mismatch/gap score for
// score-maximizing aligners, and recovers the exact cost from a score.
package cost

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Cost is the non-negative cost of an alignment or a part of it.
type Cost = int

// Score is the signed score of an alignment under a ScoreModel.
type Score = int

// Model is an affine gap-cost model. Use Unit, Linear or Affine to build one.
//
// The zero Model charges nothing for anything; it is valid but rarely what a
// caller wants.
type Model struct {
	// Sub is the cost of one substituted base.
	Sub Cost `json:"sub" yaml:"sub"`

	// Open is charged once per gap. It is zero for linear models.
	Open Cost `json:"open" yaml:"open"`

	// Extend is charged for every base inside a gap.
	Extend Cost `json:"extend" yaml:"extend"`
}

// Compile-time check that Model implements model.Model.
var _ model.Model = (*Model)(nil)

// Unit returns the edit-distance model: Sub=1, Open=0, Extend=1.
func Unit() Model {
	return Model{Sub: 1, Open: 0, Extend: 1}
}

// Linear returns a model with no gap-open cost and the given per-base
// substitution and indel costs.
func Linear(sub, indel Cost) Model {
	return Model{Sub: sub, Open: 0, Extend: indel}
}

// Affine returns a model with the given substitution, gap-open and
// gap-extend costs.
func Affine(sub, open, extend Cost) Model {
	return Model{Sub: sub, Open: open, Extend: extend}
}

// IsUnit reports whether m is the unit cost model.
func (m Model) IsUnit() bool {
	return m == Unit()
}

// IsLinear reports whether m charges nothing to open a gap. Unit models are
// linear.
func (m Model) IsLinear() bool {
	return m.Open == 0
}

// IsAffine reports whether m charges a gap-open cost.
func (m Model) IsAffine() bool {
	return m.Open > 0
}

// Regime classifies m. Unit takes precedence over linear.
func (m Model) Regime() Regime {
	switch {
	case m.IsUnit():
		return RegimeUnit
	case m.IsLinear():
		return RegimeLinear
	default:
		return RegimeAffine
	}
}

// SubCost returns the cost of one substitution.
func (m Model) SubCost() Cost {
	return m.Sub
}

// Gap returns Open + n·Extend, the cost of a gap of n bases.
//
// The same formula gives the cost accumulated so far after the k-th base of a
// gap that is still open, so the first base of a gap costs Open+Extend and
// every later base adds Extend.
func (m Model) Gap(n int) Cost {
	return m.Open + n*m.Extend
}

// Ins returns the cost of an insertion run of n bases.
func (m Model) Ins(n int) Cost {
	return m.Gap(n)
}

// Del returns the cost of a deletion run of n bases.
func (m Model) Del(n int) Cost {
	return m.Gap(n)
}

// String returns "CostModel{sub:S open:O extend:E}".
func (m Model) String() string {
	return fmt.Sprintf("CostModel{sub:%d open:%d extend:%d}", m.Sub, m.Open, m.Extend)
}

// Redacted returns the same representation as String.
func (m Model) Redacted() string {
	return m.String()
}

// TypeName returns "CostModel".
func (m Model) TypeName() string {
	return "CostModel"
}

// IsZero reports whether all three costs are zero.
func (m Model) IsZero() bool {
	return m == Model{}
}

// Equal reports whether m and other charge the same costs.
func (m Model) Equal(other Model) bool {
	return m == other
}

// Validate checks that all three costs are non-negative.
func (m Model) Validate() error {
	for _, f := range []struct {
		name  string
		value Cost
	}{
		{"Sub", m.Sub},
		{"Open", m.Open},
		{"Extend", m.Extend},
	} {
		if f.value < 0 {
			return &errors.ValidationError{
				Type:   m.TypeName(),
				Field:  f.name,
				Reason: "must be non-negative",
				Value:  f.value,
			}
		}
	}
	return nil
}

// MarshalJSON encodes the model as {"sub":S,"open":O,"extend":E}.
func (m Model) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	type costModel Model
	return json.Marshal(costModel(m))
}

// UnmarshalJSON decodes {"sub":S,"open":O,"extend":E} and validates it.
func (m *Model) UnmarshalJSON(data []byte) error {
	type costModel Model
	if err := json.Unmarshal(data, (*costModel)(m)); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML encodes the model as a mapping with keys sub, open, extend.
func (m Model) MarshalYAML() (any, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	type costModel Model
	return costModel(m), nil
}

// UnmarshalYAML decodes a mapping with keys sub, open, extend and validates
// it.
func (m *Model) UnmarshalYAML(node *yaml.Node) error {
	type costModel Model
	if err := node.Decode((*costModel)(m)); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{Type: m.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
