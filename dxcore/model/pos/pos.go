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

// Package pos defines Pos, a position in a pairwise alignment.
//
// A Pos records simultaneous progress through the reference (text) and the
// query (pattern) sequence. An alignment starts at Start() = (0,0) and ends
// at Target(ref, query) = (len(ref), len(query)); along any valid alignment
// path both components are non-decreasing.
//
// Two orders are provided. LessEq is the natural partial order of the
// alignment grid (both components ≤). Compare is a lexicographic total
// order, reference first, for callers that need to sort positions, for
// example candidate endpoints:
//
//	slices.SortFunc(ends, pos.Compare)
package pos

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Pos is a position (Ref, Query) in the alignment grid of a reference and a
// query sequence. Ref counts consumed reference bases, Query counts consumed
// query bases.
//
// Pos is also used for coordinate deltas (for example, the (1,0) step of a
// deletion), which is why the arithmetic methods do not validate.
type Pos struct {
	// Ref is the number of reference bases consumed so far.
	Ref int `json:"ref" yaml:"ref"`

	// Query is the number of query bases consumed so far.
	Query int `json:"query" yaml:"query"`
}

// Compile-time check that Pos implements model.Model.
var _ model.Model = (*Pos)(nil)

// New returns the position (ref, query).
func New(ref, query int) Pos {
	return Pos{Ref: ref, Query: query}
}

// Start returns the origin (0,0), where every alignment begins.
func Start() Pos {
	return Pos{}
}

// Target returns (len(ref), len(query)), where every global alignment of ref
// and query ends.
func Target(ref, query []byte) Pos {
	return Pos{Ref: len(ref), Query: len(query)}
}

// Diag returns the diagonal index Ref-Query.
func (p Pos) Diag() int {
	return p.Ref - p.Query
}

// AntiDiag returns the anti-diagonal index Ref+Query.
func (p Pos) AntiDiag() int {
	return p.Ref + p.Query
}

// Mirror swaps the components: (i, j) -> (j, i).
func (p Pos) Mirror() Pos {
	return Pos{Ref: p.Query, Query: p.Ref}
}

// Add returns the componentwise sum p+q.
func (p Pos) Add(q Pos) Pos {
	return Pos{Ref: p.Ref + q.Ref, Query: p.Query + q.Query}
}

// Sub returns the componentwise difference p-q.
func (p Pos) Sub(q Pos) Pos {
	return Pos{Ref: p.Ref - q.Ref, Query: p.Query - q.Query}
}

// Scale multiplies both components by n. It turns a per-base delta into the
// delta of a whole run.
func (p Pos) Scale(n int) Pos {
	return Pos{Ref: p.Ref * n, Query: p.Query * n}
}

// LessEq reports whether p ≤ q in the partial order of the alignment grid,
// that is, whether both components of p are ≤ those of q.
//
// Two positions can be incomparable: neither (1,0).LessEq((0,1)) nor
// (0,1).LessEq((1,0)) holds.
func (p Pos) LessEq(q Pos) bool {
	return p.Ref <= q.Ref && p.Query <= q.Query
}

// Less reports whether p precedes q in the lexicographic total order.
func (p Pos) Less(q Pos) bool {
	return Compare(p, q) < 0
}

// Compare orders positions lexicographically, by Ref and then by Query. It
// returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Pos) int {
	if c := cmp.Compare(a.Ref, b.Ref); c != 0 {
		return c
	}
	return cmp.Compare(a.Query, b.Query)
}

// String returns the position as "(ref,query)".
func (p Pos) String() string {
	return "(" + strconv.Itoa(p.Ref) + "," + strconv.Itoa(p.Query) + ")"
}

// Redacted returns the same representation as String; positions carry no
// sensitive or unbounded data.
func (p Pos) Redacted() string {
	return p.String()
}

// TypeName returns "Pos".
func (p Pos) TypeName() string {
	return "Pos"
}

// IsZero reports whether p is the origin. The origin is a valid position.
func (p Pos) IsZero() bool {
	return p.Ref == 0 && p.Query == 0
}

// Equal reports whether p and other denote the same position.
func (p Pos) Equal(other Pos) bool {
	return p == other
}

// Validate checks that both components are non-negative.
func (p Pos) Validate() error {
	if p.Ref < 0 {
		return &errors.ValidationError{
			Type:   p.TypeName(),
			Field:  "Ref",
			Reason: "must be non-negative",
			Value:  p.Ref,
		}
	}
	if p.Query < 0 {
		return &errors.ValidationError{
			Type:   p.TypeName(),
			Field:  "Query",
			Reason: "must be non-negative",
			Value:  p.Query,
		}
	}
	return nil
}

// MarshalJSON encodes the position as {"ref":R,"query":Q}.
func (p Pos) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type position Pos
	return json.Marshal(position(p))
}

// UnmarshalJSON decodes {"ref":R,"query":Q} and validates the result.
func (p *Pos) UnmarshalJSON(data []byte) error {
	type position Pos
	if err := json.Unmarshal(data, (*position)(p)); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML encodes the position as a mapping with keys ref and query.
func (p Pos) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type position Pos
	return position(p), nil
}

// UnmarshalYAML decodes a mapping with keys ref and query and validates the
// result.
func (p *Pos) UnmarshalYAML(node *yaml.Node) error {
	type position Pos
	if err := node.Decode((*position)(p)); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
