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

// Package cigar implements the run-length alignment encoding shared by
// aligners, verifiers and visualizers.
//
// A Cigar is an ordered list of Elem runs. Each run consumes bases from the
// reference, the query or both, as fixed by Op.Delta, and walking the runs
// from (0,0) traces the alignment path through the edit graph of the two
// sequences. The package converts between four views of one alignment:
//
//	text   "2=1X1I"                   ParseCigar, Cigar.String
//	runs   [(=,2) (X,1) (I,1)]        Cigar.Ops
//	path   [(0,0) (1,1) (2,2) ...]    FromPath, Cigar.ToPath
//	trace  path points with costs     Cigar.ToPathWithCosts
//
// Verify checks that a Cigar actually aligns a given pair of sequences and
// returns its cost under a cost.Model.
//
// Runs are kept coalesced: two adjacent Elems never share an Op. Every
// builder in this package maintains that invariant, and Validate reports
// Cigars built by hand that break it.
package cigar

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/pos"
	"gopkg.in/yaml.v3"
)

// redactedRuns bounds how many runs Redacted renders.
const redactedRuns = 16

// Cigar is a coalesced run-length list of alignment operations.
//
// The zero Cigar is empty and valid: it aligns two empty sequences.
type Cigar struct {
	Ops []Elem `json:"ops" yaml:"ops"`
}

// Compile-time check that Cigar implements model.Model.
var _ model.Model = (*Cigar)(nil)

// FromElems builds a Cigar from runs, merging adjacent runs of the same Op.
func FromElems(elems ...Elem) Cigar {
	var c Cigar
	for _, e := range elems {
		c.PushElem(e)
	}
	return c
}

// FromOps groups a stream of single operations into runs. Order is kept;
// only consecutive equal ops are merged.
func FromOps(ops iter.Seq[Op]) Cigar {
	var c Cigar
	for op := range ops {
		c.Push(op)
	}
	return c
}

// Push appends one op, extending the last run when it has the same Op.
func (c *Cigar) Push(op Op) {
	c.PushElem(Elem{Op: op, Count: 1})
}

// PushElem appends a run, merging it into the last run when the Ops match.
// A run with Count 0 is ignored. It panics on a negative Count.
func (c *Cigar) PushElem(e Elem) {
	switch {
	case e.Count < 0:
		panic(fmt.Sprintf("cigar: negative run length %d", e.Count))
	case e.Count == 0:
		return
	}
	if n := len(c.Ops); n > 0 && c.Ops[n-1].Op == e.Op {
		c.Ops[n-1].Count += e.Count
		return
	}
	c.Ops = append(c.Ops, e)
}

// PushMatches appends a run of n matches.
func (c *Cigar) PushMatches(n int) {
	c.PushElem(Elem{Op: Match, Count: n})
}

// Clear removes all runs, keeping the allocated storage.
func (c *Cigar) Clear() {
	c.Ops = c.Ops[:0]
}

// Reverse reverses the order of the runs in place. The result aligns the
// reversed sequences.
func (c *Cigar) Reverse() {
	slices.Reverse(c.Ops)
}

// All iterates over the runs in order.
func (c Cigar) All() iter.Seq[Elem] {
	return slices.Values(c.Ops)
}

// Steps iterates over the single operations, expanding every run.
func (c Cigar) Steps() iter.Seq[Op] {
	return func(yield func(Op) bool) {
		for _, e := range c.Ops {
			for range e.Count {
				if !yield(e.Op) {
					return
				}
			}
		}
	}
}

// Len returns the number of alignment columns, the sum of all run counts.
func (c Cigar) Len() int {
	n := 0
	for _, e := range c.Ops {
		n += e.Count
	}
	return n
}

// Lengths returns how many reference and query bases the Cigar consumes.
func (c Cigar) Lengths() (ref, query int) {
	end := c.End()
	return end.Ref, end.Query
}

// End returns the position reached after walking every run from the origin.
// A Cigar aligns ref and query exactly when End equals pos.Target(ref, query).
func (c Cigar) End() pos.Pos {
	p := pos.Start()
	for _, e := range c.Ops {
		p = p.Add(e.Delta())
	}
	return p
}

// Count returns how many columns use op.
func (c Cigar) Count(op Op) int {
	n := 0
	for _, e := range c.Ops {
		if e.Op == op {
			n += e.Count
		}
	}
	return n
}

// String renders the Cigar in CIGAR notation, for example "2=1X1I". The
// empty Cigar renders as "".
func (c Cigar) String() string {
	var b strings.Builder
	for _, e := range c.Ops {
		b.WriteString(e.String())
	}
	return b.String()
}

// Redacted renders at most the first runs of the Cigar followed by a count
// of the omitted ones, keeping log lines bounded for long alignments.
func (c Cigar) Redacted() string {
	if len(c.Ops) <= redactedRuns {
		return c.String()
	}
	head := Cigar{Ops: c.Ops[:redactedRuns]}
	return fmt.Sprintf("%s...(+%d runs)", head.String(), len(c.Ops)-redactedRuns)
}

// TypeName returns "Cigar".
func (c Cigar) TypeName() string {
	return "Cigar"
}

// IsZero reports whether c has no runs.
func (c Cigar) IsZero() bool {
	return len(c.Ops) == 0
}

// Equal reports whether c and other hold the same runs.
func (c Cigar) Equal(other Cigar) bool {
	return slices.Equal(c.Ops, other.Ops)
}

// Clone returns a Cigar that shares no storage with c.
func (c Cigar) Clone() Cigar {
	return Cigar{Ops: slices.Clone(c.Ops)}
}

// Validate checks every run and that no two adjacent runs share an Op.
func (c Cigar) Validate() error {
	for i, e := range c.Ops {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
		if i > 0 && c.Ops[i-1].Op == e.Op {
			return &errors.ValidationError{
				Type:   c.TypeName(),
				Field:  "Ops",
				Reason: fmt.Sprintf("runs %d and %d share op %s", i-1, i, e.Op),
				Value:  c.String(),
			}
		}
	}
	return nil
}

// MarshalJSON encodes the Cigar as {"ops":[...]}.
func (c Cigar) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type cigar Cigar
	out := cigar(c)
	if out.Ops == nil {
		out.Ops = []Elem{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes {"ops":[...]} and validates it.
func (c *Cigar) UnmarshalJSON(data []byte) error {
	type cigar Cigar
	var tmp cigar
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := Cigar(tmp).Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*c = Cigar(tmp)
	return nil
}

// MarshalYAML encodes the Cigar as a mapping with an ops sequence.
func (c Cigar) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type cigar Cigar
	out := cigar(c)
	if out.Ops == nil {
		out.Ops = []Elem{}
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping with an ops sequence and validates it.
func (c *Cigar) UnmarshalYAML(node *yaml.Node) error {
	type cigar Cigar
	var tmp cigar
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := Cigar(tmp).Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	*c = Cigar(tmp)
	return nil
}
