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
	"fmt"
	"strings"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model/cost"
	"dirpx.dev/dxalign/dxcore/model/pos"
)

// Path is every position an alignment visits, in order, starting at the
// origin. Consecutive positions differ by exactly one Op.Delta.
type Path []pos.Pos

// Validate checks that p is non-empty, starts at the origin and moves by a
// single op delta at every step.
func (p Path) Validate() error {
	if len(p) == 0 {
		return &errors.ValidationError{Type: "Path", Reason: "empty path"}
	}
	if p[0] != pos.Start() {
		return &errors.ValidationError{Type: "Path", Reason: "must start at (0,0)", Value: p[0].String()}
	}
	for i := 1; i < len(p); i++ {
		if _, ok := OpFromDelta(p[i].Sub(p[i-1])); !ok {
			return &errors.ValidationError{
				Type:   "Path",
				Reason: fmt.Sprintf("illegal step %v -> %v at index %d", p[i-1], p[i], i),
			}
		}
	}
	return nil
}

// End returns the last position of p, or the origin for an empty Path.
func (p Path) End() pos.Pos {
	if len(p) == 0 {
		return pos.Start()
	}
	return p[len(p)-1]
}

// String renders p as "(0,0) (1,1) ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, q := range p {
		parts[i] = q.String()
	}
	return strings.Join(parts, " ")
}

// FromPath builds the Cigar that walks path over ref and query, telling
// matches from substitutions by the sequence bytes. It uses DefaultOptions.
//
// It panics when path fails Validate or walks past the end of either
// sequence; both are caller bugs.
func FromPath(ref, query []byte, path Path) Cigar {
	return DefaultOptions.FromPath(ref, query, path)
}

// FromPath is the package-level FromPath under o.Comparison.
func (o Options) FromPath(ref, query []byte, path Path) Cigar {
	if err := path.Validate(); err != nil {
		panic(err.Error())
	}
	steps := func(yield func(Elem) bool) {
		for i := 1; i < len(path); i++ {
			op, _ := OpFromDelta(path[i].Sub(path[i-1]))
			if !yield(Elem{Op: op, Count: 1}) {
				return
			}
		}
	}
	return o.ResolveMatches(steps, ref, query)
}

// ToPath replays every run from the origin and returns all visited
// positions, Len()+1 of them.
func (c Cigar) ToPath() Path {
	p := pos.Start()
	path := make(Path, 1, c.Len()+1)
	path[0] = p
	for _, e := range c.Ops {
		d := e.Op.Delta()
		for range e.Count {
			p = p.Add(d)
			path = append(path, p)
		}
	}
	return path
}

// TracePoint is a path position with the cost of the alignment prefix that
// ends there.
type TracePoint struct {
	Pos  pos.Pos   `json:"pos" yaml:"pos"`
	Cost cost.Cost `json:"cost" yaml:"cost"`
}

// Trace is a Path annotated with prefix costs.
type Trace []TracePoint

// Path drops the costs.
func (t Trace) Path() Path {
	path := make(Path, len(t))
	for i, tp := range t {
		path[i] = tp.Pos
	}
	return path
}

// Cost returns the cost at the last point, the total for a full trace.
func (t Trace) Cost() cost.Cost {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Cost
}

// ToPathWithCosts is ToPath with the running cost under cm at each point.
//
// Matches are free and every Sub column adds cm.Sub. Inside an Ins or Del
// run, the k-th column reports the committed cost plus cm.Gap(k), the cost
// the prefix would have if the gap ended there; the whole run's cm.Gap(count)
// is committed once the run is complete. The last point therefore carries
// the same cost Verify returns.
func (c Cigar) ToPathWithCosts(cm cost.Model) Trace {
	p := pos.Start()
	var total cost.Cost
	trace := make(Trace, 1, c.Len()+1)
	trace[0] = TracePoint{Pos: p}
	for _, e := range c.Ops {
		d := e.Op.Delta()
		switch e.Op {
		case Match:
			for range e.Count {
				p = p.Add(d)
				trace = append(trace, TracePoint{Pos: p, Cost: total})
			}
		case Sub:
			for range e.Count {
				p = p.Add(d)
				total += cm.SubCost()
				trace = append(trace, TracePoint{Pos: p, Cost: total})
			}
		case Ins, Del:
			for k := 1; k <= e.Count; k++ {
				p = p.Add(d)
				trace = append(trace, TracePoint{Pos: p, Cost: total + cm.Gap(k)})
			}
			total += cm.Gap(e.Count)
		}
	}
	return trace
}
