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
	"iter"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model/pos"
)

// ResolveMatches reclassifies every Match column of runs as Match or Sub by
// comparing the aligned bytes of ref and query, using DefaultOptions.
//
// Runs of any other Op are copied unchanged but still advance both cursors.
// The result is coalesced. Resolving an already resolved Cigar returns it
// unchanged.
//
// It panics when a run is invalid or walks past the end of either sequence.
func ResolveMatches(runs iter.Seq[Elem], ref, query []byte) Cigar {
	return DefaultOptions.ResolveMatches(runs, ref, query)
}

// ResolveMatches is the package-level ResolveMatches under o.Comparison.
func (o Options) ResolveMatches(runs iter.Seq[Elem], ref, query []byte) Cigar {
	c, err := o.resolve(runs, ref, query)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// resolve is ResolveMatches with errors instead of panics.
func (o Options) resolve(runs iter.Seq[Elem], ref, query []byte) (Cigar, error) {
	var c Cigar
	p := pos.Start()
	i := 0
	for e := range runs {
		if err := e.Op.Validate(); err != nil {
			return Cigar{}, fmt.Errorf("run %d: %w", i, err)
		}
		if e.Count < 0 {
			return Cigar{}, &errors.ValidationError{Type: "Elem", Field: "Count", Reason: fmt.Sprintf("run %d is negative", i), Value: e.Count}
		}

		end := p.Add(e.Delta())
		if end.Ref > len(ref) || end.Query > len(query) {
			return Cigar{}, &errors.ValidationError{
				Type:   "Cigar",
				Field:  "Ops",
				Reason: fmt.Sprintf("run %d (%s) from %v overruns sequences ending at %v", i, e, p, pos.Target(ref, query)),
			}
		}

		if e.Op != Match {
			c.PushElem(e)
			p = end
			i++
			continue
		}
		for range e.Count {
			if o.Comparison.Same(ref[p.Ref], query[p.Query]) {
				c.Push(Match)
			} else {
				c.Push(Sub)
			}
			p = p.Add(deltas[Match])
		}
		i++
	}
	return c, nil
}
