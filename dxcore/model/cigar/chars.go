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

	"dirpx.dev/dxalign/dxcore/model/pos"
)

// OpChars is one alignment column with the bytes it consumes.
//
// Ref is set for Match, Sub and Del; Query is set for Match, Sub and Ins.
// The unused side is zero.
type OpChars struct {
	Op    Op
	Ref   byte
	Query byte
}

// String renders the column as a diff token:
//
//	Match  "A"
//	Sub    "A>C"
//	Ins    "+C"
//	Del    "-A"
func (oc OpChars) String() string {
	switch oc.Op {
	case Match:
		return string(oc.Ref)
	case Sub:
		return string(oc.Ref) + ">" + string(oc.Query)
	case Ins:
		return "+" + string(oc.Query)
	case Del:
		return "-" + string(oc.Ref)
	default:
		return "?"
	}
}

// Diff renders columns as space-separated diff tokens.
func Diff(cols []OpChars) string {
	parts := make([]string, len(cols))
	for i, oc := range cols {
		parts[i] = oc.String()
	}
	return strings.Join(parts, " ")
}

// CharPairs returns one OpChars per column of c over ref and query, using
// DefaultOptions.
//
// It panics when a Sub column compares equal or a run walks past the end of
// either sequence: c does not describe ref and query.
func (c Cigar) CharPairs(ref, query []byte) []OpChars {
	return DefaultOptions.CharPairs(c, ref, query)
}

// CharPairs is Cigar.CharPairs under o.Comparison.
func (o Options) CharPairs(c Cigar, ref, query []byte) []OpChars {
	out := make([]OpChars, 0, c.Len())
	p := pos.Start()
	for i, e := range c.Ops {
		d := e.Op.Delta()
		for range e.Count {
			next := p.Add(d)
			if next.Ref > len(ref) || next.Query > len(query) {
				panic(fmt.Sprintf("cigar: run %d (%s) overruns sequences at %v, target %v", i, e, p, pos.Target(ref, query)))
			}
			oc := OpChars{Op: e.Op}
			switch e.Op {
			case Match:
				oc.Ref, oc.Query = ref[p.Ref], query[p.Query]
			case Sub:
				oc.Ref, oc.Query = ref[p.Ref], query[p.Query]
				if o.Comparison.Same(oc.Ref, oc.Query) {
					panic(fmt.Sprintf("cigar: substitution of equal bytes %q at %v in run %d", oc.Ref, p, i))
				}
			case Ins:
				oc.Query = query[p.Query]
			case Del:
				oc.Ref = ref[p.Ref]
			}
			out = append(out, oc)
			p = next
		}
	}
	return out
}
