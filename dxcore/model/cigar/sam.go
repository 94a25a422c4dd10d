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

	"dirpx.dev/dxalign/dxcore/errors"
	"github.com/biogo/hts/sam"
)

// samTypes maps each Op to its SAM operation. Match is written as '='
// rather than 'M' so the record keeps the match/substitution distinction.
var samTypes = [...]sam.CigarOpType{
	Match: sam.CigarEqual,
	Sub:   sam.CigarMismatch,
	Ins:   sam.CigarInsertion,
	Del:   sam.CigarDeletion,
}

// maxSAMRun is the longest run a single SAM operation holds; the length is
// packed into 28 bits.
const maxSAMRun = 1<<28 - 1

// SAM converts c to a SAM CIGAR using '=', 'X', 'I' and 'D'. A run longer
// than 2^28-1 is split into several operations of the same type, which
// FromSAM merges back.
func (c Cigar) SAM() sam.Cigar {
	out := make(sam.Cigar, 0, len(c.Ops))
	for _, e := range c.Ops {
		for n := e.Count; n > 0; n -= maxSAMRun {
			out = append(out, sam.NewCigarOp(samTypes[e.Op], min(n, maxSAMRun)))
		}
	}
	return out
}

// FromSAM converts a SAM CIGAR. 'M' and '=' become Match, 'X' Sub, 'I' Ins
// and 'D' Del. Clipping, skipped regions, padding and back ops have no
// counterpart in a global alignment and are rejected.
//
// 'M' only states that bases are aligned; use ResolveMatches to tell
// matches from substitutions.
func FromSAM(sc sam.Cigar) (Cigar, error) {
	var c Cigar
	for i, co := range sc {
		var op Op
		switch co.Type() {
		case sam.CigarMatch, sam.CigarEqual:
			op = Match
		case sam.CigarMismatch:
			op = Sub
		case sam.CigarInsertion:
			op = Ins
		case sam.CigarDeletion:
			op = Del
		default:
			return Cigar{}, &errors.ParseError{
				Type:   "Cigar",
				Value:  sc.String(),
				Reason: fmt.Sprintf("unsupported SAM operation %s at index %d", co.Type(), i),
			}
		}
		c.PushElem(Elem{Op: op, Count: co.Len()})
	}
	return c, nil
}

// ParseSAM decodes a SAM CIGAR string, for example "10M2I5M", and converts
// it with FromSAM. "*" decodes to the empty Cigar.
func ParseSAM(s string) (Cigar, error) {
	sc, err := sam.ParseCigar([]byte(s))
	if err != nil {
		return Cigar{}, &errors.ParseError{Type: "Cigar", Value: s, Reason: err.Error()}
	}
	return FromSAM(sc)
}
