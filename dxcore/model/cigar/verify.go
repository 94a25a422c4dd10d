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
	"errors"
	"fmt"

	"dirpx.dev/dxalign/dxcore/model/cost"
	"dirpx.dev/dxalign/dxcore/model/pos"
)

// VerifyKind names the invariant a failed verification broke.
type VerifyKind int

const (
	// MatchMismatch: a Match column aligns two different bytes.
	MatchMismatch VerifyKind = iota + 1

	// SubEquality: a Sub column aligns two equal bytes.
	SubEquality

	// LengthMismatch: the Cigar does not consume exactly both sequences.
	LengthMismatch
)

// String returns a kebab-case name of k.
func (k VerifyKind) String() string {
	switch k {
	case MatchMismatch:
		return "match-mismatch"
	case SubEquality:
		return "sub-equality"
	case LengthMismatch:
		return "length-mismatch"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is against a *VerifyError of the matching kind.
var (
	ErrMatchMismatch  = errors.New("cigar: match column aligns different bytes")
	ErrSubEquality    = errors.New("cigar: substitution column aligns equal bytes")
	ErrLengthMismatch = errors.New("cigar: alignment does not span both sequences")
)

// VerifyError reports where a Cigar stopped describing its sequences.
type VerifyError struct {
	Kind VerifyKind

	// Index is the run being walked, or len(Ops) when every run was consumed
	// and the final position was wrong.
	Index int

	// Pos is the position at which the failure was detected.
	Pos pos.Pos

	// Target is pos.Target of the sequences.
	Target pos.Pos

	// Overrun is set for a LengthMismatch raised inside run Index, when a
	// Match or Sub column would read past the end of ref or query.
	Overrun bool
}

func (e *VerifyError) Error() string {
	switch e.Kind {
	case MatchMismatch:
		return fmt.Sprintf("cigar: match at %v in run %d aligns different bytes", e.Pos, e.Index)
	case SubEquality:
		return fmt.Sprintf("cigar: substitution at %v in run %d aligns equal bytes", e.Pos, e.Index)
	default:
		if e.Overrun {
			return fmt.Sprintf("cigar: run %d overruns sequences at %v, sequences end at %v", e.Index, e.Pos, e.Target)
		}
		return fmt.Sprintf("cigar: alignment ends at %v, sequences end at %v", e.Pos, e.Target)
	}
}

// Is matches the sentinel of e.Kind.
func (e *VerifyError) Is(target error) bool {
	switch target {
	case ErrMatchMismatch:
		return e.Kind == MatchMismatch
	case ErrSubEquality:
		return e.Kind == SubEquality
	case ErrLengthMismatch:
		return e.Kind == LengthMismatch
	default:
		return false
	}
}

// Verify checks that c aligns ref to query and returns its cost under cm,
// comparing bytes with DefaultOptions.
//
// Every Match column must align equal bytes and every Sub column different
// ones; the walk must end exactly at pos.Target(ref, query). A run that
// walks past the end of either sequence is a LengthMismatch. Failures are
// returned as *VerifyError.
func (c Cigar) Verify(cm cost.Model, ref, query []byte) (cost.Cost, error) {
	return DefaultOptions.Verify(c, cm, ref, query)
}

// Verify is Cigar.Verify under o.Comparison.
func (o Options) Verify(c Cigar, cm cost.Model, ref, query []byte) (cost.Cost, error) {
	target := pos.Target(ref, query)
	p := pos.Start()
	var total cost.Cost

	for i, e := range c.Ops {
		if err := e.Validate(); err != nil {
			return 0, fmt.Errorf("run %d: %w", i, err)
		}
		switch e.Op {
		case Match, Sub:
			for range e.Count {
				if p.Ref >= len(ref) || p.Query >= len(query) {
					return 0, &VerifyError{Kind: LengthMismatch, Index: i, Pos: p, Target: target, Overrun: true}
				}
				same := o.Comparison.Same(ref[p.Ref], query[p.Query])
				if e.Op == Match && !same {
					return 0, &VerifyError{Kind: MatchMismatch, Index: i, Pos: p, Target: target}
				}
				if e.Op == Sub {
					if same {
						return 0, &VerifyError{Kind: SubEquality, Index: i, Pos: p, Target: target}
					}
					total += cm.SubCost()
				}
				p = p.Add(deltas[e.Op])
			}
		case Ins, Del:
			total += cm.Gap(e.Count)
			p = p.Add(e.Delta())
		}
	}

	if p != target {
		return 0, &VerifyError{Kind: LengthMismatch, Index: len(c.Ops), Pos: p, Target: target}
	}
	return total, nil
}
