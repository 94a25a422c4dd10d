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
	"strconv"

	"dirpx.dev/dxalign/dxcore/errors"
)

// ParseCigar decodes a CIGAR string such as "2=1X3I".
//
// The string is scanned left to right and split at every non-digit byte:
// that byte is the Op (see ParseOpChar; 'M' decodes to Match) and the digits
// before it are the run count, 1 when absent. Adjacent runs of the same Op
// are merged, so "2=3=" decodes to 5=.
//
// It returns a *errors.ParseError for empty input, an unknown op byte, a zero
// or oversized count, or trailing digits with no op.
func ParseCigar(s string) (Cigar, error) {
	if s == "" {
		return Cigar{}, parseError(s, "empty input")
	}

	var c Cigar
	start := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isDigit(b) {
			continue
		}
		op, err := ParseOpChar(b)
		if err != nil {
			return Cigar{}, parseError(s, fmt.Sprintf("unknown operation %q at offset %d", b, i))
		}
		n := 1
		if i > start {
			n, err = strconv.Atoi(s[start:i])
			if err != nil {
				return Cigar{}, parseError(s, fmt.Sprintf("invalid count %q at offset %d", s[start:i], start))
			}
			if n == 0 {
				return Cigar{}, parseError(s, fmt.Sprintf("zero count at offset %d", start))
			}
		}
		c.PushElem(Elem{Op: op, Count: n})
		start = i + 1
	}
	if start < len(s) {
		return Cigar{}, parseError(s, fmt.Sprintf("count %q has no operation", s[start:]))
	}
	return c, nil
}

// MustParseCigar is like ParseCigar but panics on malformed input. It is
// meant for CIGAR literals and trusted aligner output.
func MustParseCigar(s string) Cigar {
	c, err := ParseCigar(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// ParseWithoutResolving decodes a string of op characters with no counts,
// such as "=XIDDD", taking every op as written.
func ParseWithoutResolving(s string) (Cigar, error) {
	if s == "" {
		return Cigar{}, parseError(s, "empty input")
	}
	var c Cigar
	for i := 0; i < len(s); i++ {
		op, err := ParseOpChar(s[i])
		if err != nil {
			return Cigar{}, parseError(s, fmt.Sprintf("unknown operation %q at offset %d", s[i], i))
		}
		c.Push(op)
	}
	return c, nil
}

// ParseWithoutCounts decodes a string of op characters with no counts and
// resolves its Match columns against ref and query using DefaultOptions.
func ParseWithoutCounts(s string, ref, query []byte) (Cigar, error) {
	return DefaultOptions.ParseWithoutCounts(s, ref, query)
}

// ParseWithoutCounts is the package-level ParseWithoutCounts under
// o.Comparison.
func (o Options) ParseWithoutCounts(s string, ref, query []byte) (Cigar, error) {
	c, err := ParseWithoutResolving(s)
	if err != nil {
		return Cigar{}, err
	}
	return o.resolveParsed(s, c, ref, query)
}

// ParseResolving decodes a counted CIGAR string and resolves its Match
// columns against ref and query using DefaultOptions. It is the decoder for
// aligners that emit 'M' without telling matches from substitutions.
func ParseResolving(s string, ref, query []byte) (Cigar, error) {
	return DefaultOptions.ParseResolving(s, ref, query)
}

// ParseResolving is the package-level ParseResolving under o.Comparison.
func (o Options) ParseResolving(s string, ref, query []byte) (Cigar, error) {
	c, err := ParseCigar(s)
	if err != nil {
		return Cigar{}, err
	}
	return o.resolveParsed(s, c, ref, query)
}

func (o Options) resolveParsed(s string, c Cigar, ref, query []byte) (Cigar, error) {
	resolved, err := o.resolve(c.All(), ref, query)
	if err != nil {
		return Cigar{}, parseError(s, err.Error())
	}
	return resolved, nil
}

func parseError(s, reason string) *errors.ParseError {
	return &errors.ParseError{Type: "Cigar", Value: s, Reason: reason}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
