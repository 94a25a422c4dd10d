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
	"slices"
	"testing"

	dxerrors "dirpx.dev/dxalign/dxcore/errors"
)

func TestParseCigar(t *testing.T) {
	tests := []struct {
		input string
		want  []Elem
	}{
		{"24=", []Elem{{Match, 24}}},
		{"2=3I1X", []Elem{{Match, 2}, {Ins, 3}, {Sub, 1}}},
		{"=XIDDD", []Elem{{Match, 1}, {Sub, 1}, {Ins, 1}, {Del, 3}}},
		{"10M", []Elem{{Match, 10}}},
		{"2M3=", []Elem{{Match, 5}}},
		{"2D3D1I", []Elem{{Del, 5}, {Ins, 1}}},
		{"007X", []Elem{{Sub, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCigar(tt.input)
			if err != nil {
				t.Fatalf("ParseCigar() error = %v", err)
			}
			if !slices.Equal(got.Ops, tt.want) {
				t.Errorf("ParseCigar() = %v, want %v", got.Ops, tt.want)
			}
		})
	}
}

func TestParseCigar_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unknown op", "3Q"},
		{"lowercase op", "3i"},
		{"soft clip", "2S3M"},
		{"trailing count", "3=12"},
		{"only digits", "12"},
		{"zero count", "0="},
		{"overflowing count", "99999999999999999999="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCigar(tt.input)
			if err == nil {
				t.Fatal("ParseCigar() should fail")
			}
			var pe *dxerrors.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("error %T is not a *ParseError", err)
			}
		})
	}
}

func TestMustParseCigar_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseCigar(\"\") did not panic")
		}
	}()
	MustParseCigar("")
}

func TestParseCigar_RoundTrip(t *testing.T) {
	inputs := []string{"1=", "2=1X1I", "5D3I2=1X", "1I1D1I1D", "100=1X100="}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			c := MustParseCigar(in)
			if c.String() != in {
				t.Errorf("String() = %q, want %q", c.String(), in)
			}
			again := MustParseCigar(c.String())
			if !again.Equal(c) {
				t.Errorf("ParseCigar(String()) = %v, want %v", again, c)
			}
		})
	}
}

func TestParseWithoutResolving(t *testing.T) {
	c, err := ParseWithoutResolving("=XIDDD")
	if err != nil {
		t.Fatalf("ParseWithoutResolving() error = %v", err)
	}
	want := []Elem{{Match, 1}, {Sub, 1}, {Ins, 1}, {Del, 3}}
	if !slices.Equal(c.Ops, want) {
		t.Errorf("ParseWithoutResolving() = %v, want %v", c.Ops, want)
	}

	for _, in := range []string{"", "2=", "=Q"} {
		if _, err := ParseWithoutResolving(in); err == nil {
			t.Errorf("ParseWithoutResolving(%q) should fail", in)
		}
	}
}

func TestParseWithoutCounts(t *testing.T) {
	c, err := ParseWithoutCounts("MMMI", []byte("acg"), []byte("atgc"))
	if err != nil {
		t.Fatalf("ParseWithoutCounts() error = %v", err)
	}
	if got := c.String(); got != "1=1X1=1I" {
		t.Errorf("ParseWithoutCounts() = %q", got)
	}

	if _, err := ParseWithoutCounts("MMMM", []byte("acg"), []byte("acg")); err == nil {
		t.Error("ParseWithoutCounts() past the sequence end should fail")
	}
}

func TestParseResolving(t *testing.T) {
	ref, query := []byte("acgtaag"), []byte("acctg")

	c, err := ParseResolving("4M2D1M", ref, query)
	if err != nil {
		t.Fatalf("ParseResolving() error = %v", err)
	}
	if got := c.String(); got != "2=1X1=2D1=" {
		t.Errorf("ParseResolving() = %q", got)
	}

	folded, err := Options{Comparison: FoldCase}.ParseResolving("3M", []byte("ACG"), []byte("acg"))
	if err != nil {
		t.Fatalf("fold-case ParseResolving() error = %v", err)
	}
	if got := folded.String(); got != "3=" {
		t.Errorf("fold-case ParseResolving() = %q", got)
	}

	if _, err := ParseResolving("5M", []byte("ac"), []byte("ac")); err == nil {
		t.Error("ParseResolving() past the sequence end should fail")
	}
	if _, err := ParseResolving("", ref, query); err == nil {
		t.Error("ParseResolving(\"\") should fail")
	}
}

func TestResolveMatches(t *testing.T) {
	ref, query := []byte("acgtaag"), []byte("acctg")

	once := ResolveMatches(MustParseCigar("4M2D1M").All(), ref, query)
	if got := once.String(); got != "2=1X1=2D1=" {
		t.Fatalf("ResolveMatches() = %q", got)
	}
	twice := ResolveMatches(once.All(), ref, query)
	if !twice.Equal(once) {
		t.Errorf("ResolveMatches() is not idempotent: %q then %q", once, twice)
	}

	// Sub runs pass through even when the bytes agree.
	kept := ResolveMatches(MustParseCigar("1X").All(), []byte("a"), []byte("a"))
	if kept.String() != "1X" {
		t.Errorf("ResolveMatches() rewrote a Sub run: %q", kept)
	}
}

func TestResolveMatches_PanicsOnOverrun(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ResolveMatches() past the sequence end did not panic")
		}
	}()
	ResolveMatches(MustParseCigar("3M").All(), []byte("ac"), []byte("acg"))
}
