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
	"testing"

	"github.com/biogo/hts/sam"
)

func TestCigar_SAM(t *testing.T) {
	c := MustParseCigar("2=1X1I3D")
	sc := c.SAM()

	if got := sc.String(); got != "2=1X1I3D" {
		t.Errorf("SAM().String() = %q", got)
	}
	ref, query := sc.Lengths()
	wantRef, wantQuery := c.Lengths()
	if ref != wantRef || query != wantQuery {
		t.Errorf("SAM().Lengths() = (%d,%d), want (%d,%d)", ref, query, wantRef, wantQuery)
	}

	back, err := FromSAM(sc)
	if err != nil {
		t.Fatalf("FromSAM() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("FromSAM(SAM()) = %q, want %q", back, c)
	}
}

func TestCigar_SAM_SplitsLongRuns(t *testing.T) {
	c := FromElems(NewElem(Match, maxSAMRun+5), NewElem(Ins, 2), NewElem(Del, 2*maxSAMRun))
	sc := c.SAM()

	want := []struct {
		typ sam.CigarOpType
		n   int
	}{
		{sam.CigarEqual, maxSAMRun},
		{sam.CigarEqual, 5},
		{sam.CigarInsertion, 2},
		{sam.CigarDeletion, maxSAMRun},
		{sam.CigarDeletion, maxSAMRun},
	}
	if len(sc) != len(want) {
		t.Fatalf("SAM() has %d ops, want %d", len(sc), len(want))
	}
	for i, w := range want {
		if sc[i].Type() != w.typ || sc[i].Len() != w.n {
			t.Errorf("SAM()[%d] = %v %d, want %v %d", i, sc[i].Type(), sc[i].Len(), w.typ, w.n)
		}
	}

	back, err := FromSAM(sc)
	if err != nil {
		t.Fatalf("FromSAM() error = %v", err)
	}
	if !back.Equal(c) {
		t.Errorf("FromSAM(SAM()) = %q, want %q", back, c)
	}
}

func TestParseSAM(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"10M2I5M", "10=2I5=", false},
		{"5M5=", "10=", false},
		{"3=1X2D", "3=1X2D", false},
		{"*", "", false},
		{"2S3M", "", true},
		{"3M2N3M", "", true},
		{"3M1H", "", true},
		{"3M1P1M", "", true},
		{"3Q", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSAM(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSAM() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ParseSAM() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromSAM_ThenResolve(t *testing.T) {
	sc := sam.Cigar{
		sam.NewCigarOp(sam.CigarMatch, 4),
		sam.NewCigarOp(sam.CigarDeletion, 2),
		sam.NewCigarOp(sam.CigarMatch, 1),
	}
	c, err := FromSAM(sc)
	if err != nil {
		t.Fatalf("FromSAM() error = %v", err)
	}
	resolved := ResolveMatches(c.All(), []byte("acgtaag"), []byte("acctg"))
	if got := resolved.String(); got != "2=1X1=2D1=" {
		t.Errorf("resolved = %q", got)
	}
}
