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
	"slices"
	"testing"

	"dirpx.dev/dxalign/dxcore/model/cost"
	"dirpx.dev/dxalign/dxcore/model/pos"
)

func TestFromPath(t *testing.T) {
	ref, query := []byte("aaa"), []byte("aabc")
	path := Path{pos.New(0, 0), pos.New(1, 1), pos.New(2, 2), pos.New(3, 3), pos.New(3, 4)}

	c := FromPath(ref, query, path)
	if got := c.String(); got != "2=1X1I" {
		t.Errorf("FromPath() = %q, want %q", got, "2=1X1I")
	}
	if got := FromPath(nil, nil, Path{pos.Start()}); !got.IsZero() {
		t.Errorf("FromPath() of the origin alone = %q", got)
	}
}

func TestFromPath_Panics(t *testing.T) {
	ref, query := []byte("aaa"), []byte("aaa")
	tests := []struct {
		name string
		path Path
	}{
		{"empty", Path{}},
		{"not at origin", Path{pos.New(1, 1), pos.New(2, 2)}},
		{"diagonal jump", Path{pos.New(0, 0), pos.New(2, 2)}},
		{"standing still", Path{pos.New(0, 0), pos.New(0, 0)}},
		{"backwards", Path{pos.New(0, 0), pos.New(1, 1), pos.New(0, 1)}},
		{"past the end", Path{pos.New(0, 0), pos.New(1, 0), pos.New(2, 0), pos.New(3, 0), pos.New(4, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("FromPath() did not panic")
				}
			}()
			FromPath(ref, query, tt.path)
		})
	}
}

func TestPath_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		wantErr bool
	}{
		{"origin only", Path{pos.Start()}, false},
		{"all deltas", Path{pos.New(0, 0), pos.New(1, 1), pos.New(1, 2), pos.New(2, 2)}, false},
		{"empty", nil, true},
		{"offset start", Path{pos.New(0, 1)}, true},
		{"skip", Path{pos.New(0, 0), pos.New(0, 2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.path.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCigar_PathConsistency(t *testing.T) {
	tests := []struct {
		cigar string
		ref   string
		query string
	}{
		{"2=1X1I", "aaa", "aabc"},
		{"2=1X1=2D1=", "acgtaag", "acctg"},
		{"3I", "", "acg"},
		{"2D1=", "tta", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.cigar, func(t *testing.T) {
			c := MustParseCigar(tt.cigar)
			ref, query := []byte(tt.ref), []byte(tt.query)

			path := c.ToPath()
			if len(path) != c.Len()+1 {
				t.Errorf("len(ToPath()) = %d, want %d", len(path), c.Len()+1)
			}
			if path.End() != pos.Target(ref, query) {
				t.Errorf("ToPath() ends at %v, want %v", path.End(), pos.Target(ref, query))
			}
			if err := path.Validate(); err != nil {
				t.Errorf("ToPath() is not a valid path: %v", err)
			}
			if got := FromPath(ref, query, path); !got.Equal(c) {
				t.Errorf("FromPath(ToPath()) = %q, want %q", got, c)
			}
		})
	}
}

func TestCigar_ToPathWithCosts(t *testing.T) {
	cm := cost.Affine(4, 6, 2)

	c := MustParseCigar("2=1X3I")
	want := Trace{
		{pos.New(0, 0), 0},
		{pos.New(1, 1), 0},
		{pos.New(2, 2), 0},
		{pos.New(3, 3), 4},
		{pos.New(3, 4), 12},
		{pos.New(3, 5), 14},
		{pos.New(3, 6), 16},
	}
	got := c.ToPathWithCosts(cm)
	if !slices.Equal(got, want) {
		t.Errorf("ToPathWithCosts() = %v, want %v", got, want)
	}
	if !slices.Equal(got.Path(), c.ToPath()) {
		t.Error("Trace.Path() differs from ToPath()")
	}

	// A gap run is committed once: the match after it reports the full run.
	gap := MustParseCigar("1=2D1=").ToPathWithCosts(cm)
	costs := make([]cost.Cost, len(gap))
	for i, tp := range gap {
		costs[i] = tp.Cost
	}
	if wantCosts := []cost.Cost{0, 0, 8, 10, 10}; !slices.Equal(costs, wantCosts) {
		t.Errorf("costs = %v, want %v", costs, wantCosts)
	}
}

func TestCigar_TraceMatchesVerify(t *testing.T) {
	ref, query := []byte("acgtaag"), []byte("acctg")
	c := MustParseCigar("2=1X1=2D1=")

	for _, cm := range []cost.Model{cost.Unit(), cost.Linear(2, 3), cost.Affine(4, 6, 2)} {
		t.Run(cm.String(), func(t *testing.T) {
			want, err := c.Verify(cm, ref, query)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if got := c.ToPathWithCosts(cm).Cost(); got != want {
				t.Errorf("trace cost = %d, Verify() = %d", got, want)
			}
		})
	}
}
