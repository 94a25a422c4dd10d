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

package schema

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"1.0.0", Version{Major: 1}, false},
		{"v1.2.3", Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"2.0.0-rc.1", Version{Major: 2, Prerelease: "rc.1"}, false},
		{"1.0.0+build.5", Version{}, true},
		{"1.0", Version{}, true},
		{"01.0.0", Version{}, true},
		{"", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVersion() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := a.Less(b); got != (tt.want < 0) {
				t.Errorf("Less() = %v", got)
			}
		})
	}

	invalid := Version{Major: 1, Prerelease: "bad..id"}
	if got := invalid.Compare(Version{Major: 2}); got != -1 {
		t.Errorf("Compare() of invalid version = %d, want -1", got)
	}
}

func TestVersion_Compatible(t *testing.T) {
	tests := []struct {
		v    Version
		want bool
	}{
		{Current, true},
		{Version{Major: Current.Major, Minor: 7}, true},
		{Version{Major: Current.Major + 1}, false},
		{Version{}, Current.Major == 0},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.Compatible(); got != tt.want {
				t.Errorf("Compatible() = %v, want %v", got, tt.want)
			}
			if err := tt.v.CheckCompatible(); (err == nil) != tt.want {
				t.Errorf("CheckCompatible() = %v", err)
			}
		})
	}
}

func TestVersion_Validate(t *testing.T) {
	if err := Current.Validate(); err != nil {
		t.Errorf("Validate(Current) = %v", err)
	}
	if err := (Version{Major: -1}).Validate(); err == nil {
		t.Error("Validate() of negative major should fail")
	}
	if err := (Version{Major: 1, Prerelease: "a..b"}).Validate(); err == nil {
		t.Error("Validate() of malformed prerelease should fail")
	}
}

func TestVersion_Codecs(t *testing.T) {
	v := MustParseVersion("1.2.0-rc.1")

	data, err := json.Marshal(v)
	if err != nil || string(data) != `"1.2.0-rc.1"` {
		t.Fatalf("json.Marshal() = %s, %v", data, err)
	}
	var fromJSON Version
	if err := json.Unmarshal(data, &fromJSON); err != nil || fromJSON != v {
		t.Errorf("JSON round-trip = %v, %v", fromJSON, err)
	}
	if err := json.Unmarshal([]byte(`"x.y.z"`), &fromJSON); err == nil {
		t.Error("Unmarshal() of garbage should fail")
	}

	ydata, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var fromYAML Version
	if err := yaml.Unmarshal(ydata, &fromYAML); err != nil || fromYAML != v {
		t.Errorf("YAML round-trip = %v, %v", fromYAML, err)
	}
}
