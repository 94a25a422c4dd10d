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

package bytesize

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    Size
		wantErr bool
	}{
		{"0", 0, false},
		{"512", 512, false},
		{"512B", 512, false},
		{"4K", 4000, false},
		{"4k", 4000, false},
		{"4KB", 4000, false},
		{"4Ki", 4096, false},
		{"4KiB", 4096, false},
		{"4kib", 4096, false},
		{"2M", 2_000_000, false},
		{"64Mi", 64 << 20, false},
		{"1G", 1_000_000_000, false},
		{"1Gi", 1 << 30, false},
		{"1.5Ki", 1536, false},
		{" 3 GiB ", 3 << 30, false},
		{"", 0, true},
		{"B", 0, true},
		{"K", 0, true},
		{"-1", 0, true},
		{"-1.5M", 0, true},
		{"12T", 12_000_000_000_000, false},
		{"1,024", 1024, false},
		{"ten", 0, true},
		{"1kk", 0, true},
		{"1bb", 0, true},
		{"1e3", 0, true},
		{"1E3K", 0, true},
		{"10E", 0, true},
		{"8EiB", 0, true},
		{"9223372036854775807G", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSize_String(t *testing.T) {
	tests := []struct {
		s    Size
		want string
	}{
		{0, "0"},
		{1023, "1023"},
		{1024, "1Ki"},
		{4000, "4K"},
		{64 * MiB, "64Mi"},
		{3 * GB, "3G"},
		{2 * GiB, "2Gi"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			back, err := ParseBytes(tt.s.String())
			if err != nil || back != tt.s {
				t.Errorf("ParseBytes(String()) = %d, %v", back, err)
			}
		})
	}
}

func TestSize_Codecs(t *testing.T) {
	s := 64 * MiB

	data, err := json.Marshal(s)
	if err != nil || string(data) != `"64Mi"` {
		t.Fatalf("json.Marshal() = %s, %v", data, err)
	}
	var fromJSON Size
	if err := json.Unmarshal(data, &fromJSON); err != nil || fromJSON != s {
		t.Errorf("JSON round-trip = %d, %v", fromJSON, err)
	}
	if err := json.Unmarshal([]byte(`2048`), &fromJSON); err != nil || fromJSON != 2048 {
		t.Errorf("numeric Unmarshal = %d, %v", fromJSON, err)
	}
	if err := json.Unmarshal([]byte(`-5`), &fromJSON); err == nil {
		t.Error("numeric Unmarshal of -5 should fail")
	}

	ydata, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var fromYAML Size
	if err := yaml.Unmarshal(ydata, &fromYAML); err != nil || fromYAML != s {
		t.Errorf("YAML round-trip = %d, %v", fromYAML, err)
	}

	if _, err := json.Marshal(Size(-1)); err == nil {
		t.Error("Marshal of a negative Size should fail")
	}
}
