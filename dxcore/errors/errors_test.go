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

package errors

import "testing"

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Op type",
			&ParseError{Type: "Op", Value: "gap"},
			"dxalign: invalid Op value: gap",
		},
		{
			"Cigar with reason",
			&ParseError{Type: "Cigar", Value: "3Q", Reason: "unknown operation 'Q' at offset 1"},
			"dxalign: invalid Cigar value: 3Q (unknown operation 'Q' at offset 1)",
		},
		{
			"empty value",
			&ParseError{Type: "Cigar", Value: "", Reason: "empty input"},
			"dxalign: invalid Cigar value:  (empty input)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Op", Value: 99},
			"dxalign: cannot marshal invalid Op value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Regime", Value: -1},
			"dxalign: cannot marshal invalid Regime value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Comparison", Value: 42},
			"dxalign: cannot marshal invalid Comparison value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Op", Data: []byte{}, Reason: "empty data"},
			"dxalign: cannot unmarshal Op: empty data",
		},
		{
			"json syntax error",
			&UnmarshalError{Type: "Cigar", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"dxalign: cannot unmarshal Cigar: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "CostModel", Field: "Open", Reason: "must be non-negative", Value: -1},
			"dxalign: invalid CostModel.Open: must be non-negative",
		},
		{
			"without field",
			&ValidationError{Type: "Cigar", Reason: "adjacent runs share operation ins"},
			"dxalign: invalid Cigar: adjacent runs share operation ins",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
}
