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

// Package bytesize parses and prints human-readable byte counts such as
// "64Mi" or "1.5G" for limits in configuration files and memory fields in
// result records.
package bytesize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Size is a number of bytes.
type Size int64

// Compile-time check that Size implements model.Model.
var _ model.Model = (*Size)(nil)

// Decimal and binary multiples.
const (
	B   Size = 1
	KB  Size = 1000
	MB       = 1000 * KB
	GB       = 1000 * MB
	KiB Size = 1024
	MiB      = 1024 * KiB
	GiB      = 1024 * MiB
)

// ParseBytes parses a byte count: a decimal number with an optional unit,
// K/M/G for powers of 1000 or Ki/Mi/Gi for powers of 1024, and an optional
// trailing B. Units are case-insensitive and may be separated from the
// number by spaces, so "512", "4K", "1.5 GiB" and "64mib" are accepted.
// Larger units up to E/Ei are accepted too, as long as the count fits in an
// int64. Exponent notation such as "1e3" is rejected.
//
// A fractional number is rounded down to a whole byte.
func ParseBytes(s string) (Size, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return 0, &errors.ParseError{Type: "Size", Value: s, Reason: "empty input"}
	}
	if strings.HasPrefix(in, "-") {
		return 0, &errors.ParseError{Type: "Size", Value: s, Reason: "negative size"}
	}

	n, err := humanize.ParseBytes(in)
	if err != nil {
		return 0, &errors.ParseError{Type: "Size", Value: s, Reason: err.Error()}
	}
	if n > math.MaxInt64 {
		return 0, &errors.ParseError{Type: "Size", Value: s, Reason: "size overflows int64"}
	}
	return Size(n), nil
}

// String prints s in the largest unit that divides it exactly, for example
// "64Mi", "4K" or "1023".
func (s Size) String() string {
	for _, u := range []struct {
		unit   Size
		suffix string
	}{
		{GiB, "Gi"}, {GB, "G"}, {MiB, "Mi"}, {MB, "M"}, {KiB, "Ki"}, {KB, "K"},
	} {
		if s != 0 && s%u.unit == 0 {
			return strconv.FormatInt(int64(s/u.unit), 10) + u.suffix
		}
	}
	return strconv.FormatInt(int64(s), 10)
}

// Redacted returns the same string as String.
func (s Size) Redacted() string {
	return s.String()
}

// TypeName returns "Size".
func (s Size) TypeName() string {
	return "Size"
}

// IsZero reports whether s is zero bytes.
func (s Size) IsZero() bool {
	return s == 0
}

// Equal reports whether s and other are the same count.
func (s Size) Equal(other Size) bool {
	return s == other
}

// Validate checks that s is non-negative.
func (s Size) Validate() error {
	if s < 0 {
		return &errors.ValidationError{Type: s.TypeName(), Reason: "must be non-negative", Value: int64(s)}
	}
	return nil
}

// MarshalJSON encodes s as its String form.
func (s Size) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a string ParseBytes accepts or a plain number of
// bytes.
func (s *Size) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Size", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseBytes(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: err.Error()}
	}
	if n < 0 {
		return &errors.UnmarshalError{Type: "Size", Data: data, Reason: "validation failed: must be non-negative"}
	}
	*s = Size(n)
	return nil
}

// MarshalYAML encodes s as its String form.
func (s Size) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return s.String(), nil
}

// UnmarshalYAML resolves a scalar via ParseBytes.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Size", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseBytes(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
