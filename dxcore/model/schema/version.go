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

// Package schema versions the layout of persisted dxalign records.
//
// A record carries the schema Version it was written with. Readers accept
// any record whose Major equals Current.Major: minor and patch bumps only
// add optional fields, while a major bump renames or removes them.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a semantic version (https://semver.org) of a record schema,
// backed by github.com/blang/semver/v4 for parsing and precedence.
type Version struct {
	Major int
	Minor int
	Patch int

	// Prerelease marks a draft schema, for example "rc.1". Drafts have lower
	// precedence than the release of the same number.
	Prerelease string
}

// Compile-time check that Version implements model.Model.
var _ model.Model = (*Version)(nil)

// Current is the schema version written by this module.
var Current = Version{Major: 1, Minor: 0, Patch: 0}

// ParseVersion parses "Major.Minor.Patch[-Prerelease]". A leading "v" is
// tolerated. Build metadata is rejected: a schema is identified by its
// precedence alone.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s, Reason: err.Error()}
	}
	if len(bv.Build) > 0 {
		return Version{}, &dxerrors.ParseError{Type: "Version", Value: s, Reason: "build metadata is not allowed"}
	}

	var pre string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		pre = strings.Join(parts, ".")
	}
	return Version{Major: int(bv.Major), Minor: int(bv.Minor), Patch: int(bv.Patch), Prerelease: pre}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// String returns "Major.Minor.Patch[-Prerelease]".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// Redacted returns the same string as String.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns "Version".
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether v is 0.0.0 without a prerelease.
func (v Version) IsZero() bool {
	return v == Version{}
}

func (v Version) blang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

// Validate checks that the components are non-negative and the prerelease
// identifiers are well formed.
func (v Version) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"Major", v.Major},
		{"Minor", v.Minor},
		{"Patch", v.Patch},
	} {
		if f.value < 0 {
			return &dxerrors.ValidationError{Type: v.TypeName(), Field: f.name, Reason: "must be non-negative", Value: f.value}
		}
	}
	if _, err := v.blang(); err != nil {
		return &dxerrors.ValidationError{Type: v.TypeName(), Field: "Prerelease", Reason: err.Error(), Value: v.Prerelease}
	}
	return nil
}

// Compare orders versions by semver precedence: -1, 0 or +1. Invalid
// versions compare by their numeric components only.
func (v Version) Compare(other Version) int {
	bv, err1 := v.blang()
	bo, err2 := other.blang()
	if err1 != nil || err2 != nil {
		for _, d := range [...]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
			switch {
			case d < 0:
				return -1
			case d > 0:
				return 1
			}
		}
		return 0
	}
	return bv.Compare(bo)
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v precedes other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Compatible reports whether records written with v can be read by code
// that writes Current.
func (v Version) Compatible() bool {
	return v.Major == Current.Major
}

// CheckCompatible returns a *ValidationError when v is not Compatible.
func (v Version) CheckCompatible() error {
	if !v.Compatible() {
		return &dxerrors.ValidationError{
			Type:   v.TypeName(),
			Field:  "Major",
			Reason: fmt.Sprintf("schema %s is not readable, want major %d", v, Current.Major),
			Value:  v.Major,
		}
	}
	return nil
}

// MarshalJSON encodes v as a string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a version string.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as a string.
func (v Version) MarshalYAML() (any, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a version string.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
