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

// Package model defines the contracts that all dxalign value types MUST
// implement: positions, cost models, CIGAR operations and runs, whole
// CIGARs, byte sizes, schema versions and result records.
//
// dxalign is a shared vocabulary between alignment engines (which produce
// alignments) and the tools that compare, visualize or re-verify them. Every
// value crossing that boundary is persisted or transmitted, so every value
// type implements the Model interface: it validates itself, serializes to and
// from JSON and YAML with a round-trip guarantee, renders itself for logs,
// names its type and reports whether it is empty.
//
// Model types are values. The only mutating methods in dxalign are the
// CIGAR builders (Push, PushElem, PushMatches, Clear, Reverse), Record.Add
// and the Unmarshal methods; a value under construction is exclusively owned
// by its builder. Concurrent reads of a finished value are safe.
//
// Types implementing Model can be used with the generic helpers in this
// package: ValidateAll, FilterZero, MustValidate, SafeString, ToJSON, ToYAML,
// FromJSON, FromYAML, Clone and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxalign
// value types.
//
// Implementations MUST satisfy all embedded interfaces: Validatable checks
// invariants (for example, that a CIGAR never stores two adjacent runs of the
// same operation); Serializable provides round-trip JSON and YAML encoding;
// Loggable offers a full and a log-safe string form; Identifiable supplies a
// canonical type name; ZeroCheckable detects empty instances.
//
//	var _ model.Model = (*Cigar)(nil) // compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every invariant of the value, recursively validate
// nested values, and return nil if and only if the value is fully valid.
// Failures SHOULD be reported as *errors.ValidationError naming the type and
// field, for example "dxalign: invalid CostModel.Extend: must be
// non-negative".
//
// Validate MUST be fast, deterministic and free of side effects. It checks
// structural invariants only; checking a CIGAR against two concrete
// sequences is the job of Cigar.Verify, not Validate.
//
// Callers SHOULD invoke Validate after decoding external input and before
// persisting a value.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It returns
	// nil if the instance is valid, or a descriptive error otherwise.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Implementations MUST call Validate before marshaling and after
// unmarshaling, so that invalid values never leak into result records and
// decoded values are always usable. A value serialized and then deserialized
// MUST equal the original, in both formats.
//
// Struct types SHOULD use a local alias type to delegate to the standard
// encoders without re-entering their own methods:
//
//	func (e Elem) MarshalJSON() ([]byte, error) {
//	    if err := e.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
//	    }
//	    type elem Elem
//	    return json.Marshal(elem(e))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string forms for
// logging and debugging.
//
// String returns the full human-readable representation. Redacted returns a
// representation safe for production logs: it MUST stay bounded in size, so
// types holding unbounded payloads (a CIGAR over a chromosome, a record with
// thousands of alignments) summarize rather than print them in full. Both
// MUST be free of side effects.
type Loggable interface {
	// Redacted returns a bounded representation suitable for production logs.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable defines the contract for types that name themselves.
//
// TypeName MUST return a constant CamelCase name without a package prefix
// (for example, "Cigar", "CostModel"). The name is used in error messages and
// structured log fields.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that report whether they are
// empty.
//
// IsZero MUST return true if and only if the instance is semantically empty.
// Note that for several dxalign types the zero value is also valid: the
// empty CIGAR aligns two empty sequences and the origin is a legal position.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. Equal MUST be reflexive, symmetric and transitive.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to other.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. The clone MUST share no mutable state with the original; this
// matters for Cigar, whose builders mutate the backing slice in place.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
