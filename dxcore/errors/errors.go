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

// Package errors provides the reusable error types shared by the dxalign
// model packages (pos, cost, cigar, bytesize, schema, result).
//
// The types are simple value carriers with stable message formats. They are
// returned when textual input cannot be parsed (a CIGAR string, an operation
// name, a byte size), when an invalid enum-like value is about to be
// serialized, when a JSON or YAML payload cannot be decoded, and when a model
// fails its Validate check.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a typed value fails, for example
//     ParseCigar("3Q") or ParseOp("gap").
//
//   - MarshalError
//     Returned by MarshalJSON / MarshalYAML / MarshalText implementations of
//     enum-like types when the numeric value is not a known constant.
//
//   - UnmarshalError
//     Returned when decoding JSON or YAML into a model fails, either
//     syntactically or because the decoded value does not validate.
//
//   - ValidationError
//     Returned by Validate methods to report a violated invariant, such as a
//     negative gap cost or two adjacent CIGAR runs with the same operation.
//
// Verification failures of a CIGAR against two sequences are not part of
// this package; they are reported by cigar.VerifyError, which carries the
// alignment coordinates of the failure.
//
// # Usage
//
//	func ParseOp(s string) (Op, error) {
//	    switch s {
//	    case "match":
//	        return Match, nil
//	    default:
//	        return Match, &errors.ParseError{Type: "Op", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a typed value fails.
//
// Type identifies the logical type being parsed (for example, "Op",
// "Cigar", "Size"), and Value contains the exact string that could not be
// interpreted. Reason optionally narrows down what was wrong with the input;
// for CIGAR strings it names the offending byte and its offset.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Cigar").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason is an optional short explanation of the failure.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxalign: invalid {Type} value: {Value}"
//	"dxalign: invalid {Type} value: {Value} ({Reason})" (when Reason is set)
//
// For example:
//
//	"dxalign: invalid Cigar value: 3Q (unknown operation 'Q' at offset 1)"
func (e *ParseError) Error() string {
	msg := "dxalign: invalid " + e.Type + " value: " + e.Value
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Op"), and
// Value contains the underlying numeric value that was deemed invalid. In
// most cases a MarshalError indicates a programming error, such as an Op
// produced by an unchecked numeric conversion.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Op").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxalign: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxalign: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Cigar"),
// Data contains the original raw payload, and Reason provides a short
// human-readable description of what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Result records can embed long CIGAR strings, so callers MAY choose to
	// truncate this field before logging it.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxalign: cannot unmarshal {Type}: {Reason}"
//
// The Data field is not included in the formatted message.
func (e *UnmarshalError) Error() string {
	return "dxalign: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Cigar", "Model"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation, and Value
// optionally contains the problematic value.
//
// # Example
//
//	func (m Model) Validate() error {
//	    if m.Extend < 0 {
//	        return &errors.ValidationError{
//	            Type:   "CostModel",
//	            Field:  "Extend",
//	            Reason: "must be non-negative",
//	            Value:  m.Extend,
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxalign: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxalign: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxalign: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxalign: invalid " + e.Type + ": " + e.Reason
}
