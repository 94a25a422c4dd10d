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

// Package result defines the envelope in which aligners report a batch of
// alignments: the cost model they ran under, resource usage, and one cost
// and CIGAR string per aligned pair.
package result

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/bytesize"
	"dirpx.dev/dxalign/dxcore/model/cigar"
	"dirpx.dev/dxalign/dxcore/model/cost"
	"dirpx.dev/dxalign/dxcore/model/schema"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Record is one aligner run over a list of sequence pairs.
//
// Costs and Cigars are indexed by pair. Either may be omitted, for example
// by aligners that only compute distances, but when both are present they
// have the same length.
type Record struct {
	// ID identifies the run.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Schema is the layout version the record was written with.
	Schema schema.Version `json:"schema" yaml:"schema"`

	// CostModel prices every alignment in the record.
	CostModel cost.Model `json:"cost_model" yaml:"cost_model"`

	// Runtime is the wall-clock time of the run in seconds.
	Runtime float64 `json:"runtime,omitempty" yaml:"runtime,omitempty"`

	// Memory is the peak memory of the run.
	Memory bytesize.Size `json:"memory,omitempty" yaml:"memory,omitempty"`

	// Costs holds the alignment cost of each pair.
	Costs []cost.Cost `json:"costs,omitempty" yaml:"costs,omitempty"`

	// Cigars holds the CIGAR string of each pair.
	Cigars []string `json:"cigars,omitempty" yaml:"cigars,omitempty"`
}

// Compile-time check that Record implements model.Model.
var _ model.Model = (*Record)(nil)

// New returns an empty Record with a fresh ID, the current schema and cm.
func New(cm cost.Model) Record {
	return Record{
		ID:        uuid.New(),
		Schema:    schema.Current,
		CostModel: cm,
	}
}

// Add appends the result of one pair.
func (r *Record) Add(c cigar.Cigar, cst cost.Cost) {
	r.Cigars = append(r.Cigars, c.String())
	r.Costs = append(r.Costs, cst)
}

// Len returns the number of pairs in r.
func (r Record) Len() int {
	return max(len(r.Costs), len(r.Cigars))
}

// ParseCigars decodes every CIGAR string. All malformed entries are reported
// in the returned error, one per entry.
func (r Record) ParseCigars() ([]cigar.Cigar, error) {
	out := make([]cigar.Cigar, len(r.Cigars))
	var err error
	for i, s := range r.Cigars {
		c, perr := cigar.ParseCigar(s)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("cigars[%d]: %w", i, perr))
			continue
		}
		out[i] = c
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// String returns a one-line summary of r.
func (r Record) String() string {
	return fmt.Sprintf("Record{id:%s schema:%s cost_model:%s pairs:%d runtime:%gs memory:%s}",
		r.ID, r.Schema, r.CostModel, r.Len(), r.Runtime, r.Memory)
}

// Redacted returns the same summary as String. Neither prints CIGARs.
func (r Record) Redacted() string {
	return r.String()
}

// TypeName returns "Record".
func (r Record) TypeName() string {
	return "Record"
}

// IsZero reports whether r has no ID and no content.
func (r Record) IsZero() bool {
	return r.ID == uuid.Nil && r.Schema.IsZero() && r.CostModel.IsZero() &&
		r.Runtime == 0 && r.Memory == 0 && len(r.Costs) == 0 && len(r.Cigars) == 0
}

// Validate checks every field and collects all failures.
func (r Record) Validate() error {
	var err error
	if r.ID == uuid.Nil {
		err = multierr.Append(err, &errors.ValidationError{Type: r.TypeName(), Field: "ID", Reason: "must not be nil"})
	}
	if verr := r.Schema.Validate(); verr != nil {
		err = multierr.Append(err, verr)
	} else if cerr := r.Schema.CheckCompatible(); cerr != nil {
		err = multierr.Append(err, cerr)
	}
	err = multierr.Append(err, r.CostModel.Validate())
	if r.Runtime < 0 {
		err = multierr.Append(err, &errors.ValidationError{Type: r.TypeName(), Field: "Runtime", Reason: "must be non-negative", Value: r.Runtime})
	}
	err = multierr.Append(err, r.Memory.Validate())
	if len(r.Costs) > 0 && len(r.Cigars) > 0 && len(r.Costs) != len(r.Cigars) {
		err = multierr.Append(err, &errors.ValidationError{
			Type:   r.TypeName(),
			Field:  "Costs",
			Reason: fmt.Sprintf("has %d entries, Cigars has %d", len(r.Costs), len(r.Cigars)),
		})
	}
	for i, c := range r.Costs {
		if c < 0 {
			err = multierr.Append(err, &errors.ValidationError{Type: r.TypeName(), Field: fmt.Sprintf("Costs[%d]", i), Reason: "must be non-negative", Value: c})
		}
	}
	if _, perr := r.ParseCigars(); perr != nil {
		err = multierr.Append(err, perr)
	}
	return err
}

// MarshalJSON validates r and encodes it.
func (r Record) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type record Record
	return json.Marshal(record(r))
}

// UnmarshalJSON decodes r and validates it.
func (r *Record) UnmarshalJSON(data []byte) error {
	type record Record
	if err := json.Unmarshal(data, (*record)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML validates r and encodes it.
func (r Record) MarshalYAML() (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	type record Record
	return record(r), nil
}

// UnmarshalYAML decodes r and validates it.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	type record Record
	if err := node.Decode((*record)(r)); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := r.Validate(); err != nil {
		return &errors.UnmarshalError{Type: r.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
