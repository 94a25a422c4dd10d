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

package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"dirpx.dev/dxalign/dxcore/errors"
	"dirpx.dev/dxalign/dxcore/model"
	"dirpx.dev/dxalign/dxcore/model/bytesize"
	"dirpx.dev/dxalign/dxcore/model/cigar"
	"dirpx.dev/dxalign/dxcore/model/cost"
	"gopkg.in/yaml.v3"
)

// Config controls a Verifier.
//
// A YAML configuration looks like:
//
//	workers: 8
//	cost_model: {sub: 4, open: 6, extend: 2}
//	comparison: fold-case
//	max_input: 64Mi
type Config struct {
	// Workers is the number of concurrent verifications. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	// CostModel prices every alignment.
	CostModel cost.Model `json:"cost_model" yaml:"cost_model"`

	// Comparison decides Match versus Sub.
	Comparison cigar.Comparison `json:"comparison" yaml:"comparison"`

	// MaxInput bounds len(ref)+len(query) of a single job. Zero means no
	// limit.
	MaxInput bytesize.Size `json:"max_input,omitempty" yaml:"max_input,omitempty"`
}

// Compile-time check that Config implements model.Model.
var _ model.Model = (*Config)(nil)

// DefaultConfig verifies under unit costs with exact comparison, one worker
// per CPU and no input limit.
func DefaultConfig() Config {
	return Config{CostModel: cost.Unit(), Comparison: cigar.Exact}
}

// LoadConfig reads a Config from a .yaml, .yml or .json file. Fields absent
// from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	p := &cfg
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = model.FromJSON(data, &p)
	case ".yaml", ".yml":
		err = model.FromYAML(data, &p)
	default:
		return Config{}, fmt.Errorf("read config: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// workers resolves the zero value of Workers.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Options returns the cigar options implied by c.
func (c Config) Options() cigar.Options {
	return cigar.Options{Comparison: c.Comparison}
}

// String returns a one-line summary of c.
func (c Config) String() string {
	return fmt.Sprintf("BatchConfig{workers:%d %s comparison:%s max_input:%s}", c.Workers, c.CostModel, c.Comparison, c.MaxInput)
}

// Redacted returns the same summary as String.
func (c Config) Redacted() string {
	return c.String()
}

// TypeName returns "BatchConfig".
func (c Config) TypeName() string {
	return "BatchConfig"
}

// IsZero reports whether every field is zero.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Workers", Reason: "must be non-negative", Value: c.Workers}
	}
	if err := c.CostModel.Validate(); err != nil {
		return fmt.Errorf("cost_model: %w", err)
	}
	if err := c.Comparison.Validate(); err != nil {
		return fmt.Errorf("comparison: %w", err)
	}
	if err := c.MaxInput.Validate(); err != nil {
		return fmt.Errorf("max_input: %w", err)
	}
	return nil
}

// MarshalJSON validates c and encodes it.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type config Config
	return json.Marshal(config(c))
}

// UnmarshalJSON decodes c and validates it.
func (c *Config) UnmarshalJSON(data []byte) error {
	type config Config
	if err := json.Unmarshal(data, (*config)(c)); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}

// MarshalYAML validates c and encodes it.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type config Config
	return config(c), nil
}

// UnmarshalYAML decodes c and validates it.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type config Config
	if err := node.Decode((*config)(c)); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := c.Validate(); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: []byte(node.Value), Reason: fmt.Sprintf("validation failed: %v", err)}
	}
	return nil
}
