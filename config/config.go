// Package config reads the YAML run files of the choicedata command.
//
// A run file names the data set, the panel column, the derived columns and
// exclusion rule (as expressions), the availability of each alternative and
// the draws to generate:
//
//	name: swissmetro
//	data: swissmetro.csv
//	seed: 42
//	panel: ID
//	exclude: "(PURPOSE != 1 && PURPOSE != 3) || CHOICE == 0"
//	derived:
//	  - name: TRAIN_COST_SCALED
//	    expression: "TRAIN_CO * (GA == 0 ? 1 : 0) / 100"
//	availability:
//	  choice: CHOICE
//	  alternatives:
//	    1: TRAIN_AV
//	    2: SM_AV
//	draws:
//	  count: 1000
//	  variables:
//	    - name: b_time_rnd
//	      type: NORMAL_MLHS
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidYAML reports a file that does not decode.
	ErrInvalidYAML = errors.New("config: invalid YAML")

	// ErrInvalidConfig reports a decoded file with missing or inconsistent
	// fields.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrEmptyFile reports an empty run file.
	ErrEmptyFile = errors.New("config: file is empty")
)

// Config is one run file.
type Config struct {
	Name         string        `yaml:"name"`
	Data         string        `yaml:"data"`
	Seed         uint64        `yaml:"seed"`
	Workers      int           `yaml:"workers"`
	Panel        string        `yaml:"panel"`
	Exclude      string        `yaml:"exclude"`
	Derived      []Derived     `yaml:"derived"`
	Availability *Availability `yaml:"availability"`
	Sample       *Sample       `yaml:"sample"`
	Draws        *Draws        `yaml:"draws"`
}

// Derived is a column computed from an expression over earlier columns.
type Derived struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

// Availability maps each alternative to the expression telling whether it
// is available, next to the expression of the chosen alternative.
type Availability struct {
	Choice       string             `yaml:"choice"`
	Alternatives map[float64]string `yaml:"alternatives"`
}

// Sample asks for a sample without replacement of the data.
type Sample struct {
	Rate   float64 `yaml:"rate"`
	Weight string  `yaml:"weight"`
}

// Draws lists the draw variables and their common draw count.
type Draws struct {
	Count     int            `yaml:"count"`
	Variables []DrawVariable `yaml:"variables"`
}

// DrawVariable binds a random parameter to a draw type.
type DrawVariable struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Types returns the variable → draw type map and the variable order.
func (d *Draws) Types() (map[string]string, []string) {
	types := make(map[string]string, len(d.Variables))
	names := make([]string, len(d.Variables))
	for i, v := range d.Variables {
		types[v.Name] = v.Type
		names[i] = v.Name
	}

	return types, names
}

// Load reads and validates the run file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return Parse(data)
}

// Parse decodes and validates a run file. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}

		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem of the configuration in one error
// wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Data == "" {
		add("data: a data file is required")
	}
	if c.Workers < 0 {
		add("workers: must be positive, got %d", c.Workers)
	}

	seen := make(map[string]struct{}, len(c.Derived))
	for i, d := range c.Derived {
		if d.Name == "" {
			add("derived[%d]: name is required", i)
		}
		if d.Expression == "" {
			add("derived[%d] %s: expression is required", i, d.Name)
		}
		if _, dup := seen[d.Name]; dup && d.Name != "" {
			add("derived[%d]: duplicate name %s", i, d.Name)
		}
		seen[d.Name] = struct{}{}
	}

	if a := c.Availability; a != nil {
		if a.Choice == "" {
			add("availability: choice expression is required")
		}
		if len(a.Alternatives) == 0 {
			add("availability: at least one alternative is required")
		}
	}

	if s := c.Sample; s != nil && !(s.Rate > 0 && s.Rate <= 1) {
		add("sample: rate must be in (0, 1], got %g", s.Rate)
	}

	if d := c.Draws; d != nil {
		if d.Count <= 0 {
			add("draws: count must be positive, got %d", d.Count)
		}
		if len(d.Variables) == 0 {
			add("draws: at least one variable is required")
		}
		names := make(map[string]struct{}, len(d.Variables))
		for i, v := range d.Variables {
			if v.Name == "" || v.Type == "" {
				add("draws.variables[%d]: name and type are required", i)
			}
			if _, dup := names[v.Name]; dup {
				add("draws.variables[%d]: duplicate name %s", i, v.Name)
			}
			names[v.Name] = struct{}{}
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
