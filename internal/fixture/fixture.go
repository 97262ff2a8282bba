// SPDX-License-Identifier: MIT

// Package fixture loads (input, expected) cases for the lstsq operations
// from YAML files. Arguments are kept untyped on purpose: fixtures also hold
// wrongly typed inputs, which must reach the dynamic entry points unchanged.
//
// File layout:
//
//	design_system:
//	  - name: three by two
//	    args: [3, 2]
//	    want: {a: [[1, 0], [1, 0.5], [1, 1]], t: [0, 0.5, 1]}
//	  - name: zero rows
//	    args: [0, 2]
//	    want: null
//
// A null (or missing) want marks an input that must be rejected.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadFixture is returned for structurally broken fixture files.
var ErrBadFixture = errors.New("fixture: malformed fixture")

// Case is one fixture entry.
type Case struct {
	Name string         `yaml:"name"`
	Args []any          `yaml:"args"`
	Want map[string]any `yaml:"want"`
}

// Invalid reports whether the case expects its input to be rejected.
func (c Case) Invalid() bool { return c.Want == nil }

// Set groups the cases of one fixture file by operation.
type Set struct {
	DesignSystem    []Case `yaml:"design_system"`
	NormalEquations []Case `yaml:"normal_equations"`
	ResidualNorm    []Case `yaml:"residual_norm"`
}

// arity is the argument count each operation expects.
var arity = map[string]int{
	"design_system":    2,
	"normal_equations": 2,
	"residual_norm":    3,
}

// Load reads and validates a fixture file.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes fixture YAML and checks every case has a name and the
// argument count of its operation.
func Parse(raw []byte) (*Set, error) {
	var set Set
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadFixture, err)
	}
	groups := []struct {
		key   string
		cases []Case
	}{
		{"design_system", set.DesignSystem},
		{"normal_equations", set.NormalEquations},
		{"residual_norm", set.ResidualNorm},
	}
	for _, g := range groups {
		for i, c := range g.cases {
			if c.Name == "" {
				return nil, fmt.Errorf("%w: %s[%d] has no name", ErrBadFixture, g.key, i)
			}
			if len(c.Args) != arity[g.key] {
				return nil, fmt.Errorf("%w: %s %q has %d args, want %d",
					ErrBadFixture, g.key, c.Name, len(c.Args), arity[g.key])
			}
		}
	}

	return &set, nil
}

// Floats reads a numeric list from an expected-value field.
func Floats(v any) ([]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a list", ErrBadFixture, v)
	}
	out := make([]float64, len(list))
	for i, x := range list {
		f, err := Float(x)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}

	return out, nil
}

// Rows reads a list of numeric lists from an expected-value field.
func Rows(v any) ([][]float64, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a list", ErrBadFixture, v)
	}
	out := make([][]float64, len(list))
	for i, row := range list {
		r, err := Floats(row)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// Float reads a YAML number (decoded as int or float64).
func Float(v any) (float64, error) {
	switch x := v.(type) {
	case int:
		return float64(x), nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrBadFixture, v)
	}
}
