// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ozsolver/solver"
	"github.com/katalvlaran/ozsolver/store"
)

// Config is a complete run description.
type Config struct {
	Grid             Grid      `yaml:"grid"`
	Potential        Potential `yaml:"potential"`
	Closure          string    `yaml:"closure" validate:"oneof=hnc"`
	IntegralEquation string    `yaml:"integral_equation" validate:"oneof=oz legacy-oz"`
	State            State     `yaml:"state"`
	Solver           Solver    `yaml:"solver"`
	Output           Output    `yaml:"output"`
}

// Grid sizes the radial grid.
type Grid struct {
	Points int     `yaml:"points" validate:"gt=0,lte=4194304"`
	Radius float64 `yaml:"radius" validate:"gt=0"`
}

// Potential selects the pair potential and its parameters.
type Potential struct {
	Type    string  `yaml:"type" validate:"oneof=lennard-jones"`
	Sigma   float64 `yaml:"sigma" validate:"gt=0"`
	Epsilon float64 `yaml:"epsilon" validate:"gt=0"`
}

// State holds the thermodynamic inputs.
type State struct {
	BoltzmannConstant float64 `yaml:"boltzmann_constant" validate:"gt=0"`
	Temperature       float64 `yaml:"temperature" validate:"gt=0"`
	Density           float64 `yaml:"density" validate:"gte=0"`
}

// Solver holds the iteration controls.
type Solver struct {
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
	Damping       float64 `yaml:"damping" validate:"gt=0,lte=1"`
	Metric        string  `yaml:"metric" validate:"oneof=sum l2 max"`
}

// Output names where results go. Empty paths are skipped.
type Output struct {
	CSV      string `yaml:"csv"`
	Database string `yaml:"database"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the liquid argon reference scenario.
func Default() Config {
	return Config{
		Grid:             Grid{Points: 1024, Radius: 10.24},
		Potential:        Potential{Type: "lennard-jones", Sigma: 3.4, Epsilon: 120},
		Closure:          "hnc",
		IntegralEquation: "oz",
		State:            State{BoltzmannConstant: 1, Temperature: 85, Density: 0.0210175},
		Solver: Solver{
			Tolerance:     solver.DefaultTolerance,
			MaxIterations: solver.DefaultMaxIterations,
			Damping:       solver.DefaultDamping,
			Metric:        solver.DefaultMetric.String(),
		},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its tag rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Params flattens c into the parameter record stored with a run.
func (c Config) Params() store.Params {
	return store.Params{
		Points:           c.Grid.Points,
		Radius:           c.Grid.Radius,
		Potential:        c.Potential.Type,
		Sigma:            c.Potential.Sigma,
		Epsilon:          c.Potential.Epsilon,
		Closure:          c.Closure,
		IntegralEquation: c.IntegralEquation,
		KT:               c.State.BoltzmannConstant,
		Temperature:      c.State.Temperature,
		Density:          c.State.Density,
		Tolerance:        c.Solver.Tolerance,
		MaxIterations:    c.Solver.MaxIterations,
		Damping:          c.Solver.Damping,
		Metric:           c.Solver.Metric,
	}
}
