package solver

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tdenniston/sparla/scalar"
)

// Type enumerates the linear solvers.
type Type int

const (
	// Unknown is the uninitialised solver type.
	Unknown Type = iota

	// LowerUpper is the lower-upper factorisation solver without pivoting
	// (dense systems).
	LowerUpper

	// LowerUpperPivot is the lower-upper factorisation solver with partial
	// pivoting (dense systems).
	LowerUpperPivot

	// Jacobi is the Jacobi fixed point iterative solver (sparse systems).
	Jacobi

	// GaussSeidel is the Gauss-Seidel fixed point iterative solver (sparse
	// systems).
	GaussSeidel

	// SuccessiveOverRelaxation is the successive over-relaxation fixed point
	// iterative solver (sparse systems).
	SuccessiveOverRelaxation
)

var typeNames = map[Type]string{
	Unknown:                  "unknown",
	LowerUpper:               "lower_upper",
	LowerUpperPivot:          "lower_upper_pivot",
	Jacobi:                   "jacobi",
	GaussSeidel:              "gauss_seidel",
	SuccessiveOverRelaxation: "successive_over_relaxation",
}

// String returns the configuration name of the solver type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType returns the solver type with the given configuration name.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// MarshalYAML encodes the type by name.
func (t Type) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes the type from its name.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseType(name)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Config carries every solver configuration.  Zero iteration limits and
// tolerances are permitted but give a solve that terminates immediately; use
// NewConfig for sensible defaults.
type Config struct {
	// Type selects the solver to construct.
	Type Type `yaml:"type"`

	// Pivot enables row pivoting for direct solvers.
	Pivot bool `yaml:"pivot"`

	// FactorTolerance is the value below which diagonal entries are
	// considered zero during factorisation.
	FactorTolerance scalar.Scalar `yaml:"factor_tolerance"`

	// MinIterations forces iterative solves to run at least this many
	// sweeps.
	MinIterations int `yaml:"min_iterations"`

	// MaxIterations bounds the sweeps of an iterative solve.
	MaxIterations int `yaml:"max_iterations"`

	// Tolerance is the relative residual below which a solve is considered
	// converged.
	Tolerance scalar.Scalar `yaml:"tolerance"`

	// Relaxation is the blending factor omega for successive
	// over-relaxation.
	Relaxation scalar.Scalar `yaml:"sor_relaxation"`

	// Symmetric follows every forward sweep with a backward one, turning
	// Gauss-Seidel into symmetric Gauss-Seidel and SOR into SSOR.  Jacobi is
	// row-order insensitive and ignores it.
	Symmetric bool `yaml:"symmetric"`
}

// NewConfig returns a configuration for the given solver type with the
// default pivoting, factorisation tolerance and relaxation factor.
func NewConfig(t Type) Config {
	return Config{
		Type:            t,
		Pivot:           t == LowerUpperPivot,
		FactorTolerance: scalar.DefaultAbsolute,
		Relaxation:      1.5,
	}
}

// ConfigFromYAML decodes a configuration record, applying the NewConfig
// defaults to omitted fields.
func ConfigFromYAML(data []byte) (Config, error) {
	config := Config{
		FactorTolerance: scalar.DefaultAbsolute,
		Relaxation:      1.5,
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	if config.Type == LowerUpperPivot {
		config.Pivot = true
	}
	return config, nil
}

// criteria extracts the convergence criteria from the configuration.
func (c Config) criteria() Criteria {
	return Criteria{
		MinIterations: c.MinIterations,
		MaxIterations: c.MaxIterations,
		Tolerance:     c.Tolerance,
	}
}
