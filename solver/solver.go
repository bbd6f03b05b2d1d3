package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/dense"
)

// Solver solves the linear system A x = b, writing the solution into x and
// returning the convergence history.  The accepted coefficient matrix kind
// depends on the solver: direct solvers take a *dense.Matrix, fixed point
// solvers a *sparse.CSR.  A mismatched kind is reported as
// ErrIncompatibleMatrix, never silently ignored.
type Solver interface {
	Solve(a mat.Matrix, x, b dense.Vector) (ConvergenceData, error)
}

// Build constructs the solver selected by the configuration.
func Build(config Config) (Solver, error) {
	switch config.Type {
	case LowerUpper, LowerUpperPivot:
		if config.Type == LowerUpperPivot {
			config.Pivot = true
		}
		return NewLowerUpperSolver(config), nil
	case Jacobi, GaussSeidel, SuccessiveOverRelaxation:
		return NewFixedPointSolver(config), nil
	default:
		return nil, ErrUnknownSolver
	}
}
