// Package solver provides the linear solvers for the system A x = b: a
// direct lower-upper factorisation with optional partial pivoting for dense
// coefficient matrices, and the Jacobi, Gauss-Seidel and successive
// over-relaxation fixed point iterations for sparse ones, together with the
// convergence tracking shared between them and a configuration driven
// dispatch layer.
//
// Numerical outcomes are not errors: a degenerate factorisation or an
// iteration hitting its sweep limit returns non-converged ConvergenceData for
// the caller to inspect.  Errors report caller mistakes such as an unknown
// solver type, a coefficient matrix of the wrong kind, mismatched system
// dimensions or a structurally missing diagonal.
//
// Errors:
//
//	ErrUnknownSolver      - configuration names no known solver.
//	ErrIncompatibleMatrix - coefficient matrix kind does not fit the solver.
//	ErrDimension          - matrix and vector sizes disagree.
//	ErrZeroDiagonal       - a fixed point sweep requires non-zero diagonals.
package solver

import "errors"

// Sentinel errors reported for caller mistakes.
var (
	// ErrUnknownSolver indicates an unconfigured or unrecognised solver type.
	ErrUnknownSolver = errors.New("solver: unknown solver type")

	// ErrIncompatibleMatrix indicates a coefficient matrix of the wrong kind
	// for the configured solver, e.g. a sparse matrix handed to LU.
	ErrIncompatibleMatrix = errors.New("solver: incompatible coefficient matrix")

	// ErrDimension indicates a non-square system or mismatched vector sizes.
	ErrDimension = errors.New("solver: dimension mismatch")

	// ErrZeroDiagonal indicates a missing or zero diagonal entry on a row
	// visited by a fixed point sweep.
	ErrZeroDiagonal = errors.New("solver: zero diagonal entry")
)
