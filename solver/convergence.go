package solver

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/dense"
	"github.com/tdenniston/sparla/scalar"
	"github.com/tdenniston/sparla/sparse"
	"github.com/tdenniston/sparla/sparse/blas"
)

// ConvergenceData tracks the convergence progress of a solver.  Solvers call
// Update once per iteration; the residual norms of the first update are
// retained so later residuals can be reported relative to them.
type ConvergenceData struct {
	// Converged reports whether the solve satisfied its criteria.
	Converged bool

	// Duration is the wall-clock time since the data was created, stamped on
	// every update.
	Duration time.Duration

	// Iteration counts completed solver iterations.
	Iteration int

	// Residual is the size-weighted l2 norm of the residual vector, with its
	// initial value and the ratio of the two.
	Residual, Residual0, ResidualRelative scalar.Scalar

	// ResidualMax is the l-infinity norm of the residual vector, with its
	// initial value and the ratio of the two.
	ResidualMax, ResidualMax0, ResidualMaxRelative scalar.Scalar

	start time.Time
}

// NewConvergenceData returns tracking data with every residual at the scalar
// maximum and the clock started.
func NewConvergenceData() ConvergenceData {
	return ConvergenceData{
		Residual:            scalar.Max,
		Residual0:           scalar.Max,
		ResidualRelative:    scalar.Max,
		ResidualMax:         scalar.Max,
		ResidualMax0:        scalar.Max,
		ResidualMaxRelative: scalar.Max,
		start:               time.Now(),
	}
}

// Update computes the residual norms of the linear system, normalises them to
// the first update's norms, increments the iteration counter and stamps the
// duration.
func (d *ConvergenceData) Update(coef mat.Matrix, solution, constant dense.Vector) {
	d.Residual, d.ResidualMax = ComputeResidual(coef, solution, constant)

	if d.Iteration == 0 {
		d.Residual0 = d.Residual
		d.ResidualMax0 = d.ResidualMax
	}
	d.ResidualRelative = d.Residual / d.Residual0
	d.ResidualMaxRelative = d.ResidualMax / d.ResidualMax0

	d.Iteration++
	d.Duration = time.Since(d.start)
}

// Criteria holds the values against which convergence is assessed.  A solve
// is converged once the minimum iteration count is reached and either the
// maximum is exceeded or both relative residual norms are inside tolerance,
// the l-infinity norm with a factor 10 slack so a single slow row cannot
// block termination once the global l2 norm has converged.
type Criteria struct {
	MinIterations int
	MaxIterations int
	Tolerance     scalar.Scalar
}

// IsConverged checks the convergence data against the criteria.
func (c Criteria) IsConverged(data ConvergenceData) bool {
	if data.Iteration < c.MinIterations {
		return false
	}
	if data.Iteration > c.MaxIterations {
		return true
	}
	if data.ResidualRelative > c.Tolerance {
		return false
	}
	if data.ResidualMaxRelative > 10*c.Tolerance {
		return false
	}
	return true
}

// ComputeResidual computes the residual norms of the linear system,
// |r| = |A x - b|, fusing the matrix-vector product with both norm
// accumulations in a single traversal of the coefficient rows.  The l2 norm
// is weighted by the system size so tolerances are independent of the
// problem dimension; the l-infinity norm is max |r_i|.
func ComputeResidual(coef mat.Matrix, solution, constant dense.Vector) (l2, linf scalar.Scalar) {
	rows, cols := coef.Dims()
	if rows == 0 || cols != len(solution) || rows != len(constant) {
		panic(mat.ErrShape)
	}

	var l2Sum, linfSq scalar.Scalar
	rowResidual := func(i int, rowDot scalar.Scalar) {
		squared := (rowDot - constant[i]) * (rowDot - constant[i])
		l2Sum += squared
		if squared > linfSq {
			linfSq = squared
		}
	}

	switch a := coef.(type) {
	case *sparse.CSR:
		for i := 0; i < rows; i++ {
			row := a.Row(i)
			rowResidual(i, blas.Dusdot(row.Values(), row.Columns(), solution, 1))
		}
	case *dense.Matrix:
		for i := 0; i < rows; i++ {
			rowResidual(i, floats.Dot(a.Row(i), solution))
		}
	default:
		for i := 0; i < rows; i++ {
			var rowDot scalar.Scalar
			for j := 0; j < cols; j++ {
				rowDot += coef.At(i, j) * solution[j]
			}
			rowResidual(i, rowDot)
		}
	}

	return math.Sqrt(l2Sum / scalar.Scalar(len(solution))), math.Sqrt(linfSq)
}
