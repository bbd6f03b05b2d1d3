package solver

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/dense"
	"github.com/tdenniston/sparla/scalar"
	"github.com/tdenniston/sparla/sparse"
	"github.com/tdenniston/sparla/sparse/blas"
)

// FixedPointSolver iterates one of the stationary sweeps, Jacobi,
// Gauss-Seidel or successive over-relaxation, until the convergence criteria
// are met.  The three are the same update rule with different in-place and
// relaxation behaviour: Jacobi writes each sweep into an auxiliary vector so
// every row sees the previous iterate, the other two update in place so
// later rows see already-updated entries.
type FixedPointSolver struct {
	config   Config
	criteria Criteria

	// working is the Jacobi auxiliary vector, allocated once per solver
	// rather than per sweep.
	working dense.Vector
}

// NewFixedPointSolver creates an iterative solver from the configuration.
func NewFixedPointSolver(config Config) *FixedPointSolver {
	return &FixedPointSolver{config: config, criteria: config.criteria()}
}

// Solve iterates x towards the solution of A x = b, updating x in place and
// returning the convergence history.  The coefficient matrix must be a
// square *sparse.CSR with every diagonal entry stored and non-zero, and x
// and b must match its row count.
func (s *FixedPointSolver) Solve(a mat.Matrix, x, b dense.Vector) (ConvergenceData, error) {
	coef, ok := a.(*sparse.CSR)
	if !ok {
		return ConvergenceData{}, ErrIncompatibleMatrix
	}
	r, c := coef.Dims()
	if r != c || len(x) != r || len(b) != r {
		return ConvergenceData{}, ErrDimension
	}
	for i := 0; i < r; i++ {
		if e, ok := coef.Find(i, i); !ok || e.Value() == 0 {
			return ConvergenceData{}, ErrZeroDiagonal
		}
	}

	omega := scalar.Scalar(1)
	if s.config.Type == SuccessiveOverRelaxation {
		omega = s.config.Relaxation
	}

	data := NewConvergenceData()
	switch s.config.Type {
	case Jacobi:
		if len(s.working) != r {
			s.working = dense.NewVector(r)
		}
		for !s.criteria.IsConverged(data) {
			forwardSweep(coef, x, s.working, b, omega)
			copy(x, s.working)
			data.Update(coef, x, b)
			log.Trace().Int("iteration", data.Iteration).
				Float64("residual", data.ResidualRelative).Msg("jacobi sweep")
		}
	case GaussSeidel, SuccessiveOverRelaxation:
		for !s.criteria.IsConverged(data) {
			forwardSweep(coef, x, x, b, omega)
			if s.config.Symmetric {
				backwardSweep(coef, x, x, b, omega)
			}
			data.Update(coef, x, b)
			log.Trace().Int("iteration", data.Iteration).
				Float64("residual", data.ResidualRelative).Msg("fixed point sweep")
		}
	default:
		return ConvergenceData{}, ErrUnknownSolver
	}

	data.Converged = data.ResidualRelative <= s.criteria.Tolerance &&
		data.ResidualMaxRelative <= 10*s.criteria.Tolerance
	log.Debug().Str("solver", s.config.Type.String()).Int("iterations", data.Iteration).
		Bool("converged", data.Converged).Dur("duration", data.Duration).
		Msg("fixed point solve complete")
	return data, nil
}

// sweepRow applies the relaxed update rule to row i:
//
//	xUpdate[i] = omega * (b[i] - sum_{j != i} a[i,j] x[j]) / a[i,i] + (1 - omega) * x[i]
//
// The off-diagonal dot is the full row dot with the diagonal contribution
// removed; the diagonal entry is located by binary search within the row's
// sorted columns and must be stored (checked by Solve).
func sweepRow(a *sparse.CSR, i int, x, xUpdate, b dense.Vector, omega scalar.Scalar) {
	row := a.Row(i)
	cols, vals := row.Columns(), row.Values()
	diagonal := vals[sort.SearchInts(cols, i)]
	offsRowDot := blas.Dusdot(vals, cols, x, 1) - diagonal*x[i]
	xUpdate[i] = omega*(b[i]-offsRowDot)/diagonal + (1-omega)*x[i]
}

// forwardSweep performs one relaxed fixed point sweep over the rows in
// ascending order.  Aliasing xUpdate with x gives the Gauss-Seidel in-place
// behaviour; a distinct xUpdate gives Jacobi.
func forwardSweep(a *sparse.CSR, x, xUpdate, b dense.Vector, omega scalar.Scalar) {
	rows, _ := a.Dims()
	for i := 0; i < rows; i++ {
		sweepRow(a, i, x, xUpdate, b, omega)
	}
}

// backwardSweep is forwardSweep over the rows in descending order.  The
// symmetric configuration runs it after every forward sweep, giving the
// symmetric Gauss-Seidel and SSOR iterations.
func backwardSweep(a *sparse.CSR, x, xUpdate, b dense.Vector, omega scalar.Scalar) {
	rows, _ := a.Dims()
	for i := rows - 1; i >= 0; i-- {
		sweepRow(a, i, x, xUpdate, b, omega)
	}
}
