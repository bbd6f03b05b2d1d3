package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/dense"
	"github.com/tdenniston/sparla/scalar"
)

// LowerUpperSolver solves dense linear systems by in-place lower-upper
// factorisation with optional partial pivoting.  The strict lower triangle of
// the factorised matrix holds the unit-lower factor (implicit unit diagonal)
// and the upper triangle, diagonal included, the upper factor.
type LowerUpperSolver struct {
	config Config

	factorised bool
	lu         *dense.Matrix
	pivots     []int
}

// NewLowerUpperSolver creates a direct solver from the configuration.
func NewLowerUpperSolver(config Config) *LowerUpperSolver {
	return &LowerUpperSolver{config: config}
}

// Factorise decomposes a copy of the matrix into its lower-upper factors,
// pivoting rows when configured.  It reports false for a degenerate matrix,
// detected by a pivot magnitude below the configured factorisation
// tolerance; the solver is left unfactorised in that case.
func (s *LowerUpperSolver) Factorise(a *dense.Matrix) bool {
	r, c := a.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}

	s.factorised = false
	s.lu = a.Clone()
	if s.config.Pivot {
		s.pivots = make([]int, r)
		for i := range s.pivots {
			s.pivots[i] = i
		}
	}

	for row := 0; row < r; row++ {
		if s.config.Pivot {
			// Find the largest remaining column value to pivot on.
			max := 0.0
			iMax := row
			for sweep := row; sweep < r; sweep++ {
				if absA := math.Abs(s.lu.At(sweep, row)); scalar.NearlyGreater(absA, max) {
					max = absA
					iMax = sweep
				}
			}
			if iMax != row {
				s.pivots[row], s.pivots[iMax] = s.pivots[iMax], s.pivots[row]
				s.lu.SwapRows(row, iMax)
			}
		}

		// Degeneracy check.
		if math.Abs(s.lu.At(row, row)) < s.config.FactorTolerance {
			log.Debug().Int("row", row).Msg("factorisation hit a degenerate pivot")
			return false
		}

		// Eliminate below the pivot, storing the multipliers in place.
		pivotRow := s.lu.Row(row)
		for sweep := row + 1; sweep < r; sweep++ {
			target := s.lu.Row(sweep)
			target[row] /= pivotRow[row]
			multiplier := target[row]
			for col := row + 1; col < c; col++ {
				target[col] -= multiplier * pivotRow[col]
			}
		}
	}

	s.factorised = true
	return true
}

// Solve factorises the coefficient matrix and solves A x = b by forward and
// backward substitution, writing the solution into x.  The coefficient
// matrix must be a *dense.Matrix; handing the direct solver a sparse matrix
// is a caller error.  A degenerate factorisation is a numerical outcome, not
// an error: the returned data is unconverged with a zero iteration count.
func (s *LowerUpperSolver) Solve(a mat.Matrix, x, b dense.Vector) (ConvergenceData, error) {
	coef, ok := a.(*dense.Matrix)
	if !ok {
		return ConvergenceData{}, ErrIncompatibleMatrix
	}
	r, c := coef.Dims()
	if r != c || len(x) != r || len(b) != r {
		return ConvergenceData{}, ErrDimension
	}

	data := NewConvergenceData()
	if !s.Factorise(coef) {
		return data, nil
	}

	s.substitute(x, b)
	data.Update(coef, x, b)
	data.Converged = true

	log.Debug().Str("solver", s.config.Type.String()).
		Float64("residual", data.Residual).Msg("direct solve complete")
	return data, nil
}

// substitute performs the forward then backward substitution through the
// factors, applying the row permutation to b when pivoting was used.
func (s *LowerUpperSolver) substitute(x, b dense.Vector) {
	n := len(b)

	for i := 0; i < n; i++ {
		if s.config.Pivot {
			x[i] = b[s.pivots[i]]
		} else {
			x[i] = b[i]
		}
		row := s.lu.Row(i)
		for j := 0; j < i; j++ {
			x[i] -= row[j] * x[j]
		}
	}

	for i := n - 1; i >= 0; i-- {
		row := s.lu.Row(i)
		for j := i + 1; j < n; j++ {
			x[i] -= row[j] * x[j]
		}
		x[i] /= row[i]
	}
}
