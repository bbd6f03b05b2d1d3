// Package dense provides the dense vector and row-major dense matrix types
// consumed by the direct solver and used as the right hand side and solution
// storage for the iterative solvers.
package dense

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/tdenniston/sparla/scalar"
)

// Vector is a runtime sized sequence of scalars.
type Vector []scalar.Scalar

// NewVector creates a zeroed vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns a deep copy of the vector.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Add sets v = v + u elementwise. Add will panic if the vectors differ in
// length.
func (v Vector) Add(u Vector) {
	if len(v) != len(u) {
		panic(mat.ErrShape)
	}
	floats.Add(v, u)
}

// Sub sets v = v - u elementwise. Sub will panic if the vectors differ in
// length.
func (v Vector) Sub(u Vector) {
	if len(v) != len(u) {
		panic(mat.ErrShape)
	}
	floats.Sub(v, u)
}

// Scale sets v = alpha * v.
func (v Vector) Scale(alpha scalar.Scalar) {
	floats.Scale(alpha, v)
}

// Div sets v = v / alpha. Division by zero is not trapped.
func (v Vector) Div(alpha scalar.Scalar) {
	floats.Scale(1/alpha, v)
}

// AddScaled sets v = v + alpha * u.
func (v Vector) AddScaled(alpha scalar.Scalar, u Vector) {
	if len(v) != len(u) {
		panic(mat.ErrShape)
	}
	floats.AddScaled(v, alpha, u)
}

// Dot returns the inner product of v and u.
func (v Vector) Dot(u Vector) scalar.Scalar {
	if len(v) != len(u) {
		panic(mat.ErrShape)
	}
	return floats.Dot(v, u)
}

// Norm returns the lp-norm of the vector for p >= 1. p = math.Inf(1) gives
// the maximum absolute value.
func (v Vector) Norm(p float64) scalar.Scalar {
	return floats.Norm(v, p)
}

// L2Norm returns the Euclidean norm.
func (v Vector) L2Norm() scalar.Scalar {
	return floats.Norm(v, 2)
}

// LinfNorm returns the maximum absolute element.
func (v Vector) LinfNorm() scalar.Scalar {
	return floats.Norm(v, math.Inf(1))
}

// Mean returns the arithmetic mean of the elements, zero for an empty vector.
func (v Vector) Mean() scalar.Scalar {
	if len(v) == 0 {
		return 0
	}
	return floats.Sum(v) / scalar.Scalar(len(v))
}

// Unit scales the vector to unit Euclidean length and returns it. A zero
// vector is returned unchanged.
func (v Vector) Unit() Vector {
	norm := v.L2Norm()
	if norm == 0 {
		return v
	}
	floats.Scale(1/norm, v)
	return v
}

// Cross returns the cross product of two 3-vectors. Cross will panic if
// either vector is not of length 3.
func Cross(a, b Vector) Vector {
	if len(a) != 3 || len(b) != 3 {
		panic(mat.ErrShape)
	}
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Project returns the projection of a onto b, (a.b / b.b) b. A zero b yields
// a zero vector of matching length.
func Project(a, b Vector) Vector {
	if len(a) != len(b) {
		panic(mat.ErrShape)
	}
	p := make(Vector, len(b))
	bb := floats.Dot(b, b)
	if bb == 0 {
		return p
	}
	copy(p, b)
	floats.Scale(floats.Dot(a, b)/bb, p)
	return p
}

// ProjectTangent returns the component of a orthogonal to b, a - proj_b(a).
func ProjectTangent(a, b Vector) Vector {
	p := Project(a, b)
	t := a.Clone()
	floats.Sub(t, p)
	return t
}
