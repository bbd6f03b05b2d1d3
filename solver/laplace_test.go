package solver

import (
	"github.com/tdenniston/sparla/dense"
	"github.com/tdenniston/sparla/scalar"
	"github.com/tdenniston/sparla/sparse"
)

// laplace2D constructs the linear system for a 2D Laplace problem on a unit
// equi-spaced nx * nx grid with a zero Dirichlet boundary: the classic
// five-point stencil with 4 on the diagonal and -1 for each in-grid
// neighbour, a constant right hand side of (1/(nx-1))^2 and a zero initial
// guess.
func laplace2D(nx int) (a *sparse.CSR, x, b dense.Vector) {
	n := nx * nx
	a = sparse.NewCSRWithShape(n, n)
	a.Reserve(n, 5*n)
	x = dense.NewVector(n)
	b = dense.NewVector(n)

	deltaX := 1.0 / scalar.Scalar(nx-1)
	for node := 0; node < n; node++ {
		ix, iy := node%nx, node/nx

		a.Set(node, node, 4)
		if ix != 0 {
			a.Set(node, node-1, -1)
		}
		if ix != nx-1 {
			a.Set(node, node+1, -1)
		}
		if iy != 0 {
			a.Set(node, node-nx, -1)
		}
		if iy != nx-1 {
			a.Set(node, node+nx, -1)
		}

		b[node] = deltaX * deltaX
	}
	return a, x, b
}
