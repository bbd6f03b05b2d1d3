/*
Package blas provides implementations of sparse BLAS (Basic Linear Algebra Subprograms)
level 1 routines used by the sparse matrix arithmetic and the iterative solvers.

See http://www.netlib.org/blas/blast-forum/chapter3.pdf for further information.
*/
package blas
