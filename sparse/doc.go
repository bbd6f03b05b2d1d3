/*
Package sparse provides the Compressed Sparse Row (CSR) matrix engine: the
data layout, row and element views, ordered insertion and erasure with offset
bookkeeping, structural arithmetic and the sparse matrix-dense vector product.

Matrices implement the gonum mat.Matrix interface so they may be used with
gonum functions accepting Matrix types.  Programming errors such as shape
mismatches or out-of-range access panic with the gonum mat error sentinels;
invalid raw construction data is reported through error returns.
*/
package sparse
