// Package matrix provides the dense linear-algebra primitives behind the
// rotor cipher: a row-major Dense matrix, multiplication, transposition and
// matrix-vector products, plus validators for permutation matrices and
// one-hot vectors.
//
// What & Why:
//
//	Letters are modelled as one-hot column vectors and every cipher wheel as
//	a square permutation matrix. Composing wheels is matrix multiplication;
//	undoing a wheel is transposition (permutation matrices are orthogonal).
//	The kernels here are generic over the Matrix interface and take a flat
//	fast-path when both operands are *Dense.
//
// Complexity:
//
//	At/Set: O(1) with bounds checking.
//	Mul:    O(r*n*c), zero entries of the left operand are skipped.
//	MatVec: O(r*c).
//	Transpose, Clone: O(r*c).
//
// Errors are package sentinels (ErrOutOfRange, ErrDimensionMismatch,
// ErrNotPermutation, ...) wrapped with an operation tag; match them with
// errors.Is.
package matrix
