// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Constructors for the shapes the cipher needs: zero, identity and unit
// (one-hot) vectors.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewUnitVector returns the length-n vector with a single 1 at index i
// (the one-hot encoding of i).
// Errors: ErrInvalidDimensions if n <= 0, ErrOutOfRange if i ∉ [0,n).
// Complexity: O(n).
func NewUnitVector(n, i int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if i < 0 || i >= n {
		return nil, ErrOutOfRange
	}
	v := make([]float64, n)
	v[i] = 1.0

	return v, nil
}
