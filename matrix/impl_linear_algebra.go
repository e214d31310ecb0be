// SPDX-License-Identifier: MIT

// Package matrix: products and transposes over any Matrix.
//
// Each kernel validates its operands first, then takes a flat-slice path
// when every operand is a *Dense and falls back to At/Set otherwise. Errors
// are package sentinels wrapped with the operation name.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opIdentity  = "NewIdentity"
)

// matrixErrorf wraps a non-nil err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a × b in a fresh Dense.
//
// For permutation operands the product is again a permutation and equals
// composition: (a × b)·x applies b first, then a. Zero entries of a are
// skipped, which makes permutation products O(n²).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(n, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i := 0; i < n; i++ {
			out := res.data[i*cols : (i+1)*cols]
			for k, av := range da.data[i*inner : (i+1)*inner] {
				if av == 0 {
					continue
				}
				for j, bv := range db.data[k*cols : (k+1)*cols] {
					out[j] += av * bv
				}
			}
		}
		return res, nil
	}

	var av, bv, acc float64
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			acc = ZeroSum
			for k := 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns mᵀ in a fresh Dense. For a permutation matrix this is
// its inverse.
//
// Errors: ErrNilMatrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j, v := range dm.data[i*cols : (i+1)*cols] {
				res.data[j*rows+i] = v
			}
		}
		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec returns y = m·x. Zero entries of x are skipped, so a one-hot x
// touches a single column.
//
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		for i := range y {
			acc := ZeroSum
			for j, mv := range d.data[i*cols : (i+1)*cols] {
				if x[j] != 0 {
					acc += mv * x[j]
				}
			}
			y[i] = acc
		}
		return y, nil
	}

	var mv float64
	var err error
	for i := range y {
		acc := ZeroSum
		for j := 0; j < cols; j++ {
			if x[j] == 0 {
				continue
			}
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
