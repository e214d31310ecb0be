// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/structure checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate at most O(n) scratch.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape → Structure).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil *Dense hidden in the interface is still nil for our purposes.
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePermutation checks that m is a square permutation matrix: every
// entry is exactly 0 or 1 and every row and every column holds exactly one 1.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: scan rows i→j, counting ones per row and per column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotPermutation (wrapped with the
// offending row/column).
// Complexity: Time O(n²), Space O(n).
func ValidatePermutation(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	colOnes := make([]int, n)
	var (
		i, j    int
		rowOnes int
		v       float64
		err     error
	)
	for i = 0; i < n; i++ {
		rowOnes = 0
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidatePermutation", err)
			}
			switch v {
			case 0:
			case 1:
				rowOnes++
				colOnes[j]++
			default:
				return validatorErrorf("ValidatePermutation",
					fmt.Errorf("entry (%d,%d)=%g: %w", i, j, v, ErrNotPermutation))
			}
		}
		if rowOnes != 1 {
			return validatorErrorf("ValidatePermutation",
				fmt.Errorf("row %d has %d ones: %w", i, rowOnes, ErrNotPermutation))
		}
	}
	for j = 0; j < n; j++ {
		if colOnes[j] != 1 {
			return validatorErrorf("ValidatePermutation",
				fmt.Errorf("column %d has %d ones: %w", j, colOnes[j], ErrNotPermutation))
		}
	}

	return nil
}

// ValidateOneHot checks that x has length n, exactly one entry equal to 1
// and all others equal to 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNotOneHot.
// Complexity: O(n).
func ValidateOneHot(x []float64, n int) error {
	if err := ValidateVecLen(x, n); err != nil {
		return err
	}
	ones := 0
	for i, v := range x {
		switch v {
		case 0:
		case 1:
			ones++
		default:
			return validatorErrorf("ValidateOneHot",
				fmt.Errorf("entry %d=%g: %w", i, v, ErrNotOneHot))
		}
	}
	if ones != 1 {
		return validatorErrorf("ValidateOneHot",
			fmt.Errorf("%d ones: %w", ones, ErrNotOneHot))
	}

	return nil
}
