// Package matrix_test contains unit tests for the Mul/Transpose/MatVec kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rotorcipher/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_FastPath_2x3x2_Correctness(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, got, NewFilledDense(t, 2, 2, []float64{58, 64, 139, 154}))
}

// TestMul_FastPathMatchesFallback checks that hiding the concrete type yields
// the same product.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	a := PermutationDense(t, []int{2, 0, 1, 3})
	b := PermutationDense(t, []int{1, 3, 0, 2})

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, fast, slow)
}

// TestMul_PermutationComposition verifies (A×B)·e_j = A·(B·e_j): B applies first.
func TestMul_PermutationComposition(t *testing.T) {
	permA := []int{2, 0, 1, 3}
	permB := []int{1, 3, 0, 2}
	a := PermutationDense(t, permA)
	b := PermutationDense(t, permB)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	for j := range permB {
		e, err := matrix.NewUnitVector(4, j)
		require.NoError(t, err)
		y, err := matrix.MatVec(ab, e)
		require.NoError(t, err)
		want, _ := matrix.NewUnitVector(4, permA[permB[j]])
		assert.Equal(t, want, y, "column %d", j)
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_Rectangular(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := NewFilledDense(t, 3, 2, []float64{1, 4, 2, 5, 3, 6})

	fast, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, fast, want)

	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, slow, want)

	// input untouched
	CompareExact(t, m, NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6}))
}

// TestTranspose_InvertsPermutation checks P × Pᵀ = I.
func TestTranspose_InvertsPermutation(t *testing.T) {
	p := PermutationDense(t, []int{3, 1, 4, 0, 2})
	pt, err := matrix.Transpose(p)
	require.NoError(t, err)

	prod, err := matrix.Mul(p, pt)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(5)
	require.NoError(t, err)
	CompareExact(t, prod, I)
}

func TestTranspose_Nil(t *testing.T) {
	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := []float64{1, 0, 2}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 16}, y)

	y, err = matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	require.Equal(t, []float64{7, 16}, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
