package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rotorcipher/matrix"
)

// ExampleMul composes two 3×3 permutations and applies the result to a
// one-hot vector. The right operand acts first.
func ExampleMul() {
	// shift: 0→1, 1→2, 2→0
	shift, _ := matrix.NewDense(3, 3)
	_ = shift.Set(1, 0, 1)
	_ = shift.Set(2, 1, 1)
	_ = shift.Set(0, 2, 1)
	// swap: 0↔1
	swap, _ := matrix.NewDense(3, 3)
	_ = swap.Set(1, 0, 1)
	_ = swap.Set(0, 1, 1)
	_ = swap.Set(2, 2, 1)

	composed, _ := matrix.Mul(shift, swap) // swap first, then shift
	e0, _ := matrix.NewUnitVector(3, 0)
	y, _ := matrix.MatVec(composed, e0)
	fmt.Println(y)
	// Output:
	// [0 0 1]
}

// ExampleTranspose shows that the transpose undoes a permutation.
func ExampleTranspose() {
	shift, _ := matrix.NewDense(3, 3)
	_ = shift.Set(1, 0, 1)
	_ = shift.Set(2, 1, 1)
	_ = shift.Set(0, 2, 1)

	back, _ := matrix.Transpose(shift)
	e1, _ := matrix.NewUnitVector(3, 1)
	fwd, _ := matrix.MatVec(shift, e1)
	y, _ := matrix.MatVec(back, fwd)
	fmt.Println(fwd, y)
	// Output:
	// [0 0 1] [0 1 0]
}
