// Package alphabet converts between the 26 lowercase Latin letters and their
// numeric and one-hot representations.
//
// A letter is either a rune in 'a'..'z' or an index in [0,25]; the two are in
// a total bijection. The one-hot encoding of index i is the length-26 vector
// with a single 1 at position i, which is how the cipher engine feeds letters
// through permutation matrices.
//
//	v, _ := alphabet.LetterToVector('c')  // [0 0 1 0 ... 0]
//	r := alphabet.VectorToLetter(v)       // 'c'
//	vs, err := alphabet.WordToVectors("a1c")
//	// err unwraps to ErrInvalidLetter; errors.As gives *LetterError{Letter:'1', Position:1}
//
// Decoding takes the index of the maximum entry and never re-validates
// one-hot-ness: that invariant is upheld by construction upstream.
package alphabet
