package meshing

import "math/bits"

// intIter abstracts the two ways the merge routines need to walk a set of
// plane indices: every interior index in order (the full fast-path mesh),
// or just the set bits of a dilated change mask (incremental remesh).
type intIter interface {
	each(func(int))
}

// bitSet64 iterates the set bits of a uint64, least-significant first,
// via the textbook trailing-zeros trick (spec.md §4.4).
type bitSet64 uint64

func (b bitSet64) each(f func(int)) {
	for rest := uint64(b); rest != 0; rest &= rest - 1 {
		f(bits.TrailingZeros64(rest))
	}
}
