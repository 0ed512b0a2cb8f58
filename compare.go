package vec

import "golang.org/x/exp/constraints"

// Comparisons are package-level functions because Go methods cannot
// introduce their own type constraints: Equal needs comparable elements,
// the ordering functions need ordered ones. For ordered element types the
// two agree — Compare(a, b) == 0 exactly when Equal(a, b).

// Equal reports whether a and b have the same length and element-wise
// equal contents.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically, element-wise: -1 if a sorts
// before b, +1 if after, 0 if equal. A strict prefix sorts before the
// longer sequence.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		av, bv := a.Get(i), b.Get(i)
		switch {
		case av < bv:
			return -1
		case bv < av:
			return +1
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return +1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a sorts before b or equals it.
func LessEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts strictly after b.
func Greater[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// GreaterEqual reports whether a sorts after b or equals it.
func GreaterEqual[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}
