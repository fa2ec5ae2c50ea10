package bsearch

import "golang.org/x/exp/constraints"

// Comparable is implemented by types that order themselves.
type Comparable[T any] interface {
	Compare(other T) Ordering
}

// Compare orders a relative to b using the type's native order. NaN is equal
// to itself and sorts before every other floating-point value.
func Compare[T constraints.Ordered](a, b T) Ordering {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return Equal
	case aNaN:
		return Less
	case bNaN:
		return Greater
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func isNaN[T constraints.Ordered](x T) bool {
	return x != x
}

// CompareBytes orders byte slices lexicographically.
func CompareBytes(a, b []byte) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return Less
		}
		if a[i] > b[i] {
			return Greater
		}
	}

	// shared prefix is equal, the shorter slice sorts first
	return Compare(len(a), len(b))
}
