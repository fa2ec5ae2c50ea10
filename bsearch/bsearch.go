package bsearch

import "golang.org/x/exp/constraints"

// SearchFunc binary searches the index range [0, n). f(i) must report how the
// target orders relative to the element at index i, and the elements must be
// sorted so that f is Greater, then Equal, then Less as i increases.
//
// It returns the index of an element for which f reported Equal and true.
// Otherwise it returns the insertion point for the target, in [0, n], and
// false. When several elements compare Equal, the one returned is whichever
// midpoint hits first, not necessarily the first or last of them.
func SearchFunc(n int, f func(i int) Ordering) (int, bool) {
	return search(n, f, nil)
}

// search is SearchFunc with an optional hook that sees the candidate
// interval [left, right) before every comparison.
func search(n int, f func(int) Ordering, observe func(left, right int)) (int, bool) {
	left, right := 0, n
	for left < right {
		if observe != nil {
			observe(left, right)
		}
		mid := left + (right-left)/2
		switch cmp := f(mid); {
		case cmp < Equal:
			right = mid
		case cmp > Equal:
			left = mid + 1
		default:
			return mid, true
		}
	}
	return left, false
}

// Search looks for target in seq, which must be sorted in non-descending
// order. It returns the index of an element equal to target and true, or the
// insertion point and false.
func Search[T constraints.Ordered](target T, seq []T) (int, bool) {
	return SearchFunc(len(seq), func(i int) Ordering {
		return Compare(target, seq[i])
	})
}

// SearchCompare is like Search but orders elements with cmp.
func SearchCompare[S ~[]E, E any](target E, seq S, cmp func(a, b E) Ordering) (int, bool) {
	return SearchFunc(len(seq), func(i int) Ordering {
		return cmp(target, seq[i])
	})
}

func SearchComparable[T Comparable[T]](target T, seq []T) (int, bool) {
	return SearchFunc(len(seq), func(i int) Ordering {
		return target.Compare(seq[i])
	})
}
