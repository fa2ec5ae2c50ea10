package bsearch

// Ordering is the outcome of a three-way comparison.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// OrderingOf maps a negative/zero/positive comparator result to an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse swaps Less and Greater. It turns cmp(a, b) into cmp(b, a).
func (o Ordering) Reverse() Ordering {
	return -OrderingOf(int(o))
}

func (o Ordering) String() string {
	switch {
	case o < Equal:
		return "Less"
	case o > Equal:
		return "Greater"
	default:
		return "Equal"
	}
}
