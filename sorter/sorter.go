package sorter

import (
	"golang.org/x/exp/constraints"
)

// Stats records the work done by a single BubbleSort call.
type Stats struct {
	Passes      uint64
	Comparisons uint64
	Swaps       uint64
}

// BubbleSort sorts s in ascending order in place. Only a strictly greater
// left element is swapped, so equal elements keep their relative order.
func BubbleSort[T constraints.Ordered](s []T) Stats {
	var st Stats
	for {
		st.Passes++
		swapped := false
		for i := 1; i < len(s); i++ {
			st.Comparisons++
			if s[i-1] > s[i] {
				s[i-1], s[i] = s[i], s[i-1]
				st.Swaps++
				swapped = true
			}
		}
		if !swapped {
			return st
		}
	}
}

// IsSorted reports whether no adjacent pair of s is inverted.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
