package series

import (
	"github.com/facette/natsort"
)

// SortNatural orders a string-labelled series so that embedded numbers
// compare by value: "Item 2" sorts before "Item 10".
func SortNatural[L ~string](s *Series[L]) {
	s.SortFunc(func(a, b L) int {
		switch {
		case natsort.Compare(string(a), string(b)):
			return -1
		case natsort.Compare(string(b), string(a)):
			return 1
		default:
			return 0
		}
	})
}
