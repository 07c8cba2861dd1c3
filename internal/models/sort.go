package models

import (
	"golang.org/x/exp/slices"
)

// SortedUniqueIDs returns ids ascending without duplicates. Rows locked in this
// order never deadlock against each other.
func SortedUniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
