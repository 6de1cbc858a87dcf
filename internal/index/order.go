package index

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Entry is one position of the logical sequence: a label and the key of
// the cell it refers to.
type Entry[L constraints.Ordered] struct {
	Label L
	Key   Key
}

// Order is the logical, user-visible sequence of entries. Positions in an
// Order are the logical indices exposed by a series.
type Order[L constraints.Ordered] struct {
	entries []Entry[L]
}

// NewOrder creates an empty Order with room for capacity entries.
func NewOrder[L constraints.Ordered](capacity int) *Order[L] {
	if capacity < 0 {
		capacity = 0
	}
	return &Order[L]{entries: make([]Entry[L], 0, capacity)}
}

// Len returns the number of entries.
func (o *Order[L]) Len() int {
	return len(o.entries)
}

// Append adds an entry at the end of the sequence.
func (o *Order[L]) Append(label L, key Key) {
	o.entries = append(o.entries, Entry[L]{Label: label, Key: key})
}

// At returns the entry at position i.
func (o *Order[L]) At(i int) (Entry[L], bool) {
	if i < 0 || i >= len(o.entries) {
		return Entry[L]{}, false
	}
	return o.entries[i], true
}

// RemoveAt deletes the entry at position i, shifting later entries down.
func (o *Order[L]) RemoveAt(i int) (Entry[L], bool) {
	e, ok := o.At(i)
	if !ok {
		return e, false
	}
	o.entries = slices.Delete(o.entries, i, i+1)
	return e, true
}

// Position returns the logical position of key, or -1.
func (o *Order[L]) Position(key Key) int {
	return slices.IndexFunc(o.entries, func(e Entry[L]) bool { return e.Key == key })
}

// Clone returns an independent copy of the sequence.
func (o *Order[L]) Clone() *Order[L] {
	return &Order[L]{entries: slices.Clone(o.entries)}
}

// Reset drops all entries, keeping the backing array.
func (o *Order[L]) Reset() {
	clear(o.entries)
	o.entries = o.entries[:0]
}

// Entries returns a copy of the entries in logical order.
func (o *Order[L]) Entries() []Entry[L] {
	return slices.Clone(o.entries)
}

// Labels returns the labels in logical order.
func (o *Order[L]) Labels() []L {
	labels := make([]L, len(o.entries))
	for i, e := range o.entries {
		labels[i] = e.Label
	}
	return labels
}

// Keys returns the keys in logical order.
func (o *Order[L]) Keys() []Key {
	keys := make([]Key, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.Key
	}
	return keys
}

// Sort orders entries by ascending label. With stable set, entries with
// equal labels keep their relative order; otherwise their order is unspecified.
func (o *Order[L]) Sort(stable bool) {
	o.SortFunc(CompareLabels[L], stable)
}

// SortDesc orders entries by descending label.
func (o *Order[L]) SortDesc(stable bool) {
	o.SortFunc(func(a, b L) int { return CompareLabels(b, a) }, stable)
}

// SortFunc orders entries using cmp on their labels.
func (o *Order[L]) SortFunc(cmp func(a, b L) int, stable bool) {
	byLabel := func(a, b Entry[L]) int { return cmp(a.Label, b.Label) }
	if stable {
		slices.SortStableFunc(o.entries, byLabel)
		return
	}
	slices.SortFunc(o.entries, byLabel)
}

// CompareLabels is the natural total order of labels. NaN float labels
// sort before every other value.
func CompareLabels[L constraints.Ordered](a, b L) int {
	aNaN, bNaN := a != a, b != b //nolint:gocritic // only NaN is unequal to itself
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
