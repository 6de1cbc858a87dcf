// Package index provides identity keys and the label-ordered entry sequence
// that together decouple logical position from storage identity.
package index

// Key is the permanent identity of a stored cell. Keys are assigned once at
// insertion and never reused by the same allocator.
type Key uint64

// Allocator hands out strictly increasing keys starting at zero.
// The counter never rewinds, not even when entries are removed.
type Allocator struct {
	next Key
}

// Next returns a fresh key and advances the counter by exactly one.
func (a *Allocator) Next() Key {
	k := a.next
	a.next++
	return k
}

// Peek returns the key the next call to Next will return, which is also
// the number of keys allocated so far.
func (a *Allocator) Peek() Key {
	return a.next
}
