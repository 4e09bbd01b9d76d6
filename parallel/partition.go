// SPDX-License-Identifier: MIT

package parallel

import "golang.org/x/sys/cpu"

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns Hi-Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Split partitions [0, n) into min(parts, n) contiguous ranges of n/parts
// elements each; the last range absorbs the remainder.
// Returns nil when n <= 0 or parts <= 0.
//
// Complexity: O(parts).
func Split(n, parts int) []Range {
	if n <= 0 || parts <= 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	k := n / parts
	out := make([]Range, parts)
	var i int
	for i = 0; i < parts; i++ {
		out[i] = Range{Lo: i * k, Hi: (i + 1) * k}
	}
	out[parts-1].Hi = n // remainder goes to the last chunk

	return out
}

// Slot is a cache-line padded holder for one chunk's partial result, so
// neighbouring workers do not contend on the same line while writing.
type Slot[P any] struct {
	_     cpu.CacheLinePad
	Value P
	Set   bool // false when the chunk produced nothing (e.g. no predicate match)
	_     cpu.CacheLinePad
}

// Fold combines the set slots in ascending chunk order.
// ok is false when no slot was set.
func Fold[P any](slots []Slot[P], combine func(acc, next P) P) (acc P, ok bool) {
	for i := range slots {
		if !slots[i].Set {
			continue
		}
		if !ok {
			acc, ok = slots[i].Value, true
			continue
		}
		acc = combine(acc, slots[i].Value)
	}

	return acc, ok
}
