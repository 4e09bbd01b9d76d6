// SPDX-License-Identifier: MIT

// Package matrix - addressing descriptors.
//
// A matrix is a descriptor (row axis, col axis) into its Storage:
//
//	index(r, c) = row.off(r) + col.off(c)
//	axis.off(i) = start + i*step             (plain axis)
//	axis.off(i) = tab[start + i*step]        (selection axis)
//
// For plain axes this is exactly zeroOffset + r*rowStride + c*colStride with
// zeroOffset = row.start + col.start. Every view transform rewrites
// (n, start, step) in O(1); only selections materialise an offset table, and
// later views over a selection keep indexing that table through start/step,
// so transpose/flip/part/strides stay O(1) on selections too.
package matrix

import "github.com/katalvlaran/lvmat/parallel"

// axis describes one dimension of a layout.
type axis struct {
	n     int   // extent (rows or cols)
	start int   // position of index 0
	step  int   // position delta per index; negative after a flip
	tab   []int // optional offset table (selection); nil means position == offset
	dup   bool  // tab holds an offset more than once
}

// off resolves the backing offset contribution of index i.
func (a axis) off(i int) int {
	p := a.start + i*a.step
	if a.tab == nil {
		return p
	}

	return a.tab[p]
}

// part restricts the axis to [from, from+n).
func (a axis) part(from, n int) axis {
	a.start += from * a.step
	a.n = n

	return a
}

// flip reverses the axis in O(1).
func (a axis) flip() axis {
	if a.n > 0 {
		a.start += (a.n - 1) * a.step
		a.step = -a.step
	}

	return a
}

// strided keeps every k-th index; extent becomes ceil(n/k).
func (a axis) strided(k int) axis {
	if a.n > 0 {
		a.n = (a.n-1)/k + 1
	}
	a.step *= k

	return a
}

// selected builds a selection axis over the given indices (already validated).
// Repeated offsets mark the axis dup; part/flip/strides keep the mark.
func (a axis) selected(idx []int) axis {
	tab := make([]int, len(idx))
	seen := make(map[int]struct{}, len(idx))
	var dup bool
	for i, v := range idx {
		tab[i] = a.off(v)
		if _, ok := seen[tab[i]]; ok {
			dup = true
		}
		seen[tab[i]] = struct{}{}
	}

	return axis{n: len(idx), start: 0, step: 1, tab: tab, dup: dup}
}

// writeChunks returns the chunks a kernel writing along a (n indices of it,
// work units) runs on. An axis that repeats an offset runs as one chunk so
// no two tasks store to the same cell.
func writeChunks(s parallel.Settings, a axis, n, work int) []parallel.Range {
	chunks := s.Chunks(n, work)
	if a.dup && len(chunks) > 1 {
		return []parallel.Range{{Lo: 0, Hi: n}}
	}

	return chunks
}

// bounds returns the minimum and maximum offset over all indices (n > 0).
func (a axis) bounds() (lo, hi int) {
	if a.tab == nil {
		first, last := a.start, a.start+(a.n-1)*a.step
		if first > last {
			first, last = last, first
		}
		return first, last
	}
	lo, hi = a.off(0), a.off(0)
	var i, o int
	for i = 1; i < a.n; i++ {
		o = a.off(i)
		if o < lo {
			lo = o
		}
		if o > hi {
			hi = o
		}
	}

	return lo, hi
}

// same reports whether two axes address identical offsets index by index.
func (a axis) same(b axis) bool {
	if a.n != b.n || a.start != b.start || a.step != b.step || len(a.tab) != len(b.tab) {
		return false
	}
	if len(a.tab) == 0 {
		return true
	}

	return &a.tab[0] == &b.tab[0]
}
