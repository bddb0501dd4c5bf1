// anchor.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Anchor type and the bounded max-heap
// that orders anchors by shadow upper bound for best-first
// enumeration. No ecosystem priority-queue library was
// found anywhere in the retrieval corpus (see DESIGN.md), so the
// heap is built on the standard container/heap interface over a
// fixed-capacity slice, exactly as container/heap's own
// documentation examples do.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/


package equicore

import "container/heap"

// AnchorHeapCapacity is the heap's fixed capacity: 15x15 squares,
// times two for the horizontal and vertical scan of each.
const AnchorHeapCapacity = BoardSize * BoardSize * 2

// Anchor is a single candidate move-generation starting point:
// a square, a direction, and the shadow estimator's upper bound
// on the equity achievable through it.
type Anchor struct {
	Row, Col       int
	Horizontal     bool
	LastAnchorCol  int
	UpperBoundEq   Equity
	UpperBoundScore Equity
	ScanOrder      int
}

// anchorHeap implements container/heap.Interface, ordering by
// (UpperBoundEq DESC, ScanOrder ASC) and refusing to grow past
// AnchorHeapCapacity: an overflow is a programming error, not a
// silent truncation.
type anchorHeap []Anchor

func (h anchorHeap) Len() int { return len(h) }

func (h anchorHeap) Less(i, j int) bool {
	if h[i].UpperBoundEq != h[j].UpperBoundEq {
		return h[i].UpperBoundEq > h[j].UpperBoundEq
	}
	return h[i].ScanOrder < h[j].ScanOrder
}

func (h anchorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *anchorHeap) Push(x interface{}) {
	if len(*h) >= AnchorHeapCapacity {
		panic("equicore: anchor heap overflow")
	}
	*h = append(*h, x.(Anchor))
}

func (h *anchorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// AnchorHeap is a bounded max-heap of Anchor values.
type AnchorHeap struct {
	h anchorHeap
}

// NewAnchorHeap returns an empty anchor heap.
func NewAnchorHeap() *AnchorHeap {
	return &AnchorHeap{h: make(anchorHeap, 0, AnchorHeapCapacity)}
}

// Insert adds an anchor unconditionally; the heap invariant is
// restored by a single Build call after all inserts.
func (ah *AnchorHeap) Insert(a Anchor) {
	if len(ah.h) >= AnchorHeapCapacity {
		panic("equicore: anchor heap overflow")
	}
	ah.h = append(ah.h, a)
}

// Build restores the heap invariant in linear time after a batch
// of unconditional Inserts.
func (ah *AnchorHeap) Build() {
	heap.Init(&ah.h)
}

// Len reports the number of anchors remaining.
func (ah *AnchorHeap) Len() int { return len(ah.h) }

// ExtractMax removes and returns the highest-priority anchor.
func (ah *AnchorHeap) ExtractMax() Anchor {
	return heap.Pop(&ah.h).(Anchor)
}
