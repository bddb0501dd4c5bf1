// lexicon.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the lexicon accessor: a flat array of
// 32-bit trie nodes encoding both a DAWG (for cross-set and
// validity checks) and a GADDAG (for move generation), sharing
// the same node pool and sibling-list encoding described in the
// external interface. Node 0's arc points at the DAWG root; node
// 1's arc points at the GADDAG root.

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

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/golang-lru/simplelru"
)

const (
	tileShift       = 24
	acceptsBit      = uint32(1) << 23
	endOfListBit    = uint32(1) << 22
	arcIndexMask    = uint32(1)<<22 - 1
	letterSetsCache = 4096
)

// Lexicon holds the node pool shared by a DAWG and a GADDAG, as
// described in the external interface format: a flat array of
// 32-bit words, bits 31..24 tile, bit 23 accepts, bit 22
// end-of-sibling-list, bits 21..0 arc index.
type Lexicon struct {
	nodes     []uint32
	dawgRoot  uint32
	gaddagRoot uint32
	// sets caches LetterSets(nodeIndex) results, since the
	// cross-set engine repeatedly rescans the same sibling lists
	// for squares on a given row.
	sets *letterSetCache
}

// letterSetCacheEntry is the cached result of LetterSets.
type letterSetCacheEntry struct {
	accept, extension LetterSet
}

// letterSetCache wraps a simplelru.LRU keyed by node index: a
// per-node sibling-list decode cache used by the cross-set engine.
type letterSetCache struct {
	lru *simplelru.LRU
}

func newLetterSetCache(size int) *letterSetCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &letterSetCache{lru: lru}
}

func (c *letterSetCache) lookup(nodeIndex uint32, fetch func(uint32) (LetterSet, LetterSet)) (LetterSet, LetterSet) {
	if v, ok := c.lru.Get(nodeIndex); ok {
		e := v.(letterSetCacheEntry)
		return e.accept, e.extension
	}
	accept, extension := fetch(nodeIndex)
	c.lru.Add(nodeIndex, letterSetCacheEntry{accept, extension})
	return accept, extension
}

func tileOf(word uint32) MachineLetter { return MachineLetter(word >> tileShift) }
func acceptsOf(word uint32) bool       { return word&acceptsBit != 0 }
func isEndOfListOf(word uint32) bool   { return word&endOfListBit != 0 }
func arcOf(word uint32) uint32         { return word & arcIndexMask }

// NewLexicon wraps a node pool already decoded into memory (for
// example via LoadLexicon).
func NewLexicon(nodes []uint32) (*Lexicon, error) {
	if len(nodes) < 2 {
		return nil, fmt.Errorf("equicore: lexicon must have at least 2 root nodes, got %d", len(nodes))
	}
	lx := &Lexicon{
		nodes:      nodes,
		dawgRoot:   arcOf(nodes[0]),
		gaddagRoot: arcOf(nodes[1]),
		sets:       newLetterSetCache(letterSetsCache),
	}
	return lx, nil
}

// LoadLexicon reads a lexicon from its on-disk format: a flat,
// little-endian array of 32-bit node words with no header.
func LoadLexicon(data []byte) (*Lexicon, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("equicore: lexicon byte length %d is not a multiple of 4", len(data))
	}
	n := len(data) / 4
	nodes := make([]uint32, n)
	for i := 0; i < n; i++ {
		nodes[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return NewLexicon(nodes)
}

// DawgRoot returns the node index at which DAWG traversals begin.
func (lx *Lexicon) DawgRoot() uint32 { return lx.dawgRoot }

// GaddagRoot returns the node index at which GADDAG traversals
// begin.
func (lx *Lexicon) GaddagRoot() uint32 { return lx.gaddagRoot }

// findSibling scans the sibling list starting at nodeIndex for a
// node whose tile matches letter, returning its node index. Arc
// index 0 is the reserved "no children" null pointer (node
// indices 0 and 1 are header words, not sibling-list entries), so
// it always yields an empty scan rather than reading the header.
func (lx *Lexicon) findSibling(nodeIndex uint32, letter MachineLetter) (uint32, bool) {
	if nodeIndex == 0 {
		return 0, false
	}
	idx := nodeIndex
	for {
		w := lx.nodes[idx]
		if tileOf(w) == letter {
			return idx, true
		}
		if isEndOfListOf(w) {
			return 0, false
		}
		idx++
	}
}

// FollowArc scans the sibling list starting at node_index for a
// node matching letter, and returns its arc index, or 0 if no
// such sibling exists.
func (lx *Lexicon) FollowArc(nodeIndex uint32, letter MachineLetter) uint32 {
	idx, ok := lx.findSibling(nodeIndex, letter)
	if !ok {
		return 0
	}
	return arcOf(lx.nodes[idx])
}

// LetterAccepts reports whether the sibling matching letter,
// starting the scan at node_index, has its accepts flag set.
func (lx *Lexicon) LetterAccepts(nodeIndex uint32, letter MachineLetter) bool {
	idx, ok := lx.findSibling(nodeIndex, letter)
	if !ok {
		return false
	}
	return acceptsOf(lx.nodes[idx])
}

// LetterSets scans the sibling list starting at node_index,
// returning the set of accepting letters and the set of all
// (non-separator) letters present.
func (lx *Lexicon) LetterSets(nodeIndex uint32) (accept, extension LetterSet) {
	return lx.sets.lookup(nodeIndex, lx.computeLetterSets)
}

func (lx *Lexicon) computeLetterSets(nodeIndex uint32) (accept, extension LetterSet) {
	if nodeIndex == 0 {
		return
	}
	idx := nodeIndex
	for {
		w := lx.nodes[idx]
		t := tileOf(w)
		if t != Separator {
			extension = extension.With(t)
			if acceptsOf(w) {
				accept = accept.With(t)
			}
		}
		if isEndOfListOf(w) {
			return
		}
		idx++
	}
}

// IsValidWord traverses the DAWG from its root following each
// letter in turn, succeeding only if the terminal sibling's
// accepts flag is set.
func (lx *Lexicon) IsValidWord(letters []MachineLetter) bool {
	if len(letters) == 0 {
		return false
	}
	node := lx.dawgRoot
	var accepts bool
	for _, l := range letters {
		idx, ok := lx.findSibling(node, l.Unblank())
		if !ok {
			return false
		}
		w := lx.nodes[idx]
		accepts = acceptsOf(w)
		node = arcOf(w)
	}
	return accepts
}
