// bag.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements TileSet and Bag: the letter
// distribution and per-letter score table used to seed a shuffled
// draw pool for the outer game loop. The core generator itself
// never touches a Bag; it only ever sees a bare tile count.

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
	"fmt"
	"math/rand"
	"strings"
)

// Tile is a single physical tile: the machine letter it carries
// (a blank is Separator) and its point value in eighths, already
// scaled the way Equity arithmetic expects.
type Tile struct {
	Letter MachineLetter
	Score  Equity
}

// TileSet is a static prototype: the full distribution of tiles
// for one language/board variant, used to stock fresh Bags.
// MachineLetter only encodes the 26-letter English alphabet, so
// this module carries only variants expressible in that alphabet.
type TileSet struct {
	Tiles []Tile
	Size  int
}

// initTileSet builds a tile set from per-letter counts and
// scores, indexed 0 (blank) and 1..26 (A..Z).
func initTileSet(counts [NumLetters + 1]int, scores [NumLetters + 1]Equity) *TileSet {
	numTiles := 0
	for _, c := range counts {
		numTiles += c
	}
	tiles := make([]Tile, 0, numTiles)
	for l := 0; l <= NumLetters; l++ {
		for i := 0; i < counts[l]; i++ {
			tiles = append(tiles, Tile{Letter: MachineLetter(l), Score: scores[l]})
		}
	}
	return &TileSet{Tiles: tiles, Size: numTiles}
}

// initEnglishTileSet creates the standard English tile set, with
// scores pre-multiplied by EighthsPerPoint to match ScoreOf.
func initEnglishTileSet() *TileSet {
	var counts [NumLetters + 1]int
	counts[0] = 2 // blanks
	letterCounts := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1,
	}
	for r, n := range letterCounts {
		counts[MachineLetterFromRune(r)] = n
	}
	var scores [NumLetters + 1]Equity
	for l := 1; l <= NumLetters; l++ {
		scores[l] = TileScoresEighths[l]
	}
	return initTileSet(counts, scores)
}

// EnglishTileSet is the standard English tile set.
var EnglishTileSet = initEnglishTileSet()

// initExploTileSet creates the "Explo" English tile set: a
// lower-variance distribution with different letter scores, kept
// as an alternate tile set alongside EnglishTileSet.
func initExploTileSet() *TileSet {
	var counts [NumLetters + 1]int
	counts[0] = 2
	letterCounts := map[rune]int{
		'E': 12, 'A': 11, 'S': 9, 'O': 7, 'I': 6,
		'R': 6, 'N': 5, 'L': 5, 'T': 4, 'U': 4,
		'D': 4, 'M': 3, 'G': 3, 'C': 3, 'H': 2,
		'Y': 2, 'P': 2, 'B': 2, 'K': 1, 'W': 1,
		'F': 1, 'X': 1, 'V': 1, 'J': 1, 'Z': 1,
		'Q': 1,
	}
	letterScores := map[rune]int{
		'I': 1, 'O': 1, 'S': 1, 'A': 1, 'E': 1,
		'T': 2, 'H': 2, 'Y': 2, 'M': 2, 'U': 2,
		'D': 2, 'N': 2, 'L': 2, 'R': 2, 'P': 2,
		'K': 3, 'B': 3, 'G': 3, 'C': 3, 'F': 3,
		'W': 4, 'X': 5, 'V': 5, 'J': 6, 'Z': 6,
		'Q': 12,
	}
	for r, n := range letterCounts {
		counts[MachineLetterFromRune(r)] = n
	}
	var scores [NumLetters + 1]Equity
	for r, s := range letterScores {
		scores[MachineLetterFromRune(r)] = Equity(s) * EighthsPerPoint
	}
	return initTileSet(counts, scores)
}

// ExploTileSet is the alternate "Explo" English tile set.
var ExploTileSet = initExploTileSet()

// Bag is a shuffled pool of undrawn tiles, copied from a TileSet
// at the start of a game.
type Bag struct {
	Contents []Tile
}

// NewBag makes a freshly shuffled bag from a tile set.
func NewBag(tileSet *TileSet) *Bag {
	bag := &Bag{Contents: make([]Tile, len(tileSet.Tiles))}
	copy(bag.Contents, tileSet.Tiles)
	rand.Shuffle(len(bag.Contents), func(i, j int) {
		bag.Contents[i], bag.Contents[j] = bag.Contents[j], bag.Contents[i]
	})
	return bag
}

// DrawTile pops one tile from the bag, or returns (Tile{}, false)
// if it is empty.
func (bag *Bag) DrawTile() (Tile, bool) {
	n := len(bag.Contents)
	if n == 0 {
		return Tile{}, false
	}
	t := bag.Contents[n-1]
	bag.Contents = bag.Contents[:n-1]
	return t, true
}

// ReturnTile puts a previously drawn tile back into the bag (used
// when an exchange move is applied).
func (bag *Bag) ReturnTile(t Tile) {
	bag.Contents = append(bag.Contents, t)
}

// TileCount returns the number of tiles left in the bag.
func (bag *Bag) TileCount() int {
	if bag == nil {
		return 0
	}
	return len(bag.Contents)
}

// ExchangeAllowed reports whether the bag holds enough tiles for
// an exchange to be a legal move, mirroring MinExchangeBag.
func (bag *Bag) ExchangeAllowed() bool {
	return bag.TileCount() >= MinExchangeBag
}

// FillRack draws tiles from the bag until the rack holds RackSize
// tiles or the bag runs dry, returning the drawn tiles so the
// caller can report them.
func FillRack(r *Rack, bag *Bag) []Tile {
	var drawn []Tile
	for r.Total < RackSize {
		t, ok := bag.DrawTile()
		if !ok {
			break
		}
		r.Restore(t.Letter)
		drawn = append(drawn, t)
	}
	return drawn
}

// String renders a bag's remaining contents for debug output.
func (bag *Bag) String() string {
	if bag == nil || len(bag.Contents) == 0 {
		return "Empty"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("(%d tiles): ", len(bag.Contents)))
	for _, t := range bag.Contents {
		sb.WriteRune(t.Letter.Rune())
		sb.WriteByte(' ')
	}
	return sb.String()
}
