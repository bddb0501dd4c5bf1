// game.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Game wrapper: a mutable
// board/rack/bag triple that drives turns by asking the core
// generator for one move per ply and applying it, replenishing
// racks from the bag and tracking scores until the game ends.

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
	"strings"

	"github.com/google/uuid"
)

// GameState is the bare minimum a robot needs to decide on a move:
// the lexicon and leave table in play, the board, the mover's own
// rack, the opponent's rack (if known), and the bag count.
type GameState struct {
	Lexicon  *Lexicon
	Leaves   *LeaveTable
	Board    *Board
	Rack     *Rack
	OppRack  *Rack
	BagCount int
}

// MoveRecord is one entry in a Game's move history: which player
// moved, their rack before the move, and the move itself (nil
// denotes a pass).
type MoveRecord struct {
	Player     int
	RackBefore string
	Move       *Move
}

// Game is a container for an in-progress game between two
// players: a board, two racks, a bag, and the move history. Each
// Game carries a UUID so a caller juggling several concurrent
// games (the HTTP service, or a batch of CLI simulations) can tell
// them apart in logs.
type Game struct {
	ID           uuid.UUID
	PlayerNames  [2]string
	Scores       [2]Equity
	Board        *Board
	Racks        [2]*Rack
	Bag          *Bag
	Lexicon      *Lexicon
	Leaves       *LeaveTable
	MoveList     []MoveRecord
	NumPassMoves int
}

// NewGame starts a fresh game from a tile set, lexicon and
// (optional) leave table, dealing both players' opening racks from
// a freshly shuffled bag.
func NewGame(tileSet *TileSet, lexicon *Lexicon, leaves *LeaveTable) *Game {
	g := &Game{
		ID:      uuid.New(),
		Board:   NewBoard(),
		Bag:     NewBag(tileSet),
		Lexicon: lexicon,
		Leaves:  leaves,
	}
	g.Racks[0] = &Rack{}
	g.Racks[1] = &Rack{}
	FillRack(g.Racks[0], g.Bag)
	FillRack(g.Racks[1], g.Bag)
	BoardUpdateCrossSets(g.Board, lexicon)
	return g
}

// SetPlayerNames sets the names of the two players.
func (g *Game) SetPlayerNames(player0, player1 string) {
	g.PlayerNames[0] = player0
	g.PlayerNames[1] = player1
}

// PlayerToMove returns 0 or 1 depending on which player's move it is.
func (g *Game) PlayerToMove() int {
	return len(g.MoveList) % 2
}

// State returns a GameState describing the position from the
// perspective of the player on move.
func (g *Game) State() *GameState {
	player := g.PlayerToMove()
	opp := 1 - player
	return &GameState{
		Lexicon:  g.Lexicon,
		Leaves:   g.Leaves,
		Board:    g.Board,
		Rack:     g.Racks[player],
		OppRack:  g.Racks[opp],
		BagCount: g.Bag.TileCount(),
	}
}

// Apply applies a move (or, if move is nil, a pass) to the game on
// behalf of the player currently on move: it mutates the board,
// rack and bag, updates the score, recomputes cross-sets after a
// placement, and appends the move to the history.
func (g *Game) Apply(move *Move) {
	player := g.PlayerToMove()
	rack := g.Racks[player]
	rackBefore := rack.String()

	if move == nil {
		g.NumPassMoves++
		g.MoveList = append(g.MoveList, MoveRecord{Player: player, RackBefore: rackBefore})
		return
	}

	switch move.Kind {
	case MoveKindPlacement:
		for i := 0; i < move.TilesLength; i++ {
			l := move.Tiles[i]
			if l == PlaythroughMarker {
				continue
			}
			if l.IsBlank() {
				rack.TakeBlank()
			} else {
				rack.Take(l)
			}
		}
		BoardApplyMove(g.Board, move)
		BoardUpdateCrossSets(g.Board, g.Lexicon)
		g.Scores[player] += move.Score
		g.NumPassMoves = 0
	case MoveKindExchange:
		for _, l := range move.Exchange {
			if l == Separator {
				rack.TakeBlank()
			} else {
				rack.Take(l)
			}
			g.Bag.ReturnTile(Tile{Letter: l, Score: ScoreOf(l)})
		}
		g.NumPassMoves++
	}
	FillRack(rack, g.Bag)
	g.MoveList = append(g.MoveList, MoveRecord{Player: player, RackBefore: rackBefore, Move: move})

	if g.isEndingPly(player) {
		g.finalizeScore(player)
	}
}

// isEndingPly reports whether the ply just completed by player
// ends the game: either six consecutive non-placement plies, or
// the mover emptying their rack with nothing left to draw.
func (g *Game) isEndingPly(player int) bool {
	if g.NumPassMoves >= 6 {
		return true
	}
	return g.Racks[player].Total == 0 && g.Bag.TileCount() == 0
}

// IsOver reports whether the game has already ended.
func (g *Game) IsOver() bool {
	if len(g.MoveList) == 0 {
		return false
	}
	last := g.MoveList[len(g.MoveList)-1]
	return g.isEndingPly(last.Player)
}

// finalizeScore applies the standard end-of-game tile adjustment:
// a player who empties their rack collects twice the value of
// whatever the opponent is left holding; otherwise both players
// lose the value of their own remaining tiles.
func (g *Game) finalizeScore(finishingPlayer int) {
	opp := 1 - finishingPlayer
	oppLeave := rackScoreSum(g.Racks[opp])
	if g.Racks[finishingPlayer].Total == 0 {
		g.Scores[finishingPlayer] += 2 * oppLeave
		return
	}
	g.Scores[finishingPlayer] -= rackScoreSum(g.Racks[finishingPlayer])
	g.Scores[opp] -= oppLeave
}

// String renders a game for debug output: the scoreline, the
// board, both racks, the bag, and the move history in order.
func (g *Game) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%d : %d) %s\n",
		g.PlayerNames[0], g.Scores[0], g.Scores[1], g.PlayerNames[1]))
	sb.WriteString(g.Board.String())
	sb.WriteString(fmt.Sprintf("Rack 0: %s\n", g.Racks[0]))
	sb.WriteString(fmt.Sprintf("Rack 1: %s\n", g.Racks[1]))
	sb.WriteString(fmt.Sprintf("Bag: %s\n", g.Bag))
	for i, item := range g.MoveList {
		if item.Move == nil {
			sb.WriteString(fmt.Sprintf("  %2d: [%s] pass\n", i+1, g.PlayerNames[item.Player]))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %2d: [%s] %s\n", i+1, g.PlayerNames[item.Player], item.Move))
	}
	return sb.String()
}
