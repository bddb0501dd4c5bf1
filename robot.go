// robot.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the robot wrapper that drives one
// ply of a game: ask the generator for the single best move given
// the current board and rack, then hand it back for the game loop
// to apply. GenerateMoves already picks the winner internally, so
// a robot has nothing to choose among.

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

// Robot picks a move given a game state. EquityRobot is the only
// implementation: it always defers to the core generator's equity
// ranking, since the core never surfaces alternatives to choose
// among.
type Robot interface {
	PickMove(state *GameState) (*Move, bool)
}

// RobotWrapper wraps a Robot implementation for use by a Game's
// turn loop.
type RobotWrapper struct {
	Robot
}

// GenerateMove asks the wrapped robot for a move given the
// current game state.
func (rw *RobotWrapper) GenerateMove(state *GameState) (*Move, bool) {
	return rw.PickMove(state)
}

// EquityRobot always plays the single move GenerateMoves returns.
type EquityRobot struct{}

// PickMove runs the core generator against the state's board and
// rack and returns its result unchanged.
func (robot *EquityRobot) PickMove(state *GameState) (*Move, bool) {
	return GenerateMoves(
		state.Board,
		state.Rack,
		state.OppRack,
		state.Lexicon,
		state.Leaves,
		state.BagCount,
	)
}

// NewEquityRobot returns a fresh instance of an EquityRobot.
func NewEquityRobot() *RobotWrapper {
	return &RobotWrapper{&EquityRobot{}}
}
