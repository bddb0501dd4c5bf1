package equicore

import "testing"

func TestBetterMoveHigherEquityWins(t *testing.T) {
	a := &Move{Equity: 100, Score: 10}
	b := &Move{Equity: 90, Score: 50}
	if !betterMove(a, b) {
		t.Errorf("higher-equity move should win regardless of score")
	}
	if betterMove(b, a) {
		t.Errorf("lower-equity move should not be preferred")
	}
}

func TestBetterMoveTiebreaksByScoreThenPosition(t *testing.T) {
	a := &Move{Equity: 100, Score: 100, Row: 3, Col: 5}
	b := &Move{Equity: 100, Score: 100, Row: 1, Col: 9}
	if !betterMove(b, a) {
		t.Errorf("equal equity and score should prefer the earlier row")
	}

	c := &Move{Equity: 100, Score: 100, Row: 1, Col: 2}
	d := &Move{Equity: 100, Score: 100, Row: 1, Col: 9}
	if !betterMove(c, d) {
		t.Errorf("equal equity, score and row should prefer the earlier column")
	}
}

func TestBetterMoveHorizontalBeforeVertical(t *testing.T) {
	h := &Move{Equity: 50, Score: 50, Row: 7, Col: 7, Horizontal: true}
	v := &Move{Equity: 50, Score: 50, Row: 7, Col: 7, Horizontal: false}
	if !betterMove(h, v) {
		t.Errorf("horizontal move should be preferred over an otherwise tied vertical one")
	}
}

func TestMoveStringPass(t *testing.T) {
	m := &Move{Kind: MoveKindPass}
	if got := m.String(); got != "pass" {
		t.Errorf("Move.String() for a pass = %q, want \"pass\"", got)
	}
}

func TestMoveStringExchange(t *testing.T) {
	m := &Move{
		Kind:     MoveKindExchange,
		Exchange: []MachineLetter{MachineLetterFromRune('A').Unblank(), MachineLetterFromRune('Z').Unblank()},
	}
	if got := m.String(); got != "exchange AZ" {
		t.Errorf("Move.String() for an exchange = %q, want \"exchange AZ\"", got)
	}
}

func TestMoveStringNilReceiver(t *testing.T) {
	var m *Move
	if got := m.String(); got != "(nil move)" {
		t.Errorf("nil Move.String() = %q, want \"(nil move)\"", got)
	}
}
