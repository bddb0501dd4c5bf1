package equicore

import "testing"

func TestMachineLetterRoundTrip(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		l := MachineLetterFromRune(r)
		if l.IsBlank() {
			t.Errorf("uppercase %c should not decode as a blank", r)
		}
		if got := l.Rune(); got != r {
			t.Errorf("Rune() round-trip for %c: got %c", r, got)
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		l := MachineLetterFromRune(r)
		if !l.IsBlank() {
			t.Errorf("lowercase %c should decode as a blank", r)
		}
		if got := l.Rune(); got != r {
			t.Errorf("Rune() round-trip for %c: got %c", r, got)
		}
		if l.Unblank().IsBlank() {
			t.Errorf("Unblank() of %c should clear the blank bit", r)
		}
	}
}

func TestMachineLetterFromRunePanicsOnNonLetter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for a non-letter rune")
		}
	}()
	MachineLetterFromRune('?')
}

func TestSeparatorRendersAsDot(t *testing.T) {
	if got := Separator.Rune(); got != '.' {
		t.Errorf("Separator.Rune() = %c, want '.'", got)
	}
}

func TestLetterSetHasAndWith(t *testing.T) {
	var s LetterSet
	a := MachineLetterFromRune('A')
	z := MachineLetterFromRune('Z')
	if s.Has(a) {
		t.Errorf("empty set should not contain A")
	}
	s = s.With(a)
	if !s.Has(a) {
		t.Errorf("set should contain A after With(A)")
	}
	if s.Has(z) {
		t.Errorf("set should not contain Z")
	}
	if !TrivialLetterSet.Has(a) || !TrivialLetterSet.Has(z) {
		t.Errorf("TrivialLetterSet should contain every real letter")
	}
}

func TestLetterSetRejectsSeparator(t *testing.T) {
	if TrivialLetterSet.Has(Separator) {
		t.Errorf("LetterSet.Has(Separator) should always be false")
	}
}
