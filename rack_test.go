package equicore

import "testing"

func TestNewRackCountsLettersAndBlanks(t *testing.T) {
	r := NewRack("ab?c?")
	if r.Total != 5 {
		t.Errorf("Total = %d, want 5", r.Total)
	}
	if r.Counts[0] != 2 {
		t.Errorf("blank count = %d, want 2", r.Counts[0])
	}
	if !r.HasBlank() {
		t.Errorf("HasBlank() should be true")
	}
	if r.Counts[MachineLetterFromRune('A').Unblank()] != 1 {
		t.Errorf("A count = %d, want 1", r.Counts[MachineLetterFromRune('A').Unblank()])
	}
}

func TestRackTakeAndRestoreRoundTrip(t *testing.T) {
	r := NewRack("cat")
	before := r.String()
	l := MachineLetterFromRune('A').Unblank()
	r.Take(l)
	if r.Total != 2 {
		t.Errorf("Total after Take = %d, want 2", r.Total)
	}
	r.Restore(l)
	if r.Total != 3 {
		t.Errorf("Total after Restore = %d, want 3", r.Total)
	}
	if after := r.String(); len(after) != len(before) {
		t.Errorf("String() length changed across Take/Restore: %q -> %q", before, after)
	}
}

func TestRackTakeUnderflowPanics(t *testing.T) {
	r := NewRack("a")
	l := MachineLetterFromRune('A').Unblank()
	r.Take(l)
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic taking a letter not on the rack")
		}
	}()
	r.Take(l)
}

func TestRackTakeBlankUnderflowPanics(t *testing.T) {
	r := NewRack("a")
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic taking a blank from a rack with none")
		}
	}()
	r.TakeBlank()
}

func TestRackCloneIsIndependent(t *testing.T) {
	r := NewRack("dog")
	c := r.Clone()
	c.Take(MachineLetterFromRune('D').Unblank())
	if r.Total == c.Total {
		t.Errorf("Clone() should be independent of the original rack")
	}
}

func TestRackBitsExcludesBlanks(t *testing.T) {
	r := NewRack("a?")
	bits := r.Bits()
	a := MachineLetterFromRune('A').Unblank()
	if !bits.Has(a) {
		t.Errorf("Bits() should include the real letter A")
	}
	if bits.Count() != 1 {
		t.Errorf("Bits().Count() = %d, want 1 (blanks excluded)", bits.Count())
	}
}
