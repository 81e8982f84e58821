package interp

import (
	"errors"
	"testing"
)

func TestFixedTapeStartsZeroed(t *testing.T) {
	tape := NewFixedTape(10)

	if tape.Size() != 10 {
		t.Errorf("Size() = %d, want 10", tape.Size())
	}
	if tape.Position() != 0 {
		t.Errorf("Position() = %d, want 0", tape.Position())
	}
	if tape.Current() != 0 {
		t.Errorf("Current() = %d, want 0", tape.Current())
	}
}

func TestFixedTapeSizeClamping(t *testing.T) {
	if got := NewFixedTape(0).Size(); got != MinTapeSize {
		t.Errorf("Size() = %d, want %d", got, MinTapeSize)
	}
	if got := NewFixedTape(-5).Size(); got != MinTapeSize {
		t.Errorf("Size() = %d, want %d", got, MinTapeSize)
	}
	if got := NewFixedTape(MaxTapeSize + 1).Size(); got != MaxTapeSize {
		t.Errorf("Size() = %d, want %d", got, MaxTapeSize)
	}
}

func TestFixedTapeMove(t *testing.T) {
	tape := NewFixedTape(3)

	if err := tape.Move(1); err != nil {
		t.Fatalf("Move(1) error = %v", err)
	}
	if err := tape.Move(1); err != nil {
		t.Fatalf("Move(1) error = %v", err)
	}
	if tape.Position() != 2 {
		t.Errorf("Position() = %d, want 2", tape.Position())
	}
	if err := tape.Move(-1); err != nil {
		t.Fatalf("Move(-1) error = %v", err)
	}
	if tape.Position() != 1 {
		t.Errorf("Position() = %d, want 1", tape.Position())
	}
}

func TestFixedTapeMoveLeftOfZero(t *testing.T) {
	tape := NewFixedTape(3)

	err := tape.Move(-1)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Move(-1) error = %v, want *OutOfRangeError", err)
	}
	if tape.Position() != 0 {
		t.Errorf("Position() = %d after failed move, want 0", tape.Position())
	}
}

func TestFixedTapeMovePastEnd(t *testing.T) {
	tape := NewFixedTape(2)

	if err := tape.Move(1); err != nil {
		t.Fatalf("Move(1) error = %v", err)
	}
	err := tape.Move(1)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("Move(1) error = %v, want *OutOfRangeError", err)
	}
	if oor.Position != 1 || oor.Delta != 1 || oor.Size != 2 {
		t.Errorf("OutOfRangeError = %+v, want {Position:1 Delta:1 Size:2}", oor)
	}
	if tape.Position() != 1 {
		t.Errorf("Position() = %d after failed move, want 1", tape.Position())
	}
}

func TestFixedTapeUpdate(t *testing.T) {
	tape := NewFixedTape(1)

	if err := tape.Update(CheckedAdd(1)); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if tape.Current() != 1 {
		t.Errorf("Current() = %d, want 1", tape.Current())
	}
	if err := tape.Update(Replace(200)); err != nil {
		t.Fatalf("Update error = %v", err)
	}
	if tape.Current() != 200 {
		t.Errorf("Current() = %d, want 200", tape.Current())
	}
}

func TestFixedTapeUpdateFailureLeavesCell(t *testing.T) {
	tape := NewFixedTape(1)

	err := tape.Update(CheckedSub(1))
	if !errors.Is(err, ErrCellUnderflow) {
		t.Fatalf("Update error = %v, want ErrCellUnderflow", err)
	}
	if tape.Current() != 0 {
		t.Errorf("Current() = %d after failed update, want 0", tape.Current())
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if _, err := CheckedAdd(1)(255); !errors.Is(err, ErrCellOverflow) {
		t.Errorf("CheckedAdd(1)(255) error = %v, want ErrCellOverflow", err)
	}
	if got, err := CheckedAdd(1)(254); err != nil || got != 255 {
		t.Errorf("CheckedAdd(1)(254) = %d, %v, want 255, nil", got, err)
	}
	if _, err := CheckedSub(1)(0); !errors.Is(err, ErrCellUnderflow) {
		t.Errorf("CheckedSub(1)(0) error = %v, want ErrCellUnderflow", err)
	}
	if got, err := CheckedSub(1)(1); err != nil || got != 0 {
		t.Errorf("CheckedSub(1)(1) = %d, %v, want 0, nil", got, err)
	}
}
