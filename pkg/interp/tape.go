package interp

import (
	"errors"
	"fmt"
)

// Tape size bounds. The defaults match the CLI defaults.
const (
	MinTapeSize     = 1
	MaxTapeSize     = 30000
	DefaultTapeSize = 3000
)

// Cell arithmetic errors. They are produced by the checked transformations
// below and never stop a run on their own; the VM's arithmetic policy decides
// what happens.
var (
	ErrCellOverflow  = errors.New("cell overflow: value is already at the maximum")
	ErrCellUnderflow = errors.New("cell underflow: value is already at the minimum")
)

// OutOfRangeError reports a cursor move that would leave the tape.
type OutOfRangeError struct {
	Position int // cursor before the move
	Delta    int
	Size     int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("The program is trying to access to position out of range in the memory (position %d, move %+d, memory size %d)",
		e.Position, e.Delta, e.Size)
}

// Tape is the capability set the VM needs from its memory. Keeping it
// abstract keeps tape size, storage layout and arithmetic policy out of the
// dispatch loop; tests substitute their own implementations.
type Tape interface {
	// Current returns the cell under the cursor.
	Current() byte

	// Update applies f to the current cell and stores the result. If f
	// fails, the error is returned unchanged and the cell keeps its value.
	Update(f func(byte) (byte, error)) error

	// Move shifts the cursor by delta. If the result would fall outside
	// [0, size), the cursor stays put and an *OutOfRangeError is returned.
	Move(delta int) error

	// Position returns the cursor index, for diagnostics.
	Position() int
}

// FixedTape is the production Tape: a fixed-length byte array and a cursor.
type FixedTape struct {
	cells  []byte
	cursor int
}

// NewFixedTape allocates a zeroed tape. Size is clamped to
// [MinTapeSize, MaxTapeSize].
func NewFixedTape(size int) *FixedTape {
	if size < MinTapeSize {
		size = MinTapeSize
	}
	if size > MaxTapeSize {
		size = MaxTapeSize
	}
	return &FixedTape{cells: make([]byte, size)}
}

// Size returns the number of cells.
func (t *FixedTape) Size() int {
	return len(t.cells)
}

func (t *FixedTape) Current() byte {
	return t.cells[t.cursor]
}

func (t *FixedTape) Update(f func(byte) (byte, error)) error {
	next, err := f(t.cells[t.cursor])
	if err != nil {
		return err
	}
	t.cells[t.cursor] = next
	return nil
}

func (t *FixedTape) Move(delta int) error {
	next := t.cursor + delta
	if next < 0 || next >= len(t.cells) {
		return &OutOfRangeError{Position: t.cursor, Delta: delta, Size: len(t.cells)}
	}
	t.cursor = next
	return nil
}

func (t *FixedTape) Position() int {
	return t.cursor
}

// CheckedAdd returns a cell transformation that adds n, failing with
// ErrCellOverflow instead of wrapping.
func CheckedAdd(n byte) func(byte) (byte, error) {
	return func(cell byte) (byte, error) {
		if cell > 0xFF-n {
			return cell, ErrCellOverflow
		}
		return cell + n, nil
	}
}

// CheckedSub returns a cell transformation that subtracts n, failing with
// ErrCellUnderflow instead of wrapping.
func CheckedSub(n byte) func(byte) (byte, error) {
	return func(cell byte) (byte, error) {
		if cell < n {
			return cell, ErrCellUnderflow
		}
		return cell - n, nil
	}
}

// Replace returns a cell transformation that ignores the old value.
func Replace(b byte) func(byte) (byte, error) {
	return func(byte) (byte, error) {
		return b, nil
	}
}
