package interp

import "fmt"

// Op identifies one instruction of the tape language.
// The instruction set is closed: eight operations, one symbol each.
type Op uint8

const (
	OpMoveRight Op = iota // > move the cursor one cell right
	OpMoveLeft            // < move the cursor one cell left
	OpIncrement           // + add one to the current cell
	OpDecrement           // - subtract one from the current cell
	OpInput               // , read one value into the current cell
	OpOutput              // . write the current cell
	OpLoopStart           // [ jump past the matching ] when the cell is zero
	OpLoopEnd             // ] jump back to the matching [
)

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpMoveRight:
		return "move-right"
	case OpMoveLeft:
		return "move-left"
	case OpIncrement:
		return "increment"
	case OpDecrement:
		return "decrement"
	case OpInput:
		return "input"
	case OpOutput:
		return "output"
	case OpLoopStart:
		return "loop-start"
	case OpLoopEnd:
		return "loop-end"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Symbol returns the source character for the operation.
func (op Op) Symbol() rune {
	switch op {
	case OpMoveRight:
		return '>'
	case OpMoveLeft:
		return '<'
	case OpIncrement:
		return '+'
	case OpDecrement:
		return '-'
	case OpInput:
		return ','
	case OpOutput:
		return '.'
	case OpLoopStart:
		return '['
	case OpLoopEnd:
		return ']'
	default:
		return '?'
	}
}

// OpForRune classifies one source character. The second return is false for
// every character outside the eight-symbol alphabet; those are comments and
// produce no node.
func OpForRune(r rune) (Op, bool) {
	switch r {
	case '>':
		return OpMoveRight, true
	case '<':
		return OpMoveLeft, true
	case '+':
		return OpIncrement, true
	case '-':
		return OpDecrement, true
	case ',':
		return OpInput, true
	case '.':
		return OpOutput, true
	case '[':
		return OpLoopStart, true
	case ']':
		return OpLoopEnd, true
	default:
		return 0, false
	}
}
