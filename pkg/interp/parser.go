package interp

import "errors"

// Parse errors. The texts are the user-facing lint output, so they read as
// full sentences.
var (
	// ErrMissingOpenLoop reports a loop-end with no loop-start before it.
	ErrMissingOpenLoop = errors.New("The source code have more closing loop brackets than open loop brackets.")

	// ErrMissingTerminatedLoop reports a loop-start that never closes.
	ErrMissingTerminatedLoop = errors.New("The source code have more open loop brackets than closing loop brackets.")
)

// Parse scans the source left to right and builds the jump-resolved node
// sequence. Characters outside the instruction alphabet are dropped; a
// source with no instructions parses to an empty program, which is only an
// error once the VM tries to run it.
//
// Loop resolution uses a stack of pending loop-start indices. A loop-start
// is appended as a placeholder command and rewritten in place to a branching
// node once its matching loop-end is seen, because both jump targets are only
// known at that point.
func Parse(source string) (*Program, error) {
	prog := NewProgram()
	var pending []int // indices of unmatched loop-starts

	for _, r := range source {
		op, ok := OpForRune(r)
		if !ok {
			continue
		}

		switch op {
		case OpLoopStart:
			pending = append(pending, prog.Len())
			prog.command(OpLoopStart, prog.Len()+1)

		case OpLoopEnd:
			if len(pending) == 0 {
				return nil, ErrMissingOpenLoop
			}
			start := pending[len(pending)-1]
			pending = pending[:len(pending)-1]

			// The loop-end routes back to the start so the condition is
			// re-tested there.
			prog.command(OpLoopEnd, start)

			// Patch the placeholder: body entry when the cell is non-zero,
			// first node past the loop-end when it is zero.
			prog.Nodes[start] = Node{
				Op:         OpLoopStart,
				BranchTrue: start + 1,
				BranchExit: prog.Len(),
			}

		default:
			prog.command(op, prog.Len()+1)
		}
	}

	if len(pending) > 0 {
		return nil, ErrMissingTerminatedLoop
	}

	return prog, nil
}
