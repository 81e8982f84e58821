package interp

// ProgramVersion is the current program image format version.
// Increment when making incompatible changes to the node layout.
const ProgramVersion uint16 = 1

// Node is one element of the resolved instruction sequence. Control flow is
// flat: loops are not nested sub-trees, they are pairs of precomputed jump
// targets into the same sequence.
//
// For every operation except loop-start, Next is the index of the node to
// execute afterwards: straight-line fallthrough for plain commands, the index
// of the matching loop-start for a loop-end. For loop-start, BranchTrue is
// the body entry (own index + 1) and BranchExit is the index just past the
// matching loop-end; Next is unused.
type Node struct {
	Op         Op     `cbor:"1,keyasint"`
	Next       int    `cbor:"2,keyasint"`
	BranchTrue int    `cbor:"3,keyasint,omitempty"`
	BranchExit int    `cbor:"4,keyasint,omitempty"`
}

// Program is a parsed, jump-resolved instruction sequence. It carries no
// mutable state, so a single Program may be shared across VM runs.
type Program struct {
	Version uint16 `cbor:"1,keyasint"`
	Nodes   []Node `cbor:"2,keyasint"`
}

// NewProgram creates an empty program with the current format version.
func NewProgram() *Program {
	return &Program{
		Version: ProgramVersion,
		Nodes:   make([]Node, 0, 64),
	}
}

// Len returns the number of nodes.
func (p *Program) Len() int {
	return len(p.Nodes)
}

// command appends a straight-line node and returns its index.
func (p *Program) command(op Op, next int) int {
	p.Nodes = append(p.Nodes, Node{Op: op, Next: next})
	return len(p.Nodes) - 1
}
