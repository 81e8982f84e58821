package interp

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of the resolved node
// sequence, one line per node with its jump targets spelled out.
func (p *Program) Disassemble() string {
	return p.DisassembleWithName("")
}

// DisassembleWithName returns a listing with a name header.
func (p *Program) DisassembleWithName(name string) string {
	var sb strings.Builder

	if name != "" {
		sb.WriteString(fmt.Sprintf("; === %s ===\n", name))
	}
	sb.WriteString(fmt.Sprintf("; braingo program v%d, %d nodes\n", p.Version, p.Len()))

	for i, n := range p.Nodes {
		switch n.Op {
		case OpLoopStart:
			sb.WriteString(fmt.Sprintf("%4d  %c  %-10s true->%d false->%d\n",
				i, n.Op.Symbol(), n.Op, n.BranchTrue, n.BranchExit))
		case OpLoopEnd:
			sb.WriteString(fmt.Sprintf("%4d  %c  %-10s back->%d\n",
				i, n.Op.Symbol(), n.Op, n.Next))
		default:
			sb.WriteString(fmt.Sprintf("%4d  %c  %-10s next->%d\n",
				i, n.Op.Symbol(), n.Op, n.Next))
		}
	}

	return sb.String()
}
