package console

import (
	"fmt"
	"io"
)

// Output accepts one program value for display. The side effect is external;
// there is nothing to return.
type Output interface {
	Print(v Value)
}

// ConsoleOutput renders values quoted to a writer, one after another with no
// separator, so a run's output reads like 'H''e''l''l''o'.
type ConsoleOutput struct {
	W io.Writer
}

// NewConsoleOutput creates an Output writing to w.
func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{W: w}
}

func (o *ConsoleOutput) Print(v Value) {
	fmt.Fprintf(o.W, "%s", v)
}
