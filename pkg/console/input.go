package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompt texts. The retry message doubles as the parse-failure hint.
const (
	promptMessage = "Write an ascii character or his code value"
	promptHelp    = "A valid ascii code value is in the range of 0 to 127 (A or 65)"
	promptRetry   = "Please type a valid ascii character"
)

// Input produces one program value per call, or fails with an input error.
type Input interface {
	Read() (Value, error)
}

// PromptInput gathers values interactively: it prints the prompt, reads one
// line, and re-prompts on invalid entries. Read only fails when the
// underlying reader does (typically EOF).
type PromptInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPromptInput creates a prompt reading lines from r and writing prompt
// text to w.
func NewPromptInput(r io.Reader, w io.Writer) *PromptInput {
	return &PromptInput{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

func (p *PromptInput) Read() (Value, error) {
	fmt.Fprintf(p.out, "%s (%s)\n> ", promptMessage, promptHelp)

	for {
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, fmt.Errorf("reading input: %w", err)
			}
			return 0, io.EOF
		}

		v, err := ParseValue(strings.TrimSpace(p.scanner.Text()))
		if err != nil {
			fmt.Fprintf(p.out, "%s\n> ", promptRetry)
			continue
		}
		return v, nil
	}
}
