package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/braingo/manifest"
	"github.com/chazu/braingo/pkg/console"
	"github.com/chazu/braingo/pkg/interp"
)

// runOptions are the resolved settings for one `braingo run`.
type runOptions struct {
	file       string
	memorySize int
	stepLimit  uint64
	arithmetic interp.ArithmeticPolicy
}

// handleRunCommand processes the `braingo run` subcommand.
// Usage:
//
//	braingo run -f prog.bf
//	braingo run -f prog.bf -m 3000 -l 60000 -a wrap
func handleRunCommand(args []string) {
	opts, err := parseRunFlags(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := loadProgram(opts.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	vm := interp.NewVM(interp.Config{
		TapeSize:   opts.memorySize,
		StepLimit:  opts.stepLimit,
		Arithmetic: opts.arithmetic,
		Input:      console.NewPromptInput(os.Stdin, os.Stdout),
		Output:     console.NewConsoleOutput(os.Stdout),
	})
	vm.Load(prog)

	if err := vm.Run(); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Program executed successfully")
}

// parseRunFlags resolves flags over manifest defaults over built-in defaults.
func parseRunFlags(args []string) (runOptions, error) {
	opts := runOptions{
		memorySize: interp.DefaultTapeSize,
		stepLimit:  interp.DefaultStepLimit,
	}

	// Manifest defaults, when a braingo.toml is in reach.
	if m, err := manifest.FindAndLoad("."); err != nil {
		return opts, err
	} else if m != nil {
		if m.Run.MemorySize != 0 {
			opts.memorySize = m.Run.MemorySize
		}
		if m.Run.InstructionLimit != 0 {
			opts.stepLimit = m.Run.InstructionLimit
		}
		if m.Run.Arithmetic != "" {
			opts.arithmetic, _ = interp.ParseArithmeticPolicy(m.Run.Arithmetic)
		}
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f", "--file":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-f requires a file path")
			}
			opts.file = args[i+1]
			i++

		case "-m", "--memory-size":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-m requires a value")
			}
			n, err := boundedArg(args[i+1], "-m <memory-size>", interp.MinTapeSize, interp.MaxTapeSize)
			if err != nil {
				return opts, err
			}
			opts.memorySize = int(n)
			i++

		case "-l", "--limit-read-instructions":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-l requires a value")
			}
			n, err := boundedArg(args[i+1], "-l <limit-read-instructions>", interp.MinStepLimit, interp.MaxStepLimit)
			if err != nil {
				return opts, err
			}
			opts.stepLimit = n
			i++

		case "-a", "--arithmetic":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-a requires a value (ignore, wrap or fail)")
			}
			policy, err := interp.ParseArithmeticPolicy(args[i+1])
			if err != nil {
				return opts, err
			}
			opts.arithmetic = policy
			i++

		default:
			return opts, fmt.Errorf("unexpected argument '%s' for 'run'", args[i])
		}
	}

	if opts.file == "" {
		return opts, fmt.Errorf("missing required flag -f <path>")
	}

	return opts, nil
}

// boundedArg parses a numeric flag value and enforces its range. The error
// texts name the flag the way the usage line spells it.
func boundedArg(raw, flag string, min, max uint64) (uint64, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value '%s' for '%s': not a number", raw, flag)
	}
	if n < min {
		return 0, fmt.Errorf("invalid value '%s' for '%s': Minimum value accepted is %s", raw, flag, groupDigits(min))
	}
	if n > max {
		return 0, fmt.Errorf("invalid value '%s' for '%s': Maximum value accepted is %s", raw, flag, groupDigits(max))
	}
	return n, nil
}

// groupDigits renders 30000 as 30_000, matching the flag documentation.
func groupDigits(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, "_")
}
