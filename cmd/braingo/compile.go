package main

import (
	"fmt"
	"os"

	"github.com/chazu/braingo/pkg/interp"
	"github.com/chazu/braingo/pkg/interp/dist"
	"github.com/chazu/braingo/pkg/source"
)

// handleCompileCommand processes the `braingo compile` subcommand: parse a
// source file once and write the resolved program as an image.
// Usage:
//
//	braingo compile -f prog.bf             # writes prog.bfi
//	braingo compile -f prog.bf -o out.bfi
func handleCompileCommand(args []string) {
	var path, output string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f", "--file":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-f requires a file path")
				os.Exit(1)
			}
			path = args[i+1]
			i++
		case "-o", "--output":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-o requires an output path")
				os.Exit(1)
			}
			output = args[i+1]
			i++
		default:
			fmt.Fprintf(os.Stderr, "unexpected argument '%s' for 'compile'\n", args[i])
			os.Exit(1)
		}
	}

	if path == "" {
		fmt.Fprintln(os.Stderr, "missing required flag -f <path>")
		os.Exit(1)
	}
	if output == "" {
		output = imageOutputPath(path)
	}

	text, err := source.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := interp.Parse(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", output, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dist.WriteImage(f, prog); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d nodes)\n", output, prog.Len())
}
