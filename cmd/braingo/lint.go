package main

import (
	"fmt"
	"os"

	"github.com/chazu/braingo/pkg/interp"
	"github.com/chazu/braingo/pkg/source"
)

// handleLintCommand processes the `braingo lint` subcommand: parse only,
// report bracket balance.
func handleLintCommand(args []string) {
	path, err := fileArg(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	text, err := source.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := interp.Parse(text); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("All good!")
}
