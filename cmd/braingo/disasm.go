package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// handleDisasmCommand processes the `braingo disasm` subcommand: print the
// resolved node sequence of a source file or compiled image.
func handleDisasmCommand(args []string) {
	path, err := fileArg(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prog, err := loadProgram(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(prog.DisassembleWithName(filepath.Base(path)))
}
