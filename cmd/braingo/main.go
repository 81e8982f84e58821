// Braingo CLI - parse, check and run tape-language programs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/chazu/braingo/pkg/interp"
	"github.com/chazu/braingo/pkg/interp/dist"
	"github.com/chazu/braingo/pkg/source"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	args := os.Args[1:]

	verbosity := 0
	if len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose") {
		verbosity = 2
		args = args[1:]
	}
	commonlog.Configure(verbosity, nil)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "run":
		handleRunCommand(args[1:])
	case "lint":
		handleLintCommand(args[1:])
	case "compile":
		handleCompileCommand(args[1:])
	case "disasm":
		handleDisasmCommand(args[1:])
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unrecognized subcommand '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: braingo [-v] <subcommand> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Subcommands:\n")
	fmt.Fprintf(os.Stderr, "  run     -f <path> [-m <memory-size>] [-l <limit-read-instructions>] [-a <policy>]\n")
	fmt.Fprintf(os.Stderr, "          Parse and execute a program (source or compiled image)\n")
	fmt.Fprintf(os.Stderr, "  lint    -f <path>\n")
	fmt.Fprintf(os.Stderr, "          Check loop brackets without running\n")
	fmt.Fprintf(os.Stderr, "  compile -f <path> [-o <output>]\n")
	fmt.Fprintf(os.Stderr, "          Parse once and write a program image\n")
	fmt.Fprintf(os.Stderr, "  disasm  -f <path>\n")
	fmt.Fprintf(os.Stderr, "          Print the resolved node sequence\n\n")
	fmt.Fprintf(os.Stderr, "Defaults come from braingo.toml when one is found; flags win.\n")
}

// fileArg extracts the -f/--file value from args.
func fileArg(args []string) (string, error) {
	for i := 0; i < len(args); i++ {
		if args[i] == "-f" || args[i] == "--file" {
			if i+1 >= len(args) {
				return "", fmt.Errorf("-f requires a file path")
			}
			return args[i+1], nil
		}
	}
	return "", fmt.Errorf("missing required flag -f <path>")
}

// loadProgram reads path and produces a resolved program, accepting either
// raw source text or a compiled image (sniffed by magic).
func loadProgram(path string) (*interp.Program, error) {
	text, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if dist.IsImage([]byte(text)) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("Unexpected error processing the file: %w", err)
		}
		defer f.Close()
		return dist.ReadImage(f)
	}

	return interp.Parse(text)
}

// imageOutputPath derives the default compile output from the source path.
func imageOutputPath(src string) string {
	base := filepath.Base(src)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	return base + ".bfi"
}
