/*
File    : ari/cmd/ari/main.go

Package main is the entry point for the Ari interpreter. It dispatches
between three modes: help/version text, executing a single script file,
and (with no arguments) an interactive REPL — the same three-way split
the teacher's main/main.go makes for Go-Mix.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"

	"ari-lang/diag"
	"ari-lang/eval"
	"ari-lang/lexer"
	"ari-lang/parser"
	"ari-lang/repl"
)

const version = "0.1.0"

const banner = `    _          _
   / \   _ __ (_)
  / _ \ | '__|| |
 / ___ \| |   | |
/_/   \_\_|   |_|
`

const line = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if os.Getenv("ARI_NO_COLOR") != "" {
		diag.NoColor(true)
		color.NoColor = true
	}

	args := os.Args[1:]
	seed := int64(1)
	var script string

	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "-seed":
			if i+1 >= len(args) {
				redColor.Fprintln(os.Stderr, "[USAGE ERROR] -seed requires a value")
				return
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] invalid -seed value %q\n", args[i])
				return
			}
			seed = n
		default:
			positional = append(positional, args[i])
		}
	}

	switch len(positional) {
	case 0:
		repl.New(banner, version, line, "> ").Start(os.Stdout, seed)
	case 1:
		script = positional[0]
		runFile(script, seed)
	default:
		fmt.Println("usage: ari [--help] [--version] [-seed <n>] [script]")
	}
}

// runFile reads and executes a single Ari source file as one unit. Any
// fatal diagnostic terminates the process with exit status 1 (§6); a
// clean `bai` or falling off the end of the program exits 0.
func runFile(path string, seed int64) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read '%s': %v\n", path, err)
		os.Exit(1)
	}

	stmts := parser.New(lexer.New(string(source)).ScanTokens()).Parse()
	eval.New(os.Stdout, seed).Run(stmts)
}

func showHelp() {
	cyanColor.Println("Ari - a tree-walking scripting language")
	cyanColor.Println()
	cyanColor.Println("USAGE:")
	fmt.Println("  ari                     Start the interactive REPL")
	fmt.Println("  ari <path-to-file>      Execute an Ari script")
	fmt.Println("  ari -seed <n> ...       Seed the random number source")
	fmt.Println("  ari --help              Show this help message")
	fmt.Println("  ari --version           Show version information")
}

func showVersion() {
	fmt.Printf("ari version %s\n", version)
}
