// Command lox is the interpreter's entry point: argument parsing, file
// reading, and exit-code selection sit here, outside the core pipeline.
//
// It dispatches --help/--version/server-mode/file-mode/REPL-mode and runs
// each accepted server connection in its own goroutine. Parse and runtime
// errors are reported through ordinary Go error returns; recover is kept
// only around the REPL's per-line evaluation, as a backstop against a
// genuinely unexpected panic rather than the normal error path.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/config"
	"github.com/koddsson/lox-interpreter/internal/interpreter"
	"github.com/koddsson/lox-interpreter/internal/parser"
	"github.com/koddsson/lox-interpreter/internal/replloop"
	"github.com/koddsson/lox-interpreter/internal/scanner"
)

const (
	exitSuccess  = 0
	exitLexParse = 65
	exitRuntime  = 70
	exitUsage    = 64
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's testable core: it never calls os.Exit itself, returning the
// process exit code instead.
func run(args []string) int {
	if len(args) == 0 {
		flags, _ := parseFlags(args)
		return runRepl(flags.configPath)
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return exitSuccess
	case "--version", "-v":
		showVersion()
		return exitSuccess
	case "serve":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "Usage: lox serve <port>")
			return exitUsage
		}
		return runServer(args[1])
	case "tokenize", "parse", "interpret", "run":
		flags, pos := parseFlags(args[1:])
		if len(pos) < 1 {
			redColor.Fprintf(os.Stderr, "Usage: lox %s <path>\n", args[0])
			return exitUsage
		}
		return runFile(args[0], pos[0], flags.debug)
	case "repl":
		flags, _ := parseFlags(args[1:])
		return runRepl(flags.configPath)
	default:
		// No subcommand recognized: treat the bare argument as a file path.
		// Flags alone (e.g. --config <path>) start the REPL.
		flags, pos := parseFlags(args)
		if len(pos) < 1 {
			return runRepl(flags.configPath)
		}
		return runFile("run", pos[0], flags.debug)
	}
}

type flags struct {
	configPath string
	debug      bool
}

// parseFlags scans args for --config <path> and --debug, returning the
// leftover positional arguments (e.g. a file path) in order.
func parseFlags(args []string) (flags, []string) {
	var f flags
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			if i+1 < len(args) {
				f.configPath = args[i+1]
				i++
			}
		case "--debug":
			f.debug = true
		default:
			positional = append(positional, args[i])
		}
	}
	return f, positional
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  lox                         Start interactive REPL mode")
	fmt.Println("  lox tokenize <path>         Print the token stream")
	fmt.Println("  lox parse <path>            Print the parsed statement tree")
	fmt.Println("  lox interpret <path>        Execute a source file")
	fmt.Println("  lox run <path>              Alias for interpret")
	fmt.Println("  lox repl                    Start interactive REPL mode")
	fmt.Println("  lox serve <port>            Start a TCP-exposed REPL server")
	fmt.Println("  lox --config <path>         Load REPL presentation settings from YAML")
	fmt.Println("  lox --debug                 Deep-dump tokens/AST via go-spew")
	fmt.Println("  lox --help                  Display this help message")
	fmt.Println("  lox --version               Display version information")
}

func showVersion() {
	cfg := config.Default()
	cyanColor.Printf("lox %s (%s)\n", cfg.Version, cfg.License)
}

// runFile reads path and executes command (tokenize/parse/interpret/run)
// against it, returning the process exit code. When debug is set, it dumps
// tokens/AST via spew ahead of each command's normal output.
func runFile(command, path string, debug bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return exitUsage
	}

	tokens, status := scanner.Tokenize(string(source), os.Stderr)

	if debug {
		fmt.Print(spew.Sdump(tokens))
	}

	if command == "tokenize" {
		for _, tok := range tokens {
			fmt.Println(tok.String())
		}
		return status
	}
	if status != scanner.Clean {
		return exitLexParse
	}

	stmts, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr.Error())
		return exitLexParse
	}

	if debug {
		fmt.Print(ast.Dump(stmts))
	}

	if command == "parse" {
		fmt.Print(ast.Print(stmts))
		return exitSuccess
	}

	// interpret / run
	in := interpreter.New(os.Stdout)
	if _, err := in.Interpret(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitRuntime
	}
	return exitSuccess
}

func runRepl(configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not load config '%s': %v\n", configPath, err)
		return exitUsage
	}
	replloop.New(cfg).Start(os.Stdin, os.Stdout)
	return exitSuccess
}

// runServer listens on port and hands each accepted connection its own
// isolated REPL session in its own goroutine — concurrency at the
// connection-transport level only; each session's Interpreter and
// Environment are single-threaded and never shared across goroutines,
// never spilling into the language's own single-threaded execution model.
func runServer(port string) int {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Failed to start server on port %s: %v\n", port, err)
		return exitUsage
	}
	defer listener.Close()
	cyanColor.Printf("lox REPL server listening on :%s\n", port)

	cfg := config.Default()
	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn, cfg)
	}
}

func handleClient(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	replloop.New(cfg).Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
