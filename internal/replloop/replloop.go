// Package replloop implements the interactive Read-Eval-Print Loop: banner,
// readline-backed editing, and per-line scanner → parser → interpreter
// evaluation with three distinct reportable error kinds.
package replloop

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/koddsson/lox-interpreter/internal/config"
	"github.com/koddsson/lox-interpreter/internal/interpreter"
	"github.com/koddsson/lox-interpreter/internal/parser"
	"github.com/koddsson/lox-interpreter/internal/scanner"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a single interactive session. Unlike file execution, one session
// keeps its Interpreter (and thus its global Environment) alive across every
// line entered, so variables declared on one line are visible on the next.
type Repl struct {
	cfg config.Config
}

// New creates a Repl configured by cfg.
func New(cfg config.Config) *Repl {
	return &Repl{cfg: cfg}
}

// printBanner displays the welcome banner. Colors are skipped when
// cfg.Color is false —
// fatih/color degrades to plain text on non-tty output on its own, but an
// explicit opt-out lets a user force it off even on a real terminal (e.g.
// when piping a transcript to a log file they'll grep later).
func (r *Repl) printBanner(w io.Writer) {
	line := func(c *color.Color, format string, args ...interface{}) {
		if r.cfg.Color {
			c.Fprintf(w, format, args...)
		} else {
			fmt.Fprintf(w, format, args...)
		}
	}

	line(blueColor, "%s\n", r.cfg.Line)
	line(greenColor, "%s\n", r.cfg.Banner)
	line(blueColor, "%s\n", r.cfg.Line)
	line(yellowColor, "Version: %s | Author: %s | License: %s\n", r.cfg.Version, r.cfg.Author, r.cfg.License)
	line(blueColor, "%s\n", r.cfg.Line)
	line(cyanColor, "%s\n", "Type your code and press enter")
	line(cyanColor, "%s\n", "Type '.exit' to quit")
	line(cyanColor, "%s\n", "Use up/down arrows to navigate command history")
	line(blueColor, "%s\n", r.cfg.Line)
}

// Start runs the REPL loop against reader/writer until the user exits or
// the readline instance hits EOF. One Interpreter lives for the whole
// session, so state (variables) persists across lines — this is the one
// deliberate place the tree-walking Non-goal on "incremental re-parsing"
// doesn't apply: each line is parsed whole, there is no partial re-parse.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.cfg.Prompt,
		Stdin:       io.NopCloser(reader),
		Stdout:      writer,
		Stderr:      writer,
		HistoryFile: "",
	})
	if err != nil {
		fmt.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	in := interpreter.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good Bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(writer, "Good Bye!")
			return
		}

		r.evalLine(writer, in, line)
	}
}

// evalLine runs one line of input through the full tokenize/parse/interpret
// pipeline. Errors from any stage are reported in red and the session
// continues — the REPL's defining difference from file/exit-code driven
// execution is that no error here is fatal to the session. An unexpected
// panic is recovered and reported the same way.
func (r *Repl) evalLine(writer io.Writer, in *interpreter.Interpreter, line string) {
	defer func() {
		if p := recover(); p != nil {
			r.reportError(writer, fmt.Sprintf("[REPL PANIC] %v", p))
		}
	}()

	var lexOut strings.Builder
	tokens, status := scanner.Tokenize(line, &lexOut)
	if status != scanner.Clean {
		r.reportError(writer, strings.TrimRight(lexOut.String(), "\n"))
		return
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		r.reportError(writer, err.Error())
		return
	}

	results, err := in.Interpret(stmts)
	if err != nil {
		r.reportError(writer, err.Error())
		return
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		if r.cfg.Color {
			yellowColor.Fprintf(writer, "%s\n", last.Display())
		} else {
			fmt.Fprintf(writer, "%s\n", last.Display())
		}
	}
}

func (r *Repl) reportError(writer io.Writer, msg string) {
	if r.cfg.Color {
		redColor.Fprintf(writer, "%s\n", msg)
	} else {
		fmt.Fprintf(writer, "%s\n", msg)
	}
}
