package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"

	"monkey/interpreter"
	"monkey/lexer"
	"monkey/parser"
)

func runREPL() error {
	home, _ := os.UserHomeDir()
	histPath := ""
	if home != "" {
		histPath = filepath.Join(home, ".monkey_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 ">>> ",
		HistoryFile:            histPath,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		HistorySearchFold:      true,
		DisableAutoSaveHistory: false,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("Monkey v0.0.1 (main, REPL)")
	fmt.Println("Type :help for commands, :quit to exit. Bindings persist across inputs.")
	fmt.Println()

	// one environment for the whole session, so let bindings persist
	env := interpreter.NewEnvironment()

	var buf strings.Builder
	depth := 0

	for {
		if depth > 0 {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt(">>> ")
		}

		line, err := rl.Readline()

		// Ctrl+C
		if err == readline.ErrInterrupt {
			if buf.Len() > 0 || depth > 0 {
				buf.Reset()
				depth = 0
				fmt.Println("^C (buffer cleared)")
			}
			continue
		}

		// Ctrl+D
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trim := strings.TrimSpace(line)

		// Commands only when not buffering a block.
		if depth == 0 && buf.Len() == 0 && strings.HasPrefix(trim, ":") {
			handled, cmdErr := handleREPLCommand(trim, env)
			if handled {
				if cmdErr != nil {
					fmt.Fprintln(os.Stderr, cmdErr.Error())
				}
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteString("\n")

		depth += nestingDelta(line)
		if depth > 0 {
			continue
		}
		depth = 0

		src := buf.String()
		buf.Reset()
		if strings.TrimSpace(src) == "" {
			continue
		}

		evalChunk(src, env)
	}
}

// evalChunk parses and evaluates one REPL input against the session
// environment, printing parse errors or the result's display form.
func evalChunk(src string, env *interpreter.Environment) {
	lx := lexer.New(src)
	ps := parser.New(lx)
	program := ps.ParseProgram()

	if errs := ps.Errors(); len(errs) > 0 {
		printParserErrors(errs)
		return
	}

	evaluated := interpreter.Eval(program, env)
	if evaluated != nil {
		fmt.Println(evaluated.Inspect())
	}
}

func handleREPLCommand(cmd string, env *interpreter.Environment) (bool, error) {
	switch {
	case cmd == ":q" || cmd == ":quit" || cmd == ":exit":
		os.Exit(0)
		return true, nil

	case cmd == ":h" || cmd == ":help":
		fmt.Println("Commands:")
		fmt.Println("  :help              Show this help")
		fmt.Println("  :quit              Exit the REPL")
		fmt.Println("  :load <file>        Run a .mky file (fresh environment, like CLI)")
		fmt.Println("  :vars               Show session bindings")
		fmt.Println("  :builtins           Show built-in functions")
		fmt.Println("  :clear              Clear the screen")
		fmt.Println()
		fmt.Println("Notes:")
		fmt.Println("  - Unbalanced braces/brackets/parens buffer into a multi-line input.")
		fmt.Println("  - let bindings persist for the whole session.")
		return true, nil

	case strings.HasPrefix(cmd, ":load "):
		path := strings.TrimSpace(strings.TrimPrefix(cmd, ":load "))
		if path == "" {
			return true, fmt.Errorf("Usage: :load <file.mky>")
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return true, errors.Wrapf(err, "reading %s", path)
		}
		// Load runs like the CLI: fresh environment for the file.
		_ = runSource(string(b))
		return true, nil

	case cmd == ":vars":
		bindings := env.BindingsSnapshot()
		if len(bindings) == 0 {
			fmt.Println("(no bindings)")
			return true, nil
		}
		names := make([]string, 0, len(bindings))
		for name := range bindings {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s = %s\n", name, bindings[name].Inspect())
		}
		return true, nil

	case cmd == ":builtins":
		for _, name := range interpreter.BuiltinNames() {
			fmt.Println(name)
		}
		return true, nil

	case cmd == ":clear":
		fmt.Print("\033[2J\033[H")
		return true, nil

	default:
		fmt.Println("Unknown command. Try :help")
		return true, nil
	}
}

// nestingDelta tokenizes one line and counts unbalanced braces, brackets
// and parens, so string contents never affect buffering.
func nestingDelta(line string) int {
	lx := lexer.New(line)
	delta := 0
	for {
		tok := lx.NextToken()
		switch tok.Type {
		case lexer.LBRACE, lexer.LBRACKET, lexer.LPAREN:
			delta++
		case lexer.RBRACE, lexer.RBRACKET, lexer.RPAREN:
			delta--
		case lexer.EOF:
			return delta
		}
	}
}
