package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  monkey                 start the REPL (or read stdin when piped)")
	fmt.Println("  monkey <file.mky>      run a script")
	fmt.Println("  monkey run <file.mky>  run a script")
	fmt.Println("  monkey -               read a program from stdin")
	os.Exit(1)
}

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		if stdinIsPiped() {
			runStdin()
			return
		}
		if err := runREPL(); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		return
	}

	var filename string

	// Allow: monkey run file.mky
	if args[0] == "run" {
		if len(args) != 2 {
			usage()
		}
		filename = args[1]
	} else {
		if len(args) != 1 {
			usage()
		}
		filename = args[0]
	}

	if filename == "-" {
		runStdin()
		return
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "reading %s", filename).Error())
		os.Exit(1)
	}

	if err := runSource(string(src)); err != nil {
		os.Exit(1)
	}
}

func stdinIsPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

func runStdin() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading stdin").Error())
		os.Exit(1)
	}
	if err := runSource(string(src)); err != nil {
		os.Exit(1)
	}
}
