package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/factorial/cmd/factorial/root"
)

type exitCoder interface {
	ExitCode() int
}

type usageError interface {
	Usage() string
}

func main() {
	os.Exit(run(programName(os.Args), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(program string, args []string, stdout, stderr io.Writer) int {
	err := root.Execute(program, args, stdout, stderr)
	if err == nil {
		return 0
	}

	var ue usageError
	if errors.As(err, &ue) {
		_, _ = io.WriteString(stderr, ue.Usage())
	} else {
		// Anything else is a short, single-line error.
		msg := strings.Join(strings.Fields(err.Error()), " ")
		if msg == "" {
			msg = "error"
		}
		_, _ = io.WriteString(stderr, msg+"\n")
	}

	code := 1
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}

func programName(argv []string) string {
	if len(argv) == 0 || argv[0] == "" {
		return "factorial"
	}
	return filepath.Base(argv[0])
}
