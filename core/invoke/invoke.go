// Package invoke spawns the toolchain process and feeds it a payload over
// standard input.
package invoke

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// Payload picks the payload for a run: the first argument when present,
// otherwise the fallback. An explicitly empty argument wins over the
// fallback.
func Payload(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

// Invoker runs one child process per payload.
type Invoker struct {
	// Argv is the command to spawn; Argv[0] is resolved against PATH.
	Argv []string
	// Dir is the child's working directory, empty meaning inherit.
	Dir string

	// Child output passes through unmodified; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// New builds an Invoker from a command line using shell quoting rules.
func New(commandLine string) (*Invoker, error) {
	argv, err := shlex.Split(commandLine, true)
	if err != nil {
		return nil, err
	}
	if len(argv) == 0 {
		return nil, errors.New("empty toolchain command")
	}
	return &Invoker{Argv: argv}, nil
}

// Run spawns the child once, writes the payload bytes to its stdin, closes
// the stream and blocks until the child exits. The payload is sent verbatim,
// without a trailing newline. Failures come back unmodified: a missing
// executable as an *exec.Error, a non-zero exit as an *exec.ExitError.
func (inv *Invoker) Run(ctx context.Context, payload string) error {
	cmd := exec.CommandContext(ctx, inv.Argv[0], inv.Argv[1:]...)
	cmd.Dir = inv.Dir
	cmd.Stdin = strings.NewReader(payload)
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	return cmd.Run()
}

// ExitCode extracts the child's exit code from a Run error. A nil error is
// exit 0; an error that isn't a child exit status reports -1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
