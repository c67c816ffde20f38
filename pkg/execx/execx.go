/*
Package execx runs the external programs crates drives.

A Runner runs exactly one command and reports the process exit code.
A non-zero exit is a result, not an error: errors are reserved for
processes that could not be started at all.
*/
package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/tracing"
)

const LogTag = "exec"

// Cmd is one external process invocation.
type Cmd struct {
	Name string
	Args []string
	Dir  string // working directory; empty inherits ours
}

// String renders the command line, quoting arguments that would be ambiguous in a shell.
func (c Cmd) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, s := range append([]string{c.Name}, c.Args...) {
		if s == "" || strings.ContainsAny(s, " \t\n\"'") {
			s = strconv.Quote(s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

type Runner interface {
	// Run executes cmd and blocks until it exits.
	//
	// Errors:
	//
	//    - crates-error-exec -- when the process could not be started
	Run(ctx context.Context, cmd Cmd) (exitCode int, err error)
}

// Host runs commands as child processes wired to the given streams.
type Host struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
//
// Errors:
//
//   - crates-error-exec -- when the process could not be started
func (h Host) Run(ctx context.Context, cmd Cmd) (code int, err error) {
	ctx, span := tracing.Start(ctx, "exec "+cmd.Name, trace.WithAttributes(
		attribute.String(tracing.AttrKeyCratesExecName, cmd.Name),
		attribute.StringSlice(tracing.AttrKeyCratesExecArgs, cmd.Args),
	))
	defer func() {
		span.SetAttributes(attribute.Int(tracing.AttrKeyCratesExecExitCode, code))
		tracing.EndWithStatus(span, err)
	}()

	logging.Ctx(ctx).Debug(LogTag, "%s (in %q)", cmd, cmd.Dir)
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = h.Stdin
	c.Stdout = h.Stdout
	c.Stderr = h.Stderr

	err = c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, cratesapi.ErrorExec(cmd.Name, err)
	}
	return 0, nil
}

// DryRun prints each command instead of running it, and reports success.
type DryRun struct {
	Out io.Writer
}

func (d DryRun) Run(ctx context.Context, cmd Cmd) (int, error) {
	logging.Ctx(ctx).Debug(LogTag, "dry run in %q", cmd.Dir)
	fmt.Fprintf(d.Out, "+ %s\n", cmd)
	return 0, nil
}

// Recorder remembers every command it is asked to run and answers with a fixed exit code.
type Recorder struct {
	Calls    []Cmd
	ExitCode int
	Err      error
}

func (r *Recorder) Run(ctx context.Context, cmd Cmd) (int, error) {
	r.Calls = append(r.Calls, cmd)
	if r.Err != nil {
		return -1, r.Err
	}
	return r.ExitCode, nil
}
