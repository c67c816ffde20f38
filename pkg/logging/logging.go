package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Logger struct {
	out     io.Writer
	err     io.Writer
	json    bool
	quiet   bool
	verbose bool
}

type ctxKey struct{}

func DefaultLogger() Logger {
	return Logger{
		out: os.Stdout,
		err: os.Stderr,
	}
}

func NewLogger(out, err io.Writer, json, quiet, verbose bool) Logger {
	return Logger{
		out:     out,
		err:     err,
		json:    json,
		quiet:   quiet,
		verbose: verbose,
	}
}

// WithContext returns a context carrying a copy of this logger.
func (l Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, &l)
}

// Ctx returns the logger stored in ctx, or a default logger writing to the process stdio.
func Ctx(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	l := DefaultLogger()
	return &l
}

func (l *Logger) Quiet() bool { return l.quiet }
func (l *Logger) JSON() bool  { return l.json }

// Out prints a line of user-facing output. Suppressed by quiet and by json mode.
func (l *Logger) Out(f string, args ...interface{}) {
	if l.quiet || l.json {
		return
	}
	fmt.Fprintf(l.out, f+"\n", args...)
}

// Result writes v as a single JSON document on the output stream.
// Only json mode emits anything.
func (l *Logger) Result(v interface{}) error {
	if !l.json {
		return nil
	}
	return json.NewEncoder(l.out).Encode(v)
}

func (l *Logger) Info(tag string, f string, args ...interface{}) {
	if l.quiet {
		return
	}
	print(l.err, color.New(color.FgHiGreen), tag, f, args...)
}

func (l *Logger) Debug(tag string, f string, args ...interface{}) {
	if l.verbose {
		print(l.err, color.New(color.FgGreen), tag, f, args...)
	}
}

func print(w io.Writer, tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		fmt.Fprintf(w, "%s  %s\n",
			tagColor.Sprint(tag),
			color.WhiteString(line))
	}
}
