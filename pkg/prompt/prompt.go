// Package prompt asks the user yes/no questions.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type Confirmer interface {
	// Confirm shows question and reports whether the answer was affirmative.
	// Read failures, including EOF, count as no.
	Confirm(ctx context.Context, question string) bool
}

// Line asks on Out and reads one line of answer from In.
type Line struct {
	In  io.Reader
	Out io.Writer
}

func (l Line) Confirm(ctx context.Context, question string) bool {
	fmt.Fprintf(l.Out, "%s [Yes/No]:", question)
	answer, err := bufio.NewReader(l.In).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return IsAffirmative(answer)
}

// IsAffirmative accepts "yes" or "y" in any case, ignoring surrounding whitespace.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}

// Fixed answers every question the same way.
type Fixed bool

func (f Fixed) Confirm(ctx context.Context, question string) bool { return bool(f) }
