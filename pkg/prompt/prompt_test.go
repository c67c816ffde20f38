package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIsAffirmative(t *testing.T) {
	for answer, want := range map[string]bool{
		"yes":     true,
		"Y":       true,
		" YeS \n": true,
		"y\r\n":   true,
		"":        false,
		"no":      false,
		"yess":    false,
		"sure":    false,
	} {
		qt.Check(t, IsAffirmative(answer), qt.Equals, want, qt.Commentf("answer %q", answer))
	}
}

func TestLineConfirm(t *testing.T) {
	t.Run("yes", func(t *testing.T) {
		var out bytes.Buffer
		ok := Line{In: strings.NewReader("y\n"), Out: &out}.Confirm(context.Background(), "Permanently delete foo?")
		qt.Check(t, ok, qt.IsTrue)
		qt.Check(t, out.String(), qt.Equals, "Permanently delete foo? [Yes/No]:")
	})
	t.Run("unterminated-answer", func(t *testing.T) {
		ok := Line{In: strings.NewReader("Yes"), Out: &bytes.Buffer{}}.Confirm(context.Background(), "q?")
		qt.Check(t, ok, qt.IsTrue)
	})
	t.Run("eof", func(t *testing.T) {
		ok := Line{In: strings.NewReader(""), Out: &bytes.Buffer{}}.Confirm(context.Background(), "q?")
		qt.Check(t, ok, qt.IsFalse)
	})
	t.Run("no", func(t *testing.T) {
		ok := Line{In: strings.NewReader("nope\n"), Out: &bytes.Buffer{}}.Confirm(context.Background(), "q?")
		qt.Check(t, ok, qt.IsFalse)
	})
}
