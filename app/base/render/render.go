/*
Package render turns the markdown our help templates produce into
something fit for the writer it is headed to.
*/
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

type Mode uint8

const (
	Mode_Auto     Mode = iota // Mode_ANSI on a terminal, Mode_Markdown anywhere else.
	Mode_Markdown             // The markdown as given, with surplus blank lines squeezed out.
	Mode_ANSI                 // Styled for a terminal by glamour, wrapped to the terminal width.
)

// minWidth keeps wrapping sane on very narrow terminals.
const minWidth = 60

// Render writes markdown to wr in the given mode.
// If terminal rendering fails, the plain markdown is written instead.
func Render(markdown []byte, wr io.Writer, m Mode) error {
	width, isTerm := terminalWidth(wr)
	if m == Mode_Auto {
		m = Mode_Markdown
		if isTerm {
			m = Mode_ANSI
		}
	}
	if m == Mode_ANSI {
		opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
		if width > 0 {
			opts = append(opts, glamour.WithWordWrap(width-2))
		}
		r, err := glamour.NewTermRenderer(opts...)
		if err == nil {
			out, err := r.RenderBytes(markdown)
			if err == nil {
				_, err = wr.Write(out)
				return err
			}
		}
	}
	_, err := io.WriteString(wr, squeeze(string(markdown)))
	return err
}

func terminalWidth(wr io.Writer) (int, bool) {
	f, ok := wr.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return -1, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return -1, true
	}
	if width < minWidth {
		width = minWidth
	}
	return width, true
}

// squeeze collapses runs of blank lines, which text/template leaves behind freely.
func squeeze(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}
