package appbase

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"

	"github.com/manufactory/crates/app/base/helpgen"
	"github.com/manufactory/crates/app/base/render"
	"github.com/manufactory/crates/cratesapi"
)

func newTestApp(out *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:            "crates",
		Usage:           "Manage crates",
		Writer:          out,
		ErrWriter:       out,
		Flags:           GlobalFlags(),
		HideHelpCommand: true,
		Action:          rootAction,
		ExitErrHandler:  ExitErrHandler,
		Commands: []*cli.Command{{
			Name:   "frob",
			Usage:  "Frobnicate a crate",
			Action: func(*cli.Context) error { return nil },
		}},
	}
}

func TestRootAction(t *testing.T) {
	helpgen.Mode = render.Mode_Markdown

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		qt.Assert(t, newTestApp(&out).Run([]string{"crates", "help"}), qt.IsNil)
		qt.Check(t, out.String(), qt.Contains, "Manage crates")
		qt.Check(t, out.String(), qt.Not(qt.Contains), "not implemented")
	})

	t.Run("help for a command", func(t *testing.T) {
		var out bytes.Buffer
		qt.Assert(t, newTestApp(&out).Run([]string{"crates", "help", "frob"}), qt.IsNil)
		qt.Check(t, out.String(), qt.Contains, "Frobnicate a crate")
	})

	t.Run("help for an unknown command", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestApp(&out).Run([]string{"crates", "help", "nope"})
		qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeArgument)
		qt.Check(t, out.String(), qt.Equals, "error: no help topic \"nope\"\n")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		err := newTestApp(&out).Run([]string{"crates", "nope"})
		qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeUnknownCommand)
		qt.Check(t, out.String(), qt.Equals, "\"nope\" command not implemented.\n")
	})
}
