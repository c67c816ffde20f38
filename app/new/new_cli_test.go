package newcli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/execx"
	"github.com/manufactory/crates/pkg/workspace"
)

func TestNew(t *testing.T) {
	ws := workspace.OpenFS(fstest.MapFS{}, "/ws")

	t.Run("invokes-init", func(t *testing.T) {
		r := &execx.Recorder{}
		err := New(context.Background(), r, ws, "cargo", cratesapi.CrateKindLib, "foo")
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, r.Calls, qt.DeepEquals, []execx.Cmd{{
			Name: "cargo",
			Args: []string{"init", "--lib", filepath.Join("crates", "foo")},
			Dir:  ws.Root(),
		}})
	})
	t.Run("exit-code-forwarded", func(t *testing.T) {
		r := &execx.Recorder{ExitCode: 101}
		err := New(context.Background(), r, ws, "cargo", cratesapi.CrateKindBin, "foo")
		qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeProcessExit)
		qt.Check(t, cratesapi.ExitCode(err), qt.Equals, 101)
	})
	t.Run("start-failure", func(t *testing.T) {
		r := &execx.Recorder{Err: cratesapi.ErrorExec("cargo", errors.New("not found"))}
		err := New(context.Background(), r, ws, "cargo", cratesapi.CrateKindBin, "foo")
		qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeExec)
		qt.Check(t, cratesapi.ExitCode(err), qt.Equals, cratesapi.ExitFailure)
	})
}
