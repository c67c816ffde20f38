package healthcheck

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
)

type fixedRunner struct {
	name string
	err  error
}

func (r fixedRunner) Run(context.Context) error { return r.err }
func (r fixedRunner) String() string            { return r.name }

func TestHealthCheckReport(t *testing.T) {
	color.NoColor = true
	hc := &HealthCheck{Runners: []Runner{
		fixedRunner{"binary cargo", serum.Error(CodeRunOkay,
			serum.WithMessageLiteral("found on PATH"),
			serum.WithDetail(DetailPath, "/usr/bin/cargo"),
		)},
		fixedRunner{"binary wt", serum.Error(CodeRunFailure,
			serum.WithMessageLiteral("not found on PATH"),
		)},
		fixedRunner{"workspace", serum.Error(CodeRunOkay,
			serum.WithMessageLiteral("found by searching upward"),
			serum.WithDetail(DetailRoot, "/ws"),
		)},
		fixedRunner{"plain", errors.New("not serum")},
	}}
	var out bytes.Buffer
	qt.Check(t, hc.Fprint(&out), qt.IsNotNil)
	qt.Check(t, hc.Okay(), qt.IsFalse)

	qt.Assert(t, hc.Run(context.Background()), qt.IsNil)
	qt.Assert(t, hc.Results, qt.HasLen, 4)
	qt.Check(t, hc.Results[0], qt.DeepEquals, Result{
		Check:    "binary cargo",
		Status:   StatusOkay,
		Code:     CodeRunOkay,
		Message:  "found on PATH",
		Location: "/usr/bin/cargo",
	})
	qt.Check(t, hc.Results[1].Status, qt.Equals, StatusFail)
	qt.Check(t, hc.Results[2].Location, qt.Equals, "/ws")
	qt.Check(t, hc.Results[3].Status, qt.Equals, StatusFail)
	qt.Check(t, hc.Okay(), qt.IsFalse)

	qt.Assert(t, hc.Fprint(&out), qt.IsNil)
	qt.Check(t, out.String(), qt.Equals, ""+
		" ✔  binary cargo  /usr/bin/cargo  found on PATH\n"+
		" ✘  binary wt     -               not found on PATH\n"+
		" ✔  workspace     /ws             found by searching upward\n"+
		" ✘  plain         -               runner has invalid interface: not serum\n")
}

func TestHealthCheckOkay(t *testing.T) {
	hc := &HealthCheck{Runners: []Runner{
		fixedRunner{"a", serum.Error(CodeRunOkay, serum.WithMessageLiteral("fine"))},
	}}
	qt.Assert(t, hc.Run(context.Background()), qt.IsNil)
	qt.Check(t, hc.Okay(), qt.IsTrue)
}

func TestBinCheck(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "fakecargo")
	qt.Assert(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755), qt.IsNil)
	t.Setenv("PATH", dir)

	found := newResult("cargo", (&BinCheck{Name: "fakecargo"}).Run(context.Background()))
	qt.Check(t, found.Status, qt.Equals, StatusOkay)
	qt.Check(t, found.Location, qt.Equals, bin)
	qt.Check(t, StatusOf((&BinCheck{Name: "fakewt"}).Run(context.Background())), qt.Equals, StatusFail)
}

func TestWorkspaceCheck(t *testing.T) {
	root := t.TempDir()
	qt.Check(t, StatusOf((&WorkspaceCheck{Root: root}).Run(context.Background())), qt.Equals, StatusAmbiguous)

	qt.Assert(t, os.Mkdir(filepath.Join(root, "crates"), 0o755), qt.IsNil)
	explicit := newResult("workspace", (&WorkspaceCheck{Root: root}).Run(context.Background()))
	qt.Check(t, explicit.Status, qt.Equals, StatusOkay)
	qt.Check(t, explicit.Location, qt.Equals, root)
	qt.Check(t, StatusOf((&WorkspaceCheck{Dir: root}).Run(context.Background())), qt.Equals, StatusOkay)
}
