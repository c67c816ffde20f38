package runcli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/cargo"
	"github.com/manufactory/crates/pkg/execx"
	"github.com/manufactory/crates/pkg/tracing"
	"github.com/manufactory/crates/pkg/workspace"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, runCmdDef, debugCmdDef)
}

var runCmdDef = &cli.Command{
	Name:      "run",
	Usage:     "Call `cargo run --release` on a crate",
	ArgsUsage: "<name>",
	Action:    util.Action(runAction(true)),
}

var debugCmdDef = &cli.Command{
	Name:      "debug",
	Usage:     "Call `cargo run` on a crate",
	ArgsUsage: "<name>",
	Action:    util.Action(runAction(false)),
}

func runAction(release bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		_, name, err := util.CrateArgs(c, 1)
		if err != nil {
			return err
		}
		ws, err := util.OpenWorkspace(c)
		if err != nil {
			return err
		}
		cfg, err := util.LoadConfig(c, ws)
		if err != nil {
			return err
		}
		return Run(c.Context, util.Runner(c), ws, cfg.Cargo, name, release)
	}
}

// Run builds and runs crates/<name> through its manifest.
// A missing crate is reported without starting the build tool.
//
// Errors:
//
//   - crates-error-missing -- when the crate does not exist
//   - crates-error-io -- when the crate cannot be checked
//   - crates-error-exec -- when the build tool cannot be started
//   - crates-error-process-exit -- when the build or the program fails
func Run(ctx context.Context, runner execx.Runner, ws *workspace.Workspace, cargoBin string, name cratesapi.CrateName, release bool) error {
	trace.SpanFromContext(ctx).SetAttributes(tracing.AttrCrateName(string(name)))
	exists, err := ws.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return util.Missing(ctx, ws, name, fmt.Sprintf("%s does not exist.", name))
	}
	manifest := filepath.Join(ws.CratePath(name), cargo.ManifestFilename)
	code, err := runner.Run(ctx, execx.Cmd{Name: cargoBin, Args: cargo.RunArgs(manifest, release)})
	return util.Forward(cargoBin, code, err)
}
