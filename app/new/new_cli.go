package newcli

import (
	"context"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/cargo"
	"github.com/manufactory/crates/pkg/execx"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/tracing"
	"github.com/manufactory/crates/pkg/workspace"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, newCmdDef)
}

// ArgsUsage is shared with the standalone crates-new program.
const ArgsUsage = "<bin|lib> <name>"

var Description = heredoc.Doc(`
	Runs the build tool's init in the workspace root,
	targeting crates/<name>. Outside of any workspace, the current
	directory becomes the root. The crate is not checked for beforehand;
	the build tool decides what happens if the directory already exists.
`)

// Action is the new command, with the standard middleware applied.
var Action = util.Action(cmdNew)

var newCmdDef = &cli.Command{
	Name:        "new",
	Usage:       "Create a new crate within the workspace",
	ArgsUsage:   ArgsUsage,
	Description: Description,
	Action:      Action,
}

func cmdNew(c *cli.Context) error {
	rest, name, err := util.CrateArgs(c, 2)
	if err != nil {
		return err
	}
	kind, err := cratesapi.ParseCrateKind(rest[0])
	if err != nil {
		return err
	}
	ws, err := openWorkspace(c)
	if err != nil {
		return err
	}
	cfg, err := util.LoadConfig(c, ws)
	if err != nil {
		return err
	}
	return New(c.Context, util.Runner(c), ws, cfg.Cargo, kind, name)
}

// openWorkspace resolves the workspace like every other command, except that
// a missing one is not an error: the working directory becomes the root and
// the build tool creates crates/<name> below it.
func openWorkspace(c *cli.Context) (*workspace.Workspace, error) {
	ws, err := util.OpenWorkspace(c)
	if err == nil || serum.Code(err) != cratesapi.ECodeWorkspaceMissing {
		return ws, err
	}
	pwd, err := os.Getwd()
	if err != nil {
		return nil, cratesapi.ErrorIo("getting working directory", ".", err)
	}
	logging.Ctx(c.Context).Debug("", "no workspace found, using %s", pwd)
	return workspace.Open(pwd), nil
}

// New initializes crates/<name> with the build tool, run from the workspace root.
//
// Errors:
//
//   - crates-error-exec -- when the build tool cannot be started
//   - crates-error-process-exit -- when the build tool fails
func New(ctx context.Context, runner execx.Runner, ws *workspace.Workspace, cargoBin string, kind cratesapi.CrateKind, name cratesapi.CrateName) error {
	trace.SpanFromContext(ctx).SetAttributes(tracing.AttrCrateName(string(name)))
	code, err := runner.Run(ctx, execx.Cmd{
		Name: cargoBin,
		Args: cargo.InitArgs(kind, workspace.CrateRelPath(name)),
		Dir:  ws.Root(),
	})
	return util.Forward(cargoBin, code, err)
}
