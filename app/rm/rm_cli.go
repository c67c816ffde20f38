package rmcli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/prompt"
	"github.com/manufactory/crates/pkg/tracing"
	"github.com/manufactory/crates/pkg/workspace"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, rmCmdDef)
}

var rmCmdDef = &cli.Command{
	Name:      "rm",
	Usage:     "Remove a crate from within the workspace",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "Force removal of crate, without asking",
		},
	},
	Action: util.Action(cmdRm),
}

type result struct {
	Name    cratesapi.CrateName `json:"name"`
	Path    string              `json:"path"`
	Deleted bool                `json:"deleted"`
}

func cmdRm(c *cli.Context) error {
	_, name, err := util.CrateArgs(c, 1)
	if err != nil {
		return err
	}
	ws, err := util.OpenWorkspace(c)
	if err != nil {
		return err
	}
	return Remove(c.Context, ws, name, c.Bool("force"), util.Confirmer(c))
}

// Remove deletes crates/<name> recursively, asking first unless force is set.
//
// Errors:
//
//   - crates-error-missing -- when the crate does not exist
//   - crates-error-declined -- when the user does not confirm
//   - crates-error-io -- when the crate cannot be checked or deleted
func Remove(ctx context.Context, ws *workspace.Workspace, name cratesapi.CrateName, force bool, confirm prompt.Confirmer) error {
	log := logging.Ctx(ctx)
	trace.SpanFromContext(ctx).SetAttributes(tracing.AttrCrateName(string(name)))

	exists, err := ws.Exists(name)
	if err != nil {
		return err
	}
	if !exists {
		return util.Missing(ctx, ws, name, "Path does not exist.")
	}
	if !force && !confirm.Confirm(ctx, fmt.Sprintf("Permanently delete %s?", name)) {
		log.Out("%s was not deleted.", name)
		return cratesapi.ErrorDeclined(name)
	}
	if err := ws.Remove(name); err != nil {
		return err
	}
	log.Out("%s was deleted.", name)
	return log.Result(result{Name: name, Path: ws.CratePath(name), Deleted: true})
}
