package existscli

import (
	"context"

	"github.com/urfave/cli/v2"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/workspace"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, existsCmdDef)
}

var existsCmdDef = &cli.Command{
	Name:      "exists",
	Usage:     "Check if a crate exists in the workspace",
	ArgsUsage: "<name>",
	Action:    util.Action(cmdExists),
}

type result struct {
	Name   cratesapi.CrateName `json:"name"`
	Path   string              `json:"path"`
	Exists bool                `json:"exists"`
}

func cmdExists(c *cli.Context) error {
	_, name, err := util.CrateArgs(c, 1)
	if err != nil {
		return err
	}
	ws, err := util.OpenWorkspace(c)
	if err != nil {
		return err
	}
	return Exists(c.Context, ws, name)
}

// Exists reports on crates/<name>, succeeding only when it is present.
//
// Errors:
//
//   - crates-error-missing -- when the crate does not exist
//   - crates-error-io -- when the path cannot be checked
func Exists(ctx context.Context, ws *workspace.Workspace, name cratesapi.CrateName) error {
	log := logging.Ctx(ctx)
	ok, err := ws.Exists(name)
	if err != nil {
		return err
	}
	if err := log.Result(result{Name: name, Path: ws.CratePath(name), Exists: ok}); err != nil {
		return err
	}
	if !ok {
		log.Out("Does not exist.")
		return cratesapi.ErrorMissing(name, ws.CratePath(name))
	}
	log.Out("Exists.")
	return nil
}
