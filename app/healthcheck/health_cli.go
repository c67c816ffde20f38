package healthcheckcli

import (
	"os"

	"github.com/urfave/cli/v2"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/config"
	"github.com/manufactory/crates/pkg/healthcheck"
	"github.com/manufactory/crates/pkg/logging"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, healthcheckCmdDef)
}

var healthcheckCmdDef = &cli.Command{
	Name:   "healthcheck",
	Usage:  "Check that the build tool, the terminal emulator, and the workspace can be found",
	Action: util.Action(cmdHealth),
}

func cmdHealth(c *cli.Context) error {
	ctx := c.Context
	log := logging.Ctx(ctx)

	pwd, err := os.Getwd()
	if err != nil {
		return cratesapi.ErrorIo("getting working directory", ".", err)
	}
	// Binary names may come from the workspace config; fall back to env and defaults without one.
	root := ""
	if ws, err := util.OpenWorkspace(c); err == nil {
		root = ws.Root()
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	hc := &healthcheck.HealthCheck{
		Runners: []healthcheck.Runner{
			&healthcheck.BinCheck{Name: cfg.Cargo},
			&healthcheck.BinCheck{Name: cfg.Terminal},
			&healthcheck.WorkspaceCheck{Dir: pwd, Root: c.String("workspace")},
		},
	}
	if err := hc.Run(ctx); err != nil {
		log.Info("", "health check critical error: %s", err)
		return err
	}
	log.Debug("", "runners=%d, results=%d", len(hc.Runners), len(hc.Results))

	if log.JSON() {
		if err := log.Result(hc.Results); err != nil {
			return err
		}
	} else if err := hc.Fprint(c.App.Writer); err != nil {
		return err
	}
	if !hc.Okay() {
		log.Info("", "some checks did not pass")
	}
	return nil
}
