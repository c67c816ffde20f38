package termcli

import (
	"context"

	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/execx"
	"github.com/manufactory/crates/pkg/terminal"
	"github.com/manufactory/crates/pkg/tracing"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, termCmdDef)
}

var termCmdDef = &cli.Command{
	Name:      "term",
	Usage:     "Open a terminal session in the crate's root",
	ArgsUsage: "<name>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "new-window",
			Aliases: []string{"n"},
			Usage:   "Open the session in a new window instead of reusing an existing one",
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Terminal `PROFILE` to open (default from config, else \"" + terminal.DefaultProfile + "\")",
		},
	},
	Action: util.Action(cmdTerm),
}

func cmdTerm(c *cli.Context) error {
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
	profile := cfg.Profile
	if c.IsSet("profile") {
		profile = c.String("profile")
	}
	trace.SpanFromContext(c.Context).SetAttributes(tracing.AttrCrateName(string(name)))
	return Term(c.Context, util.Runner(c), cfg.Terminal, terminal.Options{
		Dir:       ws.CratePath(name),
		Profile:   profile,
		NewWindow: c.Bool("new-window"),
	})
}

// Term opens a terminal emulator session. The directory is not checked first.
//
// Errors:
//
//   - crates-error-invalid-argument -- when the profile is empty
//   - crates-error-exec -- when the terminal emulator cannot be started
//   - crates-error-process-exit -- when the terminal emulator fails
func Term(ctx context.Context, runner execx.Runner, terminalBin string, opts terminal.Options) error {
	if opts.Profile == "" {
		return cratesapi.ErrorArgument("terminal profile must not be empty")
	}
	code, err := runner.Run(ctx, execx.Cmd{Name: terminalBin, Args: terminal.Args(opts)})
	return util.Forward(terminalBin, code, err)
}
