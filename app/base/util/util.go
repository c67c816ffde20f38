package util

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/config"
	"github.com/manufactory/crates/pkg/execx"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/prompt"
	"github.com/manufactory/crates/pkg/workspace"
)

// RunnerFactory builds the process runner used when --dry-run is not set.
// Tests replace it to keep real build tools out of the loop.
var RunnerFactory = func(c *cli.Context) execx.Runner {
	return execx.Host{
		Stdin:  c.App.Reader,
		Stdout: c.App.Writer,
		Stderr: c.App.ErrWriter,
	}
}

// Runner returns the process runner for this invocation.
func Runner(c *cli.Context) execx.Runner {
	if c.Bool("dry-run") {
		return execx.DryRun{Out: c.App.ErrWriter}
	}
	return RunnerFactory(c)
}

// Confirmer asks on the app's writer and reads answers from the app's reader.
// With --json the question goes to the error writer, keeping stdout pure JSON.
func Confirmer(c *cli.Context) prompt.Confirmer {
	out := c.App.Writer
	if c.Bool("json") {
		out = c.App.ErrWriter
	}
	return prompt.Line{In: c.App.Reader, Out: out}
}

// OpenWorkspace resolves the workspace root: the --workspace flag (or CRATES_WORKSPACE)
// if given, otherwise the nearest directory at or above the working directory holding a crates directory.
//
// Errors:
//
//   - crates-error-io -- when the working directory or the given root cannot be resolved
//   - crates-error-workspace-missing -- when no workspace can be found
func OpenWorkspace(c *cli.Context) (*workspace.Workspace, error) {
	log := logging.Ctx(c.Context)
	if root := c.String("workspace"); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, cratesapi.ErrorIo("resolving workspace", root, err)
		}
		log.Debug("", "workspace (explicit): %s", abs)
		return workspace.Open(abs), nil
	}
	pwd, err := os.Getwd()
	if err != nil {
		return nil, cratesapi.ErrorIo("getting working directory", ".", err)
	}
	ws, err := workspace.Find(pwd)
	if err != nil {
		return nil, err
	}
	log.Debug("", "workspace: %s", ws.Root())
	return ws, nil
}

// LoadConfig reads configuration layered over the workspace root.
//
// Errors:
//
//   - crates-error-config -- when the config file cannot be parsed
func LoadConfig(c *cli.Context, ws *workspace.Workspace) (config.Config, error) {
	cfg, err := config.Load(ws.Root())
	if err != nil {
		return cfg, err
	}
	if cfg.File != "" {
		logging.Ctx(c.Context).Debug("", "config file: %s", cfg.File)
	}
	return cfg, nil
}

// CrateArgs checks the positional argument count and parses the last one as a crate name.
// The preceding arguments are returned as given.
//
// Errors:
//
//   - crates-error-invalid-argument -- when the argument count is wrong
//   - crates-error-invalid-name -- when the crate name is not a single path segment
func CrateArgs(c *cli.Context, want int) ([]string, cratesapi.CrateName, error) {
	args := c.Args().Slice()
	if len(args) != want {
		usage := c.App.ArgsUsage
		if c.Command != nil && c.Command.ArgsUsage != "" {
			usage = c.Command.ArgsUsage
		}
		return nil, "", cratesapi.ErrorArgument(
			"expected "+strconv.Itoa(want)+" argument(s): "+usage,
			[2]string{"got", strconv.Itoa(len(args))},
		)
	}
	name, err := cratesapi.ParseCrateName(args[want-1])
	if err != nil {
		return nil, "", err
	}
	return args[:want-1], name, nil
}

// Missing tells the user a crate is absent, suggesting a near match, and returns the silent missing error.
func Missing(ctx context.Context, ws *workspace.Workspace, name cratesapi.CrateName, message string) error {
	if suggestion, ok := ws.Suggest(name); ok {
		message += fmt.Sprintf(" Did you mean %q?", suggestion)
	}
	logging.Ctx(ctx).Out("%s", message)
	return cratesapi.ErrorMissing(name, ws.CratePath(name))
}

// Forward turns a runner result into the command's return value:
// a start failure stays an error, a non-zero exit becomes a silent error carrying the code.
func Forward(name string, code int, err error) error {
	if err != nil {
		return err
	}
	if code != 0 {
		return cratesapi.ErrorProcessExit(name, code)
	}
	return nil
}
