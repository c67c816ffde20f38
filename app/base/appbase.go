package appbase

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"

	_ "github.com/manufactory/crates/app/base/helpgen"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/config"
)

const VERSION = "v0.2.0"

var App = &cli.App{
	Name:    "crates",
	Version: VERSION,
	Usage:   `Manage crates inside of a Rust workspace ("./crates/*")`,

	Reader:    closedReader{}, // Replace with os.Stdin in real application; or other wiring, in tests.
	Writer:    panicWriter{},  // Replace with os.Stdout in real application; or other wiring, in tests.
	ErrWriter: panicWriter{},  // Replace with os.Stderr in real application; or other wiring, in tests.

	Flags: GlobalFlags(),

	// The commands slice is updated by each package that contains commands.
	// Import the parent of this package to get that all done for you!
	Commands: []*cli.Command{},

	HideHelpCommand: true,
	Action:          rootAction,
	ExitErrHandler:  ExitErrHandler,
}

// GlobalFlags returns the flags every crates program accepts before or after its command.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress printing",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print debug logs to stderr",
			EnvVars: []string{config.EnvCratesDebug},
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Enable JSON API output",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print external commands instead of running them",
		},
		&cli.StringFlag{
			Name:      "workspace",
			Aliases:   []string{"C"},
			Usage:     "Use `DIR` as the workspace root instead of searching upward for a crates directory",
			EnvVars:   []string{config.EnvCratesWorkspace},
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:      "trace.file",
			Usage:     "Enable tracing and emit output to file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "trace.http.enable",
			Usage: "Enable remote tracing over http",
		},
		&cli.BoolFlag{
			Name:  "trace.http.insecure",
			Usage: "Allows insecure http",
		},
		&cli.StringFlag{
			Name:  "trace.http.endpoint",
			Usage: "Sets an endpoint for remote open-telemetry tracing collection",
		},
	}
}

// rootAction runs when no command matched. The help command is hidden from
// listings, so `help [command]` is answered here.
func rootAction(c *cli.Context) error {
	if !c.Args().Present() {
		if err := cli.ShowAppHelp(c); err != nil {
			return err
		}
		return cratesapi.ErrorArgument("a command is required")
	}
	name := c.Args().First()
	if name == "help" {
		if topic := c.Args().Get(1); topic != "" {
			if c.App.Command(topic) == nil {
				return cratesapi.ErrorArgument(fmt.Sprintf("no help topic %q", topic))
			}
			return cli.ShowCommandHelp(c, topic)
		}
		return cli.ShowAppHelp(c)
	}
	fmt.Fprintf(c.App.ErrWriter, "%q command not implemented.\n", name)
	return cratesapi.ErrorUnknownCommand(name)
}

// ExitErrHandler reports a command's error. It never exits; main picks the exit code.
func ExitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if c.Bool("json") {
		bytes, err := json.Marshal(err)
		if err != nil {
			panic("error marshaling json")
		}
		fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
		return
	}
	if cratesapi.IsSilent(err) {
		return
	}
	msg := err.Error()
	if m := serum.Message(err); m != "" {
		msg = m
	}
	fmt.Fprintf(c.App.ErrWriter, "error: %s\n", msg)
}

// Aaaand the other modifications to `urfave/cli` that are unfortunately only possible by manipulating globals:
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version", // And no short aliases.  "-v" is for "verbose"!
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type closedReader struct{}

// Read is a dummy method that always returns EOF.
func (c closedReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

type panicWriter struct{}

// Write is a dummy method that always panics.  You're supposed to replace panicWriter values before use.
func (p panicWriter) Write(data []byte) (int, error) {
	panic("replace the Writer and ErrWriter on the App value in packages that use it!")
}
