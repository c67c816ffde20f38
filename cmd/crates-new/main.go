// crates-new creates a crate in the enclosing workspace. It behaves exactly like `crates new`.
package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	appbase "github.com/manufactory/crates/app/base"
	newcli "github.com/manufactory/crates/app/new"
	"github.com/manufactory/crates/cratesapi"
)

func makeApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:           "crates-new",
		Version:        appbase.VERSION,
		Usage:          "Create a new crate within the workspace",
		Description:    newcli.Description,
		ArgsUsage:      newcli.ArgsUsage,
		Reader:         stdin,
		Writer:         stdout,
		ErrWriter:      stderr,
		Flags:          appbase.GlobalFlags(),
		Action:         newcli.Action,
		ExitErrHandler: appbase.ExitErrHandler,
	}
}

func main() {
	app := makeApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(appbase.NormalizeArgs(app, os.Args))
	os.Exit(cratesapi.ExitCode(err))
}
