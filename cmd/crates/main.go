package main

import (
	"os"

	cratesapp "github.com/manufactory/crates/app"
	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/cratesapi"
)

func main() {
	app := cratesapp.App
	app.Reader = os.Stdin
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	err := app.Run(appbase.NormalizeArgs(app, os.Args))
	os.Exit(cratesapi.ExitCode(err))
}
