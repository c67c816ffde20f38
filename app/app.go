package cratesapp

import (
	appbase "github.com/manufactory/crates/app/base"
	_ "github.com/manufactory/crates/app/exists"
	_ "github.com/manufactory/crates/app/healthcheck"
	_ "github.com/manufactory/crates/app/list"
	_ "github.com/manufactory/crates/app/new"
	_ "github.com/manufactory/crates/app/rm"
	_ "github.com/manufactory/crates/app/run"
	_ "github.com/manufactory/crates/app/term"
)

var App = appbase.App
