package listcli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/urfave/cli/v2"

	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/cargo"
	"github.com/manufactory/crates/pkg/logging"
	"github.com/manufactory/crates/pkg/workspace"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, lsCmdDef)
}

var lsCmdDef = &cli.Command{
	Name:    "ls",
	Aliases: []string{"list"},
	Usage:   "List the crates in the workspace",
	Action:  util.Action(cmdList),
}

// Entry describes one crate directory. Manifest fields are empty when the manifest is absent or unreadable.
type Entry struct {
	Name    cratesapi.CrateName `json:"name"`
	Path    string              `json:"path"`
	Package string              `json:"package,omitempty"`
	Version string              `json:"version,omitempty"`
	Edition string              `json:"edition,omitempty"`
}

func cmdList(c *cli.Context) error {
	if c.Args().Present() {
		return cratesapi.ErrorArgument("ls takes no arguments")
	}
	ws, err := util.OpenWorkspace(c)
	if err != nil {
		return err
	}
	entries, err := List(c.Context, ws)
	if err != nil {
		return err
	}
	log := logging.Ctx(c.Context)
	if log.JSON() {
		if entries == nil {
			entries = []Entry{}
		}
		return log.Result(entries)
	}
	for _, line := range Format(entries) {
		log.Out("%s", line)
	}
	return nil
}

// List returns every crate in natural order, with what its manifest says about it.
//
// Errors:
//
//   - crates-error-io -- when the crates directory cannot be read
func List(ctx context.Context, ws *workspace.Workspace) ([]Entry, error) {
	log := logging.Ctx(ctx)
	names, err := ws.List()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, name := range names {
		ent := Entry{Name: name, Path: ws.CratePath(name)}
		m, err := cargo.ReadManifest(ws.FS(), name)
		switch {
		case err == nil && m.Package != nil:
			ent.Package = m.Package.Name
			ent.Version = m.Package.Version.String()
			ent.Edition = m.Package.Edition.String()
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			log.Debug("ls", "%s: %s", name, err)
		}
		entries = append(entries, ent)
	}
	return entries, nil
}

// Format lays entries out in aligned columns: name, then version when known.
func Format(entries []Entry) []string {
	width := 0
	for _, ent := range entries {
		if len(ent.Name) > width {
			width = len(ent.Name)
		}
	}
	lines := make([]string, 0, len(entries))
	for _, ent := range entries {
		if ent.Version == "" {
			lines = append(lines, string(ent.Name))
			continue
		}
		lines = append(lines, padRight(string(ent.Name), width)+"  "+ent.Version)
	}
	return lines
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
