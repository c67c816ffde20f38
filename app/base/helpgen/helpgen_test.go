package helpgen

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/urfave/cli/v2"

	"github.com/manufactory/crates/app/base/render"
)

func TestFlagStringer(t *testing.T) {
	s := flagStringer(&cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "open the session with terminal `PROFILE`",
		EnvVars: []string{"CRATES_PROFILE"},
	})
	qt.Check(t, s, qt.Equals,
		"#### --profile=<PROFILE>, -p=<PROFILE>\n\nopen the session with terminal PROFILE\n\n(env var: $**CRATES_PROFILE**)\n")

	s = flagStringer(&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "skip the confirmation prompt"})
	qt.Check(t, s, qt.Equals, "#### --force, -f\n\nskip the confirmation prompt\n")
}

func TestCommandHelp(t *testing.T) {
	Mode = render.Mode_Markdown
	cmd := &cli.Command{
		Name:      "exists",
		HelpName:  "crates exists",
		Usage:     "Check if a crate exists in the workspace",
		ArgsUsage: "<name>",
	}
	var buf bytes.Buffer
	printHelpCustom(&buf, commandHelpTemplate, cmd, nil)
	qt.Check(t, buf.String(), qt.Equals,
		"## NAME\ncrates exists - Check if a crate exists in the workspace\n\n## USAGE\ncrates exists <name>\n")
}
