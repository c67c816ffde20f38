package appbase

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/urfave/cli/v2"
)

func testApp() *cli.App {
	return &cli.App{
		Name:  "crates",
		Flags: GlobalFlags(),
		Commands: []*cli.Command{
			{Name: "rm", Flags: []cli.Flag{&cli.BoolFlag{Name: "force", Aliases: []string{"f"}}}},
			{Name: "term", Flags: []cli.Flag{
				&cli.BoolFlag{Name: "new-window", Aliases: []string{"n"}},
				&cli.StringFlag{Name: "profile", Aliases: []string{"p"}},
			}},
			{Name: "exists"},
		},
	}
}

func TestNormalizeArgs(t *testing.T) {
	app := testApp()
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"crates rm foo -f", "crates rm -f foo"},
		{"crates rm -f foo", "crates rm -f foo"},
		{"crates -q rm foo --force", "crates -q rm --force foo"},
		{"crates rm foo -q -f", "crates -q rm -f foo"},
		{"crates term foo -p pwsh -n", "crates term -p pwsh -n foo"},
		{"crates term foo --profile=pwsh", "crates term --profile=pwsh foo"},
		{"crates exists foo -C /ws", "crates -C /ws exists foo"},
		{"crates -C /ws exists foo", "crates -C /ws exists foo"},
		{"crates rm -- -weird", "crates rm -- -weird"},
		{"crates rm foo -- -f", "crates rm -- foo -f"},
		{"crates exists foo --bogus", "crates exists --bogus foo"},
		{"crates frob foo -q", "crates frob foo -q"},
		{"crates", "crates"},
		{"crates -q", "crates -q"},
		{"crates exists foo -h", "crates exists -h foo"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got := NormalizeArgs(app, strings.Fields(tc.in))
			qt.Check(t, strings.Join(got, " "), qt.Equals, tc.want)
		})
	}
}

func TestNormalizeArgsSingleCommand(t *testing.T) {
	app := &cli.App{
		Name:  "crates-new",
		Flags: GlobalFlags(),
	}
	got := NormalizeArgs(app, strings.Fields("crates-new lib foo --dry-run -C /ws"))
	qt.Check(t, strings.Join(got, " "), qt.Equals, "crates-new --dry-run -C /ws lib foo")
}
