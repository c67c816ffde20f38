package helpgen

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/urfave/cli/v2"
)

// The default help templates in `urfave/cli` are package vars; we replace them during init.

// helper for heredoc dedenting plus don't do a trailing linebreak.
func docnl(s string) string {
	s = heredoc.Doc(s)
	return s[:len(s)-1]
}

func init() {
	cli.AppHelpTemplate = appHelpTemplate
	cli.CommandHelpTemplate = commandHelpTemplate
	cli.SubcommandHelpTemplate = commandHelpTemplate
}

var nameTemplate = docnl(`
	{{.HelpName}}{{if .Usage}} - {{.Usage}}{{end}}
`)

var flagsTemplate = docnl(`
	{{- range .VisibleFlags}}
	{{.String}}
	{{end}}
`)

var appHelpTemplate = heredoc.Doc(`
	## NAME
	{{template "nameTemplate" .}}

	## USAGE
	{{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} [global options] <command> [command options] [arguments...]{{end}}

	{{- if .Version}}{{if not .HideVersion}}

	## VERSION
	{{.Version}}
	{{- end}}{{end}}

	{{- if .Description}}

	## DESCRIPTION
	{{.Description}}
	{{- end}}

	{{- if .VisibleCommands}}

	## COMMANDS
	{{range .VisibleCommands}}
	- **{{join .Names ", "}}** -- {{.Usage}}
	{{- end}}
	{{- end}}

	{{- if .VisibleFlags}}

	## GLOBAL OPTIONS
	{{template "flagsTemplate" .}}
	{{- end}}
`)

var commandHelpTemplate = heredoc.Doc(`
	## NAME
	{{template "nameTemplate" .}}

	## USAGE
	{{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}}{{if .VisibleFlags}} [command options]{{end}}{{if .ArgsUsage}} {{.ArgsUsage}}{{end}}{{end}}

	{{- if .Description}}

	## DESCRIPTION
	{{.Description}}
	{{- end}}

	{{- if .VisibleFlags}}

	## OPTIONS
	{{template "flagsTemplate" .}}
	{{- end}}
`)

func init() {
	cli.FlagStringer = flagStringer
}

// flagStringer renders one flag as a markdown heading with its usage underneath.
func flagStringer(f cli.Flag) string {
	df, ok := f.(cli.DocGenerationFlag)
	if !ok {
		return fmt.Sprintf("#### %s\n", strings.Join(f.Names(), ", "))
	}

	placeholder, usage := unquoteUsage(df.GetUsage())
	if df.TakesValue() && placeholder == "" {
		placeholder = "VALUE"
	}

	if bf, ok := f.(*cli.BoolFlag); !ok || !bf.DisableDefaultText {
		if s := df.GetDefaultText(); s != "" && s != "false" {
			usage += fmt.Sprintf("\n\n(default: **%s**)", s)
		}
	}

	names := make([]string, 0, len(df.Names()))
	for _, name := range df.Names() {
		if name == "" {
			continue
		}
		prefix := "--"
		if len(name) == 1 {
			prefix = "-"
		}
		if placeholder != "" {
			name += "=<" + placeholder + ">"
		}
		names = append(names, prefix+name)
	}

	s := fmt.Sprintf("#### %s\n\n%s\n", strings.Join(names, ", "), strings.TrimSpace(usage))
	if env := df.GetEnvVars(); len(env) > 0 {
		s += fmt.Sprintf("\n(env var: $**%s**)\n", strings.Join(env, "**, $**"))
	}
	return s
}

// unquoteUsage returns the placeholder named in backticks, if any, and the usage with the backticks removed.
func unquoteUsage(usage string) (string, string) {
	start := strings.IndexByte(usage, '`')
	if start < 0 {
		return "", usage
	}
	end := strings.IndexByte(usage[start+1:], '`')
	if end < 0 {
		return "", usage
	}
	end += start + 1
	name := usage[start+1 : end]
	return name, usage[:start] + name + usage[end+1:]
}
