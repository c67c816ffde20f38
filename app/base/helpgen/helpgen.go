/*
This package contains our custom help text generators,
and wires them into `urfave/cli` at package init time.

The templates emit markdown.
On a terminal that markdown is styled before printing (see the render package);
anywhere else it is printed as markdown.

(`urfave/cli` only offers package-scope vars for customizing help output,
so the package init side effects cannot be avoided.)
*/
package helpgen

import (
	"bytes"
	"io"
	"strings"
	"text/template"

	"github.com/urfave/cli/v2"

	"github.com/manufactory/crates/app/base/render"
)

/*
	How the docs strings on a cli.Command are used:

	- Usage -- a one-liner, shown in the parent's list of commands.
	- UsageText -- a synopsis, one invocation per line.
	- ArgsUsage -- the positional arguments, used when UsageText is empty.
	- Description -- freetext prose; may be multi-line.
*/

// Mode selects how help is rendered. Tests pin it to render.Mode_Markdown.
var Mode = render.Mode_Auto

// printHelpCustom is the entrypoint for `urfave/cli`'s customization.
func printHelpCustom(out io.Writer, tmpl string, data interface{}, customFuncs map[string]interface{}) {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"trim": strings.TrimSpace,
	}
	for key, value := range customFuncs {
		funcMap[key] = value
	}

	t := template.Must(template.New("help").Funcs(funcMap).Parse(tmpl))
	template.Must(t.New("nameTemplate").Parse(nameTemplate))
	template.Must(t.New("flagsTemplate").Parse(flagsTemplate))

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}
	_ = render.Render(buf.Bytes(), out, Mode)
}

func init() {
	cli.HelpPrinterCustom = printHelpCustom
}
