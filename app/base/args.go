package appbase

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// NormalizeArgs reorders a command line so that `urfave/cli` accepts flags anywhere.
//
// Global flags found after the command move in front of it, command flags move
// in front of the positional arguments, and a literal "--" still ends flag
// recognition. Anything this function does not understand is left for the
// parser to reject. An app without commands treats its own flags as the
// command's flags.
func NormalizeArgs(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}
	global := flagTable(app.Flags, cli.HelpFlag, cli.VersionFlag)
	out := []string{args[0]}
	rest := args[1:]
	for len(rest) > 0 && isFlag(rest[0]) {
		n := consumes(global, rest)
		out = append(out, rest[:n]...)
		rest = rest[n:]
	}
	if len(rest) == 0 || rest[0] == "--" {
		return append(out, rest...)
	}

	if len(app.Commands) == 0 {
		flags, positional := split(rest, global, nil)
		return append(append(out, flags...), positional...)
	}
	cmd := app.Command(rest[0])
	if cmd == nil {
		return append(out, rest...)
	}
	local := flagTable(cmd.Flags, cli.HelpFlag)
	cmdFlags, positional, moved := splitMoving(rest[1:], local, global)
	out = append(out, moved...)
	out = append(out, rest[0])
	out = append(out, cmdFlags...)
	return append(out, positional...)
}

// split separates flags known to local from positional arguments.
// Unknown flags stay flags so the parser can report them.
func split(args []string, local, global map[string]bool) (flags, positional []string) {
	flags, positional, moved := splitMoving(args, local, global)
	return append(moved, flags...), positional
}

func splitMoving(args []string, local, global map[string]bool) (flags, positional, moved []string) {
	var afterDash []string
	for i := 0; i < len(args); {
		tok := args[i]
		if tok == "--" {
			afterDash = args[i+1:]
			break
		}
		if !isFlag(tok) {
			positional = append(positional, tok)
			i++
			continue
		}
		name := flagName(tok)
		if _, ok := local[name]; !ok {
			if _, ok := global[name]; ok {
				n := consumes(global, args[i:])
				moved = append(moved, args[i:i+n]...)
				i += n
				continue
			}
		}
		n := consumes(local, args[i:])
		flags = append(flags, args[i:i+n]...)
		i += n
	}
	if afterDash != nil {
		positional = append(append([]string{"--"}, positional...), afterDash...)
	}
	return flags, positional, moved
}

// flagTable maps every flag name and alias to whether the flag takes a value.
func flagTable(flags []cli.Flag, extra ...cli.Flag) map[string]bool {
	table := make(map[string]bool)
	for _, f := range append(append([]cli.Flag{}, flags...), extra...) {
		if f == nil {
			continue
		}
		takesValue := false
		if df, ok := f.(cli.DocGenerationFlag); ok {
			takesValue = df.TakesValue()
		}
		for _, name := range f.Names() {
			table[name] = takesValue
		}
	}
	return table
}

// consumes returns how many tokens the flag at args[0] uses.
func consumes(table map[string]bool, args []string) int {
	if strings.Contains(args[0], "=") {
		return 1
	}
	if table[flagName(args[0])] && len(args) > 1 {
		return 2
	}
	return 1
}

func isFlag(tok string) bool {
	return len(tok) > 1 && tok[0] == '-' && tok != "--"
}

func flagName(tok string) string {
	name := strings.TrimLeft(tok, "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}
