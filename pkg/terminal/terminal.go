// Package terminal builds the command line that opens a terminal emulator session in a directory.
package terminal

// DefaultProfile is used when neither a flag nor config names a profile.
const DefaultProfile = "cmd"

type Options struct {
	Dir       string // working directory of the new session
	Profile   string // always passed; callers reject an empty one
	NewWindow bool   // open a new window instead of a tab in the most recent one
}

// Args returns the emulator arguments for opts: `[-w 0] -d <dir> -p <profile>`.
func Args(opts Options) []string {
	var args []string
	if !opts.NewWindow {
		args = append(args, "-w", "0")
	}
	args = append(args, "-d", opts.Dir)
	return append(args, "-p", opts.Profile)
}
