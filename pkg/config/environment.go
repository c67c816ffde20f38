package config

const (
	// EnvPrefix is prepended to config keys when they are read from the environment.
	EnvPrefix = "CRATES"
	// EnvCratesWorkspace overrides workspace discovery with an explicit root directory
	EnvCratesWorkspace = "CRATES_WORKSPACE"
	// EnvCratesCargo names the build tool binary
	EnvCratesCargo = "CRATES_CARGO"
	// EnvCratesTerminal names the terminal emulator binary
	EnvCratesTerminal = "CRATES_TERMINAL"
	// EnvCratesProfile is the default terminal profile for `crates term`
	EnvCratesProfile = "CRATES_PROFILE"
	// EnvCratesDebug enables verbose logging
	EnvCratesDebug = "CRATES_DEBUG"
)

// Config keys. Each one can be set in crates.toml or through CRATES_<KEY>.
const (
	KeyCargo    = "cargo"
	KeyTerminal = "terminal"
	KeyProfile  = "profile"
)

// NOTE: keep this up to date or the config loader won't load them
var envKeys = map[string]string{
	KeyCargo:    EnvCratesCargo,
	KeyTerminal: EnvCratesTerminal,
	KeyProfile:  EnvCratesProfile,
}

var defaults = map[string]string{
	KeyCargo:    "cargo",
	KeyTerminal: "wt",
	KeyProfile:  "cmd",
}
