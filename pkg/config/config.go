package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/manufactory/crates/cratesapi"
)

// DefaultFilename is the optional config file looked up in the workspace root.
const DefaultFilename = "crates.toml"

// Config holds the external tools crates drives.
type Config struct {
	Cargo    string // build tool binary
	Terminal string // terminal emulator binary
	Profile  string // default terminal profile

	File string // config file that was read, empty when none
}

// Load layers defaults, then <root>/crates.toml when present, then CRATES_* environment variables.
// An empty root skips the file.
//
// Errors:
//
//   - crates-error-config -- when the config file exists but cannot be parsed
func Load(root string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envKeys {
		// BindEnv only errors without a key.
		_ = v.BindEnv(key, env)
	}

	var file string
	if root != "" {
		candidate := filepath.Join(root, DefaultFilename)
		if fi, err := os.Stat(candidate); err == nil && fi.Mode().IsRegular() {
			file = candidate
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, cratesapi.ErrorConfig(candidate, err)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, cratesapi.ErrorConfig(file, err)
		}
	}

	return Config{
		Cargo:    v.GetString(KeyCargo),
		Terminal: v.GetString(KeyTerminal),
		Profile:  v.GetString(KeyProfile),
		File:     file,
	}, nil
}
