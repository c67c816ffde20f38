package config

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/manufactory/crates/cratesapi"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, cfg, qt.Equals, Config{Cargo: "cargo", Terminal: "wt", Profile: "cmd"})
}

func TestLoadEmptyRoot(t *testing.T) {
	cfg, err := Load("")
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, cfg.File, qt.Equals, "")
	qt.Check(t, cfg.Profile, qt.Equals, "cmd")
}

func TestLoadFileAndEnv(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, DefaultFilename)
	err := os.WriteFile(file, []byte("cargo = \"cargo-nightly\"\nprofile = \"pwsh\"\n"), 0o644)
	qt.Assert(t, err, qt.IsNil)

	cfg, err := Load(root)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, cfg, qt.Equals, Config{Cargo: "cargo-nightly", Terminal: "wt", Profile: "pwsh", File: file})

	t.Setenv(EnvCratesProfile, "bash")
	t.Setenv(EnvCratesTerminal, "wezterm")
	cfg, err = Load(root)
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, cfg.Profile, qt.Equals, "bash")
	qt.Check(t, cfg.Terminal, qt.Equals, "wezterm")
	qt.Check(t, cfg.Cargo, qt.Equals, "cargo-nightly")
}

func TestLoadInvalidFile(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, DefaultFilename), []byte("cargo = = nope"), 0o644)
	qt.Assert(t, err, qt.IsNil)

	_, err = Load(root)
	qt.Assert(t, err, qt.IsNotNil)
	qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeConfig)
}
