package cargo

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"

	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/workspace"
)

// Manifest is the subset of Cargo.toml that crates reads.
type Manifest struct {
	Package *Package `toml:"package"`
}

type Package struct {
	Name    string      `toml:"name"`
	Version Inheritable `toml:"version"`
	Edition Inheritable `toml:"edition"`
}

// Inheritable is a package field that may be set inline or taken from the
// enclosing cargo workspace with `field.workspace = true`.
type Inheritable struct {
	Value     string
	Workspace bool
}

func (i *Inheritable) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		i.Value = v
		return nil
	case map[string]interface{}:
		ws, ok := v["workspace"].(bool)
		if !ok {
			return fmt.Errorf("expected a string or {workspace = true}, got table %v", v)
		}
		i.Workspace = ws
		return nil
	default:
		return fmt.Errorf("expected a string or {workspace = true}, got %T", data)
	}
}

func (i Inheritable) String() string {
	if i.Workspace {
		return "workspace"
	}
	return i.Value
}

// ReadManifest parses crates/<name>/Cargo.toml from a workspace filesystem.
//
// Errors:
//
//   - crates-error-io -- when the manifest cannot be read or parsed
func ReadManifest(fsys fs.FS, name cratesapi.CrateName) (Manifest, error) {
	p := path.Join(workspace.CratesDirname, string(name), ManifestFilename)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Manifest{}, cratesapi.ErrorIo("reading manifest", p, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, cratesapi.ErrorIo("parsing manifest", p, err)
	}
	return m, nil
}
