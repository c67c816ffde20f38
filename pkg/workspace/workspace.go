package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agnivade/levenshtein"
	"github.com/facette/natsort"

	"github.com/manufactory/crates/cratesapi"
)

// SuggestDistance is the largest edit distance at which a crate name is offered as a suggestion.
const SuggestDistance = 2

// Workspace is a directory holding a crates directory.
// Every check goes to the filesystem; nothing is cached.
type Workspace struct {
	fsys fs.FS  // rooted at root
	root string // native path of the workspace root
}

// Open returns the workspace rooted at root on the host filesystem.
// It does not check that root contains a crates directory.
func Open(root string) *Workspace {
	root = filepath.Clean(root)
	return &Workspace{fsys: os.DirFS(root), root: root}
}

// OpenFS is Open with an explicit filesystem, rooted at the workspace root.
func OpenFS(fsys fs.FS, root string) *Workspace {
	return &Workspace{fsys: fsys, root: filepath.Clean(root)}
}

func (ws *Workspace) Root() string { return ws.root }
func (ws *Workspace) FS() fs.FS    { return ws.fsys }

// CratesDir returns the native path of the crates directory.
func (ws *Workspace) CratesDir() string {
	return hostPath(ws.root, CratesDirname)
}

// CratePath returns the absolute path of a crate: <root>/crates/<name>.
func (ws *Workspace) CratePath(name cratesapi.CrateName) string {
	return CratePath(ws.root, name)
}

// CratePath is the pure form of Workspace.CratePath.
func CratePath(root string, name cratesapi.CrateName) string {
	return hostPath(root, CratesDirname, string(name))
}

// CrateRelPath returns crates/<name> relative to the workspace root, in native separators.
func CrateRelPath(name cratesapi.CrateName) string {
	return filepath.Join(CratesDirname, string(name))
}

// Exists reports whether crates/<name> exists right now.
//
// Errors:
//
//   - crates-error-io -- when the path cannot be checked
func (ws *Workspace) Exists(name cratesapi.CrateName) (bool, error) {
	_, err := fs.Stat(ws.fsys, fsPath(CratesDirname, string(name)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, cratesapi.ErrorIo("checking crate", ws.CratePath(name), err)
	}
}

// List returns the directories under crates/ in natural sort order.
// A workspace without a crates directory has no crates.
//
// Errors:
//
//   - crates-error-io -- when the crates directory cannot be read
func (ws *Workspace) List() ([]cratesapi.CrateName, error) {
	entries, err := fs.ReadDir(ws.fsys, CratesDirname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, cratesapi.ErrorIo("listing crates", ws.CratesDir(), err)
	}
	names := make([]string, 0, len(entries))
	for _, ent := range entries {
		if ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	natsort.Sort(names)
	result := make([]cratesapi.CrateName, len(names))
	for i, n := range names {
		result[i] = cratesapi.CrateName(n)
	}
	return result, nil
}

// Suggest returns the existing crate closest to name, if one is within SuggestDistance edits.
// Listing failures yield no suggestion.
func (ws *Workspace) Suggest(name cratesapi.CrateName) (cratesapi.CrateName, bool) {
	names, err := ws.List()
	if err != nil {
		return "", false
	}
	best, bestDist := cratesapi.CrateName(""), SuggestDistance+1
	for _, candidate := range names {
		if candidate == name {
			continue
		}
		d := levenshtein.ComputeDistance(string(name), string(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}

// Remove recursively deletes crates/<name> on the host filesystem.
//
// Errors:
//
//   - crates-error-io -- when the directory cannot be removed
func (ws *Workspace) Remove(name cratesapi.CrateName) error {
	p := ws.CratePath(name)
	if err := os.RemoveAll(p); err != nil {
		return cratesapi.ErrorIo("removing crate", p, err)
	}
	return nil
}
