package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/manufactory/crates/cratesapi"
)

// CratesDirname is the directory whose presence marks a workspace root.
const CratesDirname = "crates"

// FindWorkspace looks for a workspace root on the filesystem, searching directories upward
// from searchPath, and returns the first directory that contains a crates directory.
//
// searchPath is a slash-separated path inside fsys ("." for the fsys root).
// The fsys root itself is checked last.
// If no workspace is found, found is false and err is nil.
// If errors are returned, they're due to filesystem IO.
//
// An fsys handle is required, but is typically `os.DirFS("/")` outside of tests.
//
// Errors:
//
//   - crates-error-io -- when an unexpected error occurs traversing the search path
func FindWorkspace(fsys fs.FS, searchPath string) (root string, found bool, err error) {
	searchAt := path.Clean(searchPath)
	for {
		fi, err := fs.Stat(fsys, path.Join(searchAt, CratesDirname))
		if err == nil && fi.IsDir() {
			return searchAt, true, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			// Whatever this error is, our search has blind spots: error out.
			return "", false, cratesapi.ErrorIo("searching for workspace", searchAt, err)
		}
		if searchAt == "." {
			return "", false, nil
		}
		searchAt = path.Dir(searchAt)
	}
}

// Find opens the nearest workspace at or above dir on the host filesystem.
//
// Errors:
//
//   - crates-error-io -- when dir cannot be made absolute or the search hits an IO error
//   - crates-error-workspace-missing -- when no directory at or above dir contains a crates directory
func Find(dir string) (*Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, cratesapi.ErrorIo("resolving directory", dir, err)
	}
	volumeRoot := filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err := filepath.Rel(volumeRoot, abs)
	if err != nil {
		return nil, cratesapi.ErrorIo("resolving directory", abs, err)
	}
	rel = filepath.ToSlash(rel)
	found, ok, err := FindWorkspace(os.DirFS(volumeRoot), rel)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, cratesapi.ErrorWorkspaceMissing(abs)
	}
	return Open(filepath.Join(volumeRoot, filepath.FromSlash(found))), nil
}

// hostPath turns a slash path inside a workspace fsys into a native path under root.
func hostPath(root string, elem ...string) string {
	return filepath.Join(append([]string{root}, elem...)...)
}

func fsPath(elem ...string) string {
	return strings.TrimPrefix(path.Join(elem...), "/")
}
