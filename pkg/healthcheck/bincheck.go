package healthcheck

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/serum-errors/go-serum"
)

// BinCheck looks for an executable on PATH.
type BinCheck struct {
	Name string
}

func (c *BinCheck) String() string {
	return "binary " + c.Name
}

func isSymlink(m fs.FileMode) bool {
	return m&fs.ModeSymlink == fs.ModeSymlink
}

// Run looks the binary up on PATH, following a symlink if there is one.
// Errors:
//
//   - crates-error-healthcheck-run-okay -- when the binary is found
//   - crates-error-healthcheck-run-fail -- when the binary cannot be found
//   - crates-error-healthcheck-run-ambiguous -- when a symlink to it cannot be resolved
func (c *BinCheck) Run(ctx context.Context) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return serum.Error(CodeRunFailure, serum.WithCause(err),
			serum.WithMessageLiteral("not found on PATH"),
			serum.WithDetail("name", c.Name),
		)
	}
	if fi, err := os.Lstat(path); err == nil && isSymlink(fi.Mode()) {
		target, err := filepath.EvalSymlinks(path)
		if err != nil {
			return serum.Error(CodeRunAmbiguous, serum.WithCause(err),
				serum.WithMessageLiteral("symlink cannot be resolved"),
				serum.WithDetail(DetailPath, path),
			)
		}
		return serum.Error(CodeRunOkay,
			serum.WithMessageLiteral("found on PATH (symlink)"),
			serum.WithDetail(DetailPath, path),
			serum.WithDetail(DetailTarget, target),
		)
	}
	return serum.Error(CodeRunOkay,
		serum.WithMessageLiteral("found on PATH"),
		serum.WithDetail(DetailPath, path),
	)
}
