package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/serum-errors/go-serum"

	"github.com/manufactory/crates/pkg/workspace"
)

// WorkspaceCheck reports whether a workspace can be found from Dir.
// An explicit Root skips discovery and only checks that its crates directory exists.
type WorkspaceCheck struct {
	Dir  string
	Root string
}

func (c *WorkspaceCheck) String() string {
	return "workspace"
}

// Run locates the workspace root.
// Errors:
//
//   - crates-error-healthcheck-run-okay -- when a crates directory is found
//   - crates-error-healthcheck-run-fail -- when no workspace can be found
//   - crates-error-healthcheck-run-ambiguous -- when an explicit root has no crates directory yet
func (c *WorkspaceCheck) Run(ctx context.Context) error {
	if c.Root != "" {
		ws := workspace.Open(c.Root)
		fi, err := fs.Stat(ws.FS(), workspace.CratesDirname)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return serum.Error(CodeRunFailure, serum.WithCause(err),
				serum.WithMessageLiteral("cannot read the crates directory"),
				serum.WithDetail(DetailRoot, c.Root),
			)
		}
		if err != nil || !fi.IsDir() {
			return serum.Error(CodeRunAmbiguous,
				serum.WithMessageLiteral("no crates directory yet"),
				serum.WithDetail(DetailRoot, c.Root),
			)
		}
		return serum.Error(CodeRunOkay,
			serum.WithMessageLiteral("crates directory found at the given root"),
			serum.WithDetail(DetailRoot, ws.Root()),
		)
	}
	ws, err := workspace.Find(c.Dir)
	if err != nil {
		return serum.Error(CodeRunFailure, serum.WithCause(err),
			serum.WithMessageLiteral(fmt.Sprintf("no workspace at or above %s", c.Dir)),
		)
	}
	return serum.Error(CodeRunOkay,
		serum.WithMessageLiteral("found by searching upward"),
		serum.WithDetail(DetailRoot, ws.Root()),
	)
}
