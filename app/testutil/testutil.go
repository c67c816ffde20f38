package testutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"
	"github.com/warpfork/go-testmark"
	"github.com/warpfork/go-testmark/testexec"

	cratesapp "github.com/manufactory/crates/app"
	appbase "github.com/manufactory/crates/app/base"
	"github.com/manufactory/crates/app/base/helpgen"
	"github.com/manufactory/crates/app/base/render"
	"github.com/manufactory/crates/app/base/util"
	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/config"
	"github.com/manufactory/crates/pkg/execx"
)

// WorkspacePlaceholder stands in for each test's scratch directory in expected output.
const WorkspacePlaceholder = "$WS"

// TestFileContainingTestmarkexec runs every top-level test in a testmark document against the crates app.
//
// Each test runs in its own empty scratch directory. Besides crates itself,
// sequences may use `cd <dir>` and `mkdir [-p] <dir>...` to arrange the filesystem.
// External processes are never started: they are printed as `+ <command line>` instead.
func TestFileContainingTestmarkexec(t *testing.T, fileName string) {
	t.Logf("loading test file: %q", fileName)
	doc, err := testmark.ReadFile(fileName)
	if err != nil {
		t.Fatalf("fixture file parse failed?!: %s", err)
	}

	pwd, err := os.Getwd()
	qt.Assert(t, err, qt.IsNil)
	defer os.Chdir(pwd)

	for _, env := range []string{
		config.EnvCratesWorkspace,
		config.EnvCratesCargo,
		config.EnvCratesTerminal,
		config.EnvCratesProfile,
		config.EnvCratesDebug,
	} {
		t.Setenv(env, "")
	}
	helpgen.Mode = render.Mode_Markdown
	util.RunnerFactory = func(c *cli.Context) execx.Runner {
		return execx.DryRun{Out: c.App.ErrWriter}
	}

	doc.BuildDirIndex()
	patches := testmark.PatchAccumulator{}
	defer func() {
		if *testmark.Regen {
			patches.WriteFileWithPatches(doc, fileName)
		}
	}()
	for _, dir := range doc.DirEnt.ChildrenList {
		testDir := dir
		t.Run(dir.Name, func(t *testing.T) {
			scratch := t.TempDir()
			qt.Assert(t, os.Chdir(scratch), qt.IsNil)
			defer os.Chdir(pwd)

			test := testexec.Tester{
				ExecFn:   buildExecFn(t),
				Patches:  &patches,
				AssertFn: buildAssertFn(scratch),
			}
			test.Test(t, testDir)
		})
	}
}

// cleanOutput replaces the scratch directory with a placeholder and trims whitespace.
func cleanOutput(scratch, str string) string {
	paths := []string{scratch}
	if resolved, err := filepath.EvalSymlinks(scratch); err == nil && resolved != scratch {
		paths = append(paths, resolved)
	}
	for _, p := range paths {
		str = strings.ReplaceAll(str, p, WorkspacePlaceholder)
	}
	return strings.TrimSpace(str)
}

func buildAssertFn(scratch string) func(t *testing.T, actual, expect string) {
	return func(t *testing.T, actual, expect string) {
		qt.Assert(t, cleanOutput(scratch, actual), qt.Equals, cleanOutput(scratch, expect))
	}
}

// Warning!  Impure function!  Cannot safely be used in parallel!
// This mutates the CLI app object to wire the IO streams.
// Also, it uses `os.Chdir` on this process (because we're "emulating a shell" rather than making subprocesses, whee).
func buildExecFn(t *testing.T) func([]string, io.Reader, io.Writer, io.Writer) (int, error) {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
		if len(args) == 0 {
			return 0, nil
		}
		switch args[0] {
		case "cd":
			if len(args) != 2 {
				return 1, errors.New("cd takes one directory")
			}
			if err := os.Chdir(args[1]); err != nil {
				return 1, err
			}
			return 0, nil
		case "mkdir":
			for _, dir := range args[1:] {
				if dir == "-p" {
					continue
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return 1, err
				}
			}
			return 0, nil
		}

		var logged bytes.Buffer
		if stdin == nil {
			stdin = strings.NewReader("")
		}
		if stdout == nil {
			stdout = io.Discard
		}
		if stderr == nil {
			stderr = io.Discard
		}

		wd, err := os.Getwd()
		if err != nil {
			panic("failed to find working directory")
		}
		t.Log("╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱╲╱")
		t.Logf("Working Directory: %q", wd)

		app := cratesapp.App
		app.Reader = stdin
		app.Writer = io.MultiWriter(stdout, &logged)
		app.ErrWriter = io.MultiWriter(stderr, &logged)
		err = app.Run(appbase.NormalizeArgs(app, args))
		exitCode := cratesapi.ExitCode(err)

		t.Logf("Args: %v", args)
		t.Logf("Exit code: %d", exitCode)
		for err != nil {
			t.Logf("Code: %s", serum.Code(err))
			t.Logf("Message: %s", serum.Message(err))
			t.Logf("Details: %v", serum.Details(err))
			err = errors.Unwrap(err)
			if err != nil {
				t.Logf("caused by:")
			}
		}
		t.Logf("==============")
		t.Logf("⌄⌄⌄ output ⌄⌄⌄\n%s", logged.String())
		t.Logf("⌃⌃⌃ output ⌃⌃⌃")
		return exitCode, nil
	}
}
