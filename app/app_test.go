package cratesapp_test

import (
	"testing"

	"github.com/manufactory/crates/app/testutil"
)

func TestExampleDirCLI(t *testing.T) {
	testutil.TestFileContainingTestmarkexec(t, "../examples/cli.md")
}
