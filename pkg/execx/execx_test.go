package execx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/manufactory/crates/cratesapi"
)

// TestHelperProcess is not a real test. It is the child process for the Host tests.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("CRATES_WANT_HELPER_PROCESS") != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) < 2 {
		os.Exit(99)
	}
	code, _ := strconv.Atoi(args[1])
	wd, _ := os.Getwd()
	fmt.Fprintf(os.Stdout, "stdout %v\n", args[2:])
	fmt.Fprintf(os.Stderr, "stderr in %s\n", wd)
	os.Exit(code)
}

func helperCmd(t *testing.T, code int, args ...string) Cmd {
	t.Setenv("CRATES_WANT_HELPER_PROCESS", "1")
	return Cmd{
		Name: os.Args[0],
		Args: append([]string{"-test.run=TestHelperProcess", "--", strconv.Itoa(code)}, args...),
	}
}

func TestHostRun(t *testing.T) {
	t.Run("exit-zero", func(t *testing.T) {
		var out, errOut bytes.Buffer
		cmd := helperCmd(t, 0, "a", "b")
		cmd.Dir = t.TempDir()
		code, err := Host{Stdout: &out, Stderr: &errOut}.Run(context.Background(), cmd)
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, code, qt.Equals, 0)
		qt.Check(t, out.String(), qt.Equals, "stdout [a b]\n")
		qt.Check(t, errOut.String(), qt.Contains, "stderr in ")
	})
	t.Run("exit-code-forwarded", func(t *testing.T) {
		var out bytes.Buffer
		code, err := Host{Stdout: &out, Stderr: &out}.Run(context.Background(), helperCmd(t, 101))
		qt.Assert(t, err, qt.IsNil)
		qt.Check(t, code, qt.Equals, 101)
	})
	t.Run("missing-binary", func(t *testing.T) {
		_, err := Host{}.Run(context.Background(), Cmd{Name: "crates-no-such-binary-for-test"})
		qt.Assert(t, err, qt.IsNotNil)
		qt.Check(t, serum.Code(err), qt.Equals, cratesapi.ECodeExec)
	})
}

func TestDryRun(t *testing.T) {
	var out bytes.Buffer
	code, err := DryRun{Out: &out}.Run(context.Background(), Cmd{
		Name: "wt",
		Args: []string{"-w", "0", "-d", "/my ws/crates/foo", "-p", "cmd"},
	})
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, code, qt.Equals, 0)
	qt.Check(t, out.String(), qt.Equals, "+ wt -w 0 -d \"/my ws/crates/foo\" -p cmd\n")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{ExitCode: 3}
	code, err := r.Run(context.Background(), Cmd{Name: "cargo", Args: []string{"run"}})
	qt.Assert(t, err, qt.IsNil)
	qt.Check(t, code, qt.Equals, 3)
	qt.Check(t, r.Calls, qt.DeepEquals, []Cmd{{Name: "cargo", Args: []string{"run"}}})
}
