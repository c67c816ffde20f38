package cratesapi

import (
	"errors"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"
)

func TestExitCode(t *testing.T) {
	qt.Check(t, ExitCode(nil), qt.Equals, ExitOkay)
	qt.Check(t, ExitCode(ErrorMissing("foo", "crates/foo")), qt.Equals, ExitFailure)
	qt.Check(t, ExitCode(ErrorDeclined("foo")), qt.Equals, ExitDeclined)
	qt.Check(t, ExitCode(ErrorProcessExit("cargo", 101)), qt.Equals, 101)
	qt.Check(t, ExitCode(ErrorUnknownCommand("frob")), qt.Equals, ExitFailure)
	qt.Check(t, ExitCode(errors.New("plain")), qt.Equals, ExitFailure)
}

func TestIsSilent(t *testing.T) {
	qt.Check(t, IsSilent(ErrorMissing("foo", "crates/foo")), qt.IsTrue)
	qt.Check(t, IsSilent(ErrorDeclined("foo")), qt.IsTrue)
	qt.Check(t, IsSilent(ErrorProcessExit("cargo", 3)), qt.IsTrue)
	qt.Check(t, IsSilent(ErrorUnknownCommand("frob")), qt.IsTrue)
	qt.Check(t, IsSilent(ErrorExec("cargo", fmt.Errorf("not found"))), qt.IsFalse)
	qt.Check(t, IsSilent(errors.New("plain")), qt.IsFalse)
}

func TestErrorMessages(t *testing.T) {
	qt.Check(t, serum.Message(ErrorUnknownCommand("frob")), qt.Equals, `"frob" command not implemented.`)
	qt.Check(t, serum.Message(ErrorProcessExit("cargo", 2)), qt.Equals, "cargo exited with code 2")
}
