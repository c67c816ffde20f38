package cratesapi

import (
	"strconv"

	"github.com/serum-errors/go-serum"
)

const (
	ECodeArgument         = "crates-error-invalid-argument"
	ECodeConfig           = "crates-error-config"
	ECodeDeclined         = "crates-error-declined"
	ECodeExec             = "crates-error-exec"
	ECodeInternal         = "crates-error-internal"
	ECodeInvalidName      = "crates-error-invalid-name"
	ECodeIo               = "crates-error-io"
	ECodeMissing          = "crates-error-missing"
	ECodeProcessExit      = "crates-error-process-exit"
	ECodeUnknown          = "crates-error-unknown"
	ECodeUnknownCommand   = "crates-error-unknown-command"
	ECodeWorkspaceMissing = "crates-error-workspace-missing"
)

// Process exit codes used when no external process decided the code for us.
const (
	ExitOkay     = 0
	ExitFailure  = 1
	ExitDeclined = 2
)

// ErrorUnknown is returned when an unknown error occurs
//
// Errors:
//
//   - crates-error-unknown --
func ErrorUnknown(msgTmpl string, cause error) error {
	return serum.Errorf(ECodeUnknown, "%s: %w", msgTmpl, cause)
}

// ErrorInternal is for errors an end user is not expected to be able to do anything about.
//
// Errors:
//
//   - crates-error-internal --
func ErrorInternal(msgTmpl string, cause error) error {
	return serum.Errorf(ECodeInternal, "%s: %w", msgTmpl, cause)
}

// ErrorArgument is returned when the command line is well formed but its arguments are not usable.
// The caller must format the message string.
//
// Errors:
//
//   - crates-error-invalid-argument --
func ErrorArgument(message string, deets ...[2]string) error {
	opts := make([]serum.WithConstruction, 0, len(deets)+1)
	for _, d := range deets {
		opts = append(opts, serum.WithDetail(d[0], d[1]))
	}
	opts = append(opts, serum.WithMessageLiteral(message))
	return serum.Error(ECodeArgument, opts...)
}

// ErrorInvalidName is returned when a crate name is not a single path segment.
//
// Errors:
//
//   - crates-error-invalid-name --
func ErrorInvalidName(name string, reason string) error {
	return serum.Error(ECodeInvalidName,
		serum.WithMessageTemplate("invalid crate name {{name|q}}: {{reason}}"),
		serum.WithDetail("name", name),
		serum.WithDetail("reason", reason),
	)
}

// ErrorUnknownCommand is returned when the first positional argument names no command.
// The message is printed by the dispatcher itself, so the error is silent.
//
// Errors:
//
//   - crates-error-unknown-command --
func ErrorUnknownCommand(command string) error {
	return serum.Error(ECodeUnknownCommand,
		serum.WithMessageTemplate("{{command|q}} command not implemented."),
		serum.WithDetail("command", command),
	)
}

// ErrorWorkspaceMissing is returned when no directory containing a crates directory could be found.
//
// Errors:
//
//   - crates-error-workspace-missing --
func ErrorWorkspaceMissing(searchedFrom string) error {
	return serum.Error(ECodeWorkspaceMissing,
		serum.WithMessageTemplate("no workspace found: no directory containing \"crates\" at or above {{path|q}}"),
		serum.WithDetail("path", searchedFrom),
	)
}

// ErrorMissing is returned when a crate directory does not exist.
// The command has already told the user, so the error is silent.
//
// Errors:
//
//   - crates-error-missing --
func ErrorMissing(name CrateName, path string) error {
	return serum.Error(ECodeMissing,
		serum.WithMessageTemplate("crate {{name|q}} does not exist at {{path|q}}"),
		serum.WithDetail("name", string(name)),
		serum.WithDetail("path", path),
	)
}

// ErrorDeclined is returned when the user answers no to a confirmation prompt.
//
// Errors:
//
//   - crates-error-declined --
func ErrorDeclined(name CrateName) error {
	return serum.Error(ECodeDeclined,
		serum.WithMessageTemplate("removal of {{name|q}} declined"),
		serum.WithDetail("name", string(name)),
	)
}

// ErrorExec is returned when an external process could not be started at all.
//
// Errors:
//
//   - crates-error-exec --
func ErrorExec(binary string, cause error) error {
	return serum.Error(ECodeExec,
		serum.WithMessageTemplate("could not run {{binary|q}}"),
		serum.WithDetail("binary", binary),
		serum.WithCause(cause),
	)
}

// ErrorProcessExit is returned when an external process ran and exited non-zero.
// The process wrote its own diagnostics, so the error is silent; its exit code is forwarded.
//
// Errors:
//
//   - crates-error-process-exit --
func ErrorProcessExit(binary string, exitCode int) error {
	return serum.Error(ECodeProcessExit,
		serum.WithMessageTemplate("{{binary}} exited with code {{exitCode}}"),
		serum.WithDetail("binary", binary),
		serum.WithDetail("exitCode", strconv.Itoa(exitCode)),
	)
}

// ErrorIo wraps generic I/O errors from the Go stdlib
//
// Errors:
//
//   - crates-error-io --
func ErrorIo(context string, path string, cause error) error {
	return serum.Error(ECodeIo,
		serum.WithMessageTemplate("io error: {{context}}: {{path|q}}"),
		serum.WithDetail("context", context),
		serum.WithDetail("path", path),
		serum.WithCause(cause),
	)
}

// ErrorConfig is returned when a config file exists but cannot be used.
//
// Errors:
//
//   - crates-error-config --
func ErrorConfig(path string, cause error) error {
	return serum.Error(ECodeConfig,
		serum.WithMessageTemplate("invalid config in {{path|q}}"),
		serum.WithDetail("path", path),
		serum.WithCause(cause),
	)
}

// ExitCode picks the process exit code for an error returned by a command.
// Forwarded process failures keep the child's code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOkay
	}
	switch serum.Code(err) {
	case ECodeDeclined:
		return ExitDeclined
	case ECodeProcessExit:
		if code, convErr := strconv.Atoi(detail(err, "exitCode")); convErr == nil && code != 0 {
			return code
		}
	}
	return ExitFailure
}

// IsSilent reports whether the user has already been told about err,
// either by the command itself or by the external process it ran.
func IsSilent(err error) bool {
	switch serum.Code(err) {
	case ECodeMissing, ECodeDeclined, ECodeProcessExit, ECodeUnknownCommand:
		return true
	}
	return false
}

func detail(err error, key string) string {
	for _, d := range serum.Details(err) {
		if d[0] == key {
			return d[1]
		}
	}
	return ""
}
