// Package healthcheck runs independent environment checks and prints a report of them.
package healthcheck

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/serum-errors/go-serum"

	"github.com/manufactory/crates/cratesapi"
	"github.com/manufactory/crates/pkg/logging"
)

const (
	CodeRunOkay      = "crates-error-healthcheck-run-okay"
	CodeRunFailure   = "crates-error-healthcheck-run-fail"
	CodeRunAmbiguous = "crates-error-healthcheck-run-ambiguous"
)

// Detail keys a runner may attach to say where the checked thing was found.
const (
	DetailPath   = "path"
	DetailTarget = "target"
	DetailRoot   = "root"
)

type Status int

const (
	// StatusNone is the zero value and used for unset status value
	StatusNone Status = iota
	StatusOkay
	StatusFail
	StatusAmbiguous
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "∅"
	case StatusOkay:
		return "✔"
	case StatusAmbiguous:
		return "?"
	case StatusFail:
		return "✘"
	default:
		return "!"
	}
}

func (s Status) color() *color.Color {
	switch s {
	case StatusOkay:
		return color.New(color.FgHiGreen, color.Bold)
	case StatusAmbiguous:
		return color.New(color.FgHiYellow, color.Bold)
	case StatusFail:
		return color.New(color.FgHiRed, color.Bold)
	case StatusNone:
		return color.New(color.Reset)
	default:
		return color.New(color.FgHiMagenta, color.Bold)
	}
}

type Runner interface {
	// Run reports its outcome as a serum error whose code is one of the
	// healthcheck codes. It never returns nil.
	//
	// Errors:
	//
	//    - crates-error-healthcheck-run-okay --
	//    - crates-error-healthcheck-run-fail --
	//    - crates-error-healthcheck-run-ambiguous --
	Run(context.Context) error
	// String names the check in the report.
	String() string
}

// Result is one check's outcome as shown in the report.
type Result struct {
	Check    string `json:"check"`
	Status   Status `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"` // binary path or workspace root, when the check found one
}

type HealthCheck struct {
	Runners []Runner
	Results []Result
}

// Run executes every runner in order, keeping their outcomes in Results.
// Errors: none -- outcomes are results, not failures
func (h *HealthCheck) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)
	h.Results = make([]Result, 0, len(h.Runners))
	for i, runner := range h.Runners {
		log.Debug("healthcheck", "runner %d: %s", i, runner)
		h.Results = append(h.Results, newResult(runner.String(), runner.Run(ctx)))
	}
	return nil
}

func newResult(check string, err error) Result {
	if _, ok := err.(serum.ErrorInterface); !ok {
		msg := "runner returned no result"
		if err != nil {
			msg = "runner has invalid interface: " + err.Error()
		}
		return Result{Check: check, Status: StatusFail, Code: CodeRunFailure, Message: msg}
	}
	res := Result{
		Check:   check,
		Status:  StatusOf(err),
		Code:    serum.Code(err),
		Message: serum.Message(err),
	}
	details := map[string]string{}
	for _, d := range serum.Details(err) {
		details[d[0]] = d[1]
	}
	switch {
	case details[DetailTarget] != "":
		res.Location = details[DetailPath] + " -> " + details[DetailTarget]
	case details[DetailPath] != "":
		res.Location = details[DetailPath]
	default:
		res.Location = details[DetailRoot]
	}
	return res
}

// Okay reports whether every result is okay. It is false before Run.
func (h *HealthCheck) Okay() bool {
	if len(h.Results) != len(h.Runners) {
		return false
	}
	for _, r := range h.Results {
		if r.Status != StatusOkay {
			return false
		}
	}
	return true
}

// Fprint writes one aligned line per result: status, check, location, message.
// Errors:
//
//   - crates-error-internal -- when the health check was not run before printing results
func (h *HealthCheck) Fprint(w io.Writer) error {
	if len(h.Runners) != len(h.Results) {
		return serum.Error(cratesapi.ECodeInternal,
			serum.WithMessageLiteral("HealthCheck must run before printing results"),
		)
	}
	checkWidth, locWidth := 0, 1
	for _, r := range h.Results {
		checkWidth = max(checkWidth, len(r.Check))
		locWidth = max(locWidth, len(r.Location))
	}
	for _, r := range h.Results {
		loc := r.Location
		if loc == "" {
			loc = "-"
		}
		line := fmt.Sprintf(" %s  %-*s  %-*s  %s", r.Status.color().Sprint(r.Status), checkWidth, r.Check, locWidth, loc, r.Message)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	return nil
}

// StatusOf converts a runner's serum code to a Status.
func StatusOf(err error) Status {
	if err == nil {
		return StatusNone
	}
	if _, ok := err.(serum.ErrorInterface); !ok {
		return StatusNone
	}
	switch serum.Code(err) {
	case CodeRunFailure:
		return StatusFail
	case CodeRunOkay:
		return StatusOkay
	case CodeRunAmbiguous:
		return StatusAmbiguous
	default:
		return StatusUnknown
	}
}
