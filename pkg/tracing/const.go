package tracing

import "go.opentelemetry.io/otel/attribute"

// Span attribute keys used by crates
const (
	AttrKeyCratesErrorCode    = "crates.error.code"
	AttrKeyCratesCrateName    = "crates.crate.name"
	AttrKeyCratesExecName     = "crates.exec.name"
	AttrKeyCratesExecArgs     = "crates.exec.args"
	AttrKeyCratesExecExitCode = "crates.exec.exit_code"
)

// Attribute values
const (
	AttrValueExecNameCargo    = "cargo"
	AttrValueExecNameTerminal = "terminal"
)

// Enumerated attributes
var (
	AttrFullExecNameCargo    = attribute.String(AttrKeyCratesExecName, AttrValueExecNameCargo)
	AttrFullExecNameTerminal = attribute.String(AttrKeyCratesExecName, AttrValueExecNameTerminal)
)

// AttrCrateName tags a span with the crate it operates on.
func AttrCrateName(name string) attribute.KeyValue {
	return attribute.String(AttrKeyCratesCrateName, name)
}
