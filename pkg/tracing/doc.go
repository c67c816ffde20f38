/*
Package tracing keeps an OpenTelemetry tracer in a context.Context
instead of a package global, and holds the span attribute keys crates uses.
*/
package tracing
