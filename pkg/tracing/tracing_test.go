package tracing

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/manufactory/crates/cratesapi"
)

func TestTracerFromCtxDefaultsToNoop(t *testing.T) {
	ctx, span := Start(context.Background(), "noop")
	defer span.End()
	qt.Check(t, ctx, qt.IsNotNil)
	qt.Check(t, span.IsRecording(), qt.IsFalse)
}

func TestSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx := SetTracer(context.Background(), provider.Tracer("test"))

	ctx, span := Start(ctx, "rm")
	SetSpanError(ctx, cratesapi.ErrorDeclined("foo"))
	span.End()

	_, ok := Start(ctx, "ok")
	EndWithStatus(ok, nil)

	ended := recorder.Ended()
	qt.Assert(t, ended, qt.HasLen, 2)
	qt.Check(t, ended[0].Status().Code, qt.Equals, codes.Error)
	var found bool
	for _, attr := range ended[0].Attributes() {
		if string(attr.Key) == AttrKeyCratesErrorCode {
			found = true
			qt.Check(t, attr.Value.AsString(), qt.Equals, cratesapi.ECodeDeclined)
		}
	}
	qt.Check(t, found, qt.IsTrue)
	qt.Check(t, ended[1].Status().Code, qt.Equals, codes.Ok)
}
