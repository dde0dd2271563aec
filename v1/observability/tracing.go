package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package to the tracer provider.
const instrumentationName = "github.com/docpipe/stores/v1/observability"

// TracingObserver emits one OpenTelemetry span per observed operation.
// Operations are reported after completion, so spans are created with
// explicit timestamps reconstructed from the reported duration.
type TracingObserver struct {
	tracer trace.Tracer
}

// NewTracingObserver creates a TracingObserver using the given provider.
// Passing nil falls back to the global otel tracer provider.
func NewTracingObserver(provider trace.TracerProvider) *TracingObserver {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &TracingObserver{
		tracer: provider.Tracer(instrumentationName),
	}
}

// ObserveOperation implements Observer.
func (t *TracingObserver) ObserveOperation(op OperationContext) {
	end := time.Now()
	start := end.Add(-op.Duration)

	attrs := []attribute.KeyValue{
		attribute.String("db.system", op.Component),
		attribute.String("db.operation", op.Operation),
	}
	if op.Resource != "" {
		attrs = append(attrs, attribute.String("db.collection.name", op.Resource))
	}
	if op.SubResource != "" {
		attrs = append(attrs, attribute.String("db.document.key", op.SubResource))
	}
	if op.Size > 0 {
		attrs = append(attrs, attribute.Int64("db.batch.size", op.Size))
	}

	_, span := t.tracer.Start(context.Background(),
		op.Component+"."+op.Operation,
		trace.WithTimestamp(start),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)

	if op.Error != nil {
		span.RecordError(op.Error)
		span.SetStatus(codes.Error, op.Error.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End(trace.WithTimestamp(end))
}
