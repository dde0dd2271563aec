package observability

import (
	"errors"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recordingObserver struct {
	operations []OperationContext
}

func (r *recordingObserver) ObserveOperation(ctx OperationContext) {
	r.operations = append(r.operations, ctx)
}

func TestMultiObserver_FansOut(t *testing.T) {
	first := &recordingObserver{}
	second := &recordingObserver{}

	m := NewMultiObserver(first, nil, second)
	m.ObserveOperation(OperationContext{Component: "arango", Operation: "count"})

	if len(first.operations) != 1 || len(second.operations) != 1 {
		t.Fatalf("expected both observers to record 1 operation, got %d and %d",
			len(first.operations), len(second.operations))
	}
	if first.operations[0].Operation != "count" {
		t.Errorf("expected operation count, got %q", first.operations[0].Operation)
	}
}

func TestNoopObserver_NoPanic(t *testing.T) {
	NoopObserver{}.ObserveOperation(OperationContext{})
}

func TestTracingObserver_EmitsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	obs := NewTracingObserver(provider)
	obs.ObserveOperation(OperationContext{
		Component: "arango",
		Operation: "filter",
		Resource:  "documents",
		Duration:  25 * time.Millisecond,
		Size:      3,
	})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name != "arango.filter" {
		t.Errorf("expected span name arango.filter, got %q", span.Name)
	}
	if got := span.EndTime.Sub(span.StartTime); got < 25*time.Millisecond {
		t.Errorf("expected span duration >= 25ms, got %v", got)
	}
}

func TestTracingObserver_RecordsError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	obs := NewTracingObserver(provider)
	obs.ObserveOperation(OperationContext{
		Component: "arango",
		Operation: "get",
		Error:     errors.New("document not found"),
	})

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if len(spans[0].Events) == 0 {
		t.Error("expected an exception event on the span")
	}
}
