package parallel_test

import (
	"cmp"
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/rainkit/iterpar/parallel"
)

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestEvaluateRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	_, err := parallel.Maximum(context.Background(), 3, []int{4, 8, 15, 16, 23, 42}, cmp.Compare[int],
		quiet, parallel.WithTracerProvider(tp))
	if err != nil {
		t.Fatal(err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	span := spans[0]
	if span.Name() != "parallel.evaluate" {
		t.Errorf("unexpected span name %q", span.Name())
	}
	if v, ok := spanAttr(span, "parallel.operation"); !ok || v.AsString() != "maximum" {
		t.Errorf("expected operation=maximum, got %v", v.Emit())
	}
	if v, ok := spanAttr(span, "parallel.workers"); !ok || v.AsInt64() != 3 {
		t.Errorf("expected workers=3, got %v", v.Emit())
	}
	if v, ok := spanAttr(span, "parallel.length"); !ok || v.AsInt64() != 6 {
		t.Errorf("expected length=6, got %v", v.Emit())
	}
}

func TestEvaluateRecordsSpanError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	if _, err := parallel.Minimum(context.Background(), 0, []int{1}, cmp.Compare[int], quiet, parallel.WithTracerProvider(tp)); err == nil {
		t.Fatal("expected an error")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status())
	}
	if _, ok := spanAttr(spans[0], "parallel.workers"); ok {
		t.Error("no workers should be recorded for rejected arguments")
	}
}

func TestEvaluateRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(ctx)

	values := []int{1, 2, 3, 4, 5}
	if _, err := parallel.Filter(ctx, 2, values, isEven, quiet, parallel.WithMeterProvider(mp)); err != nil {
		t.Fatal(err)
	}
	if _, err := parallel.Map(ctx, 10, values, func(x int) int { return x }, quiet, parallel.WithMeterProvider(mp)); err != nil {
		t.Fatal(err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if s, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range s.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}
	if totals["parallel.evaluations"] != 2 {
		t.Errorf("expected 2 evaluations, got %d", totals["parallel.evaluations"])
	}
	// Filter runs 2 workers, Map runs min(10, 5) = 5.
	if totals["parallel.workers"] != 7 {
		t.Errorf("expected 7 workers, got %d", totals["parallel.workers"])
	}
}
