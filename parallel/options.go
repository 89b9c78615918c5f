package parallel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/rainkit/iterpar/config"
	"github.com/rainkit/iterpar/logger"
)

const instrumentationName = "github.com/rainkit/iterpar/parallel"

// An Option configures the logging and telemetry of a single call.
type Option func(*options)

type options struct {
	log            *logger.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithLogger sets the logger. The default is the global logger tagged with
// component=parallel.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithConfig sets the logger from a loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.log = cfg.NewLogger("iterpar") }
}

// WithTracerProvider sets the tracer provider. The default is the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the meter provider. The default is the global one.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger()
	}
	o.log = o.log.WithComponent("parallel")
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
	return o
}

// instruments are the metrics recorded for each evaluation.
type instruments struct {
	calls    metric.Int64Counter
	workers  metric.Int64Counter
	duration metric.Float64Histogram
}

func (o *options) instruments() *instruments {
	meter := o.meterProvider.Meter(instrumentationName)
	fallback := noop.Meter{}

	calls, err := meter.Int64Counter("parallel.evaluations",
		metric.WithDescription("Number of parallel evaluations"))
	if err != nil {
		calls, _ = fallback.Int64Counter("parallel.evaluations")
	}
	workers, err := meter.Int64Counter("parallel.workers",
		metric.WithDescription("Number of worker goroutines started"))
	if err != nil {
		workers, _ = fallback.Int64Counter("parallel.workers")
	}
	duration, err := meter.Float64Histogram("parallel.duration",
		metric.WithDescription("Wall time of parallel evaluations"),
		metric.WithUnit("ms"))
	if err != nil {
		duration, _ = fallback.Float64Histogram("parallel.duration")
	}
	return &instruments{calls: calls, workers: workers, duration: duration}
}
