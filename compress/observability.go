package compress

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/banyudu/tsterser-sub002/compress"

// instruments holds the OpenTelemetry instruments of a Compressor.
type instruments struct {
	tracer trace.Tracer

	passes   metric.Int64Counter
	rewrites metric.Int64Counter
	warnings metric.Int64Counter
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) *instruments {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)
	in := &instruments{tracer: tp.Tracer(instrumentationName)}

	var err error
	in.passes, err = meter.Int64Counter(
		"compress.passes",
		metric.WithDescription("Number of sweeps run over a program"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.rewrites, err = meter.Int64Counter(
		"compress.rewrites",
		metric.WithDescription("Number of nodes replaced by a sweep"),
	)
	if err != nil {
		otel.Handle(err)
	}

	in.warnings, err = meter.Int64Counter(
		"compress.warnings",
		metric.WithDescription("Number of warnings emitted"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return in
}
