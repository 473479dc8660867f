package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the tracer and meter obtained from providers.
const instrumentationName = "github.com/katalvlaran/exhaust/search"

// telemetry holds the span source and metric instruments for one Exhaust run.
// Instrument creation failures are logged and leave the instrument nil;
// observability never fails a solve.
type telemetry struct {
	tracer trace.Tracer
	logger *slog.Logger

	// candidates counts every candidate drawn from the sequence
	candidates metric.Int64Counter

	// improvements counts strict improvements of the best-so-far
	improvements metric.Int64Counter

	// duration records enumeration wall time in milliseconds
	duration metric.Float64Histogram
}

func newTelemetry(opts Options) *telemetry {
	tel := &telemetry{tracer: opts.Tracer, logger: opts.Logger}
	if tel.tracer == nil {
		tel.tracer = otel.Tracer(instrumentationName)
	}

	mp := opts.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	var err error
	tel.candidates, err = meter.Int64Counter(
		"exhaust.candidates",
		metric.WithDescription("Candidates drawn from an exhaustive search space"),
		metric.WithUnit("1"),
	)
	if err != nil {
		tel.logger.Warn("create candidates counter", "error", err)
		tel.candidates = nil
	}
	tel.improvements, err = meter.Int64Counter(
		"exhaust.improvements",
		metric.WithDescription("Strict improvements of the best-so-far candidate"),
		metric.WithUnit("1"),
	)
	if err != nil {
		tel.logger.Warn("create improvements counter", "error", err)
		tel.improvements = nil
	}
	tel.duration, err = meter.Float64Histogram(
		"exhaust.duration",
		metric.WithDescription("Exhaustive search duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		tel.logger.Warn("create duration histogram", "error", err)
		tel.duration = nil
	}

	return tel
}

// start opens the run span.
func (tel *telemetry) start(ctx context.Context, name string, size uint64) (context.Context, trace.Span) {
	return tel.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("search.name", name),
		attribute.Int64("search.space_size", clampInt64(size)),
	))
}

// finish records the run's outcome on the span and the instruments.
func (tel *telemetry) finish(ctx context.Context, span trace.Span, name string, st Stats, best float64, found bool, runErr error) {
	span.SetAttributes(
		attribute.Int64("search.candidates", st.Candidates),
		attribute.Int64("search.feasible", st.Feasible),
		attribute.Int64("search.improvements", st.Improvements),
		attribute.Float64("search.duration_ms", float64(st.Elapsed.Microseconds())/1000),
		attribute.Bool("search.found", found),
	)
	if found {
		span.SetAttributes(attribute.Float64("search.best_score", best))
	}
	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
	} else {
		span.SetStatus(codes.Ok, fmt.Sprintf("%d candidates", st.Candidates))
	}

	opts := metric.WithAttributes(attribute.String("search.name", name))
	if tel.candidates != nil {
		tel.candidates.Add(ctx, st.Candidates, opts)
	}
	if tel.improvements != nil {
		tel.improvements.Add(ctx, st.Improvements, opts)
	}
	if tel.duration != nil {
		tel.duration.Record(ctx, float64(st.Elapsed.Microseconds())/1000, opts)
	}
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(v)
}
