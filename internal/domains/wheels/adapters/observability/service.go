package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/tactilelab/wheelforge/internal/domains/wheels/domain"
	"github.com/tactilelab/wheelforge/internal/domains/wheels/ports"
)

const tracerName = "github.com/tactilelab/wheelforge/internal/domains/wheels/adapters/observability/service"

// Service decorates the wheels application port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Generate builds a wheel mesh with instrumentation.
func (s *Service) Generate(ctx context.Context, input ports.GenerateInput) (*ports.Artifact, error) {
	ctx, span := s.startSpan(ctx, "Service.Generate",
		attribute.Int("wheel.raw_payload_bytes", len(input.RawDistances)),
	)
	defer span.End()

	s.logInfo(ctx, "generating wheel")
	artifact, err := s.inner.Generate(ctx, input)
	if err != nil {
		s.metrics.recordRejected(ctx)
		return nil, s.handleError(ctx, span, err, "failed to generate wheel")
	}
	span.SetAttributes(
		attribute.Int("wheel.station_count", len(artifact.Distances)),
		attribute.Int64("wheel.mesh_bytes", artifact.SizeBytes),
	)
	s.metrics.recordGenerated(ctx, len(artifact.Distances))
	s.logInfo(ctx, "wheel generated",
		slog.Int("stations", len(artifact.Distances)),
		slog.Int64("mesh_bytes", artifact.SizeBytes),
	)
	return artifact, nil
}

// History lists recent generation records with instrumentation.
func (s *Service) History(ctx context.Context, limit int) ([]*domain.Generation, error) {
	ctx, span := s.startSpan(ctx, "Service.History", attribute.Int("history.limit", limit))
	defer span.End()

	result, err := s.inner.History(ctx, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list history", slog.Int("limit", limit))
	}
	span.SetAttributes(attribute.Int("history.result_count", len(result)))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	wheelsGenerated metric.Int64Counter
	inputsRejected  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	generated, _ := m.Int64Counter("wheels.service.generated", metric.WithDescription("Number of wheel meshes generated"))
	rejected, _ := m.Int64Counter("wheels.service.rejected", metric.WithDescription("Number of generation requests rejected"))
	return serviceMetrics{
		wheelsGenerated: generated,
		inputsRejected:  rejected,
	}
}

func (m serviceMetrics) recordGenerated(ctx context.Context, stations int) {
	addCounter(ctx, m.wheelsGenerated, 1, attribute.Int("wheel.station_count", stations))
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	addCounter(ctx, m.inputsRejected, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}
