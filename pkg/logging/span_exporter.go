package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanExporter tulis span yang selesai ke slog. span error pakai level warn, sisanya debug.
type SpanExporter struct {
	log *slog.Logger
}

func NewSpanExporter(log *slog.Logger) *SpanExporter {
	return &SpanExporter{log: log}
}

func (e *SpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		attrs := []any{
			slog.String("trace_id", s.SpanContext().TraceID().String()),
			slog.String("span_id", s.SpanContext().SpanID().String()),
			slog.Duration("duration", s.EndTime().Sub(s.StartTime())),
		}
		for _, kv := range s.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}

		level := slog.LevelDebug
		if s.Status().Code == codes.Error {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", s.Status().Description))
		}
		e.log.Log(ctx, level, s.Name(), attrs...)
	}
	return nil
}

func (e *SpanExporter) Shutdown(ctx context.Context) error {
	return nil
}
