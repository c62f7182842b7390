package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/transport-edu-backend/internal/observability"
)

// opScope carries the span, start time and outcome of one service operation.
type opScope struct {
	ctx   context.Context
	span  trace.Span
	name  string
	start time.Time
	noop  bool
}

// startOp opens a span named name under tracer and returns the derived context.
// Callers defer op.done(&err) with a named error result.
func startOp(ctx context.Context, tracer, name string, attrs ...attribute.KeyValue) (context.Context, *opScope) {
	ctx, span := observability.Tracer(tracer).Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, &opScope{ctx: ctx, span: span, name: name, start: time.Now()}
}

// done records metrics, logs failures through the request logger and ends the span.
func (o *opScope) done(errp *error) {
	defer o.span.End()

	outcome := "ok"
	if o.noop {
		outcome = "noop"
	}
	if errp != nil && *errp != nil {
		err := *errp
		kind := KindOf(err)
		outcome = kind.String()
		o.span.RecordError(err)
		o.span.SetStatus(codes.Error, kind.String())

		ev := zerolog.Ctx(o.ctx).Error()
		if kind == KindInvalidInput || kind == KindNotFound {
			ev = zerolog.Ctx(o.ctx).Warn()
		}
		ev.Err(err).Str("op", o.name).Str("kind", kind.String()).Msg("store operation failed")
	}
	observability.ObserveStoreOp(o.name, outcome, time.Since(o.start))
}
