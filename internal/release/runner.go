package release

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/tracing"
)

// StepError reports which step aborted a release.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes steps one at a time and stops at the first failure.
// Completed steps are not rolled back.
type Runner struct {
	tracer trace.Tracer
}

// NewRunner creates a Runner. A nil tracer disables tracing.
func NewRunner(tracer trace.Tracer) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &Runner{tracer: tracer}
}

// Run executes steps in order against st.
func (r *Runner) Run(ctx context.Context, steps []Step, st *State) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name(), Err: err}
		}

		stepCtx, span := r.tracer.Start(ctx, tracing.SpanPrefixStep+step.Name(),
			trace.WithAttributes(
				attribute.String(tracing.AttrStepName, step.Name()),
				attribute.Int(tracing.AttrStepIndex, i),
			))

		start := time.Now()
		log.Debug(log.CatRelease, "Step started", "step", step.Name(), "index", i)
		err := step.Run(stepCtx, st)

		if st.Version != "" {
			span.SetAttributes(attribute.String(tracing.AttrVersion, st.Version))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			log.ErrorErr(log.CatRelease, "Step failed", err, "step", step.Name())
			return &StepError{Step: step.Name(), Err: err}
		}
		span.SetStatus(codes.Ok, "")
		span.End()
		log.Debug(log.CatRelease, "Step finished", "step", step.Name(), "duration", time.Since(start))
	}
	return nil
}
