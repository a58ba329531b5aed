package release

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/tracing"
)

// Orchestrator ties option resolution, planning and execution together.
type Orchestrator struct {
	deps   *Deps
	tracer trace.Tracer
}

// NewOrchestrator creates an Orchestrator. tracer may be nil.
func NewOrchestrator(deps *Deps, tracer trace.Tracer) *Orchestrator {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &Orchestrator{deps: deps, tracer: tracer}
}

// Run performs a release. taskArgs uses the "<increment>:<mode>" form, for
// example "minor", ":commit-only" or "git:push-release".
func (o *Orchestrator) Run(ctx context.Context, base Options, taskArgs string) (*State, error) {
	kind, mode, err := ParseTaskArgs(taskArgs)
	if err != nil {
		return nil, err
	}

	opts := Resolve(base, mode)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	steps := Plan(opts, kind, o.deps)
	names := StepNames(steps)
	st := &State{RunID: uuid.NewString(), Kind: kind, Mode: mode, Steps: names, DryRun: opts.DryRun}

	ctx, span := o.tracer.Start(ctx, tracing.SpanRelease, trace.WithAttributes(
		attribute.String(tracing.AttrRunID, st.RunID),
		attribute.String(tracing.AttrIncrement, string(kind)),
		attribute.String(tracing.AttrMode, string(mode)),
		attribute.Bool(tracing.AttrDryRun, opts.DryRun),
	))
	defer span.End()

	log.With("run", st.RunID)
	log.Info(log.CatRelease, "Release planned", "increment", kind, "mode", mode, "steps", strings.Join(names, ","))
	span.SetAttributes(attribute.StringSlice(tracing.AttrSteps, names))

	if err := NewRunner(o.tracer).Run(ctx, steps, st); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return st, err
	}

	span.SetAttributes(attribute.String(tracing.AttrVersion, st.Version))
	span.SetStatus(codes.Ok, "")
	log.Info(log.CatRelease, "Release finished", "version", st.Version)
	return st, nil
}
