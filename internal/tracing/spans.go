package tracing

// Span names and attribute keys for release tracing.
const (
	SpanRelease    = "release"
	SpanPrefixStep = "release.step."

	AttrRunID     = "release.run_id"
	AttrIncrement = "release.increment"
	AttrMode      = "release.mode"
	AttrDryRun    = "release.dry_run"
	AttrSteps     = "release.steps"
	AttrVersion   = "release.version"
	AttrStepName  = "step.name"
	AttrStepIndex = "step.index"
)
