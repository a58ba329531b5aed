package release

import "github.com/zjrosen/pushrelease/internal/version"

// Plan returns the steps a release with opts performs, in execution order.
// opts must already be resolved.
func Plan(opts Options, kind version.Kind, deps *Deps) []Step {
	o := &opts
	var steps []Step

	add := func(cond bool, s Step) {
		if cond {
			steps = append(steps, s)
		}
	}

	add(o.ReleaseBranch.Enabled && (o.NPM || o.Commit || o.Push), &branchStep{deps: deps, opts: o})
	add(o.BumpVersion && kind == version.KindGit, &describeStep{deps: deps, opts: o})
	add(o.BumpVersion, &bumpStep{deps: deps, opts: o})
	add(!o.BumpVersion, &readVersionStep{deps: deps, opts: o})
	add(o.Add, &addStep{deps: deps, opts: o})
	add(o.Commit, &commitStep{deps: deps, opts: o})
	add(o.CreateTag, &tagStep{deps: deps, opts: o})
	add(o.Push, &pushStep{deps: deps, opts: o})
	add(o.NPM, &publishStep{deps: deps, opts: o})

	return steps
}

// StepNames lists the names of steps, for logging and tests.
func StepNames(steps []Step) []string {
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name()
	}
	return names
}
