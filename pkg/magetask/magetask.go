// Package magetask exposes the release commands as mage targets.
//
// Import it from a magefile and alias the namespace:
//
//	//go:build mage
//
//	package main
//
//	import "github.com/zjrosen/pushrelease/pkg/magetask"
//
//	type Push = magetask.Push
//
// Then run "mage push:patch", "mage push:only minor" and so on. Options come from
// the same config file and PUSHRELEASE_* environment variables the CLI uses.
package magetask

import (
	"context"
	"os"
	"strings"

	"github.com/magefile/mage/mg"

	"github.com/zjrosen/pushrelease/internal/app"
	"github.com/zjrosen/pushrelease/internal/release"
)

// Push groups the release targets.
type Push mg.Namespace

// run is swapped out by tests.
var run = func(ctx context.Context, taskArgs string) error {
	_, err := app.Run(ctx, app.Params{
		ConfigFile: os.Getenv("PUSHRELEASE_CONFIG"),
		TaskArgs:   taskArgs,
		Verbose:    mg.Verbose(),
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
	})
	return err
}

// Patch bumps the patch version, commits, tags and pushes.
func (Push) Patch(ctx context.Context) error { return run(ctx, "patch") }

// Minor bumps the minor version, commits, tags and pushes.
func (Push) Minor(ctx context.Context) error { return run(ctx, "minor") }

// Major bumps the major version, commits, tags and pushes.
func (Push) Major(ctx context.Context) error { return run(ctx, "major") }

// Git releases the version reported by git describe.
func (Push) Git(ctx context.Context) error { return run(ctx, "git") }

// Only bumps the version without touching git. kind is major, minor, patch
// or git: "mage push:only minor".
func (Push) Only(ctx context.Context, kind string) error {
	return run(ctx, taskArgs(kind, release.ModeBumpOnly))
}

// Commit commits, tags and pushes the current version.
func (Push) Commit(ctx context.Context) error { return run(ctx, taskArgs("", release.ModeCommitOnly)) }

// Release bumps the version by kind, pushes and publishes to npm.
func (Push) Release(ctx context.Context, kind string) error {
	return run(ctx, taskArgs(kind, release.ModePushRelease))
}

// Publish publishes the current version to npm. kind is accepted for parity
// with the CLI; nothing is bumped.
func (Push) Publish(ctx context.Context, kind string) error {
	return run(ctx, taskArgs(kind, release.ModePushPublish))
}

func taskArgs(kind string, mode release.Mode) string {
	return strings.TrimSpace(kind) + ":" + string(mode)
}
