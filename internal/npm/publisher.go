// Package npm publishes packages to the npm registry through the npm CLI.
package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/zjrosen/pushrelease/internal/log"
)

var (
	// ErrNotLoggedIn indicates npm has no credentials for the registry.
	ErrNotLoggedIn = errors.New("not logged in to the npm registry")

	// ErrVersionExists indicates the package version was already published.
	ErrVersionExists = errors.New("version already published")
)

// Publisher publishes the package in the working directory.
type Publisher interface {
	// Publish runs npm publish under the given distribution tag.
	Publish(ctx context.Context, tag string) error
}

// Compile-time check that RealPublisher implements Publisher.
var _ Publisher = (*RealPublisher)(nil)

// RealPublisher implements Publisher by running the npm binary.
type RealPublisher struct {
	workDir string
	binary  string
}

// NewRealPublisher creates a RealPublisher running "npm" in workDir.
func NewRealPublisher(workDir string) *RealPublisher {
	return &RealPublisher{workDir: workDir, binary: "npm"}
}

// Publish runs `npm publish --tag <tag>`.
func (p *RealPublisher) Publish(ctx context.Context, tag string) error {
	args := []string{"publish", "--tag", tag}

	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.CommandContext(ctx, p.binary, args...)
	if p.workDir != "" {
		cmd.Dir = p.workDir
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug(log.CatNPM, "exec", "args", strings.Join(args, " "), "dir", p.workDir)

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		log.ErrorErr(log.CatNPM, "npm publish failed", err, "stderr", stderrStr)
		return parseNpmError(stderrStr, err)
	}
	return nil
}

func parseNpmError(stderr string, originalErr error) error {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "e401"), strings.Contains(lower, "need auth"), strings.Contains(lower, "enoneed"):
		return fmt.Errorf("%w: %s", ErrNotLoggedIn, stderr)
	case strings.Contains(lower, "cannot publish over"), strings.Contains(lower, "previously published"):
		return fmt.Errorf("%w: %s", ErrVersionExists, stderr)
	case stderr == "":
		return fmt.Errorf("npm publish: %w", originalErr)
	default:
		return fmt.Errorf("npm error: %s: %w", stderr, originalErr)
	}
}

// DryRunPublisher reports the publish command instead of running it.
type DryRunPublisher struct {
	report func(cmd string)
}

var _ Publisher = (*DryRunPublisher)(nil)

// NewDryRunPublisher creates a DryRunPublisher.
func NewDryRunPublisher(report func(cmd string)) *DryRunPublisher {
	return &DryRunPublisher{report: report}
}

func (d *DryRunPublisher) Publish(_ context.Context, tag string) error {
	if d.report != nil {
		d.report(fmt.Sprintf("npm publish --tag %q", tag))
	}
	return nil
}
