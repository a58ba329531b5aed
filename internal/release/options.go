// Package release implements the release workflow: option resolution, the
// ordered list of release steps and the runner that executes them.
package release

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/version"
)

// ErrInvalidOptions indicates options that cannot produce a release.
var ErrInvalidOptions = errors.New("invalid configuration")

// VersionToken is replaced by the release version in message templates.
const VersionToken = "%VERSION%"

// Mode narrows a release to a subset of its steps.
type Mode string

const (
	ModeFull        Mode = ""
	ModeBumpOnly    Mode = "bump-only"
	ModeCommitOnly  Mode = "commit-only"
	ModePushRelease Mode = "push-release"
	ModePushPublish Mode = "push-publish"
)

// BranchGuard lists the branches a release may run from.
// An enabled guard with no names never matches.
type BranchGuard struct {
	Enabled bool
	Names   []string
}

// Allows reports whether branch exactly matches one of the names.
func (g BranchGuard) Allows(branch string) bool {
	for i := len(g.Names) - 1; i >= 0; i-- {
		if g.Names[i] == branch {
			return true
		}
	}
	return false
}

// Options controls which steps run and how they are parameterized.
type Options struct {
	BumpVersion        bool
	Files              []string
	UpdateConfigs      []string
	ReleaseBranch      BranchGuard
	Add                bool
	AddFiles           []string
	Commit             bool
	CommitMessage      string
	CommitFiles        []string
	CreateTag          bool
	TagName            string
	TagMessage         string
	Push               bool
	PushTo             string
	NPM                bool
	NPMTag             string
	GitDescribeOptions string

	// DryRun reports file changes and mutating commands without applying them.
	DryRun bool
	// Strict turns every warning into a fatal error.
	Strict bool
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		BumpVersion:        true,
		Files:              []string{"package.json"},
		UpdateConfigs:      []string{},
		Add:                true,
		AddFiles:           []string{"."},
		Commit:             true,
		CommitMessage:      "Release v" + VersionToken,
		CommitFiles:        []string{"-a"},
		CreateTag:          true,
		TagName:            "v" + VersionToken,
		TagMessage:         "Version " + VersionToken,
		Push:               true,
		PushTo:             "origin",
		NPM:                false,
		NPMTag:             "Release v" + VersionToken,
		GitDescribeOptions: "--tags --always --abbrev=1 --dirty=-d",
	}
}

// Resolve applies the mode overrides to base. Unknown modes only clear NPM.
func Resolve(base Options, mode Mode) Options {
	opts := base

	if mode == ModeBumpOnly {
		log.Debug(log.CatConfig, "Only incrementing the version")
		opts.Add = false
		opts.Commit = false
		opts.CreateTag = false
		opts.Push = false
	}

	if mode == ModeCommitOnly {
		log.Debug(log.CatConfig, "Only committing, tagging and pushing")
		opts.BumpVersion = false
	}

	if mode == ModePushRelease {
		log.Debug(log.CatConfig, "Pushing and publishing to npm")
		opts.NPM = true
	} else {
		opts.NPM = false
	}

	if mode == ModePushPublish {
		log.Debug(log.CatConfig, "Publishing to npm")
		opts.BumpVersion = false
		opts.Add = false
		opts.Commit = false
		opts.CreateTag = false
		opts.Push = false
		opts.NPM = true
	}

	return opts
}

// Validate checks the options a planned release depends on. Call it on the
// resolved options: a mode can switch off the step a value is required for.
func (o Options) Validate() error {
	if o.BumpVersion && len(o.Files) == 0 {
		return fmt.Errorf("%w: release.files must list at least one file when bump_version is enabled", ErrInvalidOptions)
	}
	if o.Push && strings.TrimSpace(o.PushTo) == "" {
		return fmt.Errorf("%w: release.push_to is required when push is enabled", ErrInvalidOptions)
	}
	if o.CreateTag && strings.TrimSpace(o.TagName) == "" {
		return fmt.Errorf("%w: release.tag_name is required when create_tag is enabled", ErrInvalidOptions)
	}
	return nil
}

// ParseTaskArgs splits colon-separated task arguments ("patch:bump-only")
// into an increment kind and a mode. Both segments are optional.
func ParseTaskArgs(arg string) (version.Kind, Mode, error) {
	kindToken, modeToken, _ := strings.Cut(arg, ":")

	kind, err := version.ParseKind(kindToken)
	if err != nil {
		return "", "", err
	}
	if strings.Contains(modeToken, ":") {
		return "", "", fmt.Errorf("too many task arguments in %q", arg)
	}
	return kind, Mode(modeToken), nil
}

// Expand substitutes the version into a message template.
func Expand(template, v string) string {
	return strings.ReplaceAll(template, VersionToken, v)
}
