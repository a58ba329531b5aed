package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/version"
)

// Step names, in execution order.
const (
	StepBranch      = "branch"
	StepDescribe    = "describe"
	StepBump        = "bump"
	StepReadVersion = "read-version"
	StepAdd         = "add"
	StepCommit      = "commit"
	StepTag         = "tag"
	StepPush        = "push"
	StepPublish     = "publish"
)

// Step is one phase of a release.
type Step interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

type branchStep struct {
	deps *Deps
	opts *Options
}

func (s *branchStep) Name() string { return StepBranch }

func (s *branchStep) Run(ctx context.Context, _ *State) error {
	current, err := s.deps.Git.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("cannot determine current branch: %w", err)
	}

	guard := s.opts.ReleaseBranch
	log.Debug(log.CatRelease, "Checking release branch", "current", current, "allowed", strings.Join(guard.Names, ","))
	if guard.Allows(current) {
		return nil
	}
	// Mismatches only warn so a release from another branch stays possible.
	return s.deps.warn(s.opts.Strict, "the current branch %q is not in the list of release branches", current)
}

type describeStep struct {
	deps *Deps
	opts *Options
}

func (s *describeStep) Name() string { return StepDescribe }

func (s *describeStep) Run(ctx context.Context, st *State) error {
	out, err := s.deps.Git.Describe(ctx, strings.Fields(s.opts.GitDescribeOptions)...)
	if err != nil {
		return fmt.Errorf("can not get a version number using git describe: %w", err)
	}
	st.GitVersion = strings.TrimSpace(out)
	if st.GitVersion == "" {
		return errors.New("can not get a version number using git describe: empty output")
	}
	return nil
}

type bumpStep struct {
	deps *Deps
	opts *Options
}

func (s *bumpStep) Name() string { return StepBump }

func (s *bumpStep) Run(_ context.Context, st *State) error {
	fs := s.deps.fs()

	for idx, file := range s.opts.Files {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		res, err := version.Bump(string(data), st.Kind, st.GitVersion)
		if err != nil {
			return fmt.Errorf("can not find a version to bump in %s: %w", file, err)
		}

		if s.opts.DryRun {
			s.deps.verbose(version.Diff(file, string(data), res.Content))
		}
		if err := afero.WriteFile(fs, file, []byte(res.Content), filePerm(fs, file)); err != nil {
			return fmt.Errorf("writing %s: %w", file, err)
		}
		log.Info(log.CatBump, "Bumped version", "file", file, "from", res.Previous, "to", res.Version)
		st.Bumped = append(st.Bumped, file)

		if len(s.opts.Files) > 1 {
			s.deps.ok("Version bumped to %s (in %s)", res.Version, file)
		} else {
			s.deps.ok("Version bumped to %s", res.Version)
		}

		if st.Version == "" {
			st.Version = res.Version
		} else if st.Version != res.Version {
			if err := s.deps.warn(s.opts.Strict, "bumping multiple files with different versions (%s has %s, keeping %s)", file, res.Version, st.Version); err != nil {
				return err
			}
		}

		if err := s.mirror(idx, res.Version); err != nil {
			return err
		}
	}
	return nil
}

// mirror copies version into the config entry paired with file idx.
func (s *bumpStep) mirror(idx int, v string) error {
	if idx >= len(s.opts.UpdateConfigs) || s.opts.UpdateConfigs[idx] == "" {
		return nil
	}
	name := s.opts.UpdateConfigs[idx]

	if s.deps.Entries == nil || !s.deps.Entries.Exists(name) {
		return s.deps.warn(s.opts.Strict, "can not update %q config, it does not exist", name)
	}
	if err := s.deps.Entries.SetVersion(name, v); err != nil {
		return fmt.Errorf("updating %q config: %w", name, err)
	}
	s.deps.ok("%s's version updated", name)
	return nil
}

func filePerm(fs afero.Fs, file string) os.FileMode {
	if info, err := fs.Stat(file); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}

type readVersionStep struct {
	deps *Deps
	opts *Options
}

func (s *readVersionStep) Name() string { return StepReadVersion }

func (s *readVersionStep) Run(_ context.Context, st *State) error {
	if len(s.opts.UpdateConfigs) > 0 {
		name := s.opts.UpdateConfigs[0]
		if s.deps.Entries == nil || !s.deps.Entries.Exists(name) {
			return fmt.Errorf("can not read version from %q config, it does not exist", name)
		}
		v, err := s.deps.Entries.Version(name)
		if err != nil {
			return fmt.Errorf("reading version from %q config: %w", name, err)
		}
		st.Version = v
		return nil
	}

	if len(s.opts.Files) == 0 {
		return errors.New("no files configured to read the version from")
	}
	file := s.opts.Files[0]
	data, err := afero.ReadFile(s.deps.fs(), file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}
	v, err := version.ReadManifestVersion(data)
	if err != nil {
		return fmt.Errorf("reading version from %s: %w", file, err)
	}
	st.Version = v
	return nil
}

type addStep struct {
	deps *Deps
	opts *Options
}

func (s *addStep) Name() string { return StepAdd }

func (s *addStep) Run(ctx context.Context, _ *State) error {
	paths := strings.Join(s.opts.AddFiles, " ")
	if err := s.deps.Git.Add(ctx, s.opts.AddFiles...); err != nil {
		return fmt.Errorf("can not add files: %w", err)
	}
	s.deps.ok("Added files: %q", paths)
	return nil
}

type commitStep struct {
	deps *Deps
	opts *Options
}

func (s *commitStep) Name() string { return StepCommit }

func (s *commitStep) Run(ctx context.Context, st *State) error {
	msg := Expand(s.opts.CommitMessage, st.Version)
	if err := s.deps.Git.Commit(ctx, msg, s.opts.CommitFiles...); err != nil {
		return fmt.Errorf("can not create the commit: %w", err)
	}
	s.deps.ok("Committed as %q", msg)
	return nil
}

type tagStep struct {
	deps *Deps
	opts *Options
}

func (s *tagStep) Name() string { return StepTag }

func (s *tagStep) Run(ctx context.Context, st *State) error {
	name := Expand(s.opts.TagName, st.Version)
	msg := Expand(s.opts.TagMessage, st.Version)
	if err := s.deps.Git.CreateTag(ctx, name, msg); err != nil {
		return fmt.Errorf("can not create the tag: %w", err)
	}
	s.deps.ok("Tagged as %q", name)
	return nil
}

type pushStep struct {
	deps *Deps
	opts *Options
}

func (s *pushStep) Name() string { return StepPush }

func (s *pushStep) Run(ctx context.Context, _ *State) error {
	remote := s.opts.PushTo
	if err := s.deps.Git.Push(ctx, remote); err != nil {
		return fmt.Errorf("can not push to %s: %w", remote, err)
	}
	if err := s.deps.Git.PushTags(ctx, remote); err != nil {
		return fmt.Errorf("can not push tags to %s: %w", remote, err)
	}
	s.deps.ok("Pushed to %s", remote)
	return nil
}

type publishStep struct {
	deps *Deps
	opts *Options
}

func (s *publishStep) Name() string { return StepPublish }

func (s *publishStep) Run(ctx context.Context, st *State) error {
	tag := Expand(s.opts.NPMTag, st.Version)
	if err := s.deps.NPM.Publish(ctx, tag); err != nil {
		return fmt.Errorf("publishing to npm failed: %w", err)
	}
	s.deps.ok("Published to npm with tag: %s", tag)
	return nil
}
