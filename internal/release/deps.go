package release

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/zjrosen/pushrelease/internal/git"
	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/npm"
	"github.com/zjrosen/pushrelease/internal/version"
)

// ErrWarningAsError is returned in strict mode when a step emits a warning.
var ErrWarningAsError = errors.New("warning treated as error")

// Reporter receives user-facing progress lines.
type Reporter interface {
	// OK reports a completed action.
	OK(msg string)
	// Warn reports a recoverable problem.
	Warn(msg string)
	// Verbose reports detail (diffs, skipped commands).
	Verbose(msg string)
}

// EntryStore holds named configuration entries that mirror the released
// version (the update_configs targets).
type EntryStore interface {
	Exists(name string) bool
	Version(name string) (string, error)
	SetVersion(name, version string) error
}

// Deps are the collaborators steps run against.
type Deps struct {
	Git      git.GitExecutor
	NPM      npm.Publisher
	FS       afero.Fs
	Entries  EntryStore
	Reporter Reporter
}

func (d *Deps) fs() afero.Fs {
	if d.FS == nil {
		return afero.NewOsFs()
	}
	return d.FS
}

func (d *Deps) ok(format string, args ...any) {
	if d.Reporter != nil {
		d.Reporter.OK(fmt.Sprintf(format, args...))
	}
}

func (d *Deps) verbose(msg string) {
	if d.Reporter != nil {
		d.Reporter.Verbose(msg)
	}
}

// warn reports msg and, when strict, converts it into an error.
func (d *Deps) warn(strict bool, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	log.Warn(log.CatRelease, msg, "strict", strict)
	if d.Reporter != nil {
		d.Reporter.Warn(msg)
	}
	if strict {
		return fmt.Errorf("%w: %s", ErrWarningAsError, msg)
	}
	return nil
}

// State carries values produced by earlier steps to later ones. It is owned
// by a single run.
type State struct {
	RunID      string
	Kind       version.Kind
	Mode       Mode
	Steps      []string
	DryRun     bool
	Version    string // version used in messages and tags
	GitVersion string // set by the describe step
	Bumped     []string
	Warnings   int // filled in by the caller from its reporter
}
