// Package app runs a release the way every entry point (CLI commands, mage
// targets) does: load config, wire collaborators, run the orchestrator.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/zjrosen/pushrelease/internal/config"
	"github.com/zjrosen/pushrelease/internal/git"
	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/npm"
	"github.com/zjrosen/pushrelease/internal/release"
	"github.com/zjrosen/pushrelease/internal/tracing"
	"github.com/zjrosen/pushrelease/internal/ui/console"
)

// Params describe one release invocation.
type Params struct {
	// ConfigFile overrides the config lookup when set.
	ConfigFile string
	// Flags are bound over config values. May be nil.
	Flags *pflag.FlagSet
	// TaskArgs uses the "<increment>:<mode>" form.
	TaskArgs string
	Verbose  bool
	Version  string

	Out    io.Writer
	ErrOut io.Writer
}

// Run performs the release described by p in the working directory.
func Run(ctx context.Context, p Params) (*release.State, error) {
	cfg, cfgPath, err := config.Load(p.ConfigFile, p.Flags)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup, err := InitLogging(cfg, p.Version)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	opts, err := cfg.Release.Options()
	if err != nil {
		return nil, err
	}

	reporter := console.New(p.Out, p.ErrOut, p.Verbose || opts.DryRun)

	tc := cfg.Tracing.Provider()
	tc.Writer = p.ErrOut
	provider, err := tracing.NewProvider(ctx, tc)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	deps := NewDeps(workDir, cfg.Configs, cfgPath, opts.DryRun, reporter)
	st, err := release.NewOrchestrator(deps, provider.Tracer()).Run(ctx, opts, p.TaskArgs)
	if st != nil {
		st.Warnings = reporter.Warnings()
	}
	if err != nil {
		return st, err
	}

	if opts.DryRun {
		reporter.OK(fmt.Sprintf("Dry run for %s finished, nothing was changed", st.Version))
	}
	return st, nil
}

// NewDeps wires the real collaborators. File paths resolve against the
// working directory. A dry run reads the real files and repository but keeps
// every write in memory and only reports mutating commands.
func NewDeps(workDir string, entries map[string]map[string]any, cfgPath string, dryRun bool, reporter *console.Reporter) *release.Deps {
	var (
		gitExec   git.GitExecutor = git.NewRealExecutor(workDir)
		publisher npm.Publisher   = npm.NewRealPublisher(workDir)
		fs        afero.Fs        = afero.NewOsFs()
		entryPath                 = cfgPath
	)

	if dryRun {
		gitExec = git.NewDryRunExecutor(gitExec, reporter.Verbose)
		publisher = npm.NewDryRunPublisher(reporter.Verbose)
		fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs())
		entryPath = ""
	}

	return &release.Deps{
		Git:      gitExec,
		NPM:      publisher,
		FS:       fs,
		Entries:  config.NewEntryStore(entries, entryPath),
		Reporter: reporter,
	}
}

// InitLogging starts the file logger when debug logging is enabled
// (--debug or PUSHRELEASE_DEBUG). The returned cleanup is never nil.
func InitLogging(cfg config.Config, version string) (func(), error) {
	if !cfg.Debug {
		return func() {}, nil
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = os.Getenv("PUSHRELEASE_LOG")
	}
	if logPath == "" {
		logPath = config.DefaultLogFilePath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return func() {}, fmt.Errorf("creating log directory: %w", err)
	}

	cleanup, err := log.Init(logPath)
	if err != nil {
		return func() {}, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "pushrelease starting", "version", version, "logPath", logPath)
	return cleanup, nil
}
