// Package config provides configuration types, defaults, and persistence for pushrelease.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zjrosen/pushrelease/internal/log"
	"github.com/zjrosen/pushrelease/internal/release"
	"github.com/zjrosen/pushrelease/internal/tracing"
)

var (
	// ErrEntryNotFound indicates a named entry is missing from the configs section.
	ErrEntryNotFound = errors.New("config entry not found")

	// ErrInvalidReleaseBranch indicates release_branch has an unsupported type.
	ErrInvalidReleaseBranch = errors.New("invalid release_branch")
)

// Config holds all configuration options for pushrelease.
type Config struct {
	Release ReleaseConfig `mapstructure:"release"`
	// Configs holds named entries that can mirror the released version.
	// Keys are lowercased by the loader.
	Configs map[string]map[string]any `mapstructure:"configs"`
	Tracing TracingConfig             `mapstructure:"tracing"`
	Debug   bool                      `mapstructure:"debug"`
	LogFile string                    `mapstructure:"log_file"`
}

// ReleaseConfig mirrors release.Options in configuration form.
type ReleaseConfig struct {
	BumpVersion   bool     `mapstructure:"bump_version"`
	Files         []string `mapstructure:"files"`
	UpdateConfigs []string `mapstructure:"update_configs"`
	// ReleaseBranch is false, true, a branch name, or a list of branch names.
	ReleaseBranch      any      `mapstructure:"release_branch"`
	Add                bool     `mapstructure:"add"`
	AddFiles           []string `mapstructure:"add_files"`
	Commit             bool     `mapstructure:"commit"`
	CommitMessage      string   `mapstructure:"commit_message"`
	CommitFiles        []string `mapstructure:"commit_files"`
	CreateTag          bool     `mapstructure:"create_tag"`
	TagName            string   `mapstructure:"tag_name"`
	TagMessage         string   `mapstructure:"tag_message"`
	Push               bool     `mapstructure:"push"`
	PushTo             string   `mapstructure:"push_to"`
	NPM                bool     `mapstructure:"npm"`
	NPMTag             string   `mapstructure:"npm_tag"`
	GitDescribeOptions string   `mapstructure:"git_describe_options"`
	DryRun             bool     `mapstructure:"dry_run"`
	Strict             bool     `mapstructure:"strict"`
}

// TracingConfig configures release tracing.
type TracingConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Exporter     string `mapstructure:"exporter"`      // "none", "file" (default), "stdout", "otlp"
	FilePath     string `mapstructure:"file_path"`     // output for the file exporter
	OTLPEndpoint string `mapstructure:"otlp_endpoint"` // host:port of an OTLP collector
	ServiceName  string `mapstructure:"service_name"`
}

// Provider converts the tracing section into provider settings.
func (t TracingConfig) Provider() tracing.Config {
	return tracing.Config{
		Enabled:      t.Enabled,
		Exporter:     t.Exporter,
		FilePath:     t.FilePath,
		OTLPEndpoint: t.OTLPEndpoint,
		ServiceName:  t.ServiceName,
	}
}

// Options converts the release section into release options.
func (r ReleaseConfig) Options() (release.Options, error) {
	guard, err := ParseReleaseBranch(r.ReleaseBranch)
	if err != nil {
		return release.Options{}, err
	}

	return release.Options{
		BumpVersion:        r.BumpVersion,
		Files:              r.Files,
		UpdateConfigs:      r.UpdateConfigs,
		ReleaseBranch:      guard,
		Add:                r.Add,
		AddFiles:           r.AddFiles,
		Commit:             r.Commit,
		CommitMessage:      r.CommitMessage,
		CommitFiles:        r.CommitFiles,
		CreateTag:          r.CreateTag,
		TagName:            r.TagName,
		TagMessage:         r.TagMessage,
		Push:               r.Push,
		PushTo:             r.PushTo,
		NPM:                r.NPM,
		NPMTag:             r.NPMTag,
		GitDescribeOptions: r.GitDescribeOptions,
		DryRun:             r.DryRun,
		Strict:             r.Strict,
	}, nil
}

// ParseReleaseBranch normalizes a release_branch value. Strings may hold a
// comma separated list; "true" and "false" are read as booleans.
func ParseReleaseBranch(v any) (release.BranchGuard, error) {
	switch val := v.(type) {
	case nil:
		return release.BranchGuard{}, nil
	case bool:
		return release.BranchGuard{Enabled: val}, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return release.BranchGuard{Enabled: b}, nil
		}
		names := splitNames(strings.Split(val, ","))
		return release.BranchGuard{Enabled: len(names) > 0, Names: names}, nil
	case []string:
		names := splitNames(val)
		return release.BranchGuard{Enabled: true, Names: names}, nil
	case []any:
		raw := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return release.BranchGuard{}, fmt.Errorf("%w: list item %v is not a string", ErrInvalidReleaseBranch, item)
			}
			raw = append(raw, s)
		}
		return release.BranchGuard{Enabled: true, Names: splitNames(raw)}, nil
	default:
		return release.BranchGuard{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidReleaseBranch, v)
	}
}

func splitNames(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Validate checks the configuration for errors that would only surface
// halfway through a release.
func Validate(cfg Config) error {
	if _, err := ParseReleaseBranch(cfg.Release.ReleaseBranch); err != nil {
		return fmt.Errorf("release.release_branch: %w", err)
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/pushrelease/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pushrelease", "traces", "traces.jsonl")
}

// DefaultLogFilePath returns ~/.config/pushrelease/debug.log, or a file in the
// system temp dir when the home dir is unavailable. The log must stay out of
// the repository being released.
func DefaultLogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pushrelease-debug.log")
	}
	return filepath.Join(home, ".config", "pushrelease", "debug.log")
}

// Defaults returns a Config with the built-in release defaults.
func Defaults() Config {
	o := release.DefaultOptions()
	return Config{
		Release: ReleaseConfig{
			BumpVersion:        o.BumpVersion,
			Files:              o.Files,
			UpdateConfigs:      o.UpdateConfigs,
			ReleaseBranch:      false,
			Add:                o.Add,
			AddFiles:           o.AddFiles,
			Commit:             o.Commit,
			CommitMessage:      o.CommitMessage,
			CommitFiles:        o.CommitFiles,
			CreateTag:          o.CreateTag,
			TagName:            o.TagName,
			TagMessage:         o.TagMessage,
			Push:               o.Push,
			PushTo:             o.PushTo,
			NPM:                o.NPM,
			NPMTag:             o.NPMTag,
			GitDescribeOptions: o.GitDescribeOptions,
		},
		Configs: map[string]map[string]any{},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			ServiceName:  "pushrelease",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# pushrelease configuration

release:
  # Increment the version in each of these files
  bump_version: true
  files:
    - package.json

  # Names of entries under "configs" that receive the new version.
  # The n-th entry is paired with the n-th file.
  update_configs: []

  # Warn when releasing from another branch.
  # false, true, a branch name, or a list of branch names
  release_branch: false

  add: true
  add_files:
    - .

  commit: true
  commit_message: "Release v%VERSION%"
  commit_files:
    - -a

  create_tag: true
  tag_name: "v%VERSION%"
  tag_message: "Version %VERSION%"

  push: true
  push_to: origin

  # Only used by push-release and push-publish
  npm_tag: "Release v%VERSION%"

  # Used by the "git" increment
  git_describe_options: "--tags --always --abbrev=1 --dirty=-d"

  # dry_run: false   # print diffs and commands without changing anything
  # strict: false    # treat warnings as errors

# Named entries that can mirror the released version
# configs:
#   pkg:
#     name: my-app
#     version: 1.0.0

# Release tracing
# tracing:
#   enabled: false
#   exporter: file                 # none, file, stdout, otlp
#   file_path: ~/.config/pushrelease/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
