package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zjrosen/pushrelease/internal/log"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. PUSHRELEASE_RELEASE_PUSH_TO.
	EnvPrefix = "PUSHRELEASE"

	// LocalConfigFile is looked up in the working directory.
	LocalConfigFile = ".pushrelease.yaml"
)

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"debug":          "debug",
	"dry-run":        "release.dry_run",
	"strict":         "release.strict",
	"files":          "release.files",
	"push-to":        "release.push_to",
	"release-branch": "release.release_branch",
}

// UserConfigPath returns ~/.config/pushrelease/config.yaml, or "" if the home
// directory is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pushrelease", "config.yaml")
}

// Load builds the configuration from defaults, the config file, environment
// variables and flags (highest precedence last). It returns the path of the
// config file that was read, or "" when none was found.
//
// Config lookup order:
//  1. cfgFile, when set (must exist)
//  2. .pushrelease.yaml in the working directory
//  3. ~/.config/pushrelease/config.yaml
func Load(cfgFile string, flags *pflag.FlagSet) (Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, "", fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(LocalConfigFile):
		v.SetConfigFile(LocalConfigFile)
	default:
		if p := UserConfigPath(); p != "" {
			v.AddConfigPath(filepath.Dir(p))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		log.Debug(log.CatConfig, "No config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Configs == nil {
		cfg.Configs = map[string]map[string]any{}
	}

	used := v.ConfigFileUsed()
	log.Debug(log.CatConfig, "Config loaded", "file", used, "entries", len(cfg.Configs))
	return cfg, used, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	r := d.Release

	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)

	v.SetDefault("release.bump_version", r.BumpVersion)
	v.SetDefault("release.files", r.Files)
	v.SetDefault("release.update_configs", r.UpdateConfigs)
	v.SetDefault("release.release_branch", r.ReleaseBranch)
	v.SetDefault("release.add", r.Add)
	v.SetDefault("release.add_files", r.AddFiles)
	v.SetDefault("release.commit", r.Commit)
	v.SetDefault("release.commit_message", r.CommitMessage)
	v.SetDefault("release.commit_files", r.CommitFiles)
	v.SetDefault("release.create_tag", r.CreateTag)
	v.SetDefault("release.tag_name", r.TagName)
	v.SetDefault("release.tag_message", r.TagMessage)
	v.SetDefault("release.push", r.Push)
	v.SetDefault("release.push_to", r.PushTo)
	v.SetDefault("release.npm", r.NPM)
	v.SetDefault("release.npm_tag", r.NPMTag)
	v.SetDefault("release.git_describe_options", r.GitDescribeOptions)
	v.SetDefault("release.dry_run", r.DryRun)
	v.SetDefault("release.strict", r.Strict)

	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
