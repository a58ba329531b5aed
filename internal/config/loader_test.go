package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
release:
  files: [package.json, bower.json]
  update_configs: [Pkg]
  release_branch: [main, release]
  push_to: upstream
  npm_tag: next
configs:
  Pkg:
    name: app
    version: 1.0.0
tracing:
  enabled: true
  exporter: stdout
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, path, used)

	opts, err := cfg.Release.Options()
	require.NoError(t, err)
	require.Equal(t, []string{"package.json", "bower.json"}, opts.Files)
	require.Equal(t, []string{"Pkg"}, opts.UpdateConfigs)
	require.True(t, opts.ReleaseBranch.Enabled)
	require.Equal(t, []string{"main", "release"}, opts.ReleaseBranch.Names)
	require.Equal(t, "upstream", opts.PushTo)
	require.Equal(t, "next", opts.NPMTag)

	// Untouched keys keep their defaults.
	require.True(t, opts.Commit)
	require.Equal(t, "Release v%VERSION%", opts.CommitMessage)

	require.Contains(t, cfg.Configs, "pkg", "entry names are lowercased")
	require.Equal(t, "1.0.0", cfg.Configs["pkg"]["version"])
	require.True(t, cfg.Tracing.Enabled)
	require.Equal(t, "stdout", cfg.Tracing.Exporter)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.ErrorContains(t, err, "reading config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.yaml", "release: [unclosed\n")
	_, _, err := Load(path, nil)
	require.Error(t, err)
}

func TestLoad_LocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	writeConfig(t, dir, LocalConfigFile, "release:\n  push_to: mirror\n")

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, LocalConfigFile, used)
	require.Equal(t, "mirror", cfg.Release.PushTo)
}

func TestLoad_UserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	userDir := filepath.Join(home, ".config", "pushrelease")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "config.yaml", "release:\n  npm_tag: beta\n")

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(userDir, "config.yaml"), used)
	require.Equal(t, "beta", cfg.Release.NPMTag)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	require.Empty(t, used)
	require.Equal(t, Defaults().Release.Files, cfg.Release.Files)
	require.NotNil(t, cfg.Configs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", "release:\n  push_to: mirror\n")
	t.Setenv("PUSHRELEASE_RELEASE_PUSH_TO", "upstream")
	t.Setenv("PUSHRELEASE_RELEASE_COMMIT", "false")

	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "upstream", cfg.Release.PushTo)
	require.False(t, cfg.Release.Commit)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", "release:\n  push_to: mirror\n  files: [a.json]\n")
	t.Setenv("PUSHRELEASE_RELEASE_PUSH_TO", "upstream")

	flags := pflag.NewFlagSet("push", pflag.ContinueOnError)
	flags.Bool("dry-run", false, "")
	flags.Bool("strict", false, "")
	flags.StringSlice("files", nil, "")
	flags.String("push-to", "", "")
	flags.StringSlice("release-branch", nil, "")
	require.NoError(t, flags.Parse([]string{
		"--dry-run", "--push-to", "fork", "--files", "x.json,y.json", "--release-branch", "main",
	}))

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)

	opts, err := cfg.Release.Options()
	require.NoError(t, err)
	require.True(t, opts.DryRun)
	require.False(t, opts.Strict)
	require.Equal(t, "fork", opts.PushTo)
	require.Equal(t, []string{"x.json", "y.json"}, opts.Files)
	require.Equal(t, []string{"main"}, opts.ReleaseBranch.Names)
}

func TestLoad_UnchangedFlagsKeepConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "c.yaml", "release:\n  push_to: mirror\n")

	flags := pflag.NewFlagSet("push", pflag.ContinueOnError)
	flags.String("push-to", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, "mirror", cfg.Release.PushTo)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
