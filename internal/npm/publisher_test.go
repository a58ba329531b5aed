package npm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeNpm writes a shell script standing in for npm and returns its path.
func fakeNpm(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "npm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestRealPublisher_PassesTag(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	p := &RealPublisher{
		workDir: dir,
		binary:  fakeNpm(t, `echo "$@" > "`+argsFile+`"`),
	}

	require.NoError(t, p.Publish(context.Background(), "next"))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, "publish --tag next\n", string(data))
}

func TestRealPublisher_Failure(t *testing.T) {
	p := &RealPublisher{
		binary: fakeNpm(t, "echo 'npm ERR! code E401' >&2\nexit 1\n"),
	}

	err := p.Publish(context.Background(), "latest")
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestParseNpmError(t *testing.T) {
	base := errors.New("exit status 1")

	require.ErrorIs(t, parseNpmError("npm ERR! You cannot publish over the previously published versions: 1.0.0.", base), ErrVersionExists)
	require.ErrorIs(t, parseNpmError("", base), base)

	err := parseNpmError("npm ERR! something odd", base)
	require.ErrorIs(t, err, base)
	require.Contains(t, err.Error(), "something odd")
}

func TestDryRunPublisher(t *testing.T) {
	var got string
	d := NewDryRunPublisher(func(cmd string) { got = cmd })

	require.NoError(t, d.Publish(context.Background(), "Release v1.0.0"))
	require.Equal(t, `npm publish --tag "Release v1.0.0"`, got)
}
