package console

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pushrelease/internal/release"
	"github.com/zjrosen/pushrelease/internal/ui/styles"
)

var _ release.Reporter = (*Reporter)(nil)

func TestMain(m *testing.M) {
	styles.DisableColor()
	os.Exit(m.Run())
}

func TestReporter_Lines(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(&out, &errOut, false)

	r.OK("Version bumped to 1.2.3")
	r.Warn("the current branch \"dev\" is not in the list of release branches")
	r.Verbose("hidden")
	r.Error(errors.New("push: remote rejected"))
	r.Error(nil)

	require.Equal(t,
		"✓ Version bumped to 1.2.3\n"+
			"! the current branch \"dev\" is not in the list of release branches\n",
		out.String())
	require.Equal(t, "✗ push: remote rejected\n", errOut.String())
	require.Equal(t, 1, r.Warnings())
}

func TestReporter_VerboseIndentsEachLine(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, nil, true)

	r.Verbose("--- package.json\n+++ package.json\n-  \"version\": \"1.0.0\"\n+  \"version\": \"1.0.1\"\n")
	r.Verbose("")
	r.Verbose("git commit -a -m \"Release v1.0.1\"")

	require.Equal(t,
		"  --- package.json\n"+
			"  +++ package.json\n"+
			"  -  \"version\": \"1.0.0\"\n"+
			"  +  \"version\": \"1.0.1\"\n"+
			"  git commit -a -m \"Release v1.0.1\"\n",
		out.String())
}

func TestReporter_NilWriters(t *testing.T) {
	r := New(nil, nil, true)
	r.OK("ok")
	r.Warn("warn")
	r.Error(errors.New("boom"))
	require.Equal(t, 1, r.Warnings())
}
