package version

import (
	"fmt"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const packageJSON = `{
  "name": "demo",
  "version": "1.2.3",
  "dependencies": {
    "other": "version: '9.9.9'"
  }
}
`

func TestBump_PackageJSON(t *testing.T) {
	res, err := Bump(packageJSON, KindPatch, "")
	require.NoError(t, err)
	require.Equal(t, "1.2.3", res.Previous)
	require.Equal(t, "1.2.4", res.Version)
	require.Contains(t, res.Content, `"version": "1.2.4"`)
	// only the first occurrence is touched
	require.Contains(t, res.Content, `version: '9.9.9'`)
}

func TestBump_Kinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{"", "1.2.4"},
		{KindPatch, "1.2.4"},
		{KindMinor, "1.3.0"},
		{KindMajor, "2.0.0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			res, err := Bump(`version = "1.2.3"`, tt.kind, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Version)
			require.Equal(t, `version = "`+tt.want+`"`, res.Content)
		})
	}
}

func TestBump_KeyVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"yaml single quotes", "name: x\nversion: '0.1.0'\n", "name: x\nversion: '0.1.1'\n"},
		{"uppercase key", `VERSION = "0.1.0"`, `VERSION = "0.1.1"`},
		{"quoted key no spaces", `{"version":"0.1.0"}`, `{"version":"0.1.1"}`},
		{"js object", `var pkg = {version: '0.1.0'};`, `var pkg = {version: '0.1.1'};`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Bump(tt.content, KindPatch, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, res.Content)
		})
	}
}

func TestBump_Override(t *testing.T) {
	res, err := Bump(packageJSON, KindGit, "v1.2.3-4-gabcdef")
	require.NoError(t, err)
	require.Equal(t, "v1.2.3-4-gabcdef", res.Version)
	require.Contains(t, res.Content, `"version": "v1.2.3-4-gabcdef"`)
}

func TestBump_NoVersion(t *testing.T) {
	_, err := Bump(`{"name": "demo"}`, KindPatch, "")
	require.ErrorIs(t, err, ErrNoVersion)

	// `subversion` is not a version key
	_, err = Bump(`subversion: "1.0.0"`, KindPatch, "")
	require.ErrorIs(t, err, ErrNoVersion)
}

func TestBump_InvalidCapturedVersion(t *testing.T) {
	_, err := Bump(`"version": "1.2"`, KindPatch, "")
	require.ErrorIs(t, err, ErrInvalidVersion)
}

func TestNext(t *testing.T) {
	tests := []struct {
		current string
		kind    Kind
		want    string
	}{
		{"1.2.3", KindPatch, "1.2.4"},
		{"1.2.3", "", "1.2.4"},
		{"1.2.3", KindMinor, "1.3.0"},
		{"1.2.3", KindMajor, "2.0.0"},
		{"v1.2.3", KindPatch, "1.2.4"},
		{"1.2.3+build.5", KindPatch, "1.2.4"},

		{"1.2.3-rc.1", KindPatch, "1.2.3"},
		{"1.2.3-rc.1", KindMinor, "1.3.0"},
		{"1.2.3-rc.1", KindMajor, "2.0.0"},
		{"1.3.0-beta.2", KindMinor, "1.3.0"},
		{"1.3.0-beta.2", KindMajor, "2.0.0"},
		{"2.0.0-rc.1", KindMajor, "2.0.0"},
		{"2.0.0-rc.1", KindMinor, "2.0.0"},
		{"2.0.0-rc.1", KindPatch, "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.current+"/"+string(tt.kind), func(t *testing.T) {
			got, err := Next(tt.current, tt.kind)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNext_Errors(t *testing.T) {
	_, err := Next("1.2.3", KindGit)
	require.ErrorIs(t, err, ErrInvalidKind)

	for _, bad := range []string{"1.2", "vv1.2.3", "latest"} {
		_, err := Next(bad, KindPatch)
		require.ErrorIs(t, err, ErrInvalidVersion, bad)
	}
}

func TestBump_VPrefixedVersion(t *testing.T) {
	res, err := Bump(`{"version": "v1.2.3"}`, KindPatch, "")
	require.NoError(t, err)
	require.Equal(t, "v1.2.3", res.Previous)
	require.Equal(t, "1.2.4", res.Version)
	require.Equal(t, `{"version": "1.2.4"}`, res.Content)
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"", "major", "minor", "patch", "git"} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		require.Equal(t, Kind(s), k)
	}

	_, err := ParseKind("huge")
	require.ErrorIs(t, err, ErrInvalidKind)
}

// TestNext_StrictlyGreater checks that every increment kind produces a
// version with higher precedence for any valid input.
func TestNext_StrictlyGreater(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 1000).Draw(t, "major")
		minor := rapid.IntRange(0, 1000).Draw(t, "minor")
		patch := rapid.IntRange(0, 1000).Draw(t, "patch")
		current := fmt.Sprintf("%d.%d.%d", major, minor, patch)
		if rapid.Bool().Draw(t, "prerelease") {
			current += "-" + rapid.StringMatching(`(alpha|beta|rc)\.[1-9][0-9]?`).Draw(t, "pre")
		}
		kind := rapid.SampledFrom([]Kind{KindMajor, KindMinor, KindPatch}).Draw(t, "kind")

		next, err := Next(current, kind)
		if err != nil {
			t.Fatalf("Next(%q, %s) error: %v", current, kind, err)
		}

		before := semver.MustParse(current)
		after := semver.MustParse(next)
		if !after.GreaterThan(before) {
			t.Fatalf("Next(%q, %s) = %q, want greater", current, kind, next)
		}
	})
}

// TestBump_OverrideIgnoresStoredVersion checks the git-derived value wins no
// matter what the file held.
func TestBump_OverrideIgnoresStoredVersion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stored := rapid.StringMatching(`[0-9a-z][0-9a-z.-]{0,12}`).Draw(t, "stored")
		described := rapid.StringMatching(`v?[0-9]\.[0-9]\.[0-9](-[0-9]+-g[0-9a-f]{7})?`).Draw(t, "described")

		res, err := Bump(`"version": "`+stored+`"`, KindGit, described)
		if err != nil {
			t.Fatalf("Bump error: %v", err)
		}
		if res.Version != described {
			t.Fatalf("version = %q, want %q", res.Version, described)
		}
	})
}
