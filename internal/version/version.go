// Package version rewrites semantic version strings inside text files.
//
// Everything here is pure: text in, text and version out. Reading and writing
// files is left to callers.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	// ErrNoVersion indicates the content holds nothing that looks like a version field.
	ErrNoVersion = errors.New("no version found")

	// ErrInvalidVersion indicates a captured value is not a semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")

	// ErrInvalidKind indicates an unknown increment kind.
	ErrInvalidKind = errors.New("invalid increment kind")
)

// Kind selects how a version is advanced.
type Kind string

const (
	KindMajor Kind = "major"
	KindMinor Kind = "minor"
	KindPatch Kind = "patch"
	// KindGit takes the version from `git describe` instead of incrementing.
	KindGit Kind = "git"
)

// ParseKind validates an increment token. The empty token is accepted and
// behaves as KindPatch when incrementing.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case "", KindMajor, KindMinor, KindPatch, KindGit:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q (want major, minor, patch or git)", ErrInvalidKind, s)
	}
}

// fieldPattern matches `version` (any case) followed by an optional quote, a
// `:` or `=` separator and a quoted value. Group 2 is the value.
var fieldPattern = regexp.MustCompile(`(?i)(\bversion['"]?\s*[:=]\s*['"])([\da-z.-]+)(['"])`)

// Result describes a single rewrite.
type Result struct {
	Content  string // content with the version replaced
	Previous string // value found in the original content
	Version  string // value written
}

// Bump replaces the first version field in content.
//
// When override is non-empty it is written verbatim; otherwise the captured
// value is advanced by kind (empty kind means patch).
func Bump(content string, kind Kind, override string) (Result, error) {
	loc := fieldPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return Result{}, ErrNoVersion
	}

	start, end := loc[4], loc[5]
	previous := content[start:end]

	next := override
	if next == "" {
		var err error
		next, err = Next(previous, kind)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		Content:  content[:start] + next + content[end:],
		Previous: previous,
		Version:  next,
	}, nil
}

// Next advances current by kind using npm's increment rules. A leading "v"
// is accepted and dropped. A prerelease is released rather than skipped when
// the increment would land on it: 1.2.3-rc.1 patch is 1.2.3, 2.0.0-rc.1 major
// is 2.0.0 and 1.3.0-beta.2 minor is 1.3.0. Build metadata is discarded.
func Next(current string, kind Kind) (string, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, current)
	}

	major, minor, patch := v.Major(), v.Minor(), v.Patch()
	pre := v.Prerelease() != ""

	switch kind {
	case KindMajor:
		if minor != 0 || patch != 0 || !pre {
			major++
		}
		minor, patch = 0, 0
	case KindMinor:
		if patch != 0 || !pre {
			minor++
		}
		patch = 0
	case KindPatch, "":
		if !pre {
			patch++
		}
	default:
		return "", fmt.Errorf("%w: %q cannot be incremented", ErrInvalidKind, kind)
	}
	return semver.New(major, minor, patch, "", "").String(), nil
}
