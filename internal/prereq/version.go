package prereq

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionPattern matches the first dotted version in --version output, e.g.
// "v20.11.1", "10.2.4", or "git version 2.43.0".
var versionPattern = regexp.MustCompile(`v?\d+\.\d+(?:\.\d+)?(?:[-+][0-9A-Za-z.-]+)?`)

// ExtractVersion returns the first version-looking token of s, or "".
func ExtractVersion(s string) string {
	return versionPattern.FindString(s)
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// Satisfies reports whether version meets constraint (e.g. ">=16.0.0").
// An empty constraint is always satisfied.
func Satisfies(version, constraint string) (bool, error) {
	if strings.TrimSpace(constraint) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
