package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsOutdated reports whether current is older than latest. Development
// builds (empty or "dev") and pseudo-versions never match a published tag
// and are always considered outdated.
func IsOutdated(current, latest string) (bool, error) {
	currentNorm := normalizeVersion(current)
	if currentNorm == "" || currentNorm == "dev" || isPseudoVersion(currentNorm) {
		return true, nil
	}

	currentVer, err := semver.NewVersion(currentNorm)
	if err != nil {
		return false, fmt.Errorf("release: invalid current version %q: %w", current, err)
	}

	latestVer, err := semver.NewVersion(normalizeVersion(latest))
	if err != nil {
		return false, fmt.Errorf("release: invalid latest version %q: %w", latest, err)
	}

	return currentVer.LessThan(latestVer), nil
}

// normalizeVersion strips the 'v' prefix and surrounding space.
func normalizeVersion(version string) string {
	return strings.TrimPrefix(strings.TrimSpace(version), "v")
}

// isPseudoVersion reports whether version looks like a Go pseudo-version:
// a base version followed by a 14-digit timestamp and a 12-character hex
// commit hash, as in 0.0.0-20230101120000-abcdef123456. Post-tag forms
// carry the timestamp in a dotted segment (1.2.3-0.20240615083000-hash)
// and are detected as well.
func isPseudoVersion(version string) bool {
	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return false
	}

	timestamp := parts[len(parts)-2]
	if i := strings.LastIndex(timestamp, "."); i >= 0 {
		timestamp = timestamp[i+1:]
	}
	if len(timestamp) != 14 {
		return false
	}
	for _, ch := range timestamp {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	hash := parts[len(parts)-1]
	if len(hash) != 12 {
		return false
	}
	for _, ch := range hash {
		if !((ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f')) {
			return false
		}
	}

	return true
}
