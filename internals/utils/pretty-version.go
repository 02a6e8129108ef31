package utils

import (
	"github.com/Masterminds/semver/v3"
	"github.com/jwalton/gchalk"
)

// PrettyVersion returns a colored version string for terminal printing.
// Versions below min are printed in yellow.
func PrettyVersion(version *semver.Version, min *semver.Version) string {
	if version == nil {
		return gchalk.Gray("unknown")
	}

	pretty := version.String()
	if min != nil && version.LessThan(min) {
		return gchalk.Yellow(pretty)
	}
	return gchalk.Green(pretty)
}
