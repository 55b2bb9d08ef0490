package version

import (
	"fmt"
	"strings"
)

// Characters permitted in the build metadata suffix.
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild is a variable so the build process can override it with
// '-ldflags "-X github.com/stitchnet/stitchd/version.appBuild=foo"'.
// It may only contain characters from validCharacters.
var appBuild string

// version memoizes the formatted version string.
var version = ""

// Version returns the application version as a semver string, with the build
// metadata appended when one was set at build time.
func Version() string {
	if version == "" {
		version = fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

		// Build metadata containing invalid characters is discarded
		// rather than producing a malformed version string.
		build := checkAppBuild(appBuild)
		if build != "" {
			version = fmt.Sprintf("%s-%s", version, build)
		}
	}

	return version
}

// checkAppBuild returns str, or an empty string if it contains any character
// outside validCharacters.
func checkAppBuild(str string) string {
	for _, r := range str {
		if !strings.ContainsRune(validCharacters, r) {
			return ""
		}
	}
	return str
}
