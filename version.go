// Package xx carries build metadata for the xx editor.
//
// The release number lives in the VERSION file next to this source. Packagers
// may stamp the rest at link time:
//
//	go build -ldflags "-X github.com/romycode/xx.Suffix=-rc.1 -X github.com/romycode/xx.Commit=abc1234"
package xx

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

//go:embed VERSION
var release string

var (
	// Suffix is appended to the release number, e.g. "-dev" or "-rc.1".
	Suffix = ""
	// Commit is the source revision the binary was built from.
	Commit = "unknown"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the SemVer release number with Suffix, without a leading v.
func Version() string {
	return strings.TrimSpace(release) + Suffix
}

func VersionTag() string {
	return "v" + Version()
}

// BuildInfo is the multi-line report printed by `xx -version`.
func BuildInfo() string {
	return fmt.Sprintf("xx %s\ncommit: %s\ngo: %s %s/%s\n",
		VersionTag(), Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsSemver reports whether v is a SemVer 2.0.0 string. Surrounding
// whitespace is ignored.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
