// Package version provides version information for the dataseries library.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	unknownValue     = "unknown"
	commitHashLength = 7
)

// Build-time variables set by ldflags
var (
	Version   = "dev"
	BuildDate = unknownValue
	GitCommit = unknownValue
	GoVersion = runtime.Version()
)

// BuildInfo contains detailed build information
type BuildInfo struct {
	Version   string    `json:"version"`
	BuildDate string    `json:"build_date"`
	GitCommit string    `json:"git_commit"`
	GoVersion string    `json:"go_version"`
	BuildTime time.Time `json:"build_time"`
	Dirty     bool      `json:"dirty"`
	Main      Module    `json:"main"`
	Deps      []Module  `json:"deps"`
}

// Module represents a Go module with version information
type Module struct {
	Path    string `json:"path"`
	Version string `json:"version"`
}

// Info returns detailed build information
func Info() BuildInfo {
	buildTime, _ := time.Parse(time.RFC3339, BuildDate)
	if buildTime.IsZero() {
		buildTime = time.Now()
	}

	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: GoVersion,
		BuildTime: buildTime,
		Dirty:     strings.HasSuffix(GitCommit, "-dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.Main = Module{Path: buildInfo.Main.Path, Version: buildInfo.Main.Version}
		for _, dep := range buildInfo.Deps {
			info.Deps = append(info.Deps, Module{Path: dep.Path, Version: dep.Version})
		}
	}

	return info
}

// Dependency returns the linked version of the module at path, if any.
func (b BuildInfo) Dependency(path string) (Module, bool) {
	for _, dep := range b.Deps {
		if dep.Path == path {
			return dep, true
		}
	}
	return Module{}, false
}

// DependencyVersions renders one "path version" line per linked module in
// paths. Modules that are not linked are skipped.
func (b BuildInfo) DependencyVersions(paths ...string) string {
	var sb strings.Builder
	for _, path := range paths {
		if dep, ok := b.Dependency(path); ok {
			fmt.Fprintf(&sb, "%s %s\n", dep.Path, dep.Version)
		}
	}
	return sb.String()
}

// String returns a formatted version string
func (b BuildInfo) String() string {
	var sb strings.Builder
	sb.WriteString("dataseries\n")
	fmt.Fprintf(&sb, "Version: %s", b.Version)
	if b.Dirty {
		sb.WriteString(" (dirty)")
	}
	sb.WriteString("\n")

	if b.BuildDate != unknownValue {
		fmt.Fprintf(&sb, "Build Date: %s\n", b.BuildDate)
	}

	if b.GitCommit != unknownValue {
		commit := b.GitCommit
		if len(commit) > commitHashLength {
			commit = commit[:commitHashLength]
		}
		fmt.Fprintf(&sb, "Git Commit: %s\n", commit)
	}

	fmt.Fprintf(&sb, "Go Version: %s\n", b.GoVersion)

	if b.Main.Path != "" {
		fmt.Fprintf(&sb, "Module: %s\n", b.Main.Path)
	}

	return sb.String()
}

// UserAgent identifies the library in outgoing requests and log records.
func UserAgent() string {
	return "dataseries/" + Version
}

// canonical adds the "v" prefix semver expects.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// IsValid reports whether v is a semantic version, with or without "v".
func IsValid(v string) bool {
	return semver.IsValid(canonical(v))
}

// IsRelease returns true if this is a tagged release version (not dev)
func IsRelease() bool {
	v := canonical(Version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}

// IsPreRelease returns true for alpha, beta and release-candidate versions
func IsPreRelease() bool {
	pre := semver.Prerelease(canonical(Version))
	for _, tag := range []string{"-alpha", "-beta", "-rc"} {
		if strings.HasPrefix(pre, tag) {
			return true
		}
	}
	return false
}

// Compare orders two versions by semantic version precedence and returns
// -1, 0 or +1. An invalid version sorts before every valid one.
func Compare(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}
