package version

import "strings"

const (
	AppName        = "vspace"
	UnknownVersion = "unknown"
)

// provided at compile time
var (
	GitCommit  string // long commit hash of source tree, e.g. "0b5ed7a"
	GitBranch  string // current branch name the code is built off, e.g. "master"
	GitTag     string // current tag name the code is built off, e.g. "v1.5.0"
	GitSummary string // output of "git describe --tags --dirty --always", e.g. "4cb95ca-dirty"
	GitState   string // whether there are uncommitted changes, e.g. "clean" or "dirty"
	BuildDate  string // RFC3339 formatted UTC date, e.g. "2016-08-04T18:07:54Z"
	Version    string // contents of ./VERSION file, if exists
	GoVersion  string // the version of go, e.g. "go version go1.10.3 darwin/amd64"
)

func AppVersion() string {
	if GitTag != "" {
		return GitTag
	} else if Version != "" {
		return Version
	}

	return UnknownVersion
}

// Summary returns a one-line description of the build, e.g. "vspace v1.5.0 (0b5ed7a, 2016-08-04T18:07:54Z)"
func Summary() string {
	details := make([]string, 0, 2)
	if GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		details = append(details, commit)
	}
	if BuildDate != "" {
		details = append(details, BuildDate)
	}

	res := AppName + " " + AppVersion()
	if len(details) > 0 {
		res += " (" + strings.Join(details, ", ") + ")"
	}
	return res
}
