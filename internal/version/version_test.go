package version

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_AppVersion(t *testing.T) {
	defer func(tag, v string) {
		GitTag, Version = tag, v
	}(GitTag, Version)

	GitTag, Version = "", ""
	require.Equal(t, UnknownVersion, AppVersion())

	Version = "1.2.3"
	require.Equal(t, "1.2.3", AppVersion())

	GitTag = "v1.2.4"
	require.Equal(t, "v1.2.4", AppVersion())
}

func Test_Summary(t *testing.T) {
	defer func(tag, v, commit, date string) {
		GitTag, Version, GitCommit, BuildDate = tag, v, commit, date
	}(GitTag, Version, GitCommit, BuildDate)

	GitTag, Version, GitCommit, BuildDate = "", "", "", ""
	require.Equal(t, "vspace unknown", Summary())

	GitTag, GitCommit = "v1.0.0", "0b5ed7a1c2d3"
	require.Equal(t, "vspace v1.0.0 (0b5ed7a)", Summary())

	BuildDate = "2016-08-04T18:07:54Z"
	require.Equal(t, "vspace v1.0.0 (0b5ed7a, 2016-08-04T18:07:54Z)", Summary())
}
