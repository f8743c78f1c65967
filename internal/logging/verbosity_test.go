package logging

import (
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetVerbosity(nil)
	require.Equal(t, log.WarnLevel, log.GetLevel())
	require.Equal(t, "WARN", VerbosityName())

	SetVerbosity([]bool{true, true})
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}

func Test_NewFormatter(t *testing.T) {
	_, ok := NewFormatter("json", "auto", false).(*log.JSONFormatter)
	require.True(t, ok)

	text, ok := NewFormatter("text", " NO ", true).(*log.TextFormatter)
	require.True(t, ok)
	require.True(t, text.DisableColors)
	require.False(t, text.ForceColors)
	require.True(t, text.FullTimestamp)

	text = NewFormatter("text", "yes", false).(*log.TextFormatter)
	require.True(t, text.ForceColors)
}
