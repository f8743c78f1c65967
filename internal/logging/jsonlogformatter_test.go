package logging

import (
	"bytes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func Test_JSONLogFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	formatter := &JSONLogFormatter{Logger: logger}
	req := httptest.NewRequest(http.MethodPost, "/encode", nil)
	entry := formatter.NewLogEntry(req)
	entry.Write(http.StatusOK, 42, http.Header{"Content-Type": []string{"application/json"}}, time.Millisecond, nil)

	out := buf.String()
	require.Contains(t, out, `"status":200`)
	require.Contains(t, out, `"sent_bytes":42`)
	require.Contains(t, out, `"request_uri":"/encode"`)
	require.Contains(t, out, `"app":"vspace"`)
}
