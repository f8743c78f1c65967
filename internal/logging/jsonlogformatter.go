package logging

import (
	"fmt"
	"github.com/bokysan/vspace/internal/version"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"net/http"
	"time"
)

// JSONLogFormatter formats the access log of the HTTP API as structured logrus entries
type JSONLogFormatter struct {
	// Logger receives the entries. If nil, the standard logger is used.
	Logger *logrus.Logger
}

// JSONLogEntry prepares the Logrus context
type JSONLogEntry struct {
	logger  *logrus.Logger
	request *http.Request
}

// NewLogEntry creates a new entry for the Logrus log
func (j *JSONLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	logger := j.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &JSONLogEntry{
		logger:  logger,
		request: r,
	}
}

func (j *JSONLogEntry) fields() logrus.Fields {
	r := j.request
	return logrus.Fields{
		"remote_addr":           r.RemoteAddr,
		"request":               fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
		"request_id":            middleware.GetReqID(r.Context()),
		"request_method":        r.Method,
		"request_uri":           r.RequestURI,
		"request_length":        r.ContentLength,
		"received_content_type": r.Header.Get("Content-Type"),
		"protocol":              "HTTP",
		"app":                   version.AppName,
		"type":                  "access",
		"user_agent":            r.UserAgent(),
	}
}

// Write outputs the log entry into the log
func (j *JSONLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	fields := j.fields()
	fields["status"] = status
	fields["request_time"] = elapsed.Seconds()
	fields["sent_bytes"] = bytes
	fields["sent_content_type"] = header.Get("Content-Type")
	fields["extra"] = extra

	j.logger.WithFields(fields).Debug()
}

// Panic outputs the log entry into the log
func (j *JSONLogEntry) Panic(v interface{}, stack []byte) {
	fields := j.fields()
	fields["error"] = v
	fields["stack"] = string(stack)

	j.logger.WithFields(fields).Errorf("%+v", v)
}
