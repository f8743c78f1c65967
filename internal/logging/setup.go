package logging

import (
	"github.com/bokysan/vspace/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the general options. It returns a function which
// should be called before the program exits to release the log file, if any.
func SetupLogging() func() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.SetReportCaller(args.General.LogReportCaller)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile == nil || len(*args.General.LogFile) == 0 || *args.General.LogFile == "-" {
		return func() {}
	}

	f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.WithError(errors.WithStack(err)).Errorf("Could not open log file %v, logging to stderr", *args.General.LogFile)
		return func() {}
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		closeLog(f)
	}
}

// NewFormatter creates a logrus formatter for the given format ("json" or "text") and color setting
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}

	color = strings.TrimSpace(strings.ToLower(color))
	return &log.TextFormatter{
		ForceColors:   IsColorForced(color),
		DisableColors: IsColorDisabled(color),
		FullTimestamp: fullTimestamp,
	}
}

// IsColorForced returns true if the color option explicitly enables colors
func IsColorForced(color string) bool {
	return color == "yes" || color == "true" || color == "1"
}

// IsColorDisabled returns true if the color option explicitly disables colors
func IsColorDisabled(color string) bool {
	return color == "no" || color == "false" || color == "0"
}

func closeLog(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Errorf("Could not close the log file: %v", err)
	}
}
