package server

import (
	"github.com/bokysan/vspace/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net/http"
	"strings"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the log format: structured entries for json
// and chi's default line format otherwise.
func GetRequestLogger(logFormat, logColor string) (logger NextHandlerFunc) {
	if logFormat == "json" {
		logger = middleware.RequestLogger( // Write requests to log
			&logging.JSONLogFormatter{},
		)
	} else {
		color := strings.TrimSpace(strings.ToLower(logColor))
		logger = middleware.RequestLogger( // Write requests to log
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: color == "no" || color == "false" || color == "0",
			},
		)
	}

	return
}
