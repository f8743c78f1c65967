// Package server exposes the codec over an HTTP API.
package server

import (
	"fmt"
)

// Server is a long-running listener which can be started and gracefully stopped
type Server interface {
	fmt.Stringer

	Startup() error
	Shutdown() error
}
