package util

import (
	"github.com/bokysan/vspace/internal/util/enc"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrUsage is returned for a bad alphabet or pre-encoder configuration (EX_USAGE)
	ErrUsage = 64
	// ErrData is returned when the input text cannot be encoded or decoded (EX_DATAERR)
	ErrData = 65
	// ErrGeneric is returned for everything else
	ErrGeneric = 99
)

// ExitCode returns the process exit code for the given error. Error code is unwrapped from `flags.Error`
// object. Codec errors map to ErrUsage or ErrData. If it's a different kind of error, a generic error
// code - 99 - is returned
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	switch {
	case errors.Is(err, vspace.ErrInvalidAlphabet), errors.Is(err, enc.ErrUnknownPreEncoder):
		return ErrUsage
	case errors.Is(err, vspace.ErrInvalidFormat),
		errors.Is(err, vspace.ErrInvalidCharacter),
		errors.Is(err, vspace.ErrInvalidSymbol),
		errors.Is(err, vspace.ErrInvalidValue):
		return ErrData
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code from ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
