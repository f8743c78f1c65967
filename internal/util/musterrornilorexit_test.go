package util

import (
	"bou.ke/monkey"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function restores it.
func patchExit(code *int) func() {
	seqMutex.Lock()
	*code = -1
	patch := monkey.Patch(os.Exit, func(i int) {
		*code = i
	})
	return func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	var exitCode int
	defer patchExit(&exitCode)()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, ErrGeneric, exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, 0, ExitCode(&flags.Error{Type: flags.ErrHelp}))
	require.Equal(t, ErrUsage, ExitCode(errors.Wrap(vspace.ErrInvalidAlphabet, "empty")))
	require.Equal(t, ErrData, ExitCode(errors.WithStack(&vspace.CharacterError{Char: 'x'})))
	require.Equal(t, ErrData, ExitCode(errors.Wrap(vspace.ErrInvalidFormat, "wide")))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
}
