package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_TextToBytes(t *testing.T) {
	data, err := TextToBytes("Añÿ")
	require.NoError(t, err)
	require.Equal(t, []byte{'A', 0xF1, 0xFF}, data)

	text, err := BytesToText(data)
	require.NoError(t, err)
	require.Equal(t, "Añÿ", text)
}

func Test_TextToBytesRejects(t *testing.T) {
	_, err := TextToBytes("ok Ā")
	require.True(t, errors.Is(err, ErrInvalidFormat))
	require.Contains(t, err.Error(), "U+0100")

	// broken UTF-8 is read as U+FFFD
	_, err = TextToBytes("\xff")
	require.True(t, errors.Is(err, ErrInvalidFormat))
}

func Test_IsExtendedASCII(t *testing.T) {
	require.True(t, IsExtendedASCII(""))
	require.True(t, IsExtendedASCII(allCodePoints()))
	require.False(t, IsExtendedASCII("€"))
}

func Test_FindPreEncoder(t *testing.T) {
	p, err := FindPreEncoder("")
	require.NoError(t, err)
	require.Equal(t, DefaultPreEncoder, p)

	p, err = FindPreEncoder("base91")
	require.NoError(t, err)
	require.Equal(t, "Base91", p.Name())

	p, err = FindPreEncoder("T")
	require.NoError(t, err)
	require.Equal(t, "Base32", p.Name())

	_, err = FindPreEncoder("base58")
	require.True(t, errors.Is(err, ErrUnknownPreEncoder))

	require.Len(t, PreEncoderNames(), len(PreEncoders))
}
