package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

var encoderTests = []string{
	"",
	"A",
	"AAAAA",
	"Hello, World!",
	"1234567890",
	"!@#$%^&*()_+-=[]{}|;':,./<>?",
	" \t\n\r",
	"This is a test.\nWith multiple lines.\nAnd special characters!@#$%^&*()",
	"Extended ASCII: ñáéíóú",
	"\u0080\u00a0\u00ad\u00ff",
	"\x00",
	"\x00\x00A",
	"A\x00\x00",
}

// allCodePoints returns a string containing every code point between 0 and 255
func allCodePoints() string {
	sb := &strings.Builder{}
	for i := 0; i <= MaxCodePoint; i++ {
		sb.WriteRune(rune(i))
	}
	return sb.String()
}

func testRoundTrip(t *testing.T, encoder PreEncoder, text string) {
	values, err := encoder.Encode(text)
	require.NoError(t, err)
	for _, v := range values {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, encoder.SymbolCount())
	}
	decoded, err := encoder.Decode(values)
	require.NoError(t, err)
	require.Equal(t, text, decoded)
}

func Test_PreEncodersRoundTrip(t *testing.T) {
	for _, encoder := range PreEncoders {
		encoder := encoder
		t.Run(encoder.Name(), func(t *testing.T) {
			for _, encoderTest := range encoderTests {
				testRoundTrip(t, encoder, encoderTest)
			}
			testRoundTrip(t, encoder, strings.Repeat("B", 4096))
		})
	}
}

func Test_PreEncodersRejectWideRunes(t *testing.T) {
	for _, encoder := range PreEncoders {
		_, err := encoder.Encode("Hello, 世界!")
		require.Truef(t, errors.Is(err, ErrInvalidFormat), "%v: expected ErrInvalidFormat, got %v", encoder.Name(), err)
	}
}

func Test_PreEncodersRejectOutOfRangeValues(t *testing.T) {
	for _, encoder := range PreEncoders {
		_, err := encoder.Decode([]int{0, encoder.SymbolCount()})
		require.Truef(t, errors.Is(err, ErrInvalidValue), "%v: expected ErrInvalidValue, got %v", encoder.Name(), err)

		_, err = encoder.Decode([]int{-1})
		require.Truef(t, errors.Is(err, ErrInvalidValue), "%v: expected ErrInvalidValue, got %v", encoder.Name(), err)
	}
}

func Test_SymbolCounts(t *testing.T) {
	require.Equal(t, 64, (&Base64PreEncoder{}).SymbolCount())
	require.Equal(t, 32, (&Base32PreEncoder{}).SymbolCount())
	require.Equal(t, 62, (&Base62PreEncoder{}).SymbolCount())
	require.Equal(t, 91, (&Base91PreEncoder{}).SymbolCount())
	require.Equal(t, 128, (&Base128PreEncoder{}).SymbolCount())
	require.Equal(t, 256, (&RawPreEncoder{}).SymbolCount())
}
