package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base64PreEncoder(t *testing.T) {
	encoder := Base64PreEncoder{}
	values, err := encoder.Encode("A")
	require.NoError(t, err)
	// "A" is "QQ==" in Base64, padding is stripped
	require.Equal(t, []int{16, 16}, values)

	values, err = encoder.Encode("Man")
	require.NoError(t, err)
	require.Equal(t, []int{19, 22, 5, 46}, values)

	decoded, err := encoder.Decode([]int{19, 22, 5, 46})
	require.NoError(t, err)
	require.Equal(t, "Man", decoded)
}

func Test_Base64PreEncoderAllCodePoints(t *testing.T) {
	testRoundTrip(t, &Base64PreEncoder{}, allCodePoints())
}

func Test_Base64Transliterate(t *testing.T) {
	for v := 0; v < len(cb64); v++ {
		c, err := convertFrom6Bit(v)
		require.NoError(t, err)
		require.Equal(t, cb64[v], c)

		back, err := convertTo6Bit(c)
		require.NoError(t, err)
		require.Equal(t, v, back)
	}

	_, err := convertTo6Bit('=')
	require.True(t, errors.Is(err, ErrInvalidSymbol))
	_, err = convertTo6Bit('-')
	require.True(t, errors.Is(err, ErrInvalidSymbol))
	_, err = convertFrom6Bit(64)
	require.True(t, errors.Is(err, ErrInvalidValue))
}

func Test_Base64PreEncoderDanglingSymbol(t *testing.T) {
	encoder := Base64PreEncoder{}
	// Five symbols can never be produced from whole bytes
	_, err := encoder.Decode([]int{1, 2, 3, 4, 5})
	require.True(t, errors.Is(err, ErrInvalidSymbol), "expected ErrInvalidSymbol, got %v", err)
}
