package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.chromium.org/luci/common/data/base128"
	"strings"
	"testing"
)

func Test_Base128Encode(t *testing.T) {
	encoder := &Base128PreEncoder{}

	tests := []struct {
		text   string
		values []int
	}{
		{"", []int{}},
		{"A", []int{32, 64}},
		{"\x00", []int{0, 0}},
		{"\xff", []int{127, 64}},
		{"\x00\x00A", []int{0, 0, 8, 16}},
		{strings.Repeat("\xff", 7), []int{127, 127, 127, 127, 127, 127, 127, 127}},
	}

	for _, test := range tests {
		values, err := encoder.Encode(test.text)
		require.NoErrorf(t, err, "%q", test.text)
		require.Equalf(t, test.values, values, "%q", test.text)

		decoded, err := encoder.Decode(values)
		require.NoErrorf(t, err, "%q", test.text)
		require.Equal(t, test.text, decoded)
	}
}

func Test_Base128EncodedLength(t *testing.T) {
	encoder := &Base128PreEncoder{}
	for n := 0; n <= 64; n++ {
		values, err := encoder.Encode(strings.Repeat("\x80", n))
		require.NoError(t, err)
		require.Equalf(t, base128.EncodedLen(n), len(values), "%d bytes", n)
	}
}

func Test_Base128AllCodePoints(t *testing.T) {
	encoder := &Base128PreEncoder{}
	text := allCodePoints()
	values, err := encoder.Encode(text)
	require.NoError(t, err)
	for pos, v := range values {
		require.Truef(t, v >= 0 && v < 128, "value %d at position %d", v, pos)
	}

	decoded, err := encoder.Decode(values)
	require.NoError(t, err)
	require.Equal(t, text, decoded)
}

func Test_Base128DecodeRejectsWideValues(t *testing.T) {
	_, err := (&Base128PreEncoder{}).Decode([]int{32, 128})
	require.True(t, errors.Is(err, ErrInvalidValue))
}
