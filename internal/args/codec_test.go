package args

import (
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_UnescapeSymbols(t *testing.T) {
	res, err := UnescapeSymbols(`\t\u00a0 `)
	require.NoError(t, err)
	require.Equal(t, "\t\u00a0 ", res)

	res, err = UnescapeSymbols(`ab"c`)
	require.NoError(t, err)
	require.Equal(t, `ab"c`, res)

	res, err = UnescapeSymbols(`a\"b`)
	require.NoError(t, err)
	require.Equal(t, `a"b`, res)

	res, err = UnescapeSymbols(`"\x41`)
	require.NoError(t, err)
	require.Equal(t, `"A`, res)

	_, err = UnescapeSymbols(`\q`)
	require.Error(t, err)
}

func Test_NewCodec(t *testing.T) {
	o := &CodecOptions{}
	c, err := o.NewCodec()
	require.NoError(t, err)
	require.Equal(t, 4, c.SymbolsNeeded())
	require.Equal(t, "Base64", c.PreEncoder().Name())

	o = &CodecOptions{Alphabet: "zero-width", PreEncoder: "raw"}
	c, err = o.NewCodec()
	require.NoError(t, err)
	require.Equal(t, 4, c.SymbolsNeeded())
	require.Equal(t, "Raw", c.PreEncoder().Name())

	o = &CodecOptions{Symbols: `\u200b\u200c`, Alphabet: "zero-width"}
	c, err = o.NewCodec()
	require.NoError(t, err)
	require.Equal(t, 2, c.Alphabet().Len())
	require.Equal(t, 6, c.SymbolsNeeded())

	o = &CodecOptions{Symbols: `x`}
	_, err = o.NewCodec()
	require.True(t, errors.Is(err, vspace.ErrInvalidAlphabet))

	o = &CodecOptions{PreEncoder: "base58"}
	_, err = o.NewCodec()
	require.Error(t, err)
}
