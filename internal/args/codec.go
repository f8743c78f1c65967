package args

import (
	"github.com/bokysan/vspace/internal/util/enc"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// UnescapeSymbols converts escape sequences (e.g. `\t`, `\u00a0`) in the given string into the characters
// they represent. This makes it possible to pass invisible characters on the command line.
func UnescapeSymbols(symbols string) (string, error) {
	if !strings.Contains(symbols, `\`) {
		return symbols, nil
	}
	sb := &strings.Builder{}
	for s := symbols; len(s) > 0; {
		if s[0] == '"' {
			sb.WriteByte('"')
			s = s[1:]
			continue
		}
		r, _, tail, err := strconv.UnquoteChar(s, '"')
		if err != nil {
			return "", errors.Wrapf(err, "could not unescape symbols %q", symbols)
		}
		sb.WriteRune(r)
		s = tail
	}
	return sb.String(), nil
}

// NewCodec creates a new codec from the options
func (o *CodecOptions) NewCodec() (*vspace.Codec, error) {
	p, err := enc.FindPreEncoder(o.PreEncoder)
	if err != nil {
		return nil, err
	}

	opts := []vspace.Option{
		vspace.WithPreEncoder(p),
	}
	if o.Symbols != "" {
		symbols, err := UnescapeSymbols(o.Symbols)
		if err != nil {
			return nil, errors.Wrap(vspace.ErrInvalidAlphabet, err.Error())
		}
		opts = append(opts, vspace.WithAlphabetString(symbols))
	} else {
		opts = append(opts, vspace.WithNamedAlphabet(o.Alphabet))
	}

	return vspace.New(opts...)
}
