// Package vspace hides extended-ASCII text inside strings made solely of (near-)invisible characters.
//
// Encoding happens in two stages. First, a pre-encoder (Base64 by default) turns the text into a stream
// of small values. Then every value is written out as a fixed number of digits, least significant first,
// using the characters of the alphabet as digits. With the default alphabet of three characters (tab,
// space and no-break space) and 64 pre-encoder symbols, each value takes up 4 characters.
//
// Example usage:
//
//	codec, err := vspace.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	hidden, err := codec.Encode("Hello, World!")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text, err := codec.Decode(hidden)
//	// text == "Hello, World!"
package vspace

import (
	"github.com/bokysan/vspace/internal/util/enc"
	"github.com/pkg/errors"
	"strings"
	"unicode/utf8"
)

// Codec converts text to and from its invisible representation. It is immutable after creation and safe
// for concurrent use.
type Codec struct {
	alphabet      *Alphabet
	preEncoder    enc.PreEncoder
	symbolsNeeded int
}

// Option configures a Codec
type Option func(c *config) error

type config struct {
	alphabet   *Alphabet
	preEncoder enc.PreEncoder
}

// WithAlphabet uses the given characters as the alphabet. The slice is not modified.
func WithAlphabet(symbols []rune) Option {
	return func(c *config) error {
		a, err := NewAlphabet(symbols)
		if err != nil {
			return err
		}
		c.alphabet = a
		return nil
	}
}

// WithAlphabetString uses the characters of the string as the alphabet.
func WithAlphabetString(symbols string) Option {
	return func(c *config) error {
		a, err := NewAlphabetString(symbols)
		if err != nil {
			return err
		}
		c.alphabet = a
		return nil
	}
}

// WithNamedAlphabet uses one of the predefined alphabets, see AlphabetNames.
func WithNamedAlphabet(name string) Option {
	return func(c *config) error {
		a, err := NamedAlphabet(name)
		if err != nil {
			return err
		}
		c.alphabet = a
		return nil
	}
}

// WithPreEncoder replaces the default Base64 pre-encoder.
func WithPreEncoder(p enc.PreEncoder) Option {
	return func(c *config) error {
		if p == nil {
			return errors.New("pre-encoder must not be nil")
		}
		if p.SymbolCount() < 1 {
			return errors.Errorf("pre-encoder %v has no symbols", p.Name())
		}
		c.preEncoder = p
		return nil
	}
}

// New creates a new codec. Without options, the default alphabet and the Base64 pre-encoder are used.
func New(opts ...Option) (*Codec, error) {
	cfg := &config{}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.alphabet == nil {
		cfg.alphabet = DefaultAlphabet()
	}
	if cfg.preEncoder == nil {
		cfg.preEncoder = enc.DefaultPreEncoder
	}

	return &Codec{
		alphabet:      cfg.alphabet,
		preEncoder:    cfg.preEncoder,
		symbolsNeeded: DigitsNeeded(cfg.alphabet.Len(), cfg.preEncoder.SymbolCount()),
	}, nil
}

// Alphabet returns the alphabet used for the output
func (c *Codec) Alphabet() *Alphabet {
	return c.alphabet
}

// PreEncoder returns the pre-encoder of this codec
func (c *Codec) PreEncoder() enc.PreEncoder {
	return c.preEncoder
}

// SymbolsNeeded returns the number of alphabet characters used for every pre-encoded value
func (c *Codec) SymbolsNeeded() int {
	return c.symbolsNeeded
}

// EncodedLen returns the length (in characters, not bytes) of the output for the given number of
// pre-encoded values
func (c *Codec) EncodedLen(values int) int {
	return values * c.symbolsNeeded
}

// Encode converts the text into a string made only of alphabet characters. The text may only contain code
// points 0-255.
func (c *Codec) Encode(text string) (string, error) {
	if err := enc.CheckExtendedASCII(text); err != nil {
		return "", err
	}

	values, err := c.preEncoder.Encode(text)
	if err != nil {
		return "", err
	}

	radix := c.alphabet.Len()
	count := c.preEncoder.SymbolCount()
	sb := &strings.Builder{}
	sb.Grow(c.EncodedLen(len(values)) * utf8.UTFMax)
	for pos, v := range values {
		if v < 0 || v >= count {
			return "", errors.Wrapf(ErrInvalidValue, "%v produced %d at position %d", c.preEncoder.Name(), v, pos)
		}
		// least significant digit first
		for i := 0; i < c.symbolsNeeded; i++ {
			sb.WriteRune(c.alphabet.Symbol(v % radix))
			v /= radix
		}
	}
	return sb.String(), nil
}

// Decode converts the output of Encode back into the original text.
func (c *Codec) Decode(encoded string) (string, error) {
	runes := []rune(encoded)
	radix := c.alphabet.Len()

	values := make([]int, 0, len(runes)/c.symbolsNeeded)
	for i := 0; i < len(runes); i += c.symbolsNeeded {
		end := i + c.symbolsNeeded
		if end > len(runes) {
			end = len(runes)
		}

		value, weight := 0, 1
		for j := i; j < end; j++ {
			digit, ok := c.alphabet.Index(runes[j])
			if !ok {
				return "", errors.WithStack(&CharacterError{Char: runes[j], Position: j})
			}
			value += digit * weight
			weight *= radix
		}

		if end-i != c.symbolsNeeded {
			return "", errors.Wrapf(ErrInvalidFormat,
				"encoded text has %d characters, which is not a multiple of %d", len(runes), c.symbolsNeeded)
		}
		values = append(values, value)
	}

	return c.preEncoder.Decode(values)
}
