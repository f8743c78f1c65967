package vspace

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// Characters which render as (or close to) blank space
const (
	NonBreakingSpace   = '\u00A0'
	LineFeed           = '\n'
	HorizontalTab      = '\t'
	CarriageReturn     = '\r'
	Space              = '\u0020'
	SoftHyphen         = '\u00AD'
	ZeroWidthSpace     = '\u200B'
	ZeroWidthNonJoiner = '\u200C'
	ZeroWidthJoiner    = '\u200D'
	WordJoiner         = '\u2060'
)

// Names of the predefined alphabets
const (
	AlphabetDefault    = "default"
	AlphabetExtended   = "extended"
	AlphabetWhitespace = "whitespace"
	AlphabetZeroWidth  = "zero-width"
)

const maxInt = int(^uint(0) >> 1)

var namedAlphabets = map[string][]rune{
	AlphabetDefault:    {Space, NonBreakingSpace, HorizontalTab},
	AlphabetExtended:   {Space, NonBreakingSpace, HorizontalTab, SoftHyphen},
	AlphabetWhitespace: {HorizontalTab, LineFeed, CarriageReturn, Space, NonBreakingSpace},
	AlphabetZeroWidth:  {ZeroWidthSpace, ZeroWidthNonJoiner, ZeroWidthJoiner, WordJoiner},
}

var (
	defaultAlphabet     *Alphabet
	defaultAlphabetOnce sync.Once
)

// Alphabet is a sorted set of distinct characters used as digits of the encoded output. Once created,
// it is never modified and may be shared freely.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet creates a new alphabet from the given characters. The slice is copied and sorted, so that the
// same set of characters always yields the same character-to-digit mapping, regardless of the order
// they were given in. The alphabet must contain at least two distinct, valid characters and no duplicates.
func NewAlphabet(symbols []rune) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, errors.Wrap(ErrInvalidAlphabet, "must not contain zero items")
	}

	sorted := make([]rune, len(symbols))
	copy(sorted, symbols)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var errs *multierror.Error
	a := &Alphabet{
		symbols: sorted,
		index:   make(map[rune]int, len(sorted)),
	}
	for i, r := range sorted {
		if r == utf8.RuneError || !utf8.ValidRune(r) {
			errs = multierror.Append(errs, errors.Errorf("%q is not a valid character", r))
			continue
		}
		if _, ok := a.index[r]; ok {
			errs = multierror.Append(errs, errors.Errorf("duplicate character U+%04X", r))
			continue
		}
		a.index[r] = i
	}
	if len(a.index) < 2 {
		errs = multierror.Append(errs, errors.Errorf("need at least 2 distinct characters, got %d", len(a.index)))
	}

	if errs != nil {
		errs.ErrorFormat = listErrors
		return nil, errors.Wrap(ErrInvalidAlphabet, errs.Error())
	}
	return a, nil
}

// NewAlphabetString creates a new alphabet from the characters of the string.
func NewAlphabetString(symbols string) (*Alphabet, error) {
	if !utf8.ValidString(symbols) {
		return nil, errors.Wrap(ErrInvalidAlphabet, "not a valid UTF-8 string")
	}
	return NewAlphabet([]rune(symbols))
}

// DefaultAlphabet returns the alphabet made of a space, a non-breaking space and a horizontal tab.
func DefaultAlphabet() *Alphabet {
	defaultAlphabetOnce.Do(func() {
		a, err := NewAlphabet(namedAlphabets[AlphabetDefault])
		if err != nil {
			panic(fmt.Sprintf("default alphabet is broken: %v", err))
		}
		defaultAlphabet = a
	})
	return defaultAlphabet
}

// NamedAlphabet returns one of the predefined alphabets. Names are case-insensitive.
func NamedAlphabet(name string) (*Alphabet, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == AlphabetDefault {
		return DefaultAlphabet(), nil
	}
	symbols, ok := namedAlphabets[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "unknown alphabet %q, expected one of %v", name, AlphabetNames())
	}
	return NewAlphabet(symbols)
}

// AlphabetNames returns a sorted list of all predefined alphabet names
func AlphabetNames() []string {
	res := make([]string, 0, len(namedAlphabets))
	for k := range namedAlphabets {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Len returns the number of characters in the alphabet, e.g. the radix of the encoding.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the (sorted) characters of this alphabet.
func (a *Alphabet) Symbols() []rune {
	res := make([]rune, len(a.symbols))
	copy(res, a.symbols)
	return res
}

// Symbol returns the character representing the digit i.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Index returns the digit represented by the character r. The second return value is false if r is not
// part of this alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains returns true if r is part of this alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

func (a *Alphabet) String() string {
	parts := make([]string, len(a.symbols))
	for i, r := range a.symbols {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DigitsNeeded returns the smallest width w for which base^w >= count, i.e. the number of digits in the given
// base needed to write any value below count. The result is at least 1. Base must be 2 or more.
func DigitsNeeded(base, count int) int {
	width := 1
	for capacity := base; capacity < count; width++ {
		if capacity > maxInt/base {
			// one more digit goes past the largest int, so it covers any count
			return width + 1
		}
		capacity *= base
	}
	return width
}

func listErrors(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
