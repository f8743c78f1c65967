package vspace

import (
	"fmt"
	"github.com/bokysan/vspace/internal/util/enc"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidAlphabet is returned when the codec is constructed with an unusable alphabet
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidCharacter is returned when the encoded text contains a character not in the alphabet
	ErrInvalidCharacter = errors.New("encoded text contains an invalid character")
	// ErrInvalidFormat is returned when the text cannot be encoded or the encoded text has a bad length
	ErrInvalidFormat = enc.ErrInvalidFormat
	// ErrInvalidSymbol is returned by the pre-encoder when an intermediate symbol is not valid
	ErrInvalidSymbol = enc.ErrInvalidSymbol
	// ErrInvalidValue is returned by the pre-encoder when a decoded value is out of range
	ErrInvalidValue = enc.ErrInvalidValue
)

// CharacterError describes a character in the encoded text that is not part of the alphabet
type CharacterError struct {
	Char     rune
	Position int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%v: %q (U+%04X) at position %d", ErrInvalidCharacter, e.Char, e.Char, e.Position)
}

// Is makes errors.Is(err, ErrInvalidCharacter) match
func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
