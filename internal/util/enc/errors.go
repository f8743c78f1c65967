package enc

import "github.com/pkg/errors"

var (
	// ErrInvalidFormat is returned when the text contains a code point outside of 0-255
	ErrInvalidFormat = errors.New("expected standard ASCII or extended ASCII text")
	// ErrInvalidSymbol is returned when an intermediate symbol is not part of the pre-encoder alphabet
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidValue is returned when a value is outside of [0, SymbolCount)
	ErrInvalidValue = errors.New("invalid value")
)

// checkValue makes sure the value at position pos is a valid symbol index for a pre-encoder with
// count symbols.
func checkValue(pos, value, count int) error {
	if value < 0 || value >= count {
		return errors.Wrapf(ErrInvalidValue, "value %d at position %d is outside of [0, %d)", value, pos, count)
	}
	return nil
}
