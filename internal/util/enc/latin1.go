package enc

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// MaxCodePoint is the highest code point that fits into a single ISO-8859-1 byte
const MaxCodePoint = 0xFF

// IsExtendedASCII returns true if every rune in text is between 0 and 255. Invalid UTF-8 sequences
// decode as U+FFFD and are therefore rejected as well.
func IsExtendedASCII(text string) bool {
	for _, r := range text {
		if r > MaxCodePoint {
			return false
		}
	}
	return true
}

// CheckExtendedASCII is like IsExtendedASCII, but returns an ErrInvalidFormat error describing the first
// offending code point.
func CheckExtendedASCII(text string) error {
	pos := 0
	for _, r := range text {
		if r > MaxCodePoint {
			return errors.Wrapf(ErrInvalidFormat, "code point U+%04X at position %d", r, pos)
		}
		pos++
	}
	return nil
}

// TextToBytes converts the text into ISO-8859-1 bytes, one byte per code point.
func TextToBytes(text string) ([]byte, error) {
	if err := CheckExtendedASCII(text); err != nil {
		return nil, err
	}
	res, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFormat, "%v", err)
	}
	return res, nil
}

// BytesToText converts ISO-8859-1 bytes back into a (UTF-8) string.
func BytesToText(data []byte) (string, error) {
	res, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(res), nil
}
