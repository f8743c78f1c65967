// Package commands contains helpers shared by the command line commands.
package commands

import (
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"strings"
)

// ReadInput returns the command arguments joined by spaces or, if there are no arguments, everything that
// can be read from in.
func ReadInput(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "could not read input")
	}
	return string(data), nil
}

// TrimNewline removes a single trailing line ending from text, unless the line ending is made of
// characters of the alphabet, in which case it may be part of the encoded data. A nil alphabet always
// removes the line ending.
func TrimNewline(text string, alphabet *vspace.Alphabet) string {
	for _, suffix := range []string{"\r\n", "\n"} {
		if !strings.HasSuffix(text, suffix) {
			continue
		}
		for _, r := range suffix {
			if alphabet != nil && alphabet.Contains(r) {
				return text
			}
		}
		return strings.TrimSuffix(text, suffix)
	}
	return text
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ShowDigits replaces every alphabet character in text with the digit it represents, making the
// invisible output readable. Characters outside of the alphabet are left as they are. Alphabets larger
// than 62 characters show '?' for the higher digits.
func ShowDigits(text string, alphabet *vspace.Alphabet) string {
	sb := &strings.Builder{}
	for _, r := range text {
		idx, ok := alphabet.Index(r)
		switch {
		case !ok:
			sb.WriteRune(r)
		case idx < len(digits):
			sb.WriteByte(digits[idx])
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}
