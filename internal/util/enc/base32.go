package enc

import (
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb32      = "abcdefghijklmnopqrstuvwxyz012345"
	cb32Ucase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"
)

var lowercaseBase32Encoding = base32.NewEncoding(cb32).WithPadding(base32.NoPadding)

// Base32CharToInt returns the position of the given character in the Base32 alphabet. Both lowercase and
// uppercase letters are accepted. If the character is not part of the alphabet, -1 is returned.
func Base32CharToInt(in byte) int {
	pos := strings.IndexByte(cb32, in)
	if pos == -1 {
		pos = strings.IndexByte(cb32Ucase, in)
	}
	return pos
}

// -------------------------------------------------------

// Base32PreEncoder packs 5 bytes into 8 five-bit values.
type Base32PreEncoder struct {
}

func (b *Base32PreEncoder) Name() string {
	return "Base32"
}

func (b *Base32PreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32PreEncoder) Code() byte {
	return 'T'
}

func (b *Base32PreEncoder) SymbolCount() int {
	return len(cb32)
}

func (b *Base32PreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}

	encoded := lowercaseBase32Encoding.EncodeToString(data)
	res := make([]int, len(encoded))
	for pos := 0; pos < len(encoded); pos++ {
		v := Base32CharToInt(encoded[pos])
		if v < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol, "%q at position %d is not a Base32 symbol", encoded[pos], pos)
		}
		res[pos] = v
	}
	return res, nil
}

func (b *Base32PreEncoder) Decode(values []int) (string, error) {
	buf := make([]byte, len(values))
	for pos, v := range values {
		if err := checkValue(pos, v, len(cb32)); err != nil {
			return "", err
		}
		buf[pos] = cb32[v]
	}

	data, err := lowercaseBase32Encoding.DecodeString(string(buf))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "%v", err)
	}
	return BytesToText(data)
}
