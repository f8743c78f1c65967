package enc

import (
	"encoding/base64"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb64  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	pad64 = '='
)

// -------------------------------------------------------

// Base64PreEncoder packs 3 bytes into 4 six-bit values. This is the default pre-encoder.
type Base64PreEncoder struct {
}

func (b *Base64PreEncoder) Name() string {
	return "Base64"
}

func (b *Base64PreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64PreEncoder) Code() byte {
	return 'S'
}

func (b *Base64PreEncoder) SymbolCount() int {
	return len(cb64)
}

func (b *Base64PreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}

	encoded := strings.TrimRight(base64.StdEncoding.EncodeToString(data), string(pad64))
	res := make([]int, 0, len(encoded))
	for pos := 0; pos < len(encoded); pos++ {
		v, err := convertTo6Bit(encoded[pos])
		if err != nil {
			return nil, errors.Wrapf(err, "position %d", pos)
		}
		res = append(res, v)
	}
	return res, nil
}

func (b *Base64PreEncoder) Decode(values []int) (string, error) {
	sb := &strings.Builder{}
	sb.Grow(len(values) + 3)
	for pos, v := range values {
		c, err := convertFrom6Bit(v)
		if err != nil {
			return "", errors.Wrapf(err, "position %d", pos)
		}
		sb.WriteByte(c)
	}

	// Put back the padding stripped during encoding
	if mod4 := sb.Len() % 4; mod4 > 0 {
		sb.WriteString(strings.Repeat(string(pad64), 4-mod4))
	}

	data, err := base64.StdEncoding.DecodeString(sb.String())
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "%v", err)
	}
	return BytesToText(data)
}

// convertTo6Bit maps a symbol from the standard Base64 alphabet to its value
func convertTo6Bit(c byte) (int, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26, nil
	case c >= '0' && c <= '9':
		return int(c-'0') + 52, nil
	case c == '+':
		return 62, nil
	case c == '/':
		return 63, nil
	}
	return 0, errors.Wrapf(ErrInvalidSymbol, "%q is not a Base64 symbol", c)
}

// convertFrom6Bit is the reverse of convertTo6Bit
func convertFrom6Bit(v int) (byte, error) {
	switch {
	case v < 0:
		// falls through to the error below
	case v < 26:
		return byte('A' + v), nil
	case v < 52:
		return byte('a' + v - 26), nil
	case v < 62:
		return byte('0' + v - 52), nil
	case v == 62:
		return '+', nil
	case v == 63:
		return '/', nil
	}
	return 0, errors.Wrapf(ErrInvalidValue, "%d is not a 6-bit value", v)
}
