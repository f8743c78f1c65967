package enc

import (
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91PreEncoder converts each group of 13 bits into 2 radix-91 values.
type Base91PreEncoder struct {
}

func (b *Base91PreEncoder) Name() string {
	return "Base91"
}

func (b *Base91PreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91PreEncoder) Code() byte {
	return 'X'
}

func (b *Base91PreEncoder) SymbolCount() int {
	return len(cb91)
}

func (b *Base91PreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}

	encoded := base91Encoding.EncodeToString(data)
	res := make([]int, len(encoded))
	for pos := 0; pos < len(encoded); pos++ {
		v := strings.IndexByte(cb91, encoded[pos])
		if v < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol, "%q at position %d is not a Base91 symbol", encoded[pos], pos)
		}
		res[pos] = v
	}
	return res, nil
}

func (b *Base91PreEncoder) Decode(values []int) (string, error) {
	buf := make([]byte, len(values))
	for pos, v := range values {
		if err := checkValue(pos, v, len(cb91)); err != nil {
			return "", err
		}
		buf[pos] = cb91[v]
	}

	data, err := base91Encoding.DecodeString(string(buf))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "%v", err)
	}
	return BytesToText(data)
}
