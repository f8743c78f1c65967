package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const base128Symbols = 1 << 7

// -------------------------------------------------------

// Base128PreEncoder packs 7 bytes into 8 seven-bit values, most significant bit first. A trailing partial
// value is padded with zero bits.
type Base128PreEncoder struct {
}

func (b *Base128PreEncoder) Name() string {
	return "Base128"
}

func (b *Base128PreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128PreEncoder) Code() byte {
	return 'V'
}

func (b *Base128PreEncoder) SymbolCount() int {
	return base128Symbols
}

func (b *Base128PreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}

	res := make([]int, 0, base128.EncodedLen(len(data)))
	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range data {
		// the buffered low bits of the previous byte, followed by the top bits of this one
		res = append(res, int(bufByte|(val>>whichByte)))

		// keep the bits not written yet, aligned to the top of the next 7-bit value
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			res = append(res, int(bufByte))
			bufByte = 0
			whichByte = 0
		}
		whichByte++
	}
	if whichByte > 1 {
		res = append(res, int(bufByte))
	}
	return res, nil
}

func (b *Base128PreEncoder) Decode(values []int) (string, error) {
	src := make([]byte, len(values))
	for pos, v := range values {
		if err := checkValue(pos, v, base128Symbols); err != nil {
			return "", err
		}
		src[pos] = byte(v)
	}

	data, err := base128.DecodeString(string(src))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "%v", err)
	}
	return BytesToText(data)
}
