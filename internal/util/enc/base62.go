package enc

import (
	"fmt"
	"github.com/eknkc/basex"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// base62Encoding is safe for concurrent use
var base62Encoding *basex.Encoding

func init() {
	if encoding, err := basex.NewEncoding(cb62); err != nil {
		panic("unable to initialize Base62 encoder")
	} else {
		base62Encoding = encoding
	}
}

// -------------------------------------------------------

// Base62PreEncoder treats the whole input as one big number and writes it out in radix 62. Leading zero
// bytes are kept as leading zero digits. This is quadratic in the input length, so it is best suited for
// short payloads.
type Base62PreEncoder struct {
}

func (b *Base62PreEncoder) Name() string {
	return "Base62"
}

func (b *Base62PreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base62PreEncoder) Code() byte {
	return 'B'
}

func (b *Base62PreEncoder) SymbolCount() int {
	return len(cb62)
}

func (b *Base62PreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []int{}, nil
	}

	encoded := base62Encoding.Encode(data)
	res := make([]int, len(encoded))
	for pos := 0; pos < len(encoded); pos++ {
		v := strings.IndexByte(cb62, encoded[pos])
		if v < 0 {
			return nil, errors.Wrapf(ErrInvalidSymbol, "%q at position %d is not a Base62 symbol", encoded[pos], pos)
		}
		res[pos] = v
	}
	return res, nil
}

func (b *Base62PreEncoder) Decode(values []int) (string, error) {
	if len(values) == 0 {
		return "", nil
	}

	buf := make([]byte, len(values))
	for pos, v := range values {
		if err := checkValue(pos, v, len(cb62)); err != nil {
			return "", err
		}
		buf[pos] = cb62[v]
	}

	data, err := base62Encoding.Decode(string(buf))
	if err != nil {
		return "", errors.Wrapf(ErrInvalidSymbol, "%v", err)
	}
	return BytesToText(data)
}
