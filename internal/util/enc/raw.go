package enc

import "fmt"

const rawSymbols = 1 << 8

// -------------------------------------------------------

// RawPreEncoder maps every byte to a single value -- it simply does not do any translation whatsoever
type RawPreEncoder struct {
}

func (b *RawPreEncoder) Name() string {
	return "Raw"
}

func (b *RawPreEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawPreEncoder) Code() byte {
	return 'R'
}

func (b *RawPreEncoder) SymbolCount() int {
	return rawSymbols
}

func (b *RawPreEncoder) Encode(text string) ([]int, error) {
	data, err := TextToBytes(text)
	if err != nil {
		return nil, err
	}
	res := make([]int, len(data))
	for pos, v := range data {
		res[pos] = int(v)
	}
	return res, nil
}

func (b *RawPreEncoder) Decode(values []int) (string, error) {
	data := make([]byte, len(values))
	for pos, v := range values {
		if err := checkValue(pos, v, rawSymbols); err != nil {
			return "", err
		}
		data[pos] = byte(v)
	}
	return BytesToText(data)
}
