package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// DefaultPreEncoder is used when no other pre-encoder has been configured
var DefaultPreEncoder PreEncoder = &Base64PreEncoder{}

// PreEncoders lists all known pre-encoders, in order of preference
var PreEncoders = []PreEncoder{
	DefaultPreEncoder,
	&Base32PreEncoder{},
	&Base62PreEncoder{},
	&Base91PreEncoder{},
	&Base128PreEncoder{},
	&RawPreEncoder{},
}

// ErrUnknownPreEncoder is returned by FindPreEncoder if no pre-encoder matches the query
var ErrUnknownPreEncoder = errors.New("unknown pre-encoder")

// FindPreEncoder looks up a pre-encoder by its name (case-insensitive, e.g. "base64") or its one-letter
// code (case-sensitive, e.g. "S"). An empty query returns the DefaultPreEncoder.
func FindPreEncoder(query string) (PreEncoder, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return DefaultPreEncoder, nil
	}

	for _, p := range PreEncoders {
		if len(query) == 1 && query[0] == p.Code() {
			return p, nil
		}
		if strings.EqualFold(query, p.Name()) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownPreEncoder, "%q", query)
}

// PreEncoderNames returns the names of all registered pre-encoders
func PreEncoderNames() []string {
	res := make([]string, 0, len(PreEncoders))
	for _, p := range PreEncoders {
		res = append(res, p.Name())
	}
	return res
}
