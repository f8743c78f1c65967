package enc

// PreEncoder converts text into a stream of small integers and back. Every value produced by Encode
// is in the range [0, SymbolCount()).
type PreEncoder interface {
	// Name is the user-friendly name of this pre-encoder
	Name() string
	// Code represents the short (one-letter) code for the pre-encoder
	Code() byte

	// Encode will take extended-ASCII text (code points 0-255) and convert it into a sequence of values
	Encode(text string) ([]int, error)

	// Decode is the reverse process of encoding
	Decode(values []int) (string, error)

	// SymbolCount returns the number of distinct values this pre-encoder produces. For Base64 this is 64.
	SymbolCount() int
}
