package vspace

// Embed hides the payload at the end of the cover text. Any trailing alphabet characters of the cover
// text are dropped first, so that Extract can find where the payload starts.
func (c *Codec) Embed(cover, payload string) (string, error) {
	encoded, err := c.Encode(payload)
	if err != nil {
		return "", err
	}
	runes := []rune(cover)
	return string(runes[:c.payloadStart(runes)]) + encoded, nil
}

// Extract finds the payload hidden by Embed and decodes it. A text without a payload decodes to an
// empty string.
func (c *Codec) Extract(text string) (string, error) {
	runes := []rune(text)
	return c.Decode(string(runes[c.payloadStart(runes):]))
}

// Split returns the cover text and the (still encoded) payload of the text
func (c *Codec) Split(text string) (cover string, encoded string) {
	runes := []rune(text)
	start := c.payloadStart(runes)
	return string(runes[:start]), string(runes[start:])
}

// payloadStart returns the index of the first character of the trailing run of alphabet characters
func (c *Codec) payloadStart(runes []rune) int {
	start := len(runes)
	for start > 0 && c.alphabet.Contains(runes[start-1]) {
		start--
	}
	return start
}
