package wide

import (
	"github.com/indigo-web/utils/uf"
	"golang.org/x/text/encoding/unicode"
)

// Encode converts the string into the engine's native wide form: UTF-16, little-endian,
// without a byte order mark. The terminator is not included, the block codec reserves
// space for it separately.
func Encode(s string) []byte {
	// UTF-16 covers the whole of unicode, so the encoder can only trip over malformed
	// UTF-8 input, in which case whatever was encoded so far is still the best answer
	encoded, _ := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).
		NewEncoder().
		Bytes(uf.S2B(s))

	return encoded
}
