package reader

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encodings lists the accepted input encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

// decoderFor returns the transformer turning sourceEncoding into UTF-8.
// UTF-8 input goes through untouched, apart from a leading BOM which is
// dropped. Code page bytes always map to a rune, so they never fail.
func decoderFor(sourceEncoding string) (transform.Transformer, error) {
	switch sourceEncoding {
	case "", "utf8":
		return unicode.BOMOverride(encoding.Nop.NewDecoder()), nil
	case "cp437":
		return charmap.CodePage437.NewDecoder(), nil
	case "cp850":
		return charmap.CodePage850.NewDecoder(), nil
	case "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}
}
