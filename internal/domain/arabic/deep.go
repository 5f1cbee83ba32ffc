package arabic

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Legacy 8-bit Arabic encodings tried in priority order when a description
// arrives mojibake'd. Windows-1256 is by far the most common in Saudi bank
// statements; ISO 8859-6 covers the rest.
var legacyEncodings = []encoding.Encoding{
	charmap.Windows1256,
	charmap.ISO8859_6,
}

// DeepNormalize is the heavier repair path used for transaction
// descriptions, where encoding corruption is much more likely than in date
// or amount cells. On top of Normalize it attempts re-decoding the bytes
// under legacy Arabic encodings and applies the banking-vocabulary fixes.
func DeepNormalize(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" || text == Unreadable || text == HiddenContent {
		return text
	}

	if decoded, ok := redecode(text); ok {
		text = decoded
	}

	text = Normalize(text)
	// Collapse leftover split definite articles only after the curated
	// joins ran, otherwise "ا ل س ع و د ي ة" degrades to "الس ع و د ي ة"
	// before the table can see it.
	text = alefLamSplit.ReplaceAllString(text, "ال")

	for _, fix := range bankingFixes {
		text = strings.ReplaceAll(text, fix.wrong, fix.correct)
	}

	return tidy(text)
}

// redecode reinterprets a fragment whose runes all fit in one byte (the
// signature of text decoded under the wrong single-byte charset) through
// each legacy encoding, accepting the first candidate that surfaces Arabic
// code points.
func redecode(s string) (string, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return "", false
		}
		buf = append(buf, byte(r))
	}

	if utf8.Valid(buf) && hasArabic(string(buf)) {
		return string(buf), true
	}
	for _, enc := range legacyEncodings {
		decoded, err := enc.NewDecoder().Bytes(buf)
		if err != nil {
			continue
		}
		if candidate := string(decoded); hasArabic(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func hasArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
