// Package arabic repairs Arabic text recovered from bank-statement PDFs.
// Extractors routinely emit Arabic runs in visual order, with spurious
// inter-letter spaces, in presentation forms, or under a wrong legacy
// encoding; this package turns such fragments into readable logical-order
// text. All functions are pure over their input and the static tables.
package arabic

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sentinel values returned instead of garbage. Callers treat them as data,
// never as errors.
const (
	Unreadable    = "[نص غير مقروء]"
	HiddenContent = "[محتوى مخفي]"
)

var (
	controlMarks = regexp.MustCompile(`[\x{200B}-\x{200F}\x{202A}-\x{202E}\x{2066}-\x{2069}]`)
	latinPrefix  = regexp.MustCompile(`^[A-Za-z0-9\s]+[\x{0600}-\x{06FF}]`)
	multiSpace   = regexp.MustCompile(`\s+`)
	spaceBefore  = regexp.MustCompile(`\s+([.,،؛:])`)
	spaceAfter   = regexp.MustCompile(`([.,،؛:])\s*`)
	alefLamSplit = regexp.MustCompile(`ا\s+ل\s*`)
	arabicIndic  = strings.NewReplacer(
		"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
		"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	)
)

// CellText prepares one raw PDF cell for normalization. Cells the extractor
// rendered as dots or masking stars carry no recoverable content and map to
// the hidden-content sentinel.
func CellText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "", "...", "***", "•••":
		return HiddenContent
	}
	return raw
}

// Normalize converts one raw text fragment into direction-corrected,
// digit-normalized text free of control marks. It never fails; input that
// is nothing but dot glyphs yields the unreadable sentinel.
func Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	if text == Unreadable || text == HiddenContent {
		return text
	}
	if allDots(text) {
		return Unreadable
	}

	text = stripMarks(text)

	if isReversed(text) {
		text = reverseSegments(text)
	}

	text = joinSplitLetters(text)
	text = arabicIndic.Replace(text)
	text = reshape(text)

	for _, fix := range corruptedWords {
		text = strings.ReplaceAll(text, fix.wrong, fix.correct)
	}

	return tidy(text)
}

func allDots(s string) bool {
	for _, r := range s {
		if strings.ContainsRune("...•․‥…⋯⋮⋰⋱", r) || r > 65000 {
			continue
		}
		return false
	}
	return true
}

func stripMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			continue
		}
		b.WriteRune(r)
	}
	return controlMarks.ReplaceAllString(b.String(), "")
}

// isReversed reports whether the fragment was emitted in visual order. A
// dictionary marker is conclusive on its own; the positional heuristic
// (Latin or digit prefix running into Arabic) only counts when reversing
// actually surfaces more known vocabulary than leaving the text alone.
func isReversed(s string) bool {
	for _, marker := range reversedMarkers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	if latinPrefix.MatchString(s) {
		return vocabularyScore(reverseSegments(s)) > vocabularyScore(s)
	}
	return false
}

func vocabularyScore(s string) int {
	score := 0
	for _, w := range knownWords {
		if strings.Contains(s, w) {
			score++
		}
	}
	return score
}

// reverseSegments reverses only the contiguous Arabic-script spans, leaving
// Latin, digit, and punctuation spans in their original order.
func reverseSegments(s string) string {
	type segment struct {
		runes  []rune
		arabic bool
	}
	var segments []segment
	classify := func(r rune) int {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			return 0
		case unicode.IsDigit(r):
			return 1
		case unicode.IsLetter(r):
			return 2
		default:
			return 3
		}
	}
	current := segment{}
	currentClass := -1
	for _, r := range s {
		c := classify(r)
		if c != currentClass && len(current.runes) > 0 {
			segments = append(segments, current)
			current = segment{}
		}
		currentClass = c
		current.arabic = c == 0
		current.runes = append(current.runes, r)
	}
	if len(current.runes) > 0 {
		segments = append(segments, current)
	}

	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.arabic {
			for i, j := 0, len(seg.runes)-1; i < j; i, j = i+1, j-1 {
				seg.runes[i], seg.runes[j] = seg.runes[j], seg.runes[i]
			}
		}
		if text := strings.TrimSpace(string(seg.runes)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

func joinSplitLetters(s string) string {
	for _, j := range splitLetterJoins {
		s = strings.ReplaceAll(s, j.split, j.joined)
	}
	return s
}

// reshape folds Arabic presentation forms (U+FB50..U+FEFF isolated and
// contextual letterforms) back to base letters. NFKC performs exactly this
// decomposition.
func reshape(s string) string {
	return norm.NFKC.String(s)
}

func tidy(s string) string {
	s = multiSpace.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = spaceBefore.ReplaceAllString(s, "$1")
	s = spaceAfter.ReplaceAllString(s, "$1 ")
	return strings.TrimSpace(s)
}
