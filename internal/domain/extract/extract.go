// Package extract recovers transaction candidates from statement table rows
// and free text. Extraction never fails on malformed input: every entry
// point returns an ok flag and the caller counts the rejects.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kashf-app/kashf/internal/domain/arabic"
)

// Direction tells whether money moved in or out.
type Direction int

const (
	Expense Direction = iota
	Income
)

func (d Direction) String() string {
	if d == Income {
		return "income"
	}
	return "expense"
}

// MarshalText serializes the direction for JSON output.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Candidate is one recovered transaction before classification. Amount is
// always non-negative; Direction carries the sign semantics.
type Candidate struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Direction   Direction
}

// PlaceholderDescription stands in for rows whose description cell was
// unreadable.
const PlaceholderDescription = "عملية مصرفية"

var (
	datePattern    = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)
	isoDatePattern = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}`)
	amountPattern  = regexp.MustCompile(`([\d,]+\.?\d*)\s*(SAR|ريال|﷼)?`)
	numericOnly    = regexp.MustCompile(`^[\d\s,.\-]+$`)
	amountChars    = regexp.MustCompile(`[^\d.\-]`)
)

var headerWords = []string{"تاريخ", "date", "مدين", "دائن", "الرصيد", "تفاصيل", "description", "transaction"}

// IsHeaderRow reports whether a table row is a column-header row rather
// than data. English header words must stand alone, so a description like
// "update" or "validated" does not pass for a "date" header; Arabic words
// keep substring matching because real headers carry the definite article
// ("التاريخ" for "تاريخ").
func IsHeaderRow(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	for _, word := range headerWords {
		if isASCIIWord(word) {
			if containsASCIIToken(joined, word) {
				return true
			}
			continue
		}
		if strings.Contains(joined, word) {
			return true
		}
	}
	return false
}

func isASCIIWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func containsASCIIToken(text, word string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		leftOK := idx == 0 || !isASCIILetter(text[idx-1])
		rightOK := end == len(text) || !isASCIILetter(text[end])
		if leftOK && rightOK {
			return true
		}
		start = end
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// contextual verbs that mark an outgoing amount when neither the debit nor
// the credit column carried it.
var expenseVerbs = []string{"سحب", "شراء", "دفع", "withdrawal", "purchase"}

// vocabulary that marks an incoming amount in free-text scanning.
var creditWords = []string{"دائن", "حوالة واردة", "incoming transfer"}

// parseAmount strips everything but digits, dot, and minus, then parses.
func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := amountChars.ReplaceAllString(strings.ReplaceAll(raw, ",", ""), "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func findDate(cell string) bool {
	return datePattern.MatchString(cell) || isoDatePattern.MatchString(cell)
}

func today() string {
	return time.Now().Format("02/01/2006")
}

func usableText(s string) bool {
	return s != "" && s != arabic.Unreadable && s != arabic.HiddenContent
}
