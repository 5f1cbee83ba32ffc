package extract

import (
	"regexp"
	"strings"

	"github.com/kashf-app/kashf/internal/domain/arabic"
)

var (
	blockDatePattern = regexp.MustCompile(`\d{4}/\d{2}/\d{2}`)
	blockDateAtStart = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}`)
	sarAmount        = regexp.MustCompile(`([\d,]+\.?\d*)\s*SAR`)
)

// maxBlockLines bounds how many lines one transaction may span in free
// text.
const maxBlockLines = 5

// ScanText recovers candidates from a page that yielded no tables. A
// transaction starts at a line carrying a date, swallows following lines
// until the next date (at most maxBlockLines), and must contain a
// currency-suffixed amount. Credit vocabulary flips the direction to
// Income; everything else is an Expense.
func ScanText(text string) []Candidate {
	lines := strings.Split(text, "\n")
	var out []Candidate

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		dateMatch := blockDatePattern.FindString(line)
		if dateMatch == "" {
			continue
		}

		block := []string{line}
		j := i + 1
		for j < len(lines) && !blockDateAtStart.MatchString(strings.TrimSpace(lines[j])) {
			if trimmed := strings.TrimSpace(lines[j]); trimmed != "" {
				block = append(block, trimmed)
			}
			j++
			if j-i > maxBlockLines {
				break
			}
		}

		full := strings.Join(block, " ")
		if candidate, ok := fromBlock(dateMatch, full); ok {
			out = append(out, candidate)
		}
		i = j - 1
	}
	return out
}

func fromBlock(date, full string) (Candidate, bool) {
	m := sarAmount.FindStringSubmatch(full)
	if m == nil {
		return Candidate{}, false
	}
	amount, ok := parseAmount(m[1])
	if !ok || !amount.IsPositive() {
		return Candidate{}, false
	}

	direction := Expense
	lower := strings.ToLower(full)
	for _, word := range creditWords {
		if strings.Contains(full, word) || strings.Contains(lower, word) {
			direction = Income
			break
		}
	}

	desc := ""
	if idx := strings.LastIndex(full, "SAR"); idx >= 0 {
		desc = strings.TrimSpace(full[idx+len("SAR"):])
	}
	if desc != "" {
		desc = arabic.Normalize(desc)
	}
	if !usableText(desc) {
		desc = "عملية بنكية"
	}

	return Candidate{
		Date:        date,
		Description: desc,
		Amount:      amount,
		Direction:   direction,
	}, true
}
