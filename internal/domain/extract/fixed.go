package extract

import (
	"strings"

	"github.com/kashf-app/kashf/internal/domain/arabic"
)

// FixedPosition extracts from the stable 3-column layout: date,
// description, amount. The sign of the parsed amount decides the direction
// and is dropped afterwards, so every candidate leaves with a non-negative
// amount.
func FixedPosition(row []string) (Candidate, bool) {
	if len(row) < 3 || strings.TrimSpace(row[2]) == "" {
		return Candidate{}, false
	}

	date := arabic.DeepNormalize(arabic.CellText(row[0]))
	desc := arabic.DeepNormalize(arabic.CellText(row[1]))

	amount, ok := parseAmount(arabic.CellText(row[2]))
	if !ok || amount.IsZero() {
		return Candidate{}, false
	}

	if !usableText(date) {
		date = today()
	}
	if !usableText(desc) {
		desc = PlaceholderDescription
	}

	direction := Income
	if amount.IsNegative() {
		direction = Expense
	}

	return Candidate{
		Date:        date,
		Description: desc,
		Amount:      amount.Abs(),
		Direction:   direction,
	}, true
}
