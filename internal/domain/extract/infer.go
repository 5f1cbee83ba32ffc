package extract

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kashf-app/kashf/internal/domain/arabic"
)

// zeroish amount cells that mean "no value in this column".
var emptyAmounts = map[string]bool{
	"0.00": true, "0.00 SAR": true, "0": true, "-": true,
}

// InferColumns extracts from the 5-column debit/credit/balance layout
// without trusting column order. The date cell is found by pattern, the
// first three numeric cells are taken as debit, credit, and balance in
// encounter order, and the description is the longest remaining
// non-numeric cell. bankLabel tags the placeholder used when no
// description survives.
func InferColumns(row []string, bankLabel string) (Candidate, bool) {
	if len(row) < 4 {
		return Candidate{}, false
	}

	cells := make([]string, 0, 5)
	for _, cell := range row {
		cleaned := arabic.CellText(cell)
		if cleaned == arabic.Unreadable || cleaned == arabic.HiddenContent {
			cleaned = ""
		}
		cells = append(cells, strings.TrimSpace(cleaned))
	}
	for len(cells) < 5 {
		cells = append(cells, "")
	}

	dateIdx := -1
	for i, cell := range cells {
		if findDate(cell) {
			dateIdx = i
			break
		}
	}

	var amountIndices []int
	for i, cell := range cells {
		if i != dateIdx && cell != "" && amountPattern.MatchString(cell) {
			amountIndices = append(amountIndices, i)
		}
	}

	debitIdx, creditIdx, balanceIdx := -1, -1, -1
	switch {
	case len(amountIndices) >= 3:
		debitIdx, creditIdx, balanceIdx = amountIndices[0], amountIndices[1], amountIndices[2]
	case len(amountIndices) == 2:
		first, second := amountIndices[0], amountIndices[1]
		switch {
		case second-first > 1:
			// A blank column sits between the two amounts, so the second
			// one is the balance, not the credit.
			debitIdx, balanceIdx = first, second
		case first >= 3:
			// Both amounts sit at the credit/balance end of the row, the
			// debit column was blank.
			creditIdx, balanceIdx = first, second
		default:
			debitIdx, creditIdx = first, second
		}
	}

	assigned := func(i int) bool {
		return i == dateIdx || i == debitIdx || i == creditIdx || i == balanceIdx
	}

	detailsIdx := -1
	maxLen := 0
	for i, cell := range cells {
		if assigned(i) {
			continue
		}
		if len(cell) > maxLen && !numericOnly.MatchString(cell) && cell != "" {
			maxLen = len(cell)
			detailsIdx = i
		}
	}
	if detailsIdx == -1 && len(cells) >= 5 {
		for _, i := range []int{4, 1} {
			if i != debitIdx && i != creditIdx && i != balanceIdx && cells[i] != "" {
				detailsIdx = i
				break
			}
		}
	}

	amount := decimal.Zero
	direction := Expense
	found := false

	if debitIdx >= 0 && !emptyAmounts[cells[debitIdx]] {
		if v, ok := parseAmount(cells[debitIdx]); ok && v.Abs().IsPositive() {
			amount = v.Abs()
			direction = Expense
			found = true
		}
	}
	// A populated credit column outranks the debit column when both carry
	// a value.
	if creditIdx >= 0 && !emptyAmounts[cells[creditIdx]] {
		if v, ok := parseAmount(cells[creditIdx]); ok && v.IsPositive() {
			amount = v
			direction = Income
			found = true
		}
	}

	// Neither column carried a value: scan everything else and let the
	// row's wording decide the direction.
	if !found {
		rowText := strings.ToLower(strings.Join(row, " "))
		for i, cell := range cells {
			if i == dateIdx || i == detailsIdx || cell == "" {
				continue
			}
			v, ok := parseAmount(cell)
			if !ok || !v.Abs().IsPositive() {
				continue
			}
			amount = v.Abs()
			direction = Income
			for _, verb := range expenseVerbs {
				if strings.Contains(rowText, verb) {
					direction = Expense
					break
				}
			}
			found = true
			break
		}
	}

	if !found || amount.IsZero() {
		return Candidate{}, false
	}

	date := ""
	if dateIdx >= 0 {
		date = arabic.Normalize(cells[dateIdx])
	}
	if !usableText(date) {
		date = today()
	}

	details := ""
	if detailsIdx >= 0 {
		details = cells[detailsIdx]
	}
	if !usableText(details) {
		for _, cell := range cells {
			if len(cell) > 10 && !numericOnly.MatchString(cell) && cell != date {
				details = cell
				break
			}
		}
	}
	if usableText(details) {
		details = arabic.DeepNormalize(details)
	}
	if !usableText(details) {
		details = PlaceholderDescription
		if bankLabel != "" {
			details += " - " + bankLabel
		}
	}

	return Candidate{
		Date:        date,
		Description: details,
		Amount:      amount,
		Direction:   direction,
	}, true
}
