package insights

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kashf-app/kashf/internal/domain/analysis"
)

// SubcategoryStat aggregates one sub-category's expenses.
type SubcategoryStat struct {
	Amount       decimal.Decimal        `json:"amount"`
	Count        int                    `json:"count"`
	Transactions []analysis.Transaction `json:"transactions"`
}

// MainCategoryStat rolls sub-category stats up to the main category.
type MainCategoryStat struct {
	TotalAmount      decimal.Decimal             `json:"total_amount"`
	TransactionCount int                         `json:"transaction_count"`
	Subcategories    map[string]*SubcategoryStat `json:"subcategories"`
}

// CategoryStatistics builds the two-level rollup of expense buckets:
// amounts and counts per main category, broken down by sub-category.
func CategoryStatistics(buckets []analysis.Bucket) map[string]*MainCategoryStat {
	stats := make(map[string]*MainCategoryStat)
	for _, bucket := range buckets {
		main := bucket.Category.Main
		sub := bucket.Category.Sub
		if sub == "" {
			sub = "غير محدد"
		}

		mainStat, ok := stats[main]
		if !ok {
			mainStat = &MainCategoryStat{Subcategories: make(map[string]*SubcategoryStat)}
			stats[main] = mainStat
		}
		subStat, ok := mainStat.Subcategories[sub]
		if !ok {
			subStat = &SubcategoryStat{}
			mainStat.Subcategories[sub] = subStat
		}

		for _, tx := range bucket.Transactions {
			mainStat.TotalAmount = mainStat.TotalAmount.Add(tx.Amount)
			mainStat.TransactionCount++
			subStat.Amount = subStat.Amount.Add(tx.Amount)
			subStat.Count++
			subStat.Transactions = append(subStat.Transactions, tx)
		}
	}
	return stats
}

// FormatReport renders the rollup as a plain-text report: main categories
// sorted by amount, each with its sub-categories and their share.
func FormatReport(stats map[string]*MainCategoryStat) string {
	mains := make([]string, 0, len(stats))
	for name := range stats {
		mains = append(mains, name)
	}
	sort.Slice(mains, func(i, j int) bool {
		a, b := stats[mains[i]], stats[mains[j]]
		if !a.TotalAmount.Equal(b.TotalAmount) {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
		return mains[i] < mains[j]
	})

	var lines []string
	for _, main := range mains {
		data := stats[main]
		lines = append(lines, "")
		lines = append(lines, main)
		lines = append(lines, arabicNumbers.Sprintf("إجمالي: %.2f ريال (%d عملية)",
			data.TotalAmount.InexactFloat64(), data.TransactionCount))
		lines = append(lines, strings.Repeat("-", 50))

		subs := make([]string, 0, len(data.Subcategories))
		for name := range data.Subcategories {
			subs = append(subs, name)
		}
		sort.Slice(subs, func(i, j int) bool {
			a, b := data.Subcategories[subs[i]], data.Subcategories[subs[j]]
			if !a.Amount.Equal(b.Amount) {
				return a.Amount.GreaterThan(b.Amount)
			}
			return subs[i] < subs[j]
		})

		for _, sub := range subs {
			subData := data.Subcategories[sub]
			percentage := 0.0
			if data.TotalAmount.IsPositive() {
				percentage = subData.Amount.InexactFloat64() / data.TotalAmount.InexactFloat64() * 100
			}
			lines = append(lines, arabicNumbers.Sprintf("  • %s: %.2f ريال (%d عملية) - %.1f%%",
				sub, subData.Amount.InexactFloat64(), subData.Count, percentage))
		}
	}
	return strings.Join(lines, "\n")
}
