package insights

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashf-app/kashf/internal/domain/analysis"
	"github.com/kashf-app/kashf/internal/domain/categorization"
	"github.com/kashf-app/kashf/internal/domain/extract"
)

func newTestResult() *analysis.Result {
	return &analysis.Result{Expenses: analysis.NewExpenseBuckets()}
}

func addExpense(res *analysis.Result, main, sub, amount string) {
	tx := analysis.Transaction{
		Amount:    decimal.RequireFromString(amount),
		Direction: extract.Expense,
		Category:  categorization.Category{Main: main, Sub: sub},
	}
	res.Txns = append(res.Txns, tx)
	res.Expenses.Add(tx)
	res.Totals.Expense = res.Totals.Expense.Add(tx.Amount)
	res.Totals.ExpenseCount++
	res.Totals.Net = res.Totals.Income.Sub(res.Totals.Expense)
}

func addIncome(res *analysis.Result, amount string) {
	tx := analysis.Transaction{
		Amount:    decimal.RequireFromString(amount),
		Direction: extract.Income,
		Category:  categorization.Category{Main: "🏦 معاملات بنكية", Sub: "إيداع"},
	}
	res.Txns = append(res.Txns, tx)
	res.Income = append(res.Income, tx)
	res.Totals.Income = res.Totals.Income.Add(tx.Amount)
	res.Totals.IncomeCount++
	res.Totals.Net = res.Totals.Income.Sub(res.Totals.Expense)
}

func titles(insights []Insight) []string {
	out := make([]string, len(insights))
	for i, ins := range insights {
		out[i] = ins.Title
	}
	return out
}

func TestGenerateSavingsBands(t *testing.T) {
	t.Run("twenty percent or more is excellent", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "10000")
		addExpense(res, "🏠 سكن وفواتير", "إيجار", "7000")

		got := Generate(res, ComputeMetrics(res))
		require.NotEmpty(t, got)
		assert.Contains(t, titles(got), "💰 أداء مالي ممتاز")
	})

	t.Run("between ten and twenty is good with a saving target", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "10000")
		res.Totals.Expense = decimal.RequireFromString("8500")
		res.Totals.Net = decimal.RequireFromString("1500")

		got := Generate(res, Metrics{})
		require.NotEmpty(t, got)
		assert.Equal(t, "👍 أداء مالي جيد", got[0].Title)
		assert.InDelta(t, 500, got[0].PotentialSaving, 0.01)
	})

	t.Run("deficit warns and leads the list", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "5000")
		res.Totals.Expense = decimal.RequireFromString("6000")
		res.Totals.Net = decimal.RequireFromString("-1000")

		got := Generate(res, Metrics{})
		require.NotEmpty(t, got)
		assert.Equal(t, "🚨 تحذير: مصاريفك تتجاوز دخلك", got[0].Title)
		assert.InDelta(t, 1000, got[0].PotentialSaving, 0.01)
	})
}

func TestGenerateCategoryRules(t *testing.T) {
	t.Run("dominant category flagged with coffee habit", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "10000")
		for i := 0; i < 16; i++ {
			addExpense(res, "☕ قهوة", "كافيه", "250")
		}

		got := Generate(res, ComputeMetrics(res))
		names := titles(got)
		assert.Contains(t, names, "☕ عادة القهوة اليومية")

		for _, ins := range got {
			if strings.Contains(ins.Title, "يستنزف ميزانيتك") {
				assert.InDelta(t, 800, ins.PotentialSaving, 0.01, "twenty percent of the category")
			}
			if ins.Title == "☕ عادة القهوة اليومية" {
				assert.InDelta(t, 2000, ins.PotentialSaving, 0.01, "half the monthly coffee cost")
			}
		}
	})

	t.Run("reducible category and transfer concentration", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "20000")
		addExpense(res, "🔄 تحويلات مالية", "تحويل داخلي/خارجي", "5000")
		addExpense(res, "🏠 سكن وفواتير", "مرافق", "3000")
		addExpense(res, "🛍️ تسوق وملابس", "ملابس وأزياء", "2000")

		got := Generate(res, Metrics{})
		names := titles(got)
		assert.Contains(t, names, "🔄 التحويلات المالية مرتفعة")

		foundReducible := false
		for _, ins := range got {
			if strings.Contains(ins.Title, "فرصة توفير") {
				foundReducible = true
				assert.InDelta(t, 600, ins.PotentialSaving, 0.01)
			}
		}
		assert.True(t, foundReducible)
	})
}

func TestGenerateDailyAndFlooding(t *testing.T) {
	t.Run("daily spending pressure", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "3000")
		addExpense(res, "🏠 سكن وفواتير", "إيجار", "2900")

		got := Generate(res, ComputeMetrics(res))
		found := false
		for _, ins := range got {
			if ins.Title == "📅 إنفاقك اليومي مرتفع جداً" {
				found = true
				assert.InDelta(t, 800, ins.PotentialSaving, 0.1)
			}
		}
		assert.True(t, found)
	})

	t.Run("transaction flooding", func(t *testing.T) {
		res := newTestResult()
		addIncome(res, "10000")
		for i := 0; i < 120; i++ {
			addExpense(res, "🏠 سكن وفواتير", "مرافق", "10")
		}

		got := Generate(res, ComputeMetrics(res))
		assert.Contains(t, titles(got), "🔄 عدد عمليات مرتفع")
	})
}

func TestGenerateTopFiveSorted(t *testing.T) {
	res := newTestResult()
	addIncome(res, "3000")
	addExpense(res, "🔄 تحويلات مالية", "تحويل داخلي/خارجي", "1450")
	addExpense(res, "🏠 سكن وفواتير", "إيجار", "850")
	for i := 0; i < 120; i++ {
		addExpense(res, "🛍️ تسوق وملابس", "ملابس وأزياء", "5")
	}

	got := Generate(res, ComputeMetrics(res))
	assert.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].PotentialSaving, got[i].PotentialSaving)
	}
}

func TestComputeMetrics(t *testing.T) {
	res := newTestResult()
	addIncome(res, "1000")
	addIncome(res, "3000")
	addExpense(res, "🏠 سكن وفواتير", "إيجار", "100")
	addExpense(res, "🏠 سكن وفواتير", "مرافق", "50")

	m := ComputeMetrics(res)
	assert.InDelta(t, 5, m.AvgDailyExpense, 0.001)
	assert.InDelta(t, 100, m.MaxExpense, 0.001)
	assert.InDelta(t, 50, m.MinExpense, 0.001)
	assert.InDelta(t, 2000, m.AvgIncome, 0.001)
	assert.InDelta(t, 3000, m.MaxIncome, 0.001)
	assert.InDelta(t, 1000, m.MinIncome, 0.001)
	assert.Equal(t, 4, m.TotalTransactions)
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(newTestResult())
	assert.Zero(t, m.AvgDailyExpense)
	assert.Zero(t, m.AvgIncome)
	assert.Zero(t, m.TotalTransactions)
}

func TestCategoryStatisticsAndReport(t *testing.T) {
	res := newTestResult()
	addExpense(res, "🍽️ مطاعم ومقاهي", "مقاهي", "40")
	addExpense(res, "🍽️ مطاعم ومقاهي", "مقاهي", "35")
	addExpense(res, "🍽️ مطاعم ومقاهي", "وجبات سريعة", "25")
	addExpense(res, "🏠 سكن وفواتير", "إيجار", "2000")

	stats := CategoryStatistics(res.Expenses.Buckets())
	require.Contains(t, stats, "🍽️ مطاعم ومقاهي")

	food := stats["🍽️ مطاعم ومقاهي"]
	assert.True(t, food.TotalAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, 3, food.TransactionCount)
	assert.True(t, food.Subcategories["مقاهي"].Amount.Equal(decimal.RequireFromString("75")))
	assert.Equal(t, 2, food.Subcategories["مقاهي"].Count)

	report := FormatReport(stats)
	lines := strings.Split(report, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, report, "🏠 سكن وفواتير")
	assert.Contains(t, report, "75.00 ريال")
	// Housing spends more, so it must be reported before dining.
	assert.Less(t, strings.Index(report, "🏠 سكن وفواتير"), strings.Index(report, "🍽️ مطاعم ومقاهي"))
}
