// Package insights derives human-readable financial observations from an
// analysis result. Pure computation over totals, buckets, and metrics.
package insights

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kashf-app/kashf/internal/domain/analysis"
)

// Insight is one observation with an estimated monthly saving in riyals.
type Insight struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PotentialSaving float64 `json:"potential_saving"`
}

// Metrics are the summary figures computed over one result. Daily figures
// assume a 30-day statement month.
type Metrics struct {
	AvgDailyExpense   float64 `json:"avg_daily_expense"`
	MaxExpense        float64 `json:"max_expense"`
	MinExpense        float64 `json:"min_expense"`
	AvgIncome         float64 `json:"avg_income"`
	MaxIncome         float64 `json:"max_income"`
	MinIncome         float64 `json:"min_income"`
	TotalTransactions int     `json:"total_transactions"`
}

// ComputeMetrics summarizes the result's transactions.
func ComputeMetrics(res *analysis.Result) Metrics {
	var m Metrics
	m.TotalTransactions = len(res.Txns)

	var expenses, incomes []float64
	for _, bucket := range res.Expenses.Buckets() {
		for _, tx := range bucket.Transactions {
			expenses = append(expenses, tx.Amount.InexactFloat64())
		}
	}
	for _, tx := range res.Income {
		incomes = append(incomes, tx.Amount.InexactFloat64())
	}

	if len(expenses) > 0 {
		m.AvgDailyExpense = sum(expenses) / 30
		m.MaxExpense = maxOf(expenses)
		m.MinExpense = minOf(expenses)
	}
	if len(incomes) > 0 {
		m.AvgIncome = sum(incomes) / float64(len(incomes))
		m.MaxIncome = maxOf(incomes)
		m.MinIncome = minOf(incomes)
	}
	return m
}

// maxInsights bounds what is shown to the user.
const maxInsights = 5

// reducibleCategories mark discretionary spending a user can realistically
// cut back.
var reducibleCategories = []string{"مطاعم", "كافيهات", "ترفيه", "تسوق", "ملابس", "اشتراكات"}

var emojiStrip = regexp.MustCompile(`[^\p{L}\p{N}_\s\-]`)

func cleanLabel(label string) string {
	return strings.TrimSpace(emojiStrip.ReplaceAllString(label, ""))
}

var arabicNumbers = message.NewPrinter(language.English)

// Generate produces the insight list: savings-rate banding, category
// concentration, reducible categories, daily-spend pressure, transaction
// flooding, transfer concentration, a low-savings nudge, and repeated
// coffee purchases. Sorted by potential saving, top five kept.
func Generate(res *analysis.Result, metrics Metrics) []Insight {
	var out []Insight

	totalIncome := res.Totals.Income.InexactFloat64()
	totalExpense := res.Totals.Expense.InexactFloat64()
	netBalance := totalIncome - totalExpense

	savingsRate := 0.0
	if totalIncome > 0 {
		savingsRate = netBalance / totalIncome * 100
	}

	out = append(out, savingsBand(savingsRate, netBalance, totalIncome, totalExpense))
	out = append(out, categoryConcentration(res, totalExpense)...)

	if metrics.AvgDailyExpense > 0 && totalIncome > 0 {
		dailyIncome := totalIncome / 30
		dailyRatio := metrics.AvgDailyExpense / dailyIncome * 100
		if dailyRatio > 90 {
			out = append(out, Insight{
				Title: "📅 إنفاقك اليومي مرتفع جداً",
				Description: arabicNumbers.Sprintf("تنفق %.0f ريال يومياً (%.0f%% من دخلك اليومي) - حدد ميزانية يومية واضحة",
					metrics.AvgDailyExpense, dailyRatio),
				PotentialSaving: (metrics.AvgDailyExpense - dailyIncome*0.7) * 30,
			})
		}
	}

	expenseCount := res.Totals.ExpenseCount
	if expenseCount > 100 && totalExpense > 0 {
		avgTransaction := totalExpense / float64(expenseCount)
		out = append(out, Insight{
			Title: "🔄 عدد عمليات مرتفع",
			Description: arabicNumbers.Sprintf("%d عملية شهرياً (متوسط %.0f ريال) - حاول تجميع المشتريات",
				expenseCount, avgTransaction),
		})
	}

	out = append(out, transferConcentration(res, totalExpense)...)

	if savingsRate < 10 && totalIncome > 0 {
		out = append(out, Insight{
			Title: "💰 ابدأ الادخار التلقائي",
			Description: arabicNumbers.Sprintf("خصص %.0f ريال شهرياً (10%% من دخلك) للادخار واجعله تحويل تلقائي",
				totalIncome*0.1),
		})
	}

	out = append(out, coffeeHabit(res)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PotentialSaving > out[j].PotentialSaving
	})
	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func savingsBand(savingsRate, netBalance, totalIncome, totalExpense float64) Insight {
	if netBalance > 0 {
		switch {
		case savingsRate >= 20:
			return Insight{
				Title:       "💰 أداء مالي ممتاز",
				Description: arabicNumbers.Sprintf("معدل الادخار %.1f%% من دخلك - أنت في المسار الصحيح", savingsRate),
			}
		case savingsRate >= 10:
			return Insight{
				Title:           "👍 أداء مالي جيد",
				Description:     arabicNumbers.Sprintf("تدخر %.1f%% من دخلك، حاول الوصول لـ 20%%", savingsRate),
				PotentialSaving: totalIncome*0.2 - (totalIncome - totalExpense),
			}
		default:
			return Insight{
				Title:           "⚠️ ادخار منخفض",
				Description:     arabicNumbers.Sprintf("تدخر فقط %.1f%% من دخلك، الهدف الأمثل 20%%", savingsRate),
				PotentialSaving: totalIncome*0.2 - (totalIncome - totalExpense),
			}
		}
	}
	deficit := -netBalance
	return Insight{
		Title:           "🚨 تحذير: مصاريفك تتجاوز دخلك",
		Description:     arabicNumbers.Sprintf("العجز الشهري %.0f ريال - يجب تقليل المصاريف فوراً", deficit),
		PotentialSaving: deficit,
	}
}

func categoryConcentration(res *analysis.Result, totalExpense float64) []Insight {
	buckets := res.Expenses.Buckets()
	if len(buckets) == 0 || totalExpense <= 0 {
		return nil
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Total.GreaterThan(buckets[j].Total)
	})

	var out []Insight
	top := buckets[0]
	topAmount := top.Total.InexactFloat64()
	topPercentage := topAmount / totalExpense * 100
	if topPercentage > 30 {
		label := cleanLabel(top.Category.Label())
		out = append(out, Insight{
			Title: arabicNumbers.Sprintf("📊 %s يستنزف ميزانيتك", label),
			Description: arabicNumbers.Sprintf("هذه الفئة تشكل %.0f%% من مصاريفك (%.0f ريال) - راجع ضرورة كل عملية",
				topPercentage, topAmount),
			PotentialSaving: topAmount * 0.2,
		})
	}

	limit := len(buckets)
	if limit > 4 {
		limit = 4
	}
	for _, bucket := range buckets[1:limit] {
		amount := bucket.Total.InexactFloat64()
		percentage := amount / totalExpense * 100
		label := cleanLabel(bucket.Category.Label())
		if percentage <= 15 || !isReducible(label) {
			continue
		}
		out = append(out, Insight{
			Title: arabicNumbers.Sprintf("💡 فرصة توفير في %s", label),
			Description: arabicNumbers.Sprintf("تنفق %.0f%% (%.0f ريال) - جرب تقليلها بـ 30%%",
				percentage, amount),
			PotentialSaving: amount * 0.3,
		})
		break
	}
	return out
}

func isReducible(label string) bool {
	for _, cat := range reducibleCategories {
		if strings.Contains(label, cat) {
			return true
		}
	}
	return false
}

func transferConcentration(res *analysis.Result, totalExpense float64) []Insight {
	if totalExpense <= 0 {
		return nil
	}
	for _, bucket := range res.Expenses.Buckets() {
		if !strings.Contains(bucket.Category.Label(), "تحويلات") {
			continue
		}
		amount := bucket.Total.InexactFloat64()
		percentage := amount / totalExpense * 100
		if percentage > 40 {
			return []Insight{{
				Title: "🔄 التحويلات المالية مرتفعة",
				Description: arabicNumbers.Sprintf("تشكل %.0f%% من مصاريفك - تأكد من ضرورة كل تحويل",
					percentage),
				PotentialSaving: amount * 0.1,
			}}
		}
	}
	return nil
}

func coffeeHabit(res *analysis.Result) []Insight {
	for _, bucket := range res.Expenses.Buckets() {
		if len(bucket.Transactions) < 10 {
			continue
		}
		label := cleanLabel(bucket.Category.Label())
		if !strings.Contains(label, "قهوة") && !strings.Contains(label, "كافي") {
			continue
		}
		dailyCoffee := float64(len(bucket.Transactions)) / 30
		if dailyCoffee <= 0.5 {
			continue
		}
		monthlyCost := bucket.Total.InexactFloat64()
		return []Insight{{
			Title: "☕ عادة القهوة اليومية",
			Description: arabicNumbers.Sprintf("تشرب قهوة %.1f مرة يومياً بتكلفة %.0f ريال شهرياً - جرب تقليلها للنصف",
				dailyCoffee, monthlyCost),
			PotentialSaving: monthlyCost * 0.5,
		}}
	}
	return nil
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func maxOf(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

func minOf(values []float64) float64 {
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
