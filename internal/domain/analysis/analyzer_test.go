package analysis

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashf-app/kashf/internal/domain/categorization"
	"github.com/kashf-app/kashf/internal/domain/extract"
	"github.com/kashf-app/kashf/internal/domain/pdfio"
)

func catOf(main, sub string) categorization.Category {
	return categorization.Category{Main: main, Sub: sub}
}

type stubDocument struct {
	pages  []string
	tables map[int][][][]string
}

func (d *stubDocument) NumPages() int { return len(d.pages) }

func (d *stubDocument) PageText(page int) (string, error) {
	return d.pages[page-1], nil
}

func (d *stubDocument) PageTables(page int) ([][][]string, error) {
	if tables, ok := d.tables[page]; ok {
		return tables, nil
	}
	return nil, pdfio.ErrTablesUnavailable
}

func (d *stubDocument) Close() error { return nil }

func TestAnalyzeDocumentTables(t *testing.T) {
	doc := &stubDocument{
		pages: []string{"مصرف الراجحي - تفاصيل الكشف"},
		tables: map[int][][][]string{
			1: {{
				{"التاريخ", "تفاصيل العملية", "مدين", "دائن", "الرصيد"},
				{"01/05/2024", "إيداع راتب", "", "8500.00", "18500.00"},
				{"02/05/2024", "شراء بقالة", "230.50", "", "18269.50"},
				{"03/05/2024", "استرداد رسوم", "", "50.00", "18319.50"},
				{"؟؟؟", "", ""},
			}},
		},
	}

	a := NewAnalyzer(nil, nil)
	res, err := a.AnalyzeDocument(context.Background(), doc, "may.pdf")
	require.NoError(t, err)

	assert.Equal(t, "الراجحي", res.Bank)
	assert.Equal(t, 5, res.Counters.RowsScanned)
	assert.Equal(t, 2, res.Counters.Accepted, "fee refund and garbage row are not accepted")
	assert.Equal(t, 2, res.Counters.Skipped)

	t.Run("totals", func(t *testing.T) {
		assert.True(t, res.Totals.Income.Equal(decimal.RequireFromString("8500.00")))
		assert.True(t, res.Totals.Expense.Equal(decimal.RequireFromString("230.50")))
		assert.True(t, res.Totals.Net.Equal(decimal.RequireFromString("8269.50")))
	})

	t.Run("count invariant", func(t *testing.T) {
		assert.Equal(t, res.Counters.Accepted, res.Totals.IncomeCount+res.Totals.ExpenseCount)
		assert.LessOrEqual(t, res.Counters.Skipped+res.Counters.Accepted, res.Counters.RowsScanned)
	})

	t.Run("bucketed expense sum matches total expense", func(t *testing.T) {
		assert.True(t, res.Expenses.Total().Equal(res.Totals.Expense))
	})

	t.Run("transactions carry source and classification", func(t *testing.T) {
		require.Len(t, res.Txns, 2)
		for _, tx := range res.Txns {
			assert.Equal(t, "may.pdf", tx.SourceFile)
			assert.NotEmpty(t, tx.Category.Main)
		}
	})
}

func TestAnalyzeDocumentTextFallback(t *testing.T) {
	doc := &stubDocument{
		pages: []string{
			"alrajhibank.com\n2024/05/01 شراء عبر نقاط البيع\n1,250.00 SAR مطعم البيك\n2024/05/02 حوالة واردة\n3,000.00 SAR تحويل من صديق",
		},
	}

	a := NewAnalyzer(nil, nil)
	res, err := a.AnalyzeDocument(context.Background(), doc, "text.pdf")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Counters.Accepted)
	assert.Equal(t, 1, res.Totals.IncomeCount)
	assert.Equal(t, 1, res.Totals.ExpenseCount)
	assert.True(t, res.Totals.Income.Equal(decimal.RequireFromString("3000.00")))
}

func TestExpenseBucketsOrderAndSums(t *testing.T) {
	buckets := NewExpenseBuckets()
	tx := func(main, sub, amount string) Transaction {
		return Transaction{
			Amount:    decimal.RequireFromString(amount),
			Direction: extract.Expense,
			Category:  catOf(main, sub),
		}
	}
	buckets.Add(tx("🍽️ مطاعم ومقاهي", "مقاهي", "40.00"))
	buckets.Add(tx("🛒 سوبرماركت وبقالة", "تموينات وبقالة", "120.00"))
	buckets.Add(tx("🍽️ مطاعم ومقاهي", "مقاهي", "35.00"))

	got := buckets.Buckets()
	require.Len(t, got, 2)
	assert.Equal(t, "مقاهي", got[0].Category.Sub, "insertion order preserved")
	assert.True(t, got[0].Total.Equal(decimal.RequireFromString("75.00")))
	assert.True(t, buckets.Total().Equal(decimal.RequireFromString("195.00")))
}

func TestMergeResults(t *testing.T) {
	t.Run("failed documents are skipped", func(t *testing.T) {
		good := newResult("الأهلي")
		good.SourceFiles = []string{"a.pdf"}
		good.accept(Transaction{
			Amount:    decimal.RequireFromString("100.00"),
			Direction: extract.Expense,
			Category:  catOf("🍽️ مطاعم ومقاهي", "مقاهي"),
		})

		merged, err := mergeResults([]*Result{nil, good, nil})
		require.NoError(t, err)
		assert.Equal(t, 1, merged.Counters.Accepted)
	})

	t.Run("two documents sum", func(t *testing.T) {
		first := newResult("الأهلي")
		first.SourceFiles = []string{"a.pdf"}
		first.accept(Transaction{
			Amount:     decimal.RequireFromString("100.00"),
			Direction:  extract.Expense,
			Category:   catOf("🍽️ مطاعم ومقاهي", "مقاهي"),
			SourceFile: "a.pdf",
		})
		second := newResult("الراجحي")
		second.SourceFiles = []string{"b.pdf"}
		second.accept(Transaction{
			Amount:     decimal.RequireFromString("900.00"),
			Direction:  extract.Income,
			Category:   catOf("🏦 معاملات بنكية", "إيداع"),
			SourceFile: "b.pdf",
		})

		merged, err := mergeResults([]*Result{first, second})
		require.NoError(t, err)
		assert.Equal(t, "متعدد", merged.Bank)
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, merged.SourceFiles)
		assert.Equal(t, 2, merged.Counters.Accepted)
		assert.True(t, merged.Totals.Net.Equal(decimal.RequireFromString("800.00")))
	})

	t.Run("nothing analyzable", func(t *testing.T) {
		_, err := mergeResults([]*Result{nil, nil})
		assert.ErrorIs(t, err, ErrNoDocuments)
	})
}

func TestAnalyzeManyUnreadableFiles(t *testing.T) {
	a := NewAnalyzer(nil, nil)
	_, err := a.AnalyzeMany(context.Background(), []string{"/does/not/exist.pdf"}, 2)
	assert.ErrorIs(t, err, ErrNoDocuments)
}
