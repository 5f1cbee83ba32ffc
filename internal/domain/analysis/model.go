// Package analysis drives extraction across whole statements and
// aggregates the results: totals, expense buckets per category, and the
// counters that tell how much of the document was actually readable.
package analysis

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kashf-app/kashf/internal/domain/categorization"
	"github.com/kashf-app/kashf/internal/domain/extract"
)

// Transaction is one accepted statement row, classified and tagged with
// its origin.
type Transaction struct {
	ID            uuid.UUID               `json:"id"`
	Date          string                  `json:"date"`
	Description   string                  `json:"description"`
	Amount        decimal.Decimal         `json:"amount"`
	Direction     extract.Direction       `json:"direction"`
	Category      categorization.Category `json:"category"`
	PaymentMethod string                  `json:"payment_method,omitempty"`
	SourceFile    string                  `json:"source_file,omitempty"`
}

// Totals are the running sums over accepted transactions. Amounts are
// decimal-exact; Net is income minus expense.
type Totals struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Net          decimal.Decimal `json:"net"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
}

func (t *Totals) add(tx Transaction) {
	if tx.Direction == extract.Income {
		t.Income = t.Income.Add(tx.Amount)
		t.IncomeCount++
	} else {
		t.Expense = t.Expense.Add(tx.Amount)
		t.ExpenseCount++
	}
	t.Net = t.Income.Sub(t.Expense)
}

// Bucket groups the expense transactions of one category.
type Bucket struct {
	Category     categorization.Category `json:"category"`
	Total        decimal.Decimal         `json:"total"`
	Transactions []Transaction           `json:"transactions"`
}

// ExpenseBuckets maps categories to their expense transactions while
// preserving first-insertion order, so reports stay stable run to run.
type ExpenseBuckets struct {
	order   []string
	byLabel map[string]*Bucket
}

func NewExpenseBuckets() *ExpenseBuckets {
	return &ExpenseBuckets{byLabel: make(map[string]*Bucket)}
}

func (b *ExpenseBuckets) Add(tx Transaction) {
	label := tx.Category.Label()
	bucket, ok := b.byLabel[label]
	if !ok {
		bucket = &Bucket{Category: tx.Category}
		b.byLabel[label] = bucket
		b.order = append(b.order, label)
	}
	bucket.Total = bucket.Total.Add(tx.Amount)
	bucket.Transactions = append(bucket.Transactions, tx)
}

// Buckets returns the buckets in insertion order.
func (b *ExpenseBuckets) Buckets() []Bucket {
	out := make([]Bucket, 0, len(b.order))
	for _, label := range b.order {
		out = append(out, *b.byLabel[label])
	}
	return out
}

// Total sums all bucketed expenses.
func (b *ExpenseBuckets) Total() decimal.Decimal {
	total := decimal.Zero
	for _, label := range b.order {
		total = total.Add(b.byLabel[label].Total)
	}
	return total
}

func (b *ExpenseBuckets) Len() int { return len(b.order) }

func (b *ExpenseBuckets) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Buckets())
}

// Counters report how much of the scanned material became transactions.
type Counters struct {
	RowsScanned int `json:"rows_scanned"`
	Skipped     int `json:"skipped"`
	Accepted    int `json:"accepted"`
}

// Result is the outcome of analyzing one statement or a batch. Immutable
// once returned; callers own it for serialization.
type Result struct {
	ID          uuid.UUID       `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Bank        string          `json:"bank"`
	SourceFiles []string        `json:"source_files,omitempty"`
	Txns        []Transaction   `json:"transactions"`
	Income      []Transaction   `json:"income"`
	Totals      Totals          `json:"totals"`
	Expenses    *ExpenseBuckets `json:"expense_buckets"`
	Counters    Counters        `json:"counters"`
}

func newResult(bankLabel string) *Result {
	return &Result{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Bank:        bankLabel,
		Expenses:    NewExpenseBuckets(),
	}
}

func (r *Result) accept(tx Transaction) {
	r.Txns = append(r.Txns, tx)
	r.Totals.add(tx)
	if tx.Direction == extract.Income {
		r.Income = append(r.Income, tx)
	} else {
		r.Expenses.Add(tx)
	}
	r.Counters.Accepted++
}
