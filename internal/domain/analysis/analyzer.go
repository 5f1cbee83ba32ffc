package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kashf-app/kashf/internal/domain/bank"
	"github.com/kashf-app/kashf/internal/domain/categorization"
	"github.com/kashf-app/kashf/internal/domain/extract"
	"github.com/kashf-app/kashf/internal/domain/pdfio"
)

// skipRatioWarn is the skipped-to-scanned ratio above which extraction
// fidelity is considered suspect for a document.
const skipRatioWarn = 0.30

// incomeNoiseWords mark credits that are really fee or tax reversals in
// disguise. Such rows are dropped from income and counted as skipped.
var incomeNoiseWords = []string{"ضريبة", "رسوم", "vat", "fee", "charge"}

// Analyzer turns one statement PDF into a Result: detect the bank once,
// walk the pages tables-first with a free-text fallback, extract, classify
// and aggregate.
type Analyzer struct {
	detector   *bank.Detector
	classifier *categorization.Classifier
	logger     *slog.Logger
}

func NewAnalyzer(classifier *categorization.Classifier, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if classifier == nil {
		classifier = categorization.NewClassifier(nil, nil, nil, categorization.DefaultScoreConfig(), logger)
	}
	return &Analyzer{
		detector:   bank.NewDetector(logger),
		classifier: classifier,
		logger:     logger,
	}
}

// Analyze processes a single statement file.
func (a *Analyzer) Analyze(ctx context.Context, path string) (*Result, error) {
	doc, err := pdfio.Open(path, a.logger)
	if err != nil {
		return nil, fmt.Errorf("open statement %s: %w", path, err)
	}
	defer doc.Close()

	return a.AnalyzeDocument(ctx, doc, path)
}

// AnalyzeDocument runs the pipeline over an already-open document. name
// tags the result's source files.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, doc pdfio.Document, name string) (*Result, error) {
	bankKind := a.detector.Detect(doc)
	result := newResult(bankKind.String())
	result.SourceFiles = []string{name}

	for page := 1; page <= doc.NumPages(); page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a.analyzePage(doc, page, bankKind, name, result)
	}

	if result.Counters.RowsScanned > 0 {
		ratio := float64(result.Counters.Skipped) / float64(result.Counters.RowsScanned)
		if ratio > skipRatioWarn {
			a.logger.Warn("high skip ratio, extraction fidelity suspect",
				"file", name,
				"skipped", result.Counters.Skipped,
				"scanned", result.Counters.RowsScanned)
		}
	}
	return result, nil
}

func (a *Analyzer) analyzePage(doc pdfio.Document, page int, bankKind bank.Type, source string, result *Result) {
	tables, err := doc.PageTables(page)
	if err != nil && !errors.Is(err, pdfio.ErrTablesUnavailable) {
		a.logger.Warn("page tables unreadable", "page", page, "error", err)
	}

	if err == nil && len(tables) > 0 {
		for _, table := range tables {
			for i, row := range table {
				if i == 0 || extract.IsHeaderRow(row) {
					result.Counters.RowsScanned++
					continue
				}
				result.Counters.RowsScanned++
				candidate, ok := a.extractRow(row, bankKind)
				if !ok {
					result.Counters.Skipped++
					continue
				}
				a.acceptCandidate(candidate, bankKind, source, result)
			}
		}
		return
	}

	text, err := doc.PageText(page)
	if err != nil {
		a.logger.Warn("page text unreadable", "page", page, "error", err)
		return
	}
	for _, candidate := range extract.ScanText(text) {
		result.Counters.RowsScanned++
		a.acceptCandidate(candidate, bankKind, source, result)
	}
}

// extractRow picks the extraction strategy for the bank: column inference
// for the Rajhi five-column layout, the stable three-column layout for
// everything else, including undetected banks.
func (a *Analyzer) extractRow(row []string, bankKind bank.Type) (extract.Candidate, bool) {
	if bankKind == bank.Rajhi {
		return extract.InferColumns(row, bankKind.String())
	}
	return extract.FixedPosition(row)
}

func (a *Analyzer) acceptCandidate(candidate extract.Candidate, bankKind bank.Type, source string, result *Result) {
	if candidate.Direction == extract.Income && isDisguisedFee(candidate.Description) {
		result.Counters.Skipped++
		return
	}

	tx := Transaction{
		ID:            uuid.New(),
		Date:          candidate.Date,
		Description:   candidate.Description,
		Amount:        candidate.Amount,
		Direction:     candidate.Direction,
		Category:      a.classifier.Classify(candidate.Description, bankKind),
		PaymentMethod: categorization.ExtractPaymentMethod(candidate.Description),
		SourceFile:    source,
	}
	result.accept(tx)
}

func isDisguisedFee(description string) bool {
	lower := strings.ToLower(description)
	for _, word := range incomeNoiseWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
