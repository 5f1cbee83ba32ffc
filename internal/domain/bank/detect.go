// Package bank classifies which bank produced a statement PDF. The layout
// family drives both row extraction and a handful of classifier overrides.
package bank

import (
	"log/slog"
	"strings"

	"github.com/kashf-app/kashf/internal/domain/pdfio"
)

// Type identifies the statement layout family.
type Type int

const (
	Unknown Type = iota
	Ahli
	Rajhi
)

func (t Type) String() string {
	switch t {
	case Ahli:
		return "الأهلي"
	case Rajhi:
		return "الراجحي"
	default:
		return "غير محدد"
	}
}

// rajhiTokens identify Al Rajhi statements. Checked before the Ahli list;
// first match wins.
var rajhiTokens = []string{
	"alrajhibank.com", "alrajhibank.com.sa",
	"alrajhi bank", "مصرف الراجحي",
	"920 003 344",
	"الراجحي", "alrajhi", "al rajhi", "al-rajhi",
	"al rajhi bank", "الراجحي المصرفية",
	"alrajhi banking", "مصرف الراجحي المصرفية",
	"al rajhi banking", "شركة الراجحي المصرفية",
	"rajhi", "الراجحى", "al-rajhi bank",
	"مصرف الراجحى",
	"rjhi", "sarb", "الراجحي للاستثمار",
	"al rajhi capital", "الراجحي كابيتال",
}

var ahliTokens = []string{
	"الأهلي", "الاهلي", "ahli", "al ahli", "البنك الأهلي",
	"البنك الاهلي", "national bank", "snb", "الأهلي السعودي",
	"البنك الأهلي السعودي", "saudi national bank",
	"البنك الاهلي التجاري", "ncb", "الاهلي التجاري",
}

var rajhiHeaderWords = []string{"تاريخ", "تفاصيل", "مدين", "دائن", "رصيد"}

// Detector inspects the first pages of a document.
type Detector struct {
	logger *slog.Logger
}

func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{logger: logger}
}

// Detect decides the layout family from the first 3 pages. Detection is
// read-only and never fatal: pages that fail to read are skipped, and an
// inconclusive document comes back Unknown (downstream extraction then
// treats it like the Ahli layout).
func (d *Detector) Detect(doc pdfio.Document) Type {
	pages := doc.NumPages()
	if pages > 3 {
		pages = 3
	}

	var combined strings.Builder
	for i := 1; i <= pages; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			d.logger.Warn("bank detection could not read page",
				slog.Int("page", i),
				slog.Any("error", err),
			)
			continue
		}
		combined.WriteString(text)
		combined.WriteString(" ")
	}

	text := combined.String()
	lower := strings.ToLower(text)

	for _, token := range rajhiTokens {
		if strings.Contains(lower, token) {
			d.logger.Info("bank detected by token", slog.String("bank", Rajhi.String()), slog.String("token", token))
			return Rajhi
		}
	}
	for _, token := range ahliTokens {
		if strings.Contains(lower, token) {
			d.logger.Info("bank detected by token", slog.String("bank", Ahli.String()), slog.String("token", token))
			return Ahli
		}
	}

	// Bilingual statement header is specific to Rajhi exports.
	if strings.Contains(lower, "statement details") && strings.Contains(text, "تفاصيل الكشف") {
		d.logger.Info("bank detected by bilingual statement header", slog.String("bank", Rajhi.String()))
		return Rajhi
	}

	for i := 1; i <= pages; i++ {
		tables, err := doc.PageTables(i)
		if err != nil {
			break
		}
		for _, table := range tables {
			if len(table) == 0 {
				continue
			}
			if t, ok := detectFromHeader(table[0]); ok {
				d.logger.Info("bank detected by table header", slog.String("bank", t.String()))
				return t
			}
		}
	}

	d.logger.Warn("bank type not recognized")
	return Unknown
}

func detectFromHeader(headerRow []string) (Type, bool) {
	header := strings.ToLower(strings.Join(headerRow, " "))

	allPresent := true
	for _, word := range rajhiHeaderWords {
		if !strings.Contains(header, word) {
			allPresent = false
			break
		}
	}
	if allPresent {
		return Rajhi, true
	}

	if strings.Contains(header, "transaction") && strings.Contains(header, "description") {
		return Ahli, true
	}
	return Unknown, false
}
