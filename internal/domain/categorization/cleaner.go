package categorization

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// letterUnifier folds Arabic letters that merchants spell interchangeably,
// so keyword matching sees one canonical form.
var letterUnifier = strings.NewReplacer(
	"أ", "ا", "إ", "ا", "آ", "ا",
	"ة", "ه",
	"ى", "ي",
	"ؤ", "و",
	"ئ", "ي",
)

var indicDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// NormalizeForMatch canonicalizes text for keyword comparison: NFKC
// folding, control and direction marks stripped, Arabic-Indic digits
// westernized, and similar Arabic letters unified.
func NormalizeForMatch(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFKC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsControl(r) || unicode.In(r, unicode.Cf) {
			continue
		}
		b.WriteRune(r)
	}
	text = indicDigits.Replace(b.String())
	return letterUnifier.Replace(text)
}

// paymentMethodTokens are stripped from descriptions before matching; they
// say how a purchase was paid, not where.
var paymentMethodTokens = []string{
	"mada pay", "مدى باي", "mada", "مدى", "مدي", "visa", "فيزا", "ڤيزا",
	"mastercard", "ماستركارد", "ماستر كارد", "master card",
	"apple pay", "apple cash", "ابل باي", "ابل كاش",
	"google pay", "جوجل باي", "google wallet", "جوجل محفظة",
	"samsung pay", "سامسونج باي", "samsung wallet",
	"stc pay", "stcpay", "اس تي سي باي", "stc wallet",
	"urpay", "يور باي", "اور باي",
	"paypal", "بايبال", "باي بال",
	"tabby", "تابي", "tamara", "تمارا", "tammara",
	"digital channel", "pos", "atm", "online", "contactless",
	"عدم اللمس", "بدون لمس", "tap", "تاب", "wave", "ويف",
	"chip", "تشيب", "شريحة", "magnetic", "مغناطيسي",
	"swipe", "سوايب", "magnetic stripe", "الشريط المغناطيسي",
}

// ignoreTokens are administrative noise: tax boilerplate, city and country
// codes, payment verbs, and technical identifiers.
var ignoreTokens = []string{
	"vat", "chrg", "charges", "fee", "tax", "fees",
	"رسوم", "ضريبة", "ضرائب", "عمولة", "رسم",
	"city", "jeddah", "jed", "riyadh", "ryd", "mecca", "makkah",
	"dammam", "dmm", "khobar", "khb", "taif", "taf",
	"medina", "mad", "abha", "tabuk", "tbk",
	"hail", "qassim", "jazan", "najran", "baha", "jouf",
	"sa", "sau", "saudi", "arabia", "ksa", "السعودية",
	"gcc", "gulf", "uae", "kuwait", "qatar", "bahrain",
	"oman", "egypt", "jordan", "lebanon", "syria",
	"payment", "purchase", "debit", "credit", "transaction",
	"عملية", "شراء", "دفع", "معاملة", "خصم", "ائتمان",
	"am", "pm", "date", "time", "تاريخ", "وقت",
	"id", "ref", "trn", "mcc", "terminal", "merchant",
	"معرف", "مرجع", "تاجر", "طرفية",
}

var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[A-Z]{3}\d+[A-Z]{2}\s*[A-Z]+`),
	regexp.MustCompile(`(?i)JEDD?AH\s+MADA`),
	regexp.MustCompile(`(?i)[A-Z]{3}\s+SA\b`),
	regexp.MustCompile(`\*{3,}\d{4}`),
	regexp.MustCompile(`\d{4}\*{3,}`),
	regexp.MustCompile(`(?i)xxxx\d{4}`),
	regexp.MustCompile(`\*{4,}`),
	regexp.MustCompile(`(?i)x{4,}`),
	regexp.MustCompile(`(?i)MCC[:\-]?\s*\d+`),
	regexp.MustCompile(`(?i)ID:\s*\d+`),
	regexp.MustCompile(`(?i)REF:\s*\w+`),
	regexp.MustCompile(`(?i)TRN:\s*\w+`),
	regexp.MustCompile(`(?i)TERMINAL:\s*\w+`),
	regexp.MustCompile(`(?i)MERCHANT:\s*\w+`),
	regexp.MustCompile(`(?i)SANBCBNK\d+`),
	regexp.MustCompile(`\b\d{10,}\b`),
	regexp.MustCompile(`(?i)VAT CHRG:\s*[\d.]+\s*[\d.]+`),
}

var (
	nonWordChars = regexp.MustCompile(`[^\p{L}\p{N}\s\-]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Cleaner strips payment-method and administrative-noise tokens from a
// description without ever deleting a taxonomy keyword.
type Cleaner struct {
	taxonomy *Taxonomy
}

func NewCleaner(taxonomy *Taxonomy) *Cleaner {
	return &Cleaner{taxonomy: taxonomy}
}

// Clean prepares a description for classification. A token is only
// removed when it is not itself a taxonomy keyword, and a noise pattern is
// only applied when it leaves every keyword already present in the text
// intact (the keyword-preservation guarantee).
func (c *Cleaner) Clean(description string) string {
	if description == "" {
		return ""
	}
	text := NormalizeForMatch(description)

	for _, token := range paymentMethodTokens {
		if c.taxonomy.HasKeyword(strings.ToLower(token)) {
			continue
		}
		text = removeToken(text, token, false)
	}
	for _, token := range ignoreTokens {
		if c.taxonomy.HasKeyword(strings.ToLower(token)) {
			continue
		}
		text = removeToken(text, token, true)
	}

	present := c.taxonomy.KeywordsIn(strings.ToLower(text))
	for _, pattern := range noisePatterns {
		candidate := pattern.ReplaceAllString(text, " ")
		if keywordsIntact(candidate, present) {
			text = candidate
		}
	}

	text = nonWordChars.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func removeToken(text, token string, wholeWord bool) string {
	pattern := regexp.QuoteMeta(token)
	replacement := ""
	if wholeWord {
		// \b only understands ASCII word characters, so spell the word
		// boundary out; this keeps Arabic tokens from matching inside
		// longer words.
		pattern = `(^|[\s:،-])` + pattern + `($|[\s:،-])`
		replacement = " "
	}
	re, err := regexp.Compile(`(?i)` + pattern)
	if err != nil {
		return text
	}
	for re.MatchString(text) {
		text = re.ReplaceAllString(text, replacement)
	}
	return text
}

func keywordsIntact(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// CleanReport produces a display-grade description: technical banking
// identifiers removed, nothing else touched. Used for the transaction list
// shown to the user rather than for matching.
func CleanReport(description string) string {
	if description == "" {
		return ""
	}
	desc := NormalizeForMatch(description)
	for _, pattern := range reportPatterns {
		desc = pattern.ReplaceAllString(desc, "")
	}
	return strings.TrimSpace(spaceRuns.ReplaceAllString(desc, " "))
}

var reportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{10,}\b`),
	regexp.MustCompile(`(?i)SANBCBNK\d+`),
	regexp.MustCompile(`\*{4,}\d{4}`),
	regexp.MustCompile(`\d{4}\*{4,}`),
	regexp.MustCompile(`(?i)REMBK:\S*`),
	regexp.MustCompile(`(?i)SWIFT:\S*`),
	regexp.MustCompile(`(?i)IBAN:\S*`),
	regexp.MustCompile(`(?i)BIC:\S*`),
	regexp.MustCompile(`(?i)REF:\S*`),
	regexp.MustCompile(`(?i)TRN:\S*`),
	regexp.MustCompile(`(?i)ID:\s*\d+`),
	regexp.MustCompile(`(?i)TERMINAL:\s*\d+`),
	regexp.MustCompile(`(?i)MERCHANT:\s*\d+`),
	regexp.MustCompile(`(?i)BATCH:\s*\d+`),
	regexp.MustCompile(`(?i)TRACE:\s*\d+`),
	regexp.MustCompile(`(?i)AUTH:\s*\d+`),
	regexp.MustCompile(`(?i)RRN:\s*\d+`),
}
