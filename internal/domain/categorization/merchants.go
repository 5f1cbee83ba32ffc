package categorization

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"
)

// Merchant binds one raw statement pattern to its category.
type Merchant struct {
	Pattern  string
	Category Category
}

// MerchantIndex matches known merchant names against descriptions using
// the Aho-Corasick algorithm: one pass through the text regardless of how
// many patterns are loaded. When several merchants occur in the same
// description the longest pattern wins, so "BURGER KING" beats "KING".
type MerchantIndex struct {
	matcher  *ahocorasick.Matcher
	patterns []string
	entries  []Merchant
	mu       sync.RWMutex
}

// NewMerchantIndex builds an index over the given merchants.
func NewMerchantIndex(merchants []Merchant) *MerchantIndex {
	idx := &MerchantIndex{}
	idx.Build(merchants)
	return idx
}

// Build rebuilds the matcher. Safe to call again when the merchant table
// changes.
func (idx *MerchantIndex) Build(merchants []Merchant) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.patterns = make([]string, 0, len(merchants))
	idx.entries = make([]Merchant, 0, len(merchants))
	for _, m := range merchants {
		pattern := strings.ToUpper(strings.TrimSpace(m.Pattern))
		if pattern == "" {
			continue
		}
		idx.patterns = append(idx.patterns, pattern)
		idx.entries = append(idx.entries, Merchant{Pattern: pattern, Category: m.Category})
	}

	if len(idx.patterns) == 0 {
		idx.matcher = nil
		return
	}
	bytePatterns := make([][]byte, len(idx.patterns))
	for i, p := range idx.patterns {
		bytePatterns[i] = []byte(p)
	}
	idx.matcher = ahocorasick.NewMatcher(bytePatterns)
}

// Match returns the category of the longest merchant pattern found in the
// description, if any.
func (idx *MerchantIndex) Match(description string) (Merchant, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.matcher == nil {
		return Merchant{}, false
	}

	hits := idx.matcher.Match([]byte(strings.ToUpper(description)))
	if len(hits) == 0 {
		return Merchant{}, false
	}

	best := -1
	for _, hit := range hits {
		if hit < 0 || hit >= len(idx.entries) {
			continue
		}
		if best == -1 || len(idx.patterns[hit]) > len(idx.patterns[best]) {
			best = hit
		}
	}
	if best == -1 {
		return Merchant{}, false
	}
	return idx.entries[best], true
}

// PatternCount returns the number of loaded merchant patterns.
func (idx *MerchantIndex) PatternCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.patterns)
}

// DefaultMerchants is the built-in merchant table: names exactly as they
// appear on Saudi card statements, Latin and Arabic variants both.
func DefaultMerchants() []Merchant {
	return []Merchant{
		{Pattern: "THE CHEFZ", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "شيفز", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "CHEFZ", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "MCDONALDS", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "ماكدونالدز", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "BURGER KING", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "برجر كنج", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "KFC", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "كنتاكي", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "ALBAIK", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "البيك", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "KUDU", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		{Pattern: "كودو", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},

		{Pattern: "STARBUCKS", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},
		{Pattern: "ستاربكس", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},
		{Pattern: "BARNS", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},
		{Pattern: "بارنز", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},
		{Pattern: "DUNKIN", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},
		{Pattern: "دانكن", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}},

		{Pattern: "CARREFOUR", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},
		{Pattern: "كارفور", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},
		{Pattern: "PANDA", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},
		{Pattern: "بنده", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},
		{Pattern: "DANUBE", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},
		{Pattern: "الدانوب", Category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "سوبرماركت كبير"}},

		{Pattern: "NAHDI", Category: Category{Main: "💊 صحة وأدوية", Sub: "صيدليات"}},
		{Pattern: "النهدي", Category: Category{Main: "💊 صحة وأدوية", Sub: "صيدليات"}},
		{Pattern: "DAWAA", Category: Category{Main: "💊 صحة وأدوية", Sub: "صيدليات"}},
		{Pattern: "الدواء", Category: Category{Main: "💊 صحة وأدوية", Sub: "صيدليات"}},

		{Pattern: "AMAZON", Category: Category{Main: "🛍️ تسوق وملابس", Sub: "متاجر إلكترونية"}},
		{Pattern: "امازون", Category: Category{Main: "🛍️ تسوق وملابس", Sub: "متاجر إلكترونية"}},
		{Pattern: "NOON", Category: Category{Main: "🛍️ تسوق وملابس", Sub: "متاجر إلكترونية"}},
		{Pattern: "نون", Category: Category{Main: "🛍️ تسوق وملابس", Sub: "متاجر إلكترونية"}},

		{Pattern: "NETFLIX", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "ترفيه رقمي"}},
		{Pattern: "نتفليكس", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "ترفيه رقمي"}},
		{Pattern: "SPOTIFY", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "ترفيه رقمي"}},
		{Pattern: "سبوتيفاي", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "ترفيه رقمي"}},
		{Pattern: "APPLE.COM/BILL", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "خدمات آبل"}},
		{Pattern: "ITUNES.COM", Category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "خدمات آبل"}},
	}
}
