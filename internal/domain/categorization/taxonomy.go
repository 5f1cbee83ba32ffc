// Package categorization maps transaction descriptions onto a two-level
// Arabic expense taxonomy. Matching is layered: bank-specific overrides,
// curated priority rules, a merchant index, learned patterns, scored
// keyword matching, generic stems, and a fuzzy pass, in that order; the
// first conclusive layer wins.
package categorization

import "strings"

// Category is the classification result. Unclassified/Unspecified is a
// valid terminal value, never empty.
type Category struct {
	Main string `json:"main"`
	Sub  string `json:"sub"`
}

// Sentinel category labels.
const (
	UnclassifiedMain = "❓ غير مصنف"
	UnspecifiedSub   = "غير محدد"
)

// Unclassified is the terminal category for descriptions nothing matched.
func Unclassified() Category {
	return Category{Main: UnclassifiedMain, Sub: UnspecifiedSub}
}

// Label renders the category the way reports show it: "main - sub", with
// the sub part dropped when unspecified.
func (c Category) Label() string {
	if c.Sub == UnspecifiedSub || c.Sub == "" {
		return c.Main
	}
	return c.Main + " - " + c.Sub
}

// SubCategory is a leaf of the taxonomy: a label plus the keyword and
// phrase variants that identify it.
type SubCategory struct {
	Name     string
	Keywords []string
}

// MainCategory groups sub-categories under one display label.
type MainCategory struct {
	Name string
	Subs []SubCategory
}

// Taxonomy is the ordered two-level classification dictionary. Order is
// explicit: iteration and tie-breaks follow slice order, not map order.
// The taxonomy is read-only after construction and injectable, so tests
// can swap in a small one.
type Taxonomy struct {
	Categories []MainCategory

	keywordSet map[string]struct{}
}

// NewTaxonomy builds a taxonomy and its keyword lookup set. The set holds
// both the raw lowercase form and the letter-normalized form of every
// keyword, which the cleaner uses for its keyword-preservation check.
func NewTaxonomy(categories []MainCategory) *Taxonomy {
	t := &Taxonomy{
		Categories: categories,
		keywordSet: make(map[string]struct{}),
	}
	for _, main := range categories {
		for _, sub := range main.Subs {
			for _, kw := range sub.Keywords {
				lower := strings.ToLower(kw)
				t.keywordSet[lower] = struct{}{}
				if normalized := NormalizeForMatch(lower); normalized != lower {
					t.keywordSet[normalized] = struct{}{}
				}
			}
		}
	}
	return t
}

// HasKeyword reports whether the given lowercase string is a taxonomy
// keyword.
func (t *Taxonomy) HasKeyword(s string) bool {
	_, ok := t.keywordSet[s]
	return ok
}

// ContainsKeyword reports whether any taxonomy keyword occurs inside the
// given lowercase text.
func (t *Taxonomy) ContainsKeyword(text string) bool {
	for kw := range t.keywordSet {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// KeywordsIn returns the taxonomy keywords present in the given lowercase
// text.
func (t *Taxonomy) KeywordsIn(text string) []string {
	var found []string
	for kw := range t.keywordSet {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		}
	}
	return found
}
