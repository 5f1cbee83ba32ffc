package categorization

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kashf-app/kashf/internal/domain/bank"
)

// ScoreConfig tunes the scored-keyword and fuzzy layers.
type ScoreConfig struct {
	// Threshold is the minimum keyword score that counts as a match.
	Threshold int
	// FuzzyThreshold is the minimum blended similarity score for the
	// fuzzy fallback.
	FuzzyThreshold float64
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{Threshold: 50, FuzzyThreshold: 30}
}

// Classifier assigns a two-level category to a transaction description.
// Layers run in order and the first conclusive one wins: bank overrides,
// priority rules, merchant index, learned patterns, scored keywords,
// generic stems, fuzzy matching. Every successful classification is fed
// back to the pattern store.
type Classifier struct {
	taxonomy  *Taxonomy
	cleaner   *Cleaner
	merchants *MerchantIndex
	learner   *PatternStore
	fuzzy     *FuzzyMatcher
	cfg       ScoreConfig
	logger    *slog.Logger
}

// NewClassifier wires a classifier. A nil taxonomy gets the default
// taxonomy, a nil merchant index the default merchant table. store may be
// nil, which disables learning.
func NewClassifier(taxonomy *Taxonomy, merchants *MerchantIndex, store *PatternStore, cfg ScoreConfig, logger *slog.Logger) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if merchants == nil {
		merchants = NewMerchantIndex(DefaultMerchants())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		taxonomy:  taxonomy,
		cleaner:   NewCleaner(taxonomy),
		merchants: merchants,
		learner:   store,
		fuzzy:     NewFuzzyMatcher(taxonomy),
		cfg:       cfg,
		logger:    logger,
	}
}

// Classify maps the description onto the taxonomy. It is total: the
// answer is Unclassified/Unspecified when nothing matches, never empty.
func (c *Classifier) Classify(description string, bankKind bank.Type) Category {
	if strings.TrimSpace(description) == "" {
		return Unclassified()
	}

	if bankKind == bank.Rajhi {
		if cat, ok := rajhiOverride(description); ok {
			c.remember(description, cat)
			return cat
		}
	}

	clean := c.cleaner.Clean(description)
	if strings.TrimSpace(clean) == "" {
		clean = NormalizeForMatch(description)
	}
	lower := strings.ToLower(clean)
	noSpaces := strings.ReplaceAll(lower, " ", "")

	if cat, ok := matchPriority(lower, noSpaces); ok {
		c.remember(description, cat)
		return cat
	}

	if m, ok := c.merchants.Match(clean); ok {
		c.remember(description, m.Category)
		return m.Category
	}
	if m, ok := c.merchants.Match(description); ok {
		c.remember(description, m.Category)
		return m.Category
	}

	if c.learner != nil {
		if cat, ok := c.learner.Lookup(clean); ok {
			return cat
		}
	}

	if cat, score := c.scoreKeywords(lower, noSpaces); score >= c.cfg.Threshold {
		c.remember(description, cat)
		return cat
	}

	if cat, ok := matchGenericStem(lower); ok {
		c.remember(description, cat)
		return cat
	}

	if cat, ok := c.fuzzy.Match(clean, c.cfg.FuzzyThreshold); ok {
		c.remember(description, cat)
		return cat
	}

	return Unclassified()
}

func (c *Classifier) remember(description string, cat Category) {
	if c.learner != nil {
		c.learner.Learn(description, cat)
	}
}

// specificKeywords earn a bonus: phrases observed to identify exactly one
// merchant or channel on real statements.
var specificKeywords = makeSet(
	"khaled ﺑﺎﺳﻤﺢ", "f. s. t. co", "musaned", "coarse grind",
	"aya mall bindaw", "bright stage", "digital channel", "ben id",
	"apple pay - دولية", "خدمات المقيمين", "رسوم ديجيتال",
	"مدفوعات بطاقة إئتمانية", "card: 430259",
)

func makeSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// scoreKeywords runs the scored keyword layer and returns the best
// category and its score. Stronger positions score higher: exact match
// 100, prefix 95, suffix 90, whole word 85, substring 75, spaces-collapsed
// 70, with the normalized variant of each worth slightly less. Specific
// phrases add 20, long keywords add up to 10.
func (c *Classifier) scoreKeywords(lower, noSpaces string) (Category, int) {
	var (
		best      Category
		bestScore int
	)
	for _, main := range c.taxonomy.Categories {
		for _, sub := range main.Subs {
			for _, keyword := range sub.Keywords {
				kw := strings.ToLower(keyword)
				length := len([]rune(kw))
				if length < 3 {
					continue
				}
				score := matchScore(lower, noSpaces, kw)
				if score == 0 {
					continue
				}
				if _, ok := specificKeywords[kw]; ok {
					score += 20
				}
				if length >= 10 {
					score += 10
				} else if length >= 6 {
					score += 5
				}
				if score > bestScore {
					bestScore = score
					best = Category{Main: main.Name, Sub: sub.Name}
				}
			}
		}
	}
	return best, bestScore
}

func matchScore(lower, noSpaces, kw string) int {
	kwNormalized := NormalizeForMatch(kw)
	kwNoSpaces := strings.ReplaceAll(kw, " ", "")

	switch {
	case kw == lower:
		return 100
	case kwNormalized == lower:
		return 98
	case strings.HasPrefix(lower, kw):
		return 95
	case strings.HasSuffix(lower, kw):
		return 90
	case containsWholeWord(lower, kw):
		return 85
	case containsWholeWord(lower, kwNormalized):
		return 83
	case strings.Contains(lower, kw):
		return 75
	case strings.Contains(lower, kwNormalized):
		return 73
	case strings.Contains(noSpaces, kwNoSpaces):
		return 70
	}
	return 0
}

// containsWholeWord reports whether word occurs in text bounded by
// non-alphanumeric runes on both sides. Works for Arabic as well as
// Latin, unlike regexp's ASCII-only \b.
func containsWholeWord(text, word string) bool {
	if word == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start

		boundedLeft := true
		if idx > 0 {
			r, _ := utf8.DecodeLastRuneInString(text[:idx])
			boundedLeft = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}
		boundedRight := true
		if end := idx + len(word); end < len(text) {
			r, _ := utf8.DecodeRuneInString(text[end:])
			boundedRight = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}
		if boundedLeft && boundedRight {
			return true
		}
		start = idx + len(word)
	}
}
