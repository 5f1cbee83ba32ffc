package categorization

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// stopWords carry no merchant signal and are dropped before similarity
// scoring.
var stopWords = map[string]struct{}{
	"في": {}, "من": {}, "إلى": {}, "على": {}, "عند": {}, "مع": {}, "هذا": {}, "هذه": {},
	"the": {}, "in": {}, "at": {}, "on": {}, "from": {}, "to": {}, "with": {}, "for": {},
}

// importantWords are promoted to the front of the keyword list so they
// dominate the similarity score.
var importantWords = map[string]struct{}{
	"مطعم": {}, "كافيه": {}, "صيدلية": {}, "سوبرماركت": {}, "محطة": {}, "تحويل": {},
	"restaurant": {}, "cafe": {}, "pharmacy": {}, "supermarket": {}, "station": {}, "transfer": {},
}

const maxExtractedKeywords = 5

// extractKeywords pulls the most significant words out of a description:
// short tokens, digits, and stop words dropped, important words first, at
// most maxExtractedKeywords kept.
func extractKeywords(text string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if len([]rune(word)) < 3 || isAllDigits(word) {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, important := importantWords[word]; important {
			keywords = append([]string{word}, keywords...)
		} else {
			keywords = append(keywords, word)
		}
	}
	if len(keywords) > maxExtractedKeywords {
		keywords = keywords[:maxExtractedKeywords]
	}
	return keywords
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// FuzzyMatcher is the fallback for descriptions the exact layers missed,
// typically misspelled or truncated merchant names. It scores every
// taxonomy keyword against the description by keyword-set overlap, where
// near-miss tokens (small edit distance) count as shared.
type FuzzyMatcher struct {
	taxonomy *Taxonomy
}

func NewFuzzyMatcher(taxonomy *Taxonomy) *FuzzyMatcher {
	return &FuzzyMatcher{taxonomy: taxonomy}
}

// Match returns the best-scoring category above the threshold. The score
// blends set similarity (weight 50) with a bonus of 20 per shared word, so
// one solid common word plus moderate overlap is enough to clear the
// default threshold of 30.
func (fm *FuzzyMatcher) Match(description string, threshold float64) (Category, bool) {
	descWords := extractKeywords(description)
	if len(descWords) == 0 {
		return Category{}, false
	}

	var (
		best      Category
		bestScore float64
	)
	for _, main := range fm.taxonomy.Categories {
		for _, sub := range main.Subs {
			for _, keyword := range sub.Keywords {
				kwWords := extractKeywords(keyword)
				if len(kwWords) == 0 {
					continue
				}
				common := commonWordCount(descWords, kwWords)
				score := setSimilarity(descWords, kwWords, common)*50 + float64(common)*20
				if score > bestScore && score > threshold {
					bestScore = score
					best = Category{Main: main.Name, Sub: sub.Name}
				}
			}
		}
	}
	if bestScore == 0 {
		return Category{}, false
	}
	return best, true
}

// commonWordCount counts description words matched by keyword words,
// either exactly or within a Levenshtein distance of one for words long
// enough to absorb a typo.
func commonWordCount(descWords, kwWords []string) int {
	count := 0
	for _, dw := range descWords {
		for _, kw := range kwWords {
			if dw == kw {
				count++
				break
			}
			if len([]rune(dw)) >= 5 && len([]rune(kw)) >= 5 &&
				fuzzy.LevenshteinDistance(dw, kw) <= 1 {
				count++
				break
			}
		}
	}
	return count
}

// setSimilarity is the Jaccard index of the two keyword sets, with the
// fuzzy common count standing in for the intersection.
func setSimilarity(descWords, kwWords []string, common int) float64 {
	union := len(descWords) + len(kwWords) - common
	if union <= 0 {
		return 0
	}
	return float64(common) / float64(union)
}
