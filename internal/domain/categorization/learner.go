package categorization

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"
)

// minPatternCount is how many times an exact description must have been
// classified before the learned answer is trusted on its own.
const minPatternCount = 3

type learnedPattern struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Count       int    `json:"count"`
	FirstSeen   string `json:"first_seen"`
	LastSeen    string `json:"last_seen"`
}

type learnedMerchant struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

type patternFile struct {
	Patterns  map[string]learnedPattern  `json:"patterns"`
	Merchants map[string]learnedMerchant `json:"merchants"`
}

// PatternStore remembers past classifications in a JSON file so that
// repeated descriptions stop depending on keyword matching. Persistence is
// best effort: a missing or corrupt file starts the store empty, and a
// failed write is logged and retried on the next flush.
type PatternStore struct {
	path   string
	logger *slog.Logger

	mu    sync.Mutex
	data  patternFile
	dirty bool
}

// NewPatternStore opens (or initializes) the store at path.
func NewPatternStore(path string, logger *slog.Logger) *PatternStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &PatternStore{
		path:   path,
		logger: logger,
		data: patternFile{
			Patterns:  make(map[string]learnedPattern),
			Merchants: make(map[string]learnedMerchant),
		},
	}
	s.load()
	return s
}

func (s *PatternStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("pattern store unreadable, starting empty", "path", s.path, "error", err)
		}
		return
	}
	var parsed patternFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		s.logger.Warn("pattern store corrupt, starting empty", "path", s.path, "error", err)
		return
	}
	if parsed.Patterns != nil {
		s.data.Patterns = parsed.Patterns
	}
	if parsed.Merchants != nil {
		s.data.Merchants = parsed.Merchants
	}
}

// Lookup returns a learned category for the description. An exact pattern
// answers only after it has been seen minPatternCount times; otherwise any
// remembered merchant name occurring inside the description answers.
func (s *PatternStore) Lookup(description string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(description))
	if key == "" {
		return Category{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.data.Patterns[key]; ok && p.Count >= minPatternCount {
		return Category{Main: p.Category, Sub: p.Subcategory}, true
	}
	for merchant, info := range s.data.Merchants {
		if strings.Contains(key, strings.ToLower(merchant)) {
			return Category{Main: info.Category, Sub: info.Subcategory}, true
		}
	}
	return Category{}, false
}

// Learn records that the description was classified as the given category
// and remembers the merchant prefix for future substring lookups. Nothing
// is written to disk until Flush.
func (s *PatternStore) Learn(description string, category Category) {
	key := strings.ToLower(strings.TrimSpace(description))
	if key == "" || category.Main == UnclassifiedMain {
		return
	}
	now := time.Now().Format(time.RFC3339)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.data.Patterns[key]
	if !ok {
		p = learnedPattern{
			Category:    category.Main,
			Subcategory: category.Sub,
			FirstSeen:   now,
		}
	}
	p.Count++
	p.LastSeen = now
	s.data.Patterns[key] = p

	if merchant := merchantPrefix(description); merchant != "" {
		s.data.Merchants[merchant] = learnedMerchant{
			Category:    category.Main,
			Subcategory: category.Sub,
		}
	}
	s.dirty = true
}

var (
	standaloneDigits = regexp.MustCompile(`(^|\s)\d+($|\s)`)
	merchantSymbols  = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
)

// merchantPrefix extracts the merchant name from a description: the first
// two words once standalone numbers and symbols are stripped.
func merchantPrefix(description string) string {
	cleaned := description
	for standaloneDigits.MatchString(cleaned) {
		cleaned = standaloneDigits.ReplaceAllString(cleaned, " ")
	}
	cleaned = merchantSymbols.ReplaceAllString(cleaned, " ")
	words := strings.Fields(cleaned)
	if len(words) < 2 {
		return ""
	}
	return words[0] + " " + words[1]
}

// Flush writes pending changes to disk. A no-op when nothing changed.
func (s *PatternStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// PatternCount returns the number of exact patterns currently stored.
func (s *PatternStore) PatternCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Patterns)
}
