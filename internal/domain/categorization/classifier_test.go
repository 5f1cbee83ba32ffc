package categorization

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashf-app/kashf/internal/domain/bank"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return NewClassifier(nil, nil, nil, DefaultScoreConfig(), nil)
}

func TestClassifierRajhiOverrides(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("apple pay point of sale", func(t *testing.T) {
		got := c.Classify("Apple Pay شراء عبر نقاط البيع", bank.Rajhi)
		assert.Equal(t, Category{Main: "🎧 اشتراكات تلقائية", Sub: "خدمات آبل"}, got)
	})

	t.Run("instant transfer", func(t *testing.T) {
		got := c.Classify("حوالة فورية الى حساب آخر", bank.Rajhi)
		assert.Equal(t, Category{Main: "🔄 تحويلات مالية", Sub: "تحويل داخلي/خارجي"}, got)
	})

	t.Run("fees", func(t *testing.T) {
		got := c.Classify("رسوم الخدمة الشهرية", bank.Rajhi)
		assert.Equal(t, Category{Main: "💳 رسوم بنكية", Sub: "رسوم خدمات بنكية"}, got)
	})

	t.Run("cash withdrawal", func(t *testing.T) {
		got := c.Classify("سحب نقدي من الصراف", bank.Rajhi)
		assert.Equal(t, Category{Main: "🏦 معاملات بنكية", Sub: "سحب نقدي"}, got)
	})

	t.Run("overrides do not fire for other banks", func(t *testing.T) {
		got := c.Classify("رسوم خدمة", bank.Ahli)
		assert.Equal(t, Category{Main: "💳 رسوم بنكية", Sub: "رسوم خدمات بنكية"}, got)
	})
}

func TestClassifierPriorityRules(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("outgoing local instant transfer", func(t *testing.T) {
		got := c.Classify("حوالة فورية محلية صادرة BEN ID 4455", bank.Ahli)
		assert.Equal(t, Category{Main: "🔄 تحويلات مالية", Sub: "تحويل داخلي/خارجي"}, got)
	})

	t.Run("loan installment", func(t *testing.T) {
		got := c.Classify("خصم قسط قرض عقاري شهري", bank.Ahli)
		assert.Equal(t, Category{Main: "🔄 تحويلات مالية", Sub: "تمويل وسداد"}, got)
	})

	t.Run("sadad bill payment", func(t *testing.T) {
		got := c.Classify("مدفوعات سداد 002-الشركة السعودية للكهرباء", bank.Ahli)
		assert.Equal(t, Category{Main: "🔄 تحويلات مالية", Sub: "تمويل وسداد"}, got)
	})

	t.Run("fee condition requires digital channel", func(t *testing.T) {
		got := c.Classify("رسوم تحويل city: digital channel", bank.Ahli)
		assert.Equal(t, Category{Main: "💳 رسوم بنكية", Sub: "رسوم خدمات بنكية"}, got)
	})
}

func TestClassifierMerchantIndex(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("latin merchant", func(t *testing.T) {
		got := c.Classify("شراء من STARBUCKS فرع العليا", bank.Ahli)
		assert.Equal(t, Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}, got)
	})

	t.Run("arabic merchant", func(t *testing.T) {
		got := c.Classify("البيك وجبة عشاء", bank.Ahli)
		assert.Equal(t, Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}, got)
	})

	t.Run("longest pattern wins", func(t *testing.T) {
		idx := NewMerchantIndex([]Merchant{
			{Pattern: "KING", Category: Category{Main: "a", Sub: "a"}},
			{Pattern: "BURGER KING", Category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"}},
		})
		m, ok := idx.Match("BURGER KING RIYADH")
		require.True(t, ok)
		assert.Equal(t, "BURGER KING", m.Pattern)
	})
}

func TestClassifierScoredKeywords(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("delivery platform", func(t *testing.T) {
		got := c.Classify("هنقرستيشن توصيل", bank.Ahli)
		assert.Equal(t, Category{Main: "🍽️ مطاعم ومقاهي", Sub: "توصيل طعام"}, got)
	})

	t.Run("fuel station", func(t *testing.T) {
		got := c.Classify("محطة ساسكو للوقود", bank.Ahli)
		assert.Equal(t, "🚗 خدمات السيارات", got.Main)
	})

	t.Run("whole word scores above substring", func(t *testing.T) {
		assert.Equal(t, 85, matchScore("قهوة لذيذة وسط المدينة", "قهوةلذيذةوسطالمدينة", "لذيذة"))
		assert.Equal(t, 95, matchScore("قهوة لذيذة", "قهوةلذيذة", "قهوة"))
	})
}

func TestClassifierFuzzyFallback(t *testing.T) {
	c := newTestClassifier(t)

	// One letter off from the coffee chain, so no exact layer can see it.
	got := c.Classify("ستاربكص", bank.Ahli)
	assert.Equal(t, Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}, got)
}

func TestClassifierGenericStems(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("broad english stem", func(t *testing.T) {
		got := c.Classify("shop corner", bank.Ahli)
		assert.Equal(t, Category{Main: "🛒 سوبرماركت وبقالة", Sub: "تموينات وبقالة"}, got)
	})

	t.Run("stems answer before the fuzzy pass", func(t *testing.T) {
		// "ستاربكص" alone would fuzzy-match the coffee chain, but the
		// shop stem settles it first.
		got := c.Classify("shop ستاربكص", bank.Ahli)
		assert.Equal(t, Category{Main: "🛒 سوبرماركت وبقالة", Sub: "تموينات وبقالة"}, got)
	})
}

func TestClassifierIsTotal(t *testing.T) {
	c := newTestClassifier(t)

	t.Run("gibberish", func(t *testing.T) {
		got := c.Classify("xyzqwpq", bank.Ahli)
		assert.Equal(t, Unclassified(), got)
	})

	t.Run("empty", func(t *testing.T) {
		got := c.Classify("", bank.Ahli)
		assert.Equal(t, Unclassified(), got)
	})

	t.Run("never returns empty fields", func(t *testing.T) {
		inputs := []string{"", "----", "عملية غير معروفة 9321", "STARBUCKS", "xq"}
		for _, input := range inputs {
			got := c.Classify(input, bank.Unknown)
			assert.NotEmpty(t, got.Main, "input %q", input)
			assert.NotEmpty(t, got.Sub, "input %q", input)
		}
	})
}

func TestClassifierLearnsFromSuccess(t *testing.T) {
	store := NewPatternStore(filepath.Join(t.TempDir(), "patterns.json"), nil)
	c := NewClassifier(nil, nil, store, DefaultScoreConfig(), nil)

	c.Classify("شراء من STARBUCKS فرع العليا", bank.Ahli)
	assert.Equal(t, 1, store.PatternCount())

	got, ok := store.Lookup("شراء من starbucks فرع العليا المعاد")
	require.True(t, ok, "merchant prefix should answer substring lookups")
	assert.Equal(t, "🍽️ مطاعم ومقاهي", got.Main)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "🍽️ مطاعم ومقاهي - مقاهي", Category{Main: "🍽️ مطاعم ومقاهي", Sub: "مقاهي"}.Label())
	assert.Equal(t, UnclassifiedMain, Unclassified().Label())
}
