package categorization

import "strings"

// rajhiOverride applies Al Rajhi statement quirks before any general
// matching. Rajhi descriptions put the channel first ("apple pay",
// "حوالة فورية") and bury the merchant, so channel-level rules answer
// faster and more reliably than keyword scoring there.
func rajhiOverride(description string) (Category, bool) {
	lower := strings.ToLower(description)

	if strings.Contains(lower, "apple pay") {
		if strings.Contains(description, "شراء عبر نقاط البيع") || strings.Contains(lower, "online purchase") {
			return Category{Main: "🎧 اشتراكات تلقائية", Sub: "خدمات آبل"}, true
		}
	}
	if strings.Contains(description, "حوالة فورية") || strings.Contains(lower, "payment capital") {
		return Category{Main: "🔄 تحويلات مالية", Sub: "تحويل داخلي/خارجي"}, true
	}
	if strings.Contains(description, "رسوم") {
		return Category{Main: "💳 رسوم بنكية", Sub: "رسوم خدمات بنكية"}, true
	}
	if strings.Contains(description, "سحب نقدي") || strings.Contains(lower, "atm withdrawal") {
		return Category{Main: "🏦 معاملات بنكية", Sub: "سحب نقدي"}, true
	}
	return Category{}, false
}

// priorityRule is checked before keyword scoring. Either the keywords or
// the condition decide; a rule with a condition ignores its keywords.
type priorityRule struct {
	keywords  []string
	condition func(lower string) bool
	category  Category
}

var priorityRules = []priorityRule{
	{
		keywords: []string{"مدفوعات بطاقة إئتمانية", "card: 430259 payment", "ﻣﺪﻓﻮﻋﺎﺕ ﺑﻄﺎﻗﺔ ﺇﺋﺘﻤﺎﻧﻴﺔ"},
		category: Category{Main: "💳 رسوم بنكية", Sub: "بطاقة ائتمانية"},
	},
	{
		keywords: []string{
			"ben id", "benbk", "تحويل الى الاهل والاصدقاء", "حوالة فورية محلية صادرة",
			"تحويل لأفراد", "تحويل داخلي صادر", "الأسرة أو الأصدقا",
		},
		category: Category{Main: "🔄 تحويلات مالية", Sub: "تحويل داخلي/خارجي"},
	},
	{
		keywords: []string{"خصم قسط قرض", "خصم قسط تمويل", "قسط عقاري", "قسط تأجيري"},
		category: Category{Main: "🔄 تحويلات مالية", Sub: "تمويل وسداد"},
	},
	{
		keywords: []string{
			"مدفوعات سداد", "093-المخالفات المرورية", "090-خدمات المقيمين",
			"002-الشركة السعودية للكهرباء", "044-زين",
		},
		category: Category{Main: "🔄 تحويلات مالية", Sub: "تمويل وسداد"},
	},
	{
		condition: func(lower string) bool {
			return (strings.Contains(lower, "رسوم") || strings.Contains(lower, "ضريبة")) &&
				strings.Contains(lower, "digital channel")
		},
		category: Category{Main: "💳 رسوم بنكية", Sub: "رسوم خدمات بنكية"},
	},
	{
		keywords: []string{
			"apple pay - دولية", "apple pay ون ديولانوما", "wiatro city",
			"dewanlamashshakira1", "apple pay عملية دولية", "mcc- 6540",
		},
		category: Category{Main: "🎧 اشتراكات تلقائية", Sub: "خدمات آبل"},
	},
}

// matchPriority checks the priority rules in order. Keywords match both
// as-is and with spaces collapsed, in the raw and the letter-normalized
// form.
func matchPriority(lower, noSpaces string) (Category, bool) {
	for _, rule := range priorityRules {
		if rule.condition != nil {
			if rule.condition(lower) {
				return rule.category, true
			}
			continue
		}
		for _, kw := range rule.keywords {
			kwLower := strings.ToLower(kw)
			kwNormalized := NormalizeForMatch(kwLower)
			if strings.Contains(lower, kwLower) ||
				strings.Contains(noSpaces, kwLower) ||
				strings.Contains(lower, kwNormalized) ||
				strings.Contains(noSpaces, kwNormalized) {
				return rule.category, true
			}
		}
	}
	return Category{}, false
}

// genericStems run once keyword scoring has failed: broad words that at
// least pin down the spending family. Only the fuzzy pass comes after.
var genericStems = []struct {
	stems    []string
	category Category
}{
	{
		stems:    []string{"restaurant", "cafe", "food", "eat", "coffee", "مطعم", "كافيه", "طعام", "قهوة"},
		category: Category{Main: "🍽️ مطاعم ومقاهي", Sub: "وجبات سريعة"},
	},
	{
		stems:    []string{"store", "shop", "market", "grocery", "سوق", "متجر", "بقالة", "تموينات"},
		category: Category{Main: "🛒 سوبرماركت وبقالة", Sub: "تموينات وبقالة"},
	},
	{
		stems:    []string{"gas", "fuel", "car", "petrol", "بنزين", "وقود", "سيارة", "محطة"},
		category: Category{Main: "🚗 خدمات السيارات", Sub: "وقود"},
	},
	{
		stems:    []string{"pharma", "medical", "health", "clinic", "صيدلية", "طبي", "صحة", "عيادة"},
		category: Category{Main: "💊 صحة وأدوية", Sub: "صيدليات"},
	},
}

func matchGenericStem(lower string) (Category, bool) {
	for _, group := range genericStems {
		for _, stem := range group.stems {
			if strings.Contains(lower, stem) {
				return group.category, true
			}
		}
	}
	return Category{}, false
}
