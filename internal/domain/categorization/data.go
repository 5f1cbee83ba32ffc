package categorization

// DefaultTaxonomy is the built-in Saudi expense taxonomy: Arabic labels,
// Latin transliterations, merchant name variants, and the corrupted forms
// that survive PDF extraction. It is configuration, not behavior; callers
// may inject their own.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy(defaultCategories)
}

var defaultCategories = []MainCategory{
	{
		Name: "🔄 تحويلات مالية",
		Subs: []SubCategory{
			{
				Name: "تحويل داخلي/خارجي",
				Keywords: []string{
					"حوالة فورية", "تحويل داخلي", "تحويل فوري", "تحويل الى الاهل والاصدقاء",
					"تحويل داخلي صادر", "تحويل إلى الأهل والأصدقاء",
					"حوالة", "transfer", "تحويل صادر", "تحويل وارد", "حوالة محلية",
					"تحويل لأفراد", "تحويل الى الاهل", "حوالة فورية محلية", "swift",
					"تحويل دولي", "western union", "ويسترن يونيون",
					"internal transfer", "outgoing transfer", "incoming transfer", "family transfer",
					"instant transfer", "remittance", "wire transfer", "international transfer",
					"حوالة فورية محلية صادرة", "تحويل للأفراد", "benbk",
					"الأسرة أو الأصدقا", "حوالة فورية صادرة",
					"ben id", "internal outgoing", "family friends transfer", "الى الاهل والاصدقاء",
				},
			},
			{
				Name:     "سحب نقدي",
				Keywords: []string{"سحب نقدي"},
			},
			{
				Name: "تحويل لمحافظ",
				Keywords: []string{
					"stc pay", "stcpay", "اس تي سي باي",
					"d360", "د360", "دي360",
					"barq", "برق", "بارق",
					"urpay", "يور باي", "اور باي",
					"mada pay", "مدى باي", "madapay",
					"wallet transfer", "محفظة إلكترونية", "digital wallet",
				},
			},
			{
				Name: "تمويل وسداد",
				Keywords: []string{
					"تمويل", "قرض", "سداد", "تقسيط", "قسط", "loan", "mortgage",
					"تمويل عقاري", "تمويل شخصي", "تمويل سيارة", "سداد مديونية",
					"خصم قسط قرض عقاري", "خصم قسط تمويل تأجيري",
					"قسط عقاري", "قسط تأجيري", "قرض عقاري", "قسط قرض",
					"tabby", "تابي", "tamara", "تمارا", "tammara",
					"installment", "financing", "payment plan", "debt payment",
					"بنك التسليف", "صندوق التنمية", "سكني", "sakani",
					"leasing finance", "real estate loan", "personal loan installment",
					"installment deduction", "mortgage installment", "سداد قسط",
					"مدفوعات سداد", "مدفوعات سداد مخالفات", "مخالفات مرورية", "سداد مرور",
					"090-خدمات المقيمين", "سداد خدمات المقيمين", "خدمات المقيمين",
					"093-المخالفات المرورية", "002-الشركة السعودية للكهرباء", "044-زين",
				},
			},
		},
	},
	{
		Name: "🍽️ مطاعم ومقاهي",
		Subs: []SubCategory{
			{
				Name: "وجبات سريعة",
				Keywords: []string{
					"مطعم", "restaurant", "مطاعم", "وجبات",
					"ماكدونالدز", "mcdonalds", "mcdonald's", "ماك",
					"برجر كنج", "burger king", "برغر",
					"كنتاكي", "kfc", "دجاج كنتاكي",
					"البيك", "albaik", "al baik", "بيك",
					"كودو", "kudu", "هرفي", "herfy",
					"الطازج", "altazaj", "شاورما", "shawarma",
					"بيتزا", "pizza", "دومينوز", "dominos",
					"صب واي", "subway", "برجر", "burger",
					"فطيرة", "مندي", "مظبي", "بخاري", "كباب",
				},
			},
			{
				Name: "مقاهي",
				Keywords: []string{
					"كافيه", "cafe", "coffee", "قهوة", "كوفي",
					"ستاربكس", "starbucks", "بارنز", "barns", "barn's",
					"دانكن", "dunkin", "دانكن دونتس",
					"كاريبو", "caribou", "كوستا", "costa",
					"دوز", "dose", "هاف مليون", "half million",
					"كيان", "kyan", "اوفرتون", "overdose",
					"coarse grind", "كورس جرايند", "اثير كورس",
					"لاتيه", "latte", "اسبريسو", "espresso", "كابتشينو",
				},
			},
			{
				Name: "حلويات ومخبوزات",
				Keywords: []string{
					"حلويات", "sweets", "حلا", "dessert",
					"مخبز", "bakery", "مخبوزات", "كيك", "cake",
					"دونات", "donuts", "كرسبي كريم", "krispy kreme",
					"سينابون", "cinnabon", "شوكولاته", "chocolate",
					"ايس كريم", "ice cream", "باسكن روبنز", "baskin robbins",
				},
			},
			{
				Name: "توصيل طعام",
				Keywords: []string{
					"هنقرستيشن", "hungerstation", "جاهز", "jahez",
					"مرسول", "mrsool", "تويو", "toyou",
					"ذا شفز", "the chefz", "chefz", "شيفز",
					"كريم ناو", "careem now", "طلبات", "talabat",
					"ني ني", "ninja", "توصيل طعام", "food delivery",
				},
			},
		},
	},
	{
		Name: "🛒 سوبرماركت وبقالة",
		Subs: []SubCategory{
			{
				Name: "سوبرماركت كبير",
				Keywords: []string{
					"كارفور", "carrefour", "بنده", "panda", "هايبر بنده",
					"الدانوب", "danube", "دانوب",
					"العثيم", "othaim", "اسواق العثيم",
					"لولو", "lulu", "لولو هايبر",
					"التميمي", "tamimi", "اسواق التميمي",
					"المزرعة", "farm", "هايبر", "hypermarket", "سوبرماركت", "supermarket",
				},
			},
			{
				Name: "تموينات وبقالة",
				Keywords: []string{
					"تموينات", "بقالة", "grocery", "ميني ماركت", "mini market",
					"تموين", "مواد غذائية", "foodstuff", "خضار", "فواكه",
					"اسواق", "سوق", "market", "ماركت",
				},
			},
		},
	},
	{
		Name: "🛍️ تسوق وملابس",
		Subs: []SubCategory{
			{
				Name: "متاجر إلكترونية",
				Keywords: []string{
					"امازون", "amazon", "نون", "noon",
					"شي ان", "shein", "علي اكسبرس", "aliexpress",
					"نمشي", "namshi", "سيفي", "sivvi",
					"جولي شيك", "jollychic", "اي هيرب", "iherb",
					"متجر الكتروني", "online store", "ecommerce",
				},
			},
			{
				Name: "ملابس وأزياء",
				Keywords: []string{
					"ملابس", "clothes", "fashion", "ازياء",
					"زارا", "zara", "اتش اند ام", "h&m",
					"ماكس", "max", "سنتربوينت", "centrepoint",
					"الشايع", "alshaya", "ريد تاغ", "red tag",
					"بيرشكا", "bershka", "بول اند بير", "pull and bear",
					"نايس", "nice", "عبايات", "فساتين", "احذية", "shoes",
				},
			},
			{
				Name: "اكسسوارات ومجوهرات",
				Keywords: []string{
					"مجوهرات", "jewellery", "jewelry", "ذهب", "gold",
					"ساعات", "watches", "نظارات", "glasses",
					"اكسسوارات", "accessories", "عطور", "perfume", "عطر",
				},
			},
			{
				Name: "متاجر عامة",
				Keywords: []string{
					"مكتبة جرير", "jarir", "جرير",
					"اكسترا", "extra", "ساكو", "saco",
					"ايكيا", "ikea", "هوم سنتر", "home centre",
					"داماس", "الصيرفي", "مول", "mall", "بلازا", "plaza",
				},
			},
		},
	},
	{
		Name: "🚗 خدمات السيارات",
		Subs: []SubCategory{
			{
				Name: "صيانة السيارة",
				Keywords: []string{
					"صيانة سيارة", "car service", "ورشة", "workshop",
					"قطع غيار", "spare parts", "زيت", "oil change",
					"اطارات", "tires", "بطارية", "battery",
					"فحص دوري", "periodic inspection", "ميكانيكي",
				},
			},
			{
				Name: "وقود",
				Keywords: []string{
					"بنزين", "petrol", "وقود", "fuel", "gas station",
					"محطة", "station", "ارامكو", "aramco",
					"ساسكو", "sasco", "الدريس", "aldrees",
					"نفط", "بترومين", "petromin", "ديزل", "diesel",
				},
			},
			{
				Name: "مغسلة سيارات",
				Keywords: []string{
					"مغسلة سيارات", "car wash", "غسيل سيارة", "تلميع", "polish",
				},
			},
			{
				Name: "تأجير سيارات",
				Keywords: []string{
					"تأجير سيارة", "car rental", "rent a car",
					"يلو", "yelo", "بدجت", "budget", "هيرتز", "hertz",
					"ثريفتي", "thrifty", "لومي", "lumi",
				},
			},
			{
				Name: "مواقف سيارات",
				Keywords: []string{
					"موقف", "parking", "مواقف", "باركنج",
				},
			},
		},
	},
	{
		Name: "💇‍♂️ خدمات شخصية",
		Subs: []SubCategory{
			{
				Name: "حلاقة وصالونات",
				Keywords: []string{
					"حلاق", "barber", "صالون", "salon",
					"مشغل", "مقص", "حلاقة", "قص شعر", "haircut", "صالون نسائي",
				},
			},
			{
				Name: "مغسلة ملابس",
				Keywords: []string{
					"مغسلة ملابس", "laundry", "غسيل ملابس", "كوي", "dry clean",
				},
			},
			{
				Name: "عناية شخصية",
				Keywords: []string{
					"عناية", "care", "سبا", "spa", "مساج", "massage",
					"تجميل", "beauty", "بشرة", "skin",
				},
			},
			{
				Name: "خياطة",
				Keywords: []string{
					"خياط", "tailor", "خياطة", "تفصيل",
				},
			},
		},
	},
	{
		Name: "🎬 ترفيه",
		Subs: []SubCategory{
			{
				Name: "سينما",
				Keywords: []string{
					"سينما", "cinema", "موفي", "movie",
					"فوكس", "vox", "امسي", "amc", "مسرح", "theatre",
				},
			},
			{
				Name: "فعاليات وألعاب",
				Keywords: []string{
					"فعالية", "event", "موسم الرياض", "riyadh season",
					"بوليفارد", "boulevard", "ترفيه", "entertainment",
					"العاب", "games", "ملاهي", "سباركيز", "sparky's", "sparkys",
					"بولينج", "bowling", "بلياردو", "billiard",
				},
			},
			{
				Name: "تذاكر وحجوزات",
				Keywords: []string{
					"تذكرة", "ticket", "تذاكر", "tickets", "حجز فعالية", "webook",
				},
			},
		},
	},
	{
		Name: "🎧 اشتراكات تلقائية",
		Subs: []SubCategory{
			{
				Name: "ترفيه رقمي",
				Keywords: []string{
					"نتفليكس", "netflix", "سبوتيفاي", "spotify",
					"شاهد", "shahid", "انغامي", "anghami",
					"يوتيوب بريميوم", "youtube premium", "ديزني", "disney",
					"اوه اس ان", "osn", "ستارز بلاي", "starzplay",
					"امازون برايم", "amazon prime", "بودكاست", "podcast",
				},
			},
			{
				Name: "خدمات آبل",
				Keywords: []string{
					"apple.com/bill", "itunes.com", "ابل", "apple",
					"اي كلاود", "icloud", "ابل ميوزك", "apple music",
					"اب ستور", "app store", "ابل تي في", "apple tv",
					"apple pay - دولية", "apple pay عملية دولية",
				},
			},
			{
				Name: "برامج وتطبيقات",
				Keywords: []string{
					"اشتراك", "subscription", "تجديد تلقائي", "auto renewal",
					"مايكروسوفت", "microsoft", "اوفيس", "office 365",
					"ادوبي", "adobe", "كانفا", "canva",
					"جوجل وان", "google one", "دروب بوكس", "dropbox",
					"زوم", "zoom", "نوشن", "notion",
				},
			},
		},
	},
	{
		Name: "🏛️ خدمات حكومية",
		Subs: []SubCategory{
			{
				Name: "فواتير حكومية",
				Keywords: []string{
					"ابشر", "absher", "توكلنا", "tawakkalna", "مقيم", "muqeem",
				},
			},
			{
				Name: "رسوم حكومية",
				Keywords: []string{
					"رسوم حكومية", "government fees", "جوازات", "passports",
					"مرور", "تجديد استمارة", "رخصة", "license", "تأشيرة", "visa fee",
				},
			},
		},
	},
	{
		Name: "💳 رسوم بنكية",
		Subs: []SubCategory{
			{
				Name: "رسوم خدمات بنكية",
				Keywords: []string{
					"رسوم", "رسوم تحويل", "رسوم حوالة", "رسوم خدمة",
					"bank fees", "transfer fees", "service charge",
					"رسوم ديجيتال", "digital channel", "رسوم ادارية",
					"عمولة تحويل", "commission",
				},
			},
			{
				Name: "بطاقة ائتمانية",
				Keywords: []string{
					"مدفوعات بطاقة إئتمانية", "مدفوعات بطاقة ائتمانية",
					"credit card payment", "card: 430259 payment",
					"سداد بطاقة", "بطاقة ائتمانية", "قسط بطاقة",
				},
			},
			{
				Name: "ضريبة القيمة المضافة",
				Keywords: []string{
					"ضريبة القيمة المضافة", "القيمة المضافة", "ضريبة",
				},
			},
		},
	},
	{
		Name: "💊 صحة وأدوية",
		Subs: []SubCategory{
			{
				Name: "صيدليات",
				Keywords: []string{
					"صيدلية", "pharmacy", "صيدليات", "pharmacies",
					"النهدي", "nahdi", "صيدليات النهدي", "al nahdi",
					"الدواء", "dawaa", "صيدليات الدواء", "aldawaa",
					"بوتس", "boots", "دواء", "medicine", "أدوية", "medications",
					"علاج", "treatment", "وصفة طبية", "prescription",
					"مكملات غذائية", "supplements", "فيتامينات",
				},
			},
			{
				Name: "عيادات ومستشفيات",
				Keywords: []string{
					"عيادة", "clinic", "عيادات", "مستشفى", "hospital",
					"طبيب", "doctor", "دكتور", "مركز طبي", "medical center",
					"مستوصف", "تحليل", "lab", "مختبر", "laboratory",
					"أشعة", "xray", "اسنان", "dental",
					"مستشفى الحبيب", "al habib", "السعودي الألماني", "saudi german",
					"مستشفى دله", "dallah",
				},
			},
		},
	},
	{
		Name: "🚚 شحن وتوصيل",
		Subs: []SubCategory{
			{
				Name: "شركات شحن",
				Keywords: []string{
					"أرامكس", "aramex", "smsa", "زاجل", "zajil",
					"البريد السعودي", "saudi post", "سبل", "spl",
					"dhl", "فيديكس", "fedex", "ups",
					"شحن سريع", "express shipping", "توصيل سريع", "fast delivery",
				},
			},
		},
	},
	{
		Name: "🏠 سكن وفواتير",
		Subs: []SubCategory{
			{
				Name: "إيجار",
				Keywords: []string{
					"إيجار", "rent", "أجار", "شقة", "apartment",
					"فيلا", "villa", "سكن", "housing", "عقار", "real estate",
					"استئجار", "rental",
				},
			},
			{
				Name: "مرافق",
				Keywords: []string{
					"كهرباء", "electricity", "الشركة السعودية للكهرباء",
					"فاتورة كهرباء", "ماء", "water", "مياه", "مياه وطنية",
					"غاز", "gas cylinder", "سامغاز",
					"موبايلي الألياف", "mobily fiber", "stc fiber",
					"زين فايبر", "zain fiber", "انترنت منزلي",
				},
			},
		},
	},
	{
		Name: "🎓 تعليم وكتب",
		Subs: []SubCategory{
			{
				Name: "دورات تعليمية",
				Keywords: []string{
					"udemy", "يوديمي", "coursera", "كورسيرا",
					"دورة", "course", "كورس", "تدريب", "training",
					"معهد", "institute", "أكاديمية", "academy",
					"ادراك", "edraak", "رواق", "rwaq", "نون اكادمي", "noon academy",
				},
			},
			{
				Name: "كتب ومستلزمات",
				Keywords: []string{
					"كتاب", "book", "كتب", "قرطاسية", "stationery",
					"أدوات مدرسية", "school supplies", "جامعة", "university",
					"مدرسة", "school", "دفاتر", "notebooks",
				},
			},
		},
	},
	{
		Name: "🏦 معاملات بنكية",
		Subs: []SubCategory{
			{
				Name: "سحب نقدي",
				Keywords: []string{
					"سحب نقدي", "atm", "صراف", "صراف آلي",
					"withdrawal", "cash", "نقد", "كاش",
					"سحب نقدي بالريال", "cash withdrawal", "سحب نقود",
				},
			},
			{
				Name: "إيداع",
				Keywords: []string{
					"إيداع نقدي", "إيداع", "deposit", "cash deposit",
					"إيداع راتب", "salary deposit", "مكافأة", "reward",
					"حوالة واردة", "incoming transfer", "تحويل وارد",
					"إيداع شيك", "check deposit",
				},
			},
		},
	},
	{
		Name: "🎁 هدايا ومناسبات",
		Subs: []SubCategory{
			{
				Name: "هدايا",
				Keywords: []string{
					"هدية", "gift", "هدايا", "gifts",
					"بطاقة هدايا", "gift card", "ورد", "flowers",
					"زهور", "باقة", "bouquet", "تحف", "souvenirs",
				},
			},
			{
				Name: "مناسبات",
				Keywords: []string{
					"مناسبة", "occasion", "عيد", "eid",
					"زواج", "wedding", "ميلاد", "birthday",
					"تخرج", "graduation", "حفلة", "party",
				},
			},
		},
	},
	{
		Name: "💼 عمل ومشاريع",
		Subs: []SubCategory{
			{
				Name: "إعلانات وتسويق",
				Keywords: []string{
					"إعلان", "ads", "advertisement", "تسويق", "marketing",
					"فيسبوك", "facebook", "انستجرام", "instagram",
					"جوجل ادز", "google ads", "سناب", "snapchat",
					"تيك توك", "tiktok", "يوتيوب اعلانات", "youtube ads",
				},
			},
			{
				Name: "خدمات رقمية",
				Keywords: []string{
					"دومين", "domain", "استضافة", "hosting",
					"سيرفر", "server", "godaddy", "namecheap", "cloudflare",
					"aws", "amazon web services", "azure", "google cloud",
				},
			},
		},
	},
	{
		Name: "🕌 تبرعات وخيرية",
		Subs: []SubCategory{
			{
				Name: "جمعيات خيرية",
				Keywords: []string{
					"إحسان", "ehsan", "تبرع", "donation",
					"صدقة", "charity", "زكاة", "zakat",
					"جمعية خيرية", "وقف", "endowment", "كفالة",
					"سقيا", "saqia",
				},
			},
		},
	},
	{
		Name: "🛫 سفر وتنقل",
		Subs: []SubCategory{
			{
				Name: "طيران وفنادق",
				Keywords: []string{
					"طيران", "airlines", "الخطوط السعودية", "saudia",
					"ناس", "flynas", "فلاي دبي", "flydubai",
					"الامارات", "emirates", "القطرية", "qatar airways",
					"فندق", "hotel", "حجز", "booking", "booking.com",
					"agoda", "اجودا", "expedia",
				},
			},
			{
				Name: "مواصلات",
				Keywords: []string{
					"أوبر", "uber", "اوبر", "كريم", "careem",
					"تاكسي", "taxi", "ليموزين", "limousine",
					"باص", "bus", "مترو", "metro", "قطار", "train",
					"قطار الحرمين", "haramain",
				},
			},
		},
	},
	{
		Name: "🛠️ خدمات منزلية وصيانة",
		Subs: []SubCategory{
			{
				Name: "خدمات منزلية",
				Keywords: []string{
					"سباك", "plumber", "كهربائي", "electrician",
					"تكييف", "air condition", "نجار", "carpenter",
					"صيانة", "maintenance", "إصلاح", "repair",
					"تركيب", "installation", "musaned", "مساند للمقاولات",
				},
			},
			{
				Name: "تنظيف منزلي",
				Keywords: []string{
					"تنظيف", "cleaning", "عاملة تنظيف", "house cleaner",
					"تنظيف عميق", "deep cleaning", "شركة تنظيف", "cleaning company",
				},
			},
		},
	},
	{
		Name: "📈 استثمارات",
		Subs: []SubCategory{
			{
				Name: "تداول",
				Keywords: []string{
					"binance", "بينانس", "تداول", "trading",
					"الراجحي كابيتال", "alrajhi capital", "snb capital",
					"عملات رقمية", "crypto", "bitcoin", "بيتكوين",
					"تداول السعودية", "tadawul", "أسهم", "stocks",
					"صندوق استثمار", "mutual funds", "etf",
				},
			},
		},
	},
	{
		Name: "⚽ رياضة ولياقة",
		Subs: []SubCategory{
			{
				Name: "أندية رياضية",
				Keywords: []string{
					"نادي", "gym", "جيم", "فتنس", "fitness",
					"نادي لياقة", "fitness time", "فتنس تايم",
					"بودي ماسترز", "body masters",
				},
			},
			{
				Name: "معدات رياضية",
				Keywords: []string{
					"معدات رياضية", "sports equipment", "ديكاثلون", "decathlon",
					"نايك", "nike", "اديداس", "adidas", "بوما", "puma",
				},
			},
		},
	},
	{
		Name: "🔧 أدوات وهاردوير",
		Subs: []SubCategory{
			{
				Name: "أدوات ومعدات",
				Keywords: []string{
					"أدوات", "tools", "هاردوير", "hardware",
					"معدات", "equipment", "ace", "ايس",
					"بناء", "construction", "مسامير", "أقفال", "locks",
				},
			},
		},
	},
}
