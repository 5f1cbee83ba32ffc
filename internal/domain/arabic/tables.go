package arabic

// Substitution tables for repairing Arabic text damaged during PDF text
// extraction. Each table maps a literal damaged form to its repaired form;
// the matching code is generic over the tables.

// reversedMarkers are words that only occur when an extractor emitted an
// Arabic run in visual (reversed) order. Finding one is strong evidence the
// whole run needs segment-wise reversal.
var reversedMarkers = []string{
	"لاير", // ريال
	"يدوعس", // سعودي
	"تيوك", // كويت
	"رطق",  // قطر
	"نيرحب", // بحرين
}

// splitLetterJoins repairs letters emitted with spurious inter-letter spaces.
// Longer sequences come first so they win over the bigram entries.
var splitLetterJoins = []struct{ split, joined string }{
	{"ا ل س ع و د ي ة", "السعودية"},
	{"ا ل س ع و د ي", "السعودي"},
	{"ا ل م م ل ك ة", "المملكة"},
	{"ا ل أ ه ل ي", "الأهلي"},
	{"ا ل ر ي ا ض", "الرياض"},
	{"ا ل ب ن ك", "البنك"},
	{"ف ا ت و ر ة", "فاتورة"},
	{"م د ف و ع ا ت", "مدفوعات"},
	{"م ص ر و ف ا ت", "مصروفات"},
	{"إ ي ر ا د ا ت", "إيرادات"},
	{"ا ئ ت م ا ن", "ائتمان"},
	{"ب ط ا ق ة", "بطاقة"},
	{"ت ح و ي ل", "تحويل"},
	{"إ ي د ا ع", "إيداع"},
	{"ع م ل ي ة", "عملية"},
	{"ت ا ر ي خ", "تاريخ"},
	{"ص ر ا ف", "صراف"},
	{"ح س ا ب", "حساب"},
	{"ر ص ي د", "رصيد"},
	{"ر ي ا ل", "ريال"},
	{"م ب ل غ", "مبلغ"},
	{"ر س و م", "رسوم"},
	{"خ د م ة", "خدمة"},
	{"ش ر ا ء", "شراء"},
	{"ن ق د ي", "نقدي"},
	{"س ح ب", "سحب"},
	{"د ف ع", "دفع"},
	{"ب ي ع", "بيع"},
	{"ش ي ك", "شيك"},
	{"و ص ف", "وصف"},
	{"آ ل ي", "آلي"},
	{"إ ل ى", "إلى"},
	{"ع ل ى", "على"},
	{"ه ذ ا", "هذا"},
	{"ه ذ ه", "هذه"},
	{"ذ ل ك", "ذلك"},
	{"ا ل", "ال"},
	{"و ا", "وا"},
	{"ي ا", "يا"},
	{"ه ا", "ها"},
	{"م ن", "من"},
	{"ف ي", "في"},
}

// corruptedWords maps whole words that arrive mirrored (visual order) to
// their logical form. Applied after the shaping pass as a manual fallback.
var corruptedWords = []struct{ wrong, correct string }{
	{"ةيدوعسلا", "السعودية"},
	{"ضايرلا", "الرياض"},
	{"مامدلا", "الدمام"},
	{"ربخلا", "الخبر"},
	{"يلهلأا", "الأهلي"},
	{"نامتئا", "ائتمان"},
	{"ةقاطب", "بطاقة"},
	{"ليوحت", "تحويل"},
	{"عاديإ", "إيداع"},
	{"ةيلمع", "عملية"},
	{"خيرات", "تاريخ"},
	{"فارص", "صراف"},
	{"باسح", "حساب"},
	{"ديصر", "رصيد"},
	{"لاير", "ريال"},
	{"غلبم", "مبلغ"},
	{"موسر", "رسوم"},
	{"ةمدخ", "خدمة"},
	{"ءارش", "شراء"},
	{"ةدج", "جدة"},
	{"ةكم", "مكة"},
	{"بحس", "سحب"},
	{"عيب", "بيع"},
	{"فصو", "وصف"},
	{"يلآ", "آلي"},
	{"كنب", "بنك"},
}

// bankingFixes repairs multi-word banking vocabulary that survives the
// generic passes. Only used on the deep path for transaction descriptions.
var bankingFixes = []struct{ wrong, correct string }{
	{"ةفاضملا ةميقلا ةبيرض", "ضريبة القيمة المضافة"},
	{"يدوعسلا يلهلأا", "الأهلي السعودي"},
	{"يدوعسلا يلهلاا", "الأهلي السعودي"},
	{"يلهلأا كنبلا", "البنك الأهلي"},
	{"يلهلاا كنبلا", "البنك الأهلي"},
	{"كنبلا يلهلأا", "البنك الأهلي"},
	{"كنبلا يلهلاا", "البنك الأهلي"},
	{"نامتئا ةقاطب", "بطاقة ائتمان"},
	{"يدوعس لاير", "ريال سعودي"},
	{"ةمدخ موسر", "رسوم خدمة"},
	{"يراج باسح", "حساب جاري"},
	{"رخدم باسح", "حساب مدخر"},
	{"يلآ فارص", "صراف آلي"},
	{"ةنيدملا", "المدينة"},
	{"فئاطلا", "الطائف"},
	{"ليبجلا", "الجبيل"},
	{"جرخلا", "الخرج"},
	{"ةروتاف", "فاتورة"},
	{"لاصيإ", "إيصال"},
	{"ةبيرض", "ضريبة"},
	{"دادس", "سداد"},
	{"ليومت", "تمويل"},
	{"ضرق", "قرض"},
	{"عفد", "دفع"},
	{"عجرم", "مرجع"},
	{"مقر", "رقم"},
	{"دقن", "نقد"},
	{"يدقن", "نقدي"},
	{"كيش", "شيك"},
}

// knownWords is the vocabulary used to score a candidate reversal: the
// direction that surfaces more of these words wins.
var knownWords = []string{
	"ريال", "سعودي", "السعودية", "الرياض", "جدة", "مكة", "الدمام",
	"تحويل", "سحب", "إيداع", "شراء", "دفع", "سداد", "رسوم", "ضريبة",
	"بطاقة", "صراف", "حساب", "رصيد", "مبلغ", "عملية", "بنك", "فاتورة",
	"حوالة", "قسط", "تمويل", "خدمة", "مدفوعات",
}
