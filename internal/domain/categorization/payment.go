package categorization

import (
	"regexp"
	"strings"
)

// paymentMethods is checked in order, most specific first, so "apple pay"
// wins before "pay" fragments and "mada pay" before "mada".
var paymentMethods = []struct {
	token string
	name  string
}{
	{"apple pay", "Apple Pay"},
	{"google pay", "Google Pay"},
	{"samsung pay", "Samsung Pay"},
	{"stc pay", "STC Pay"},
	{"stcpay", "STC Pay"},
	{"اس تي سي باي", "STC Pay"},
	{"urpay", "UrPay"},
	{"يور باي", "UrPay"},
	{"mada pay", "Mada Pay"},
	{"مدى باي", "Mada Pay"},
	{"paypal", "PayPal"},
	{"بايبال", "PayPal"},
	{"tabby", "Tabby"},
	{"تابي", "Tabby"},
	{"tamara", "Tamara"},
	{"تمارا", "Tamara"},
	{"mastercard", "Mastercard"},
	{"ماستركارد", "Mastercard"},
	{"visa", "Visa"},
	{"فيزا", "Visa"},
	{"mada", "Mada"},
	{"مدى", "Mada"},
	{"contactless", "بدون لمس"},
	{"عدم اللمس", "بدون لمس"},
	{"pos", "نقطة البيع"},
	{"atm", "صراف آلي"},
}

var cardMaskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\*{3,}\d{4}`),
	regexp.MustCompile(`\d{4}\s*\*{3,}`),
	regexp.MustCompile(`xxxx\d{4}`),
	regexp.MustCompile(`\*{4,}`),
	regexp.MustCompile(`x{4,}`),
}

// ExtractPaymentMethod identifies how a transaction was paid from its
// description. A masked card number with no named scheme reports as a
// generic bank card; an empty string means no method was recognized.
func ExtractPaymentMethod(description string) string {
	if description == "" {
		return ""
	}
	lower := strings.ToLower(description)
	normalized := NormalizeForMatch(lower)

	for _, method := range paymentMethods {
		if strings.Contains(lower, method.token) || strings.Contains(normalized, method.token) {
			return method.name
		}
	}
	for _, pattern := range cardMaskPatterns {
		if pattern.MatchString(lower) {
			return "بطاقة بنكية"
		}
	}
	return ""
}
