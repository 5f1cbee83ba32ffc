package categorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPaymentMethod(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        string
	}{
		{"apple pay", "Apple Pay شراء عبر نقاط البيع", "Apple Pay"},
		{"stc pay arabic", "تحويل الى اس تي سي باي", "STC Pay"},
		{"mada pay beats mada", "مدى باي عملية شراء", "Mada Pay"},
		{"plain mada", "شراء مدى محلية", "Mada"},
		{"pos terminal", "POS PURCHASE RIYADH", "نقطة البيع"},
		{"atm", "ATM WITHDRAWAL", "صراف آلي"},
		{"masked card", "شراء بطاقة ****9921", "بطاقة بنكية"},
		{"nothing recognized", "حوالة صادرة", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractPaymentMethod(tc.description))
		})
	}
}
