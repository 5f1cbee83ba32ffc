package categorization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanerStripsNoise(t *testing.T) {
	c := NewCleaner(DefaultTaxonomy())

	t.Run("city and country codes removed", func(t *testing.T) {
		got := c.Clean("STARBUCKS JEDDAH SA 1234567890123")
		lower := strings.ToLower(got)
		assert.Contains(t, lower, "starbucks")
		assert.NotContains(t, lower, "jeddah")
		assert.NotContains(t, lower, "1234567890123")
	})

	t.Run("payment method tokens removed", func(t *testing.T) {
		got := c.Clean("VISA ماكدونالدز فرع الملز")
		lower := strings.ToLower(got)
		assert.NotContains(t, lower, "visa")
		assert.Contains(t, got, "ماكدونالدز")
	})

	t.Run("card masks removed", func(t *testing.T) {
		got := c.Clean("كارفور ****1234")
		assert.Contains(t, got, "كارفور")
		assert.NotContains(t, got, "1234")
	})
}

func TestCleanerPreservesKeywords(t *testing.T) {
	c := NewCleaner(DefaultTaxonomy())

	t.Run("fee words survive although fees are ignore tokens", func(t *testing.T) {
		got := c.Clean("رسوم تحويل حوالة")
		assert.Contains(t, got, "رسوم")
	})

	t.Run("digital channel survives although it is a payment token", func(t *testing.T) {
		got := c.Clean("رسوم digital channel")
		assert.Contains(t, strings.ToLower(got), "digital channel")
	})

	t.Run("ignore token inside a longer arabic word is kept", func(t *testing.T) {
		// "خصم" is an ignore token but must not be cut out of "خصمات".
		got := c.Clean("متجر خصمات")
		assert.Contains(t, got, "خصمات")
	})
}

func TestNormalizeForMatch(t *testing.T) {
	t.Run("unifies alef and taa marbuta", func(t *testing.T) {
		assert.Equal(t, "احمد مكتبه", NormalizeForMatch("أحمد مكتبة"))
	})

	t.Run("westernizes digits", func(t *testing.T) {
		assert.Equal(t, "قسط 123", NormalizeForMatch("قسط ١٢٣"))
	})

	t.Run("folds presentation forms", func(t *testing.T) {
		assert.Equal(t, "رسوم", NormalizeForMatch("ﺭﺳﻮﻡ"))
	})
}

func TestCleanReport(t *testing.T) {
	got := CleanReport("تحويل REF:AB9912 راتب 1234567890123")
	assert.Contains(t, got, "تحويل")
	assert.Contains(t, got, "راتب")
	assert.NotContains(t, got, "REF")
	assert.NotContains(t, got, "1234567890123")
}
