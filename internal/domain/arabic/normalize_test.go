package arabic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Sentinels(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   "))
	})

	t.Run("dot-only cell is unreadable", func(t *testing.T) {
		assert.Equal(t, Unreadable, Normalize("......"))
		assert.Equal(t, Unreadable, Normalize("…⋯"))
	})

	t.Run("sentinels pass through", func(t *testing.T) {
		assert.Equal(t, Unreadable, Normalize(Unreadable))
		assert.Equal(t, HiddenContent, Normalize(HiddenContent))
	})
}

func TestCellText(t *testing.T) {
	assert.Equal(t, HiddenContent, CellText("..."))
	assert.Equal(t, HiddenContent, CellText("***"))
	assert.Equal(t, HiddenContent, CellText(""))
	assert.Equal(t, "تحويل داخلي", CellText("تحويل داخلي"))
}

func TestNormalize_StripsControlMarks(t *testing.T) {
	input := "‏تحويل‎ ‫داخلي‬"
	got := Normalize(input)
	assert.Equal(t, "تحويل داخلي", got)
	assert.NotContains(t, got, "‏")
	assert.NotContains(t, got, "‫")
}

func TestNormalize_ArabicIndicDigits(t *testing.T) {
	got := Normalize("مبلغ ١٢٣٤٥ ريال")
	assert.Equal(t, "مبلغ 12345 ريال", got)

	for _, r := range got {
		assert.False(t, r >= '٠' && r <= '٩', "Arabic-Indic digit leaked: %q", r)
	}
}

func TestNormalize_ReversedText(t *testing.T) {
	t.Run("dictionary marker triggers reversal", func(t *testing.T) {
		// "لاير" is "ريال" emitted in visual order.
		got := Normalize("لاير 500")
		assert.Contains(t, got, "ريال")
		assert.NotContains(t, got, "لاير")
	})

	t.Run("latin prefix with reversed arabic", func(t *testing.T) {
		// Segment reversal must fix the Arabic span and keep the Latin
		// span in original order.
		got := Normalize("SAR 500 بحس")
		assert.Contains(t, got, "SAR 500")
		assert.Contains(t, got, "سحب")
	})

	t.Run("healthy mixed text untouched", func(t *testing.T) {
		got := Normalize("STC Pay تحويل لمحفظة")
		assert.Contains(t, got, "تحويل")
		assert.Contains(t, got, "STC Pay")
	})
}

func TestNormalize_SplitLetters(t *testing.T) {
	assert.Equal(t, "السعودية", Normalize("ا ل س ع و د ي ة"))
	got := Normalize("ت ح و ي ل راتب")
	assert.Contains(t, got, "تحويل")
}

func TestNormalize_CorruptedWords(t *testing.T) {
	got := Normalize("عاديإ نقدي")
	assert.Contains(t, got, "إيداع")
}

func TestNormalize_PresentationForms(t *testing.T) {
	// Isolated presentation forms (U+FE8x..U+FEFx) fold to base letters.
	got := Normalize("ﺭﺳﻮﻡ")
	assert.Contains(t, got, "رسوم")
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"تحويل داخلي صادر",
		"لاير 500",
		"SAR 500 بحس",
		"مبلغ ١٢٣ ريال",
		"ا ل س ع و د ي ة",
		"STARBUCKS JEDDAH",
		"......",
		"",
		"CITY: Digital Channel رسوم تحويل",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "not a fixed point for %q", input)
	}
}

func TestDeepNormalize(t *testing.T) {
	t.Run("sentinels pass through", func(t *testing.T) {
		assert.Equal(t, Unreadable, DeepNormalize(Unreadable))
		assert.Equal(t, HiddenContent, DeepNormalize(HiddenContent))
	})

	t.Run("banking vocabulary fixed", func(t *testing.T) {
		got := DeepNormalize("دادس فاتورة")
		assert.Contains(t, got, "سداد")
	})

	t.Run("windows-1256 mojibake recovered", func(t *testing.T) {
		// "سحب" encoded in Windows-1256, then each byte widened to a rune:
		// the classic wrong-charset round trip.
		mojibake := "ÊÍæíá" // تحويل in cp1256 bytes
		got := DeepNormalize(mojibake)
		assert.Contains(t, got, "تحويل")
	})

	t.Run("utf8 bytes seen as latin1 recovered", func(t *testing.T) {
		raw := []byte("سحب نقدي")
		widened := make([]rune, len(raw))
		for i, b := range raw {
			widened[i] = rune(b)
		}
		got := DeepNormalize(string(widened))
		assert.Contains(t, got, "سحب")
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, input := range []string{"تحويل داخلي", "دادس فاتورة", "STARBUCKS"} {
			once := DeepNormalize(input)
			require.Equal(t, once, DeepNormalize(once))
		}
	})
}

func TestDeepNormalize_SplitLetters(t *testing.T) {
	t.Run("curated joins survive the deep path", func(t *testing.T) {
		for _, tc := range []struct{ in, want string }{
			{"ا ل س ع و د ي ة", "السعودية"},
			{"ا ل أ ه ل ي", "الأهلي"},
			{"ا ل ب ن ك", "البنك"},
			{"ت ح و ي ل راتب", "تحويل راتب"},
		} {
			assert.Equal(t, tc.want, DeepNormalize(tc.in))
		}
	})

	t.Run("never worse than the shallow path on split letters", func(t *testing.T) {
		for _, input := range []string{
			"ا ل س ع و د ي ة", "ا ل أ ه ل ي", "ا ل ر ي ا ض",
			"ا ل ب ن ك", "س ح ب", "ر س و م",
		} {
			assert.Equal(t, Normalize(input), DeepNormalize(input),
				"deep path diverged for %q", input)
		}
	})
}

func TestReverseSegments(t *testing.T) {
	// Latin and digit spans keep their order, Arabic spans flip.
	got := reverseSegments("ABC 123 بحس")
	assert.True(t, strings.HasPrefix(got, "ABC 123"))
	assert.Contains(t, got, "سحب")
}
