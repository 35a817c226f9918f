package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, LangEnglish, Normalize(""))
	assert.Equal(t, LangEnglish, Normalize("en"))
	assert.Equal(t, LangEnglish, Normalize("en-US,en;q=0.9"))
	assert.Equal(t, LangEnglish, Normalize("de"))
	assert.Equal(t, LangKurdish, Normalize("ku"))
	assert.Equal(t, LangKurdish, Normalize("KU"))
	assert.Equal(t, LangKurdish, Normalize("ckb"))
	assert.Equal(t, LangKurdish, Normalize("ku-IQ,ku;q=0.8"))
}

func TestT_BothCatalogsCoverSameKeys(t *testing.T) {
	en := catalogs[LangEnglish]
	ku := catalogs[LangKurdish]
	assert.NotEmpty(t, en)
	for key := range en {
		_, ok := ku[key]
		assert.True(t, ok, "missing Kurdish translation for %q", key)
	}
	for key := range ku {
		_, ok := en[key]
		assert.True(t, ok, "missing English translation for %q", key)
	}
}

func TestT_Lookup(t *testing.T) {
	assert.Equal(t, "Your cart is empty.", T("en", "cart.empty"))
	assert.NotEqual(t, T("en", "cart.empty"), T("ku", "cart.empty"))
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	assert.Equal(t, T("en", "cart.empty"), T("de", "cart.empty"))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}
