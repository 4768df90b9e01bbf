// internal/i18n/i18n_test.go
package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	tr, err := New(localeFS, "locales", "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "tr"}, tr.Languages())

	keys := []string{
		KeyWelcome, KeyInternalError, KeyRateLimited,
		KeyCatalogNotFound, KeyCatalogDuplicateBarcode, KeyCatalogDuplicateVariantCombination,
		KeyCatalogNotVariantCapable, KeyCatalogMissingColorImage, KeyCatalogColorRequired,
		KeyCatalogMissingUploadFile, KeyCatalogValidationInput,
		KeyResourceProduct, KeyResourceVariant, KeyResourceColor, KeyResourceImage,
	}
	for _, lang := range tr.Languages() {
		for _, key := range keys {
			_, ok := tr.lookup(lang, key)
			assert.True(t, ok, "%s missing in %s", key, lang)
		}
	}
}

func TestTranslateFallsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"l/en.json": {Data: []byte(`{"greet": "hello %s", "only_en": "english"}`)},
		"l/tr.json": {Data: []byte(`{"greet": "merhaba %s"}`)},
	}
	tr, err := New(fsys, "l", "en")
	require.NoError(t, err)

	assert.Equal(t, "merhaba ali", tr.T("tr", "greet", "ali"))
	assert.Equal(t, "english", tr.T("tr", "only_en"))
	assert.Equal(t, "hello bob", tr.T("de", "greet", "bob"))
	assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
}

func TestNewRequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{"l/tr.json": {Data: []byte(`{}`)}}
	_, err := New(fsys, "l", "en")
	assert.Error(t, err)
}
