package i18n

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omgagents.ai/web/locales"
)

func loadShipped(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load(locales.FS, "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadShipped(t)
	assert.Equal(t, "en", b.Resolve("ja;q=0.8, en;q=0.9"))
	assert.Equal(t, "ja", b.Resolve("ja-JP,ja;q=0.9,en;q=0.5"))
	assert.Equal(t, "en", b.Resolve("en-US"))
	assert.Equal(t, "en", b.Resolve("fr-FR"))
	assert.Equal(t, "en", b.Resolve(""))
}

func TestTReturnsLeafOrKey(t *testing.T) {
	b := loadShipped(t)

	assert.Equal(t, "OMG Agents", b.T("en", "meta.title"))
	assert.Equal(t, "ホーム", b.T("ja", "navigation.home"))
	assert.Equal(t, "missing.key", b.T("en", "missing.key"))
	assert.Equal(t, "navigation.home.deeper", b.T("ja", "navigation.home.deeper"))
	// object leaves are not strings
	assert.Equal(t, "legal.privacyPolicy", b.T("en", "legal.privacyPolicy"))
}

func TestValueReturnsObjectsAndNil(t *testing.T) {
	b := loadShipped(t)

	v, ok := b.Value("en", "legal.termsOfService").(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Terms of Service", v["title"])
	assert.Nil(t, b.Value("en", "legal.cookiePolicy"))
	assert.Nil(t, b.Value("en", ""))
}

func TestStringsEnsuresArray(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"list":["a","b",3,"c"],"single":"x","obj":{"k":"v"}}`)},
	}
	b, err := Load(fsys, "en", []string{"en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, b.Strings("en", "list"))
	assert.Equal(t, []string{"x"}, b.Strings("en", "single"))
	assert.Equal(t, []string{}, b.Strings("en", "obj"))
	assert.Equal(t, []string{}, b.Strings("en", "absent"))
}

func TestMissingKeyReturnsKeyNotOtherLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"a":{"b":"english","c":"only-en"}}`)},
		"ja.json": {Data: []byte(`{"a":{"b":"日本語"}}`)},
	}
	b, err := Load(fsys, "en", []string{"en", "ja"})
	require.NoError(t, err)

	assert.Equal(t, "日本語", b.T("ja", "a.b"))
	assert.Equal(t, "a.c", b.T("ja", "a.c"))
	assert.Equal(t, "only-en", b.T("en", "a.c"))
	assert.Equal(t, "a.d", b.T("ja", "a.d"))
	assert.Nil(t, b.Value("ja", "a.c"))
}

func TestBrokenLanguageServedFromFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"greeting":"hello"}`)},
		"ja.json": {Data: []byte(`{not json`)},
	}
	b, err := Load(fsys, "en", []string{"en", "ja"})
	require.NoError(t, err)

	assert.Contains(t, b.Degraded(), "ja")
	assert.True(t, b.IsSupported("ja"))
	assert.Equal(t, "hello", b.T("ja", "greeting"))
}

func TestMissingFallbackFails(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "en", []string{"en"})
	require.Error(t, err)
}

func TestShippedTablesShareKeys(t *testing.T) {
	b := loadShipped(t)
	for _, key := range []string{
		"navigation.contactUs",
		"hero.title",
		"about.card4Benefit5",
		"products.visualProducts.elderCare.fullDescription",
		"whyChoose.point4.illustrationText",
		"contactForm.validation.securityVerification",
		"footer.termsOfService",
	} {
		assert.NotEqual(t, key, b.T("en", key), key)
		assert.NotEqual(t, key, b.T("ja", key), key)
	}
	assert.Len(t, b.Strings("ja", "products.chatProducts.customerService.features"), 4)
}

func TestTranslatorContext(t *testing.T) {
	b := loadShipped(t)
	tr := b.Translator("JA")
	assert.Equal(t, "ja", tr.Lang())
	assert.Equal(t, "en", tr.Other())

	ctx := WithTranslator(context.Background(), tr)
	got := FromContext(ctx)
	assert.Equal(t, "お問い合わせ", got.T("navigation.contact"))

	zero := FromContext(context.Background())
	assert.Equal(t, "navigation.contact", zero.T("navigation.contact"))
	assert.Equal(t, "en", b.Translator("de").Lang())
}
