package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/locales"
)

func translator(t *testing.T, lang string) i18n.Translator {
	t.Helper()
	b, err := i18n.Load(locales.FS, "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b.Translator(lang)
}

func TestSectionsFollowPageOrder(t *testing.T) {
	links := Sections(translator(t, "en"))
	require.Len(t, links, 4)

	var hrefs []string
	for _, l := range links {
		hrefs = append(hrefs, l.Href)
		assert.Empty(t, l.Overlay)
	}
	assert.Equal(t, []string{"#hero", "#about", "#products", "#why-choose"}, hrefs)
	assert.Equal(t, "Home", links[0].Label)
}

func TestBuildMenuListsEveryProduct(t *testing.T) {
	m := BuildMenu(translator(t, "ja"))

	assert.Equal(t, "メインセクション", m.Main.Title)
	require.Len(t, m.Suites, 3)

	var overlays []string
	for _, g := range m.Suites {
		require.Len(t, g.Links, 3)
		for _, l := range g.Links {
			overlays = append(overlays, l.Overlay)
			assert.Equal(t, SectionProducts, l.Section)
		}
	}
	assert.Equal(t, []string{
		"/products/chat-1", "/products/chat-2", "/products/chat-3",
		"/products/voice-1", "/products/voice-2", "/products/voice-3",
		"/products/visual-1", "/products/visual-2", "/products/visual-3",
	}, overlays)

	require.Len(t, m.Company.Links, 5)
	assert.Equal(t, "#about", m.Company.Links[0].Href)
	assert.Equal(t, "/about/1", m.Company.Links[1].Overlay)
	assert.Equal(t, "/?about=4#about", m.Company.Links[4].Href)
}

func TestBuildFooterOpensLeadProducts(t *testing.T) {
	f := BuildFooter(translator(t, "en"))

	require.Len(t, f.Solutions.Links, 3)
	assert.Equal(t, "Chat Solutions", f.Solutions.Links[0].Label)
	assert.Equal(t, "/products/chat-1", f.Solutions.Links[0].Overlay)
	assert.Equal(t, "/products/visual-1", f.Solutions.Links[2].Overlay)

	require.Len(t, f.Legal, 2)
	assert.Equal(t, "/legal/privacy", f.Legal[0].Overlay)
	assert.Equal(t, "/?legal=terms", f.Legal[1].Href)
}

func TestContactLink(t *testing.T) {
	l := ContactLink("Contact")
	assert.Equal(t, "/?contact=1", l.Href)
	assert.Equal(t, "/contact", l.Overlay)
}
