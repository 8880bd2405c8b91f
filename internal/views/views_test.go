package views

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"omgagents.ai/web/internal/contact"
	"omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/pageload"
	"omgagents.ai/web/internal/reveal"
	"omgagents.ai/web/locales"
)

func translator(t *testing.T, lang string) i18n.Translator {
	t.Helper()
	b, err := i18n.Load(locales.FS, "en", []string{"en", "ja"})
	require.NoError(t, err)
	return b.Translator(lang)
}

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, n.Render(&sb))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func TestHomeRendersSectionsAndMeta(t *testing.T) {
	tr := translator(t, "en")
	page := handlers.BuildPage(tr, handlers.PageInput{
		SiteURL:   "https://omgagents.ai",
		CSRFToken: "tok",
		Revealed:  []string{reveal.SectionAbout},
	})
	doc := render(t, Home(tr, page))

	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	for _, id := range []string{"hero", "about", "products", "why-choose"} {
		assert.Equal(t, 1, doc.Find("section#"+id).Length(), id)
	}
	assert.True(t, doc.Find("#about").HasClass("is-visible"))
	assert.False(t, doc.Find("#products").HasClass("is-visible"))
	assert.True(t, doc.Find("#products").HasClass("reveal"))

	assert.Equal(t, 4, doc.Find("[data-card]").Length())
	assert.Equal(t, 3, doc.Find("[data-suite]").Length())
	assert.Equal(t, "https://omgagents.ai/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 3, doc.Find(`link[rel="alternate"]`).Length())
	assert.GreaterOrEqual(t, doc.Find(`script[type="application/ld+json"]`).Length(), 1)
	assert.Contains(t, doc.Find("body").AttrOr("hx-headers", ""), `"X-CSRF-Token":"tok"`)
	assert.Equal(t, 1, doc.Find("#page-loader").Length())

	root := doc.Find("#" + OverlayRootID)
	assert.Equal(t, 1, root.Length())
	_, open := root.Attr("data-open")
	assert.False(t, open)
}

func TestHomeWithoutLoaderOnceContentReady(t *testing.T) {
	tr := translator(t, "ja")
	page := handlers.BuildPage(tr, handlers.PageInput{Load: pageload.Final()})
	doc := render(t, Home(tr, page))

	assert.Equal(t, "ja", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 0, doc.Find("#page-loader").Length())
	assert.Equal(t, "true", doc.Find("body").AttrOr("data-content-ready", ""))
	assert.Equal(t, "/lang/en", doc.Find("header [data-lang]").First().AttrOr("href", ""))
}

func TestAnalyticsScriptsOnlyWhenConfigured(t *testing.T) {
	tr := translator(t, "en")
	page := handlers.BuildPage(tr, handlers.PageInput{})
	doc := render(t, Home(tr, page))
	assert.Equal(t, 0, doc.Find(`script[src*="googletagmanager"]`).Length())

	page.Analytics = handlers.Analytics{GA4MeasurementID: "G-TEST"}
	doc = render(t, Home(tr, page))
	assert.Equal(t, 1, doc.Find(`script[src*="gtag/js?id=G-TEST"]`).Length())
}

func TestOverlayLinksDegradeToDeepLinks(t *testing.T) {
	tr := translator(t, "en")
	doc := render(t, Home(tr, handlers.BuildPage(tr, handlers.PageInput{})))

	card := doc.Find(`[data-card="2"] a`).First()
	assert.Equal(t, "/?about=2#about", card.AttrOr("href", ""))
	assert.Equal(t, "/about/2", card.AttrOr("hx-get", ""))
	assert.Equal(t, "#"+OverlayRootID, card.AttrOr("hx-target", ""))
	assert.Equal(t, "outerHTML", card.AttrOr("hx-swap", ""))
}

func TestAboutModal(t *testing.T) {
	tr := translator(t, "en")
	o, ok := handlers.CardOverlay(tr, 1)
	require.True(t, ok)
	doc := render(t, OverlayRoot(tr, o))

	assert.Equal(t, "about", doc.Find("#"+OverlayRootID).AttrOr("data-open", ""))
	dialog := doc.Find(`[role="dialog"]`)
	require.Equal(t, 1, dialog.Length())
	assert.Equal(t, "about-modal-title-1", dialog.AttrOr("aria-labelledby", ""))
	assert.Equal(t, tr.T("about.card1Title"), strings.TrimSpace(doc.Find("#about-modal-title-1").Text()))
	assert.Equal(t, 5, doc.Find("li").Length())
	assert.Equal(t, "/overlay/close", doc.Find("[data-overlay-close]").First().AttrOr("hx-get", ""))
}

func TestProductModalOffersDemo(t *testing.T) {
	tr := translator(t, "en")
	o, ok := handlers.ProductOverlay(tr, "chat-1")
	require.True(t, ok)
	doc := render(t, OverlayRoot(tr, o))

	assert.Equal(t, "product", doc.Find(`[data-overlay]`).AttrOr("data-overlay", ""))
	assert.Equal(t, "/contact", doc.Find(`a[hx-get="/contact"]`).AttrOr("hx-get", ""))
}

func TestLegalModalSources(t *testing.T) {
	tr := translator(t, "en")

	md := content.Page{Kind: content.KindPrivacy, Title: "Privacy", LastUpdated: "Last updated: today",
		HTML: `<h2 id="a">A</h2><p>Body</p>`, Source: content.SourceMarkdown}
	doc := render(t, OverlayRoot(tr, handlers.LegalOverlay(md)))
	assert.Equal(t, 1, doc.Find(".prose h2#a").Length())
	assert.Contains(t, doc.Text(), "Last updated: today")

	table := content.Page{Kind: content.KindTerms, Title: "Terms", Source: content.SourceTable,
		Sections: []content.Section{{Title: "Use", Paragraphs: []string{"one", "two"}}}}
	doc = render(t, OverlayRoot(tr, handlers.LegalOverlay(table)))
	assert.Equal(t, 0, doc.Find(".prose").Length())
	assert.Equal(t, 2, doc.Find("section p").Length())
}

func TestMenuPanel(t *testing.T) {
	tr := translator(t, "en")
	doc := render(t, OverlayRoot(tr, handlers.MenuOverlay(tr)))

	assert.Equal(t, "menu", doc.Find("#"+OverlayRootID).AttrOr("data-open", ""))
	assert.GreaterOrEqual(t, doc.Find("[data-close-overlay]").Length(), 4)
	assert.Equal(t, 3, doc.Find("h4").Length())
	assert.Equal(t, 1, doc.Find(`a[hx-get="/contact"]`).Length())
}

func TestContactModalForm(t *testing.T) {
	tr := translator(t, "en")
	form := handlers.NewContactForm("tok", contact.Gate{})
	form.Values = handlers.ContactValues{Name: "Ada", Email: "ada@example.com", Message: "Hello <there>"}
	doc := render(t, OverlayRoot(tr, handlers.ContactOverlay(form)))

	f := doc.Find("form#" + ContactFormID)
	require.Equal(t, 1, f.Length())
	assert.Equal(t, "/contact", f.AttrOr("hx-post", ""))
	assert.Equal(t, "multipart/form-data", f.AttrOr("enctype", ""))
	assert.Equal(t, "tok", f.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
	assert.Equal(t, "Ada", f.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, "Hello <there>", f.Find(`textarea[name="message"]`).Text())
	for _, name := range []string{"botField", "website", "url"} {
		assert.Equal(t, "", f.Find(`input[name="`+name+`"]`).AttrOr("value", "x"), name)
	}
	assert.Equal(t, 2, f.Find(`input[type="checkbox"]`).Length())

	files := f.Find(`input[type="file"]`)
	assert.Equal(t, "attachments", files.AttrOr("name", ""))
	assert.Equal(t, handlers.AcceptExtensions, files.AttrOr("accept", ""))
	assert.Equal(t, "/contact/attachments", files.AttrOr("hx-post", ""))
	assert.Equal(t, "5", files.AttrOr("data-max-files", ""))
}

func TestContactStatus(t *testing.T) {
	tr := translator(t, "en")

	doc := render(t, ContactStatus(tr, nil))
	assert.Equal(t, "", strings.TrimSpace(doc.Find("#"+ContactStatusID).Text()))

	doc = render(t, ContactStatus(tr, handlers.SuccessStatus(tr, 0)))
	st := doc.Find("#" + ContactStatusID)
	assert.Equal(t, "success", st.AttrOr("data-status", ""))
	assert.Equal(t, "/contact/status", st.AttrOr("hx-get", ""))
	assert.Equal(t, "load delay:5000ms", st.AttrOr("hx-trigger", ""))

	doc = render(t, ContactStatus(tr, handlers.SuccessStatus(tr, 8*time.Second)))
	assert.Equal(t, "load delay:8000ms", doc.Find("#"+ContactStatusID).AttrOr("hx-trigger", ""))

	doc = render(t, ContactStatus(tr, handlers.RejectionStatus(tr, &contact.Rejection{Reason: contact.ReasonRateLimit})))
	st = doc.Find("#" + ContactStatusID)
	assert.Equal(t, "error", st.AttrOr("data-status", ""))
	_, polls := st.Attr("hx-get")
	assert.False(t, polls)
	assert.Equal(t, tr.T("contactForm.validation.rateLimit"), strings.TrimSpace(st.Text()))
}

func TestAttachmentList(t *testing.T) {
	tr := translator(t, "en")
	rows := []handlers.AttachmentInfo{{Name: "a.pdf", Size: "1.00 KB", Icon: "📄"}}

	doc := render(t, AttachmentList(tr, rows, nil))
	assert.Equal(t, 1, doc.Find(`[data-attachment="a.pdf"]`).Length())
	assert.Equal(t, 0, doc.Find(`[role="alert"]`).Length())

	doc = render(t, AttachmentList(tr, nil, &handlers.FormStatus{Message: "too many"}))
	assert.Equal(t, "too many", doc.Find(`[role="alert"]`).Text())
}

func TestNotFoundFragment(t *testing.T) {
	tr := translator(t, "en")
	doc := render(t, NotFound(tr))
	assert.Equal(t, "error", doc.Find("#"+OverlayRootID).AttrOr("data-open", ""))
	assert.Contains(t, doc.Text(), tr.T("errors.notFound"))
}
