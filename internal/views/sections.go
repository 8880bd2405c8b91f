package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"omgagents.ai/web/internal/catalog"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/nav"
	"omgagents.ai/web/internal/reveal"
)

// Home renders the full landing page.
func Home(tr i18n.Translator, p handlers.PageData) g.Node {
	return Document(tr, p,
		siteHeader(tr, p),
		Main(ID("main"),
			heroSection(tr, p),
			aboutSection(tr, p),
			productsSection(tr, p),
			whyChooseSection(tr, p),
		),
		siteFooter(tr, p),
		OverlayRoot(tr, p.Overlay),
	)
}

// revealAttrs marks a section for scroll-latched reveal. class holds the
// section's own classes.
func revealAttrs(p handlers.PageData, id, class string) g.Node {
	return g.Group([]g.Node{
		ID(id),
		Data("reveal", id),
		c.Classes{class: true, "reveal": true, "is-visible": p.Revealed[id]},
	})
}

func heroSection(tr i18n.Translator, p handlers.PageData) g.Node {
	h := p.Hero
	return Section(revealAttrs(p, reveal.SectionHero, "relative overflow-hidden bg-gradient-to-br from-indigo-50 via-white to-purple-50 pt-32 pb-20 md:pt-40 md:pb-28"),
		Div(Class("container mx-auto max-w-6xl px-6 text-center hero-enter"),
			Span(Class("inline-flex items-center rounded-full border border-purple-200 bg-white/70 px-4 py-1 text-sm font-medium text-purple-700"),
				g.Text(h.Badge),
			),
			H1(Class("mt-6 text-4xl font-extrabold leading-tight tracking-tight md:text-6xl"), g.Raw(h.TitleHTML)),
			P(Class("mx-auto mt-6 max-w-3xl text-lg text-gray-600 md:text-xl"), g.Raw(h.DescriptionHTML)),
			Div(Class("mt-10 flex flex-col items-center justify-center gap-4 sm:flex-row"),
				overlayLink(nav.ContactLink(h.Primary), "btn btn-primary"),
				A(Href("#"+nav.SectionProducts), Class("btn btn-ghost"), g.Text(h.Secondary)),
			),
		),
	)
}

func aboutSection(tr i18n.Translator, p handlers.PageData) g.Node {
	return Section(revealAttrs(p, reveal.SectionAbout, "py-20 md:py-28"),
		Div(Class("container mx-auto max-w-6xl px-6"),
			sectionHeading(tr.T("about.title"), tr.T("about.subtitle")),
			Div(Class("mx-auto mb-14 max-w-3xl text-center"),
				H3(Class("text-2xl font-bold md:text-3xl"), g.Text(tr.T("about.mainHeading"))),
				P(Class("mt-4 text-gray-600"), g.Text(tr.T("about.description"))),
			),
			Div(Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-4"),
				g.Map(p.Cards, func(card catalog.Card) g.Node {
					return aboutCard(tr, card)
				}),
			),
		),
	)
}

func aboutCard(tr i18n.Translator, card catalog.Card) g.Node {
	link := nav.CardLink(tr.T("about.learnMore"), card.ID)
	return Article(Class("flex flex-col rounded-2xl border bg-gradient-to-br p-6 shadow-sm transition hover:shadow-lg "+card.Style.CardBg+" "+card.Style.Border),
		Data("card", strconv.Itoa(card.ID)),
		Div(Class("mb-4 flex h-12 w-12 items-center justify-center rounded-xl text-white "+card.Style.IconBg),
			g.Text(strconv.Itoa(card.ID)),
		),
		H4(Class("text-lg font-semibold"), g.Text(card.Title)),
		P(Class("mt-2 flex-1 text-sm text-gray-600"), g.Text(card.Summary)),
		overlayLink(link, "mt-4 text-sm font-medium text-purple-700 hover:text-purple-500"),
	)
}

func productsSection(tr i18n.Translator, p handlers.PageData) g.Node {
	return Section(revealAttrs(p, reveal.SectionProducts, "bg-gray-50 py-20 md:py-28"),
		Div(Class("container mx-auto max-w-6xl px-6"),
			sectionHeading(tr.T("products.title"), tr.T("products.subtitle")),
			Div(Class("grid gap-8 lg:grid-cols-3"),
				g.Map(p.Suites, func(s catalog.Suite) g.Node {
					return suiteCard(tr, s)
				}),
			),
		),
	)
}

func suiteCard(tr i18n.Translator, s catalog.Suite) g.Node {
	return Article(Class("flex flex-col overflow-hidden rounded-2xl bg-white shadow-sm"), Data("suite", s.Key),
		Div(Class("flex h-32 items-center justify-center bg-gradient-to-br text-4xl "+s.Gradient),
			Span(Aria("hidden", "true"), g.Text(s.Illustration)),
		),
		Div(Class("flex flex-1 flex-col p-6"),
			H3(Class("text-xl font-bold"), g.Text(s.Title)),
			P(Class("mt-1 text-sm font-medium text-purple-700"), g.Text(s.Tagline)),
			P(Class("mt-3 text-sm text-gray-600"), g.Text(s.Description)),
			Ul(Class("mt-6 space-y-3"),
				g.Map(s.Products, func(pr catalog.Product) g.Node {
					return Li(Class("rounded-xl border border-gray-100 p-4"),
						H4(Class("font-semibold"), g.Text(pr.Name)),
						P(Class("mt-1 text-sm text-gray-600"), g.Text(pr.Description)),
						overlayLink(nav.ProductLink(tr.T("products.learnMore"), pr.ID), "mt-2 inline-block text-sm font-medium text-purple-700 hover:text-purple-500"),
					)
				}),
			),
		),
	)
}

func whyChooseSection(tr i18n.Translator, p handlers.PageData) g.Node {
	return Section(revealAttrs(p, reveal.SectionWhyChoose, "py-20 md:py-28"),
		Div(Class("container mx-auto max-w-6xl px-6"),
			sectionHeading(tr.T("whyChoose.title"), tr.T("whyChoose.subtitle")),
			Div(Class("grid gap-8 md:grid-cols-2"),
				g.Map(p.Points, func(pt catalog.Point) g.Node {
					return Article(Class("reveal-item flex gap-6 rounded-2xl bg-gradient-to-br p-6 "+pt.Background),
						Style(fmt.Sprintf("transition-delay:%dms", pt.Delay.Milliseconds())),
						Div(Class("flex h-20 w-20 shrink-0 items-center justify-center rounded-2xl bg-white text-2xl font-extrabold text-purple-700 shadow"),
							g.Text(pt.IllustrationText),
						),
						Div(
							H3(Class("text-lg font-semibold"), g.Text(pt.Title)),
							P(Class("mt-2 text-gray-600"), g.Text(pt.Description)),
						),
					)
				}),
			),
		),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(Class("mb-12 text-center"),
		H2(Class("text-3xl font-bold md:text-4xl"), g.Text(title)),
		P(Class("mt-3 text-lg text-gray-600"), g.Text(subtitle)),
	)
}

// overlayLink renders l as an anchor that degrades to a deep link without
// JavaScript.
func overlayLink(l nav.Link, class string, extra ...g.Node) g.Node {
	return A(Href(l.Href), Class(class),
		g.If(l.Overlay != "", intoOverlay(l.Overlay)),
		g.If(l.Section != "", Data("section", l.Section)),
		g.Group(extra),
		g.Text(l.Label),
	)
}
