package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/nav"
	"omgagents.ai/web/internal/reveal"
)

func logo(class string) g.Node {
	return A(Href("#"+nav.SectionHero), Class("transition-opacity hover:opacity-80"), Aria("label", "OMG Agents"),
		Img(Src("/assets/img/omg-logo.svg"), Alt("OMG Agents logo"), Width("120"), Height("50"), Class(class)),
	)
}

func siteHeader(tr i18n.Translator, p handlers.PageData) g.Node {
	return Header(ID("site-header"), Class("fixed inset-x-0 top-0 z-40 border-b border-gray-100 bg-white/80 backdrop-blur"),
		Div(Class("container mx-auto flex max-w-6xl items-center justify-between px-6 py-3"),
			logo("h-10 w-24 md:h-[50px] md:w-[120px]"),
			Div(Class("flex items-center gap-3"),
				languageToggle(tr, p.OtherLang),
				overlayLink(nav.ContactLink(tr.T("navigation.contact")), "btn btn-primary btn-sm", Data("capture-scroll", "")),
				A(Href("/menu"), Class("btn btn-ghost btn-sm"), intoOverlay("/menu"), Data("capture-scroll", ""),
					Aria("label", tr.T("navigation.menu")),
					Span(Aria("hidden", "true"), g.Text("☰")),
					Span(Class("sr-only md:not-sr-only"), g.Text(tr.T("navigation.menu"))),
				),
			),
		),
	)
}

// languageToggle switches to other; hx-boost swaps the body in place.
func languageToggle(tr i18n.Translator, other string) g.Node {
	return A(Href("/lang/"+other), Class("lang-toggle rounded-full border border-gray-200 px-3 py-1 text-sm hover:border-purple-400"),
		g.Attr("hreflang", other), Data("lang", other),
		Aria("label", tr.T("language.current")),
		g.Text(tr.T("language.toggle")),
	)
}

func siteFooter(tr i18n.Translator, p handlers.PageData) g.Node {
	f := p.Footer
	email := tr.T("footer.email")
	return Footer(revealAttrs(p, reveal.SectionFooter, "bg-gray-900 text-gray-300"),
		Div(Class("container mx-auto grid max-w-6xl gap-10 px-6 py-14 md:grid-cols-4"),
			Div(
				Img(Src("/assets/img/omg-logo-white.svg"), Alt("OMG Agents logo"), Width("120"), Height("50")),
				P(Class("mt-4 text-sm"), g.Text(tr.T("footer.companyDescription"))),
			),
			footerColumn(f.QuickLinks),
			footerColumn(f.Solutions),
			Div(
				H3(Class("mb-4 font-semibold text-white"), g.Text(tr.T("footer.contact"))),
				P(Class("text-sm"), g.Text(tr.T("footer.address"))),
				A(Href("mailto:"+email), Class("mt-2 block text-sm hover:text-white"), g.Text(email)),
				overlayLink(nav.ContactLink(tr.T("navigation.contact")), "btn btn-primary btn-sm mt-4", Data("capture-scroll", "")),
			),
		),
		Div(Class("border-t border-gray-800"),
			Div(Class("container mx-auto flex max-w-6xl flex-col items-center justify-between gap-4 px-6 py-6 text-sm md:flex-row"),
				P(g.Text(p.Copyright)),
				Div(Class("flex items-center gap-6"),
					g.Map(f.Legal, func(l nav.Link) g.Node {
						return overlayLink(l, "hover:text-white", Data("capture-scroll", ""))
					}),
					languageToggle(tr, p.OtherLang),
				),
			),
		),
	)
}

func footerColumn(grp nav.Group) g.Node {
	return Div(
		H3(Class("mb-4 font-semibold text-white"), g.Text(grp.Title)),
		Ul(Class("space-y-2 text-sm"),
			g.Map(grp.Links, func(l nav.Link) g.Node {
				return Li(overlayLink(l, "hover:text-white", Data("capture-scroll", "")))
			}),
		),
	)
}
