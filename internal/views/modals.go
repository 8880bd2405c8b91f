package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"omgagents.ai/web/internal/catalog"
	"omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/nav"
	"omgagents.ai/web/internal/overlay"
)

// OverlayRoot renders the single overlay layer. An empty root means no modal
// is open; data-open drives the body scroll lock.
func OverlayRoot(tr i18n.Translator, o *handlers.Overlay) g.Node {
	if o == nil {
		return Div(ID(OverlayRootID))
	}
	return Div(ID(OverlayRootID), Data("open", string(o.Kind)), overlayBody(tr, o))
}

func overlayBody(tr i18n.Translator, o *handlers.Overlay) g.Node {
	switch {
	case o.Kind == overlay.KindAbout && o.Card != nil:
		return aboutModal(tr, *o.Card)
	case o.Kind == overlay.KindProduct && o.Product != nil:
		return productModal(tr, *o.Product)
	case o.Kind == overlay.KindLegal && o.Legal != nil:
		return legalModal(tr, *o.Legal)
	case o.Kind == overlay.KindContact && o.Contact != nil:
		return contactModal(tr, *o.Contact)
	case o.Kind == overlay.KindMenu && o.Menu != nil:
		return menuPanel(tr, *o.Menu)
	}
	return nil
}

// closeAttrs closes the overlay via htmx, falling back to the home page.
func closeAttrs() g.Node {
	return g.Group([]g.Node{
		Data("overlay-close", ""),
		hxGet("/overlay/close"),
		hxTarget("#" + OverlayRootID),
		hxSwap("outerHTML"),
	})
}

func closeButton(tr i18n.Translator, class string) g.Node {
	return A(Href("/"), Class(class), closeAttrs(), Aria("label", tr.T("navigation.close")),
		Span(Aria("hidden", "true"), g.Text("✕")),
	)
}

// modalShell is the centred dialog with a clickable backdrop.
func modalShell(kind overlay.Kind, labelledBy string, header g.Node, body ...g.Node) g.Node {
	return Div(Class("fixed inset-0 z-50 flex items-center justify-center p-4"),
		Role("dialog"), Aria("modal", "true"), Aria("labelledby", labelledBy), Data("overlay", string(kind)),
		Div(Class("absolute inset-0 bg-black/60 backdrop-blur-sm"), closeAttrs()),
		Div(Class("relative max-h-[90vh] w-full max-w-3xl overflow-y-auto rounded-2xl bg-white shadow-2xl"),
			header,
			Div(Class("p-6 md:p-8"), g.Group(body)),
		),
	)
}

func gradientHeader(tr i18n.Translator, id, title, from, to string, extra ...g.Node) g.Node {
	return Div(Class("relative px-6 py-8 text-white md:px-8"),
		Style("background:linear-gradient(135deg,"+from+","+to+")"),
		closeButton(tr, "absolute right-4 top-4 text-white/80 hover:text-white"),
		g.Group(extra),
		H2(ID(id), Class("text-2xl font-bold md:text-3xl"), g.Text(title)),
	)
}

func aboutModal(tr i18n.Translator, card catalog.Card) g.Node {
	headID := "about-modal-title-" + strconv.Itoa(card.ID)
	return modalShell(overlay.KindAbout, headID,
		gradientHeader(tr, headID, card.Title, card.Style.HeaderFrom, card.Style.HeaderTo),
		P(Class("text-gray-700 leading-relaxed"), g.Text(card.FullDescription)),
		H3(Class("mt-8 mb-4 text-lg font-semibold"), g.Text(tr.T("about.benefitsTitle"))),
		Ul(Class("space-y-3"),
			g.Map(card.Benefits, func(b string) g.Node {
				return Li(Class("flex items-start gap-3"),
					Span(Class("mt-1 flex h-5 w-5 shrink-0 items-center justify-center rounded-full text-xs text-white "+card.Style.IconBg), g.Text("✓")),
					Span(g.Text(b)),
				)
			}),
		),
	)
}

func productModal(tr i18n.Translator, p catalog.Product) g.Node {
	headID := "product-modal-title-" + p.ID
	return modalShell(overlay.KindProduct, headID,
		gradientHeader(tr, headID, p.Name, "#4f46e5", "#7c3aed",
			P(Class("mb-1 text-sm uppercase tracking-wide text-white/80"), g.Text(p.SuiteTitle)),
		),
		P(Class("text-gray-700 leading-relaxed"), g.Text(p.FullDescription)),
		Div(Class("mt-8 grid gap-8 md:grid-cols-2"),
			bulletList(tr.T("products.keyFeatures"), p.Features),
			bulletList(tr.T("products.commonUseCases"), p.UseCases),
		),
		Div(Class("mt-8 flex flex-wrap gap-3"),
			overlayLink(nav.ContactLink(tr.T("products.requestDemo")), "btn btn-primary"),
			A(Href("/"), Class("btn btn-ghost"), closeAttrs(), g.Text(tr.T("products.close"))),
		),
	)
}

func bulletList(title string, items []string) g.Node {
	return Div(
		H3(Class("mb-3 text-lg font-semibold"), g.Text(title)),
		Ul(Class("list-disc space-y-2 pl-5 text-gray-700"),
			g.Map(items, func(s string) g.Node { return Li(g.Text(s)) }),
		),
	)
}

func legalModal(tr i18n.Translator, page content.Page) g.Node {
	headID := "legal-modal-title-" + string(page.Kind)
	var body g.Node
	if page.Source == content.SourceMarkdown {
		body = Div(Class("prose max-w-none"), g.Raw(page.HTML))
	} else {
		body = g.Map(page.Sections, func(s content.Section) g.Node {
			return Section(Class("mb-6"),
				H3(Class("mb-2 text-lg font-semibold"), g.Text(s.Title)),
				g.Map(s.Paragraphs, func(para string) g.Node {
					return P(Class("mb-2 text-gray-700"), g.Text(para))
				}),
			)
		})
	}
	return modalShell(overlay.KindLegal, headID,
		gradientHeader(tr, headID, page.Title, "#1f2937", "#4b5563"),
		g.If(page.LastUpdated != "", P(Class("mb-6 text-sm text-gray-500"), g.Text(page.LastUpdated))),
		body,
	)
}

func menuPanel(tr i18n.Translator, m nav.Menu) g.Node {
	return Div(Class("fixed inset-0 z-50 overflow-y-auto bg-white"),
		Role("dialog"), Aria("modal", "true"), Aria("label", tr.T("navigation.menu")), Data("overlay", string(overlay.KindMenu)),
		Div(Class("flex items-center justify-between border-b border-gray-200 p-6"),
			logo("h-10 w-24 md:h-[50px] md:w-[120px]"),
			closeButton(tr, "text-2xl text-gray-600 hover:text-gray-800"),
		),
		Div(Class("mx-auto max-w-7xl p-6"),
			Div(Class("grid grid-cols-1 gap-8 md:grid-cols-3"),
				menuColumn(m.Main),
				Div(Class("space-y-6"),
					menuTitle(m.Solutions.Title),
					g.Map(m.Suites, func(grp nav.Group) g.Node {
						return Div(Class("space-y-3"),
							H4(Class("flex items-center gap-2 font-medium text-gray-700"), menuMarker(), g.Text(grp.Title)),
							Ul(Class("ml-5 space-y-2"),
								g.Map(grp.Links, func(l nav.Link) g.Node {
									return Li(overlayLink(l, "text-sm text-gray-600 hover:text-purple-600"))
								}),
							),
						)
					}),
				),
				menuColumn(m.Company),
			),
			Div(Class("mt-12 flex flex-wrap items-center justify-center gap-4"),
				overlayLink(nav.ContactLink(tr.T("navigation.contactUs")), "btn btn-primary"),
				languageToggle(tr, tr.Other()),
			),
		),
	)
}

func menuTitle(title string) g.Node {
	return H3(Class("border-b border-gray-200 pb-2 text-lg font-semibold text-gray-700"), g.Text(title))
}

func menuMarker() g.Node {
	return Span(Class("h-3 w-3 rounded-sm"), Style("background-color:#733CFF"), Aria("hidden", "true"))
}

// menuColumn renders a link group. Anchor links close the menu before the
// browser scrolls to the section.
func menuColumn(grp nav.Group) g.Node {
	return Div(Class("space-y-6"),
		menuTitle(grp.Title),
		Ul(Class("space-y-3"),
			g.Map(grp.Links, func(l nav.Link) g.Node {
				if l.Overlay != "" {
					return Li(overlayLink(l, "flex items-center gap-2 font-medium text-gray-700 hover:text-purple-600", menuMarker()))
				}
				return Li(A(Href(l.Href), Class("flex items-center gap-2 font-medium text-gray-700 hover:text-purple-600"),
					Data("close-overlay", ""), menuMarker(), g.Text(l.Label)))
			}),
		),
	)
}

// NotFound is the fragment returned for unknown modal ids.
func NotFound(tr i18n.Translator) g.Node {
	return Div(ID(OverlayRootID), Data("open", "error"),
		Div(Class("fixed inset-0 z-50 flex items-center justify-center p-4"), Role("alertdialog"),
			Div(Class("absolute inset-0 bg-black/60"), closeAttrs()),
			Div(Class("relative rounded-2xl bg-white p-8 text-center shadow-2xl"),
				P(Class("text-gray-700"), g.Text(tr.T("errors.notFound"))),
				closeButton(tr, "mt-4 inline-block text-purple-700"),
			),
		),
	)
}
