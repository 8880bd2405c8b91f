// Package views renders the site's HTML with gomponents.
package views

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/middleware"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Document wraps body in the shared HTML5 layout.
func Document(tr i18n.Translator, p handlers.PageData, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
		Language:    p.Lang,
		Head:        head(p),
		Body: []g.Node{
			Class("bg-white text-gray-900 antialiased"),
			g.Attr("hx-boost", "true"),
			g.Attr("hx-headers", csrfHeaders(p.CSRFToken)),
			Data("loaded", strconv.FormatBool(p.Load.IsLoaded)),
			Data("hero-visible", strconv.FormatBool(p.Load.IsHeroVisible)),
			Data("content-ready", strconv.FormatBool(p.Load.IsContentReady)),
			gtmNoScript(p.Analytics),
			pageLoader(p),
			g.Group(body),
		},
	})
}

func csrfHeaders(token string) string {
	b, _ := json.Marshal(map[string]string{middleware.CSRFHeaderName: token})
	return string(b)
}

func head(p handlers.PageData) []g.Node {
	nodes := []g.Node{
		Meta(Name("robots"), Content(p.SEO.Robots)),
		Link(Rel("canonical"), Href(p.SEO.Canonical)),
		Meta(g.Attr("property", "og:title"), Content(p.SEO.OG.Title)),
		Meta(g.Attr("property", "og:description"), Content(p.SEO.OG.Description)),
		Meta(g.Attr("property", "og:type"), Content(p.SEO.OG.Type)),
		Meta(g.Attr("property", "og:url"), Content(p.SEO.OG.URL)),
		Meta(g.Attr("property", "og:image"), Content(p.SEO.OG.Image)),
		Meta(g.Attr("property", "og:site_name"), Content(p.SEO.OG.SiteName)),
		g.If(p.SEO.OG.Locale != "", Meta(g.Attr("property", "og:locale"), Content(p.SEO.OG.Locale))),
		Meta(Name("twitter:card"), Content(p.SEO.Twitter.Card)),
		Meta(Name("twitter:image"), Content(p.SEO.Twitter.Image)),
		Link(Rel("icon"), Href("/assets/img/favicon.svg"), Type("image/svg+xml")),
		Link(Rel("stylesheet"), Href("/assets/css/site.css")),
		Script(Src(htmxSrc), Defer()),
		Script(Src("/assets/js/site.js"), Defer()),
		NoScript(StyleEl(g.Raw(".reveal,.hero-enter{opacity:1!important;transform:none!important}#page-loader{display:none}"))),
	}
	for _, alt := range p.SEO.Alternates {
		nodes = append(nodes, Link(Rel("alternate"), g.Attr("hreflang", alt.Hreflang), Href(alt.Href)))
	}
	for _, ld := range p.SEO.JSONLD {
		if ld == "" {
			continue
		}
		nodes = append(nodes, Script(Type("application/ld+json"), g.Raw(ld)))
	}
	return append(nodes, analyticsHead(p.Analytics)...)
}

func analyticsHead(a handlers.Analytics) []g.Node {
	var nodes []g.Node
	if a.GA4MeasurementID != "" {
		id := a.GA4MeasurementID
		nodes = append(nodes,
			Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+id)),
			Script(g.Raw("window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',"+jsString(id)+");")),
		)
	}
	if a.GTMContainerID != "" {
		nodes = append(nodes, Script(g.Raw(
			"(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});"+
				"var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;"+
				"j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})"+
				"(window,document,'script','dataLayer',"+jsString(a.GTMContainerID)+");")))
	}
	return nodes
}

func gtmNoScript(a handlers.Analytics) g.Node {
	if a.GTMContainerID == "" {
		return nil
	}
	return NoScript(IFrame(
		Src("https://www.googletagmanager.com/ns.html?id="+a.GTMContainerID),
		Height("0"), Width("0"), Style("display:none;visibility:hidden"),
	))
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func pageLoader(p handlers.PageData) g.Node {
	if p.Load.IsContentReady {
		return nil
	}
	return Div(ID("page-loader"), Class("fixed inset-0 z-[60] flex flex-col items-center justify-center bg-white transition-opacity duration-500"),
		Aria("hidden", "true"),
		Img(Src("/assets/img/omg-logo.svg"), Alt(""), Width("120"), Height("50"), Class("mb-6")),
		Div(Class("h-1 w-48 overflow-hidden rounded-full bg-gray-200"),
			Div(ID("page-loader-bar"), Class("h-full bg-gradient-to-r from-indigo-500 to-purple-600 transition-all duration-100"),
				Style("width:"+strconv.Itoa(p.Load.LoadProgress)+"%"),
			),
		),
	)
}
