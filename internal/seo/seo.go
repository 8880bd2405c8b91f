// Package seo builds page metadata and structured data.
package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is one hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []string
}

// Translator is the lookup the metadata builder reads from.
type Translator interface {
	T(key string) string
}

var ogLocales = map[string]string{
	"en": "en_US",
	"ja": "ja_JP",
}

// SiteName is the brand used in titles and structured data.
const SiteName = "OMG Agents"

// Home builds the metadata for the landing page in lang.
func Home(tr Translator, siteURL, lang string, langs []string) Meta {
	siteURL = strings.TrimRight(siteURL, "/")
	canonical := siteURL + "/"
	if lang != "" && lang != "en" {
		canonical = siteURL + "/?hl=" + lang
	}
	image := siteURL + "/assets/img/og-image.png"

	m := Meta{
		Title:       tr.T("meta.title"),
		Description: tr.T("meta.description"),
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       tr.T("meta.ogTitle"),
			Description: tr.T("meta.ogDescription"),
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    SiteName,
			Locale:      ogLocales[lang],
		},
		Twitter: Twitter{Card: "summary_large_image", Image: image},
		JSONLD: []string{
			JSON(Organization(SiteName, siteURL, siteURL+"/assets/img/omg-logo.svg", tr.T("footer.email"))),
			JSON(WebSite(SiteName, siteURL, lang)),
		},
	}
	for _, l := range langs {
		href := siteURL + "/"
		if l != "en" {
			href += "?hl=" + l
		}
		m.Alternates = append(m.Alternates, Alternate{Href: href, Hreflang: l})
	}
	m.Alternates = append(m.Alternates, Alternate{Href: siteURL + "/", Hreflang: "x-default"})
	return m
}
