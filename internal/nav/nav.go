// Package nav defines the header menu, footer and section links.
package nav

import (
	"net/url"
	"strconv"

	"omgagents.ai/web/internal/catalog"
)

// Section anchors on the home page.
const (
	SectionHero      = "hero"
	SectionAbout     = "about"
	SectionProducts  = "products"
	SectionWhyChoose = "why-choose"
)

// Link is a rendered navigation entry. Href works without JavaScript (an
// anchor or a deep link); Overlay, when set, is the fragment htmx loads into
// the overlay root instead.
type Link struct {
	Label   string
	Href    string
	Overlay string
	// Section is the anchor the page scrolls to after the link is followed.
	Section string
}

// Group is a titled list of links.
type Group struct {
	Title string
	Links []Link
}

// Menu is the full-screen navigation menu.
type Menu struct {
	Main      Group
	Solutions Group
	Suites    []Group
	Company   Group
}

// Footer holds the footer link columns.
type Footer struct {
	QuickLinks Group
	Solutions  Group
	Legal      []Link
}

func anchor(label, section string) Link {
	return Link{Label: label, Href: "#" + section, Section: section}
}

// Sections returns the main section anchors in page order.
func Sections(tr catalog.Translator) []Link {
	return []Link{
		anchor(tr.T("navigation.home"), SectionHero),
		anchor(tr.T("navigation.about"), SectionAbout),
		anchor(tr.T("navigation.products"), SectionProducts),
		anchor(tr.T("navigation.whyChoose"), SectionWhyChoose),
	}
}

// ProductLink opens a product detail modal.
func ProductLink(label, id string) Link {
	return Link{
		Label:   label,
		Href:    "/?product=" + url.QueryEscape(id) + "#" + SectionProducts,
		Overlay: "/products/" + url.PathEscape(id),
		Section: SectionProducts,
	}
}

// CardLink opens an about card modal.
func CardLink(label string, id int) Link {
	sid := strconv.Itoa(id)
	return Link{
		Label:   label,
		Href:    "/?about=" + sid + "#" + SectionAbout,
		Overlay: "/about/" + sid,
		Section: SectionAbout,
	}
}

// LegalLink opens a legal modal for kind ("privacy" or "terms").
func LegalLink(label, kind string) Link {
	return Link{
		Label:   label,
		Href:    "/?legal=" + url.QueryEscape(kind),
		Overlay: "/legal/" + url.PathEscape(kind),
	}
}

// ContactLink opens the contact modal.
func ContactLink(label string) Link {
	return Link{Label: label, Href: "/?contact=1", Overlay: "/contact"}
}

// BuildMenu assembles the navigation menu.
func BuildMenu(tr catalog.Translator) Menu {
	m := Menu{
		Main:      Group{Title: tr.T("navigation.mainSections"), Links: Sections(tr)},
		Solutions: Group{Title: tr.T("navigation.aiSolutions")},
	}
	for _, s := range catalog.Suites(tr) {
		g := Group{Title: tr.T("navigation." + s.Key + "Solutions")}
		for _, p := range s.Products {
			g.Links = append(g.Links, ProductLink(p.Name, p.ID))
		}
		m.Suites = append(m.Suites, g)
	}

	m.Company = Group{
		Title: tr.T("navigation.company"),
		Links: []Link{
			anchor(tr.T("navigation.ourStory"), SectionAbout),
			CardLink(tr.T("navigation.ourTechnology"), 1),
			CardLink(tr.T("navigation.personalConsultation"), 2),
			CardLink(tr.T("navigation.smeFocus"), 3),
			CardLink(tr.T("navigation.continuousInnovation"), 4),
		},
	}
	return m
}

var footerSuites = []string{"chat", "voice", "visual"}

// BuildFooter assembles the footer columns.
func BuildFooter(tr catalog.Translator) Footer {
	f := Footer{
		QuickLinks: Group{Title: tr.T("footer.quickLinks"), Links: Sections(tr)},
		Solutions:  Group{Title: tr.T("footer.solutions")},
		Legal: []Link{
			LegalLink(tr.T("footer.privacyPolicy"), "privacy"),
			LegalLink(tr.T("footer.termsOfService"), "terms"),
		},
	}
	for _, key := range footerSuites {
		f.Solutions.Links = append(f.Solutions.Links,
			ProductLink(tr.T("footer."+key+"Solutions"), catalog.LeadProductID(key)))
	}
	return f
}
