package handlers

import (
	"strings"

	"omgagents.ai/web/internal/catalog"
	"omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/format"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/nav"
	"omgagents.ai/web/internal/overlay"
	"omgagents.ai/web/internal/pageload"
	"omgagents.ai/web/internal/reveal"
	"omgagents.ai/web/internal/seo"
)

// CopyrightYear is printed in the footer notice.
const CopyrightYear = 2025

// PageData is the view model for the home page and its overlays.
type PageData struct {
	Lang      string
	OtherLang string
	SEO       seo.Meta
	Analytics Analytics
	CSRFToken string

	Hero      HeroData
	Cards     []catalog.Card
	Suites    []catalog.Suite
	Points    []catalog.Point
	Menu      nav.Menu
	Footer    nav.Footer
	Copyright string

	// Load is the initial page-load state; the browser advances it from /pageload.
	Load pageload.State
	// Revealed lists sections already latched visible for this session.
	Revealed map[string]bool

	Overlay *Overlay
}

// Overlay is the single open modal rendered into the overlay root. Exactly
// one of the payload fields matching Kind is set.
type Overlay struct {
	Kind    overlay.Kind
	Card    *catalog.Card
	Product *catalog.Product
	Legal   *content.Page
	Contact *ContactForm
	Menu    *nav.Menu
}

// PageInput carries the request-scoped values BuildPage cannot derive from
// the translator.
type PageInput struct {
	SiteURL   string
	CSRFToken string
	Analytics Analytics
	Revealed  []string
	Load      pageload.State
}

// BuildPage constructs the home page view model.
func BuildPage(tr i18n.Translator, in PageInput) PageData {
	var langs []string
	if b := tr.Bundle(); b != nil {
		langs = b.Supported()
	}
	revealed := map[string]bool{}
	tracker := reveal.NewTracker(in.Revealed...)
	for _, id := range reveal.Sections {
		revealed[id] = tracker.Active(id, in.Load.IsContentReady)
	}

	return PageData{
		Lang:      tr.Lang(),
		OtherLang: tr.Other(),
		SEO:       seo.Home(tr, in.SiteURL, tr.Lang(), langs),
		Analytics: in.Analytics,
		CSRFToken: in.CSRFToken,
		Hero:      BuildHero(tr),
		Cards:     catalog.Cards(tr),
		Suites:    catalog.Suites(tr),
		Points:    catalog.Points(tr),
		Menu:      nav.BuildMenu(tr),
		Footer:    nav.BuildFooter(tr),
		Copyright: format.Copyright(CopyrightYear, seo.SiteName, tr.T("footer.allRightsReserved")),
		Load:      in.Load,
		Revealed:  revealed,
	}
}

// OpenOverlay renders the page with o open. A product deep link also
// describes the product as structured data.
func (p *PageData) OpenOverlay(o *Overlay, siteURL string) {
	p.Overlay = o
	if o == nil || o.Product == nil {
		return
	}
	pr := o.Product
	ld := seo.JSON(seo.Service(pr.Name, pr.Description, seo.SiteName, strings.TrimRight(siteURL, "/")+"/?product="+pr.ID))
	if ld != "" {
		p.SEO.JSONLD = append(p.SEO.JSONLD, ld)
	}
}

// CardOverlay builds the about card modal for id.
func CardOverlay(tr i18n.Translator, id int) (*Overlay, bool) {
	c, ok := catalog.CardByID(tr, id)
	if !ok {
		return nil, false
	}
	return &Overlay{Kind: overlay.KindAbout, Card: &c}, true
}

// ProductOverlay builds the product detail modal for id.
func ProductOverlay(tr i18n.Translator, id string) (*Overlay, bool) {
	p, ok := catalog.ProductByID(tr, id)
	if !ok {
		return nil, false
	}
	return &Overlay{Kind: overlay.KindProduct, Product: &p}, true
}

// LegalOverlay wraps a loaded legal page.
func LegalOverlay(page content.Page) *Overlay {
	return &Overlay{Kind: overlay.KindLegal, Legal: &page}
}

// MenuOverlay builds the navigation menu overlay.
func MenuOverlay(tr i18n.Translator) *Overlay {
	m := nav.BuildMenu(tr)
	return &Overlay{Kind: overlay.KindMenu, Menu: &m}
}

// ContactOverlay wraps a contact form.
func ContactOverlay(form ContactForm) *Overlay {
	return &Overlay{Kind: overlay.KindContact, Contact: &form}
}
