package handlers

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"omgagents.ai/web/internal/i18n"
)

// HeroData holds the hero copy with highlight placeholders already expanded
// into markup.
type HeroData struct {
	Badge           string
	TitleHTML       string
	DescriptionHTML string
	Primary         string
	Secondary       string
}

var highlightPolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("span", "strong")
	p.AllowAttrs("class").OnElements("span", "strong")
	return p
}()

const (
	highlightClass       = "text-gradient"
	descriptionHighlight = "font-semibold text-purple-700"
)

// BuildHero expands the {smes}/{aiSolutions} title placeholders and the four
// description placeholders.
func BuildHero(tr i18n.Translator) HeroData {
	return HeroData{
		Badge: tr.T("hero.badge"),
		TitleHTML: Highlight(tr.T("hero.title"), highlightClass, map[string]string{
			"smes":        tr.T("hero.smesHighlight"),
			"aiSolutions": tr.T("hero.aiSolutionsHighlight"),
		}),
		DescriptionHTML: Highlight(tr.T("hero.description"), descriptionHighlight, map[string]string{
			"chatAgents":           tr.T("hero.chatAgentsHighlight"),
			"aiStrategy":           tr.T("hero.aiStrategyHighlight"),
			"inHouseAlgorithms":    tr.T("hero.inHouseAlgorithmsHighlight"),
			"personalConsultation": tr.T("hero.personalConsultationHighlight"),
		}),
		Primary:   tr.T("hero.primaryButton"),
		Secondary: tr.T("hero.secondaryButton"),
	}
}

// Highlight escapes text, replaces each {name} placeholder with a span of
// class carrying the escaped replacement, and sanitises the result.
// Unknown placeholders are left as literal text.
func Highlight(text, class string, replacements map[string]string) string {
	out := html.EscapeString(text)
	for name, value := range replacements {
		span := `<span class="` + html.EscapeString(class) + `">` + html.EscapeString(value) + `</span>`
		out = strings.ReplaceAll(out, "{"+name+"}", span)
	}
	return highlightPolicy.Sanitize(out)
}
