// Package catalog assembles the about cards, product suites and
// why-choose points from translated text plus fixed presentation metadata.
package catalog

import (
	"fmt"
	"strconv"
)

// Translator is the subset of the i18n translator the catalog reads from.
type Translator interface {
	T(key string) string
	Strings(key string) []string
}

// Style is a card's colour scheme.
type Style struct {
	Name     string
	IconBg   string
	Gradient string
	CardBg   string
	Border   string
	// HeaderFrom and HeaderTo are the modal header gradient stops.
	HeaderFrom string
	HeaderTo   string
}

var (
	StyleIndigo  = Style{Name: "indigo", IconBg: "bg-indigo-500", Gradient: "from-indigo-600 to-purple-700", CardBg: "from-indigo-50 to-indigo-100", Border: "border-indigo-200", HeaderFrom: "#4f46e5", HeaderTo: "#7c3aed"}
	StylePurple  = Style{Name: "purple", IconBg: "bg-purple-500", Gradient: "from-purple-600 to-pink-700", CardBg: "from-purple-50 to-purple-100", Border: "border-purple-200", HeaderFrom: "#9333ea", HeaderTo: "#ec4899"}
	StyleCyan    = Style{Name: "cyan", IconBg: "bg-cyan-500", Gradient: "from-cyan-600 to-blue-700", CardBg: "from-cyan-50 to-cyan-100", Border: "border-cyan-200", HeaderFrom: "#0891b2", HeaderTo: "#1d4ed8"}
	StyleEmerald = Style{Name: "emerald", IconBg: "bg-emerald-500", Gradient: "from-emerald-600 to-teal-700", CardBg: "from-emerald-50 to-emerald-100", Border: "border-emerald-200", HeaderFrom: "#059669", HeaderTo: "#0d9488"}
)

const benefitsPerCard = 5

var cardStyles = []Style{StyleIndigo, StylePurple, StyleCyan, StyleEmerald}

// Card is one about-section info card.
type Card struct {
	ID              int
	Title           string
	Summary         string
	FullDescription string
	Benefits        []string
	Style           Style
}

// Cards returns the four about cards, ids 1 to 4.
func Cards(tr Translator) []Card {
	out := make([]Card, 0, len(cardStyles))
	for i, st := range cardStyles {
		out = append(out, card(tr, i+1, st))
	}
	return out
}

func card(tr Translator, id int, st Style) Card {
	prefix := fmt.Sprintf("about.card%d", id)
	benefits := make([]string, 0, benefitsPerCard)
	for b := 1; b <= benefitsPerCard; b++ {
		benefits = append(benefits, tr.T(fmt.Sprintf("%sBenefit%d", prefix, b)))
	}
	return Card{
		ID:              id,
		Title:           tr.T(prefix + "Title"),
		Summary:         tr.T(prefix + "Summary"),
		FullDescription: tr.T(prefix + "Description"),
		Benefits:        benefits,
		Style:           st,
	}
}

// CardByID looks up a card by its numeric id.
func CardByID(tr Translator, id int) (Card, bool) {
	if id < 1 || id > len(cardStyles) {
		return Card{}, false
	}
	return card(tr, id, cardStyles[id-1]), true
}

// ParseCardID parses a card id from a path or query value.
func ParseCardID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 || id > len(cardStyles) {
		return 0, false
	}
	return id, true
}
