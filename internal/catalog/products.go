package catalog

import "fmt"

// Product is one offering inside a suite.
type Product struct {
	ID              string
	Name            string
	Description     string
	FullDescription string
	Features        []string
	UseCases        []string
	SuiteTitle      string
}

// Suite groups three related products.
type Suite struct {
	ID           int
	Key          string
	Title        string
	Tagline      string
	Description  string
	Gradient     string
	Illustration string
	Products     []Product
}

type suiteDef struct {
	id           int
	key          string
	productGroup string
	gradient     string
	illustration string
	products     []string
}

var suiteDefs = []suiteDef{
	{1, "chat", "chatProducts", "from-blue-400 to-blue-600", "🤖💬", []string{"customerService", "internalHelpdesk", "leadQualification"}},
	{2, "voice", "voiceProducts", "from-purple-400 to-purple-600", "📞🎙️", []string{"voiceAgent", "callAnalytics", "callCenterSolution"}},
	{3, "visual", "visualProducts", "from-emerald-400 to-emerald-600", "👁️📹", []string{"securityMonitoring", "elderCare", "businessAnalytics"}},
}

// Suites returns chat, voice and visual suites in display order.
func Suites(tr Translator) []Suite {
	out := make([]Suite, 0, len(suiteDefs))
	for _, d := range suiteDefs {
		out = append(out, buildSuite(tr, d))
	}
	return out
}

func buildSuite(tr Translator, d suiteDef) Suite {
	s := Suite{
		ID:           d.id,
		Key:          d.key,
		Title:        tr.T("products.suites." + d.key + ".title"),
		Tagline:      tr.T("products.suites." + d.key + ".tagline"),
		Description:  tr.T("products.suites." + d.key + ".description"),
		Gradient:     d.gradient,
		Illustration: d.illustration,
	}
	for i, name := range d.products {
		prefix := "products." + d.productGroup + "." + name
		s.Products = append(s.Products, Product{
			ID:              fmt.Sprintf("%s-%d", d.key, i+1),
			Name:            tr.T(prefix + ".name"),
			Description:     tr.T(prefix + ".description"),
			FullDescription: tr.T(prefix + ".fullDescription"),
			Features:        tr.Strings(prefix + ".features"),
			UseCases:        tr.Strings(prefix + ".useCases"),
			SuiteTitle:      s.Title,
		})
	}
	return s
}

// ProductByID finds a product such as "voice-2" across all suites.
func ProductByID(tr Translator, id string) (Product, bool) {
	for _, d := range suiteDefs {
		for i := range d.products {
			if fmt.Sprintf("%s-%d", d.key, i+1) == id {
				s := buildSuite(tr, d)
				return s.Products[i], true
			}
		}
	}
	return Product{}, false
}

// ProductIDs lists every product id in display order.
func ProductIDs() []string {
	var out []string
	for _, d := range suiteDefs {
		for i := range d.products {
			out = append(out, fmt.Sprintf("%s-%d", d.key, i+1))
		}
	}
	return out
}

// LeadProductID is the product the footer and menu open for a suite key.
func LeadProductID(suiteKey string) string {
	return suiteKey + "-1"
}
