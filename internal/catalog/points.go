package catalog

import (
	"fmt"
	"time"
)

// PointStagger separates the reveal of consecutive why-choose points.
const PointStagger = 300 * time.Millisecond

// Point is one why-choose-us argument.
type Point struct {
	ID               int
	Title            string
	Description      string
	IllustrationText string
	Background       string
	// Delay staggers the point's entrance animation.
	Delay time.Duration
}

var pointBackgrounds = []string{
	"from-blue-50 to-indigo-100",
	"from-purple-50 to-pink-100",
	"from-cyan-50 to-blue-100",
	"from-emerald-50 to-green-100",
}

// Points returns the four why-choose points, ids 1 to 4.
func Points(tr Translator) []Point {
	out := make([]Point, 0, len(pointBackgrounds))
	for i, bg := range pointBackgrounds {
		prefix := fmt.Sprintf("whyChoose.point%d", i+1)
		out = append(out, Point{
			ID:               i + 1,
			Title:            tr.T(prefix + ".title"),
			Description:      tr.T(prefix + ".description"),
			IllustrationText: tr.T(prefix + ".illustrationText"),
			Background:       bg,
			Delay:            time.Duration(i) * PointStagger,
		})
	}
	return out
}
