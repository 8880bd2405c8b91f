package views

import (
	g "maragu.dev/gomponents"
)

// OverlayRootID is the element every modal fragment replaces.
const OverlayRootID = "overlay-root"

func hxGet(url string) g.Node       { return g.Attr("hx-get", url) }
func hxPost(url string) g.Node      { return g.Attr("hx-post", url) }
func hxTarget(sel string) g.Node    { return g.Attr("hx-target", sel) }
func hxSwap(mode string) g.Node     { return g.Attr("hx-swap", mode) }
func hxTrigger(spec string) g.Node  { return g.Attr("hx-trigger", spec) }
func hxEncoding(enc string) g.Node  { return g.Attr("hx-encoding", enc) }
func hxDisabledElt(s string) g.Node { return g.Attr("hx-disabled-elt", s) }

// intoOverlay loads url into the overlay root.
func intoOverlay(url string) g.Node {
	return g.Group([]g.Node{hxGet(url), hxTarget("#" + OverlayRootID), hxSwap("outerHTML")})
}
