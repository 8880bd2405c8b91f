package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"omgagents.ai/web/internal/catalog"
	legal "omgagents.ai/web/internal/content"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	mw "omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/observability"
	"omgagents.ai/web/internal/overlay"
	"omgagents.ai/web/internal/views"
)

// scrollParam is added by the browser to overlay requests from links marked
// data-capture-scroll.
const scrollParam = "scrollY"

// openOverlay records kind/id as the open layer in the session, capturing
// the scroll offset when the request carries one.
func openOverlay(r *http.Request, kind overlay.Kind, id string) {
	sess := mw.GetSession(r)
	m := overlay.Restore(sess.Overlay)
	if y, ok := overlay.ParseScroll(r.URL.Query().Get(scrollParam)); ok {
		m.Capture(y)
	}
	m.Open(kind, id)
	sess.Overlay = m.Snapshot()
	sess.MarkDirty()
}

func logError(r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
}

func (s *server) aboutOverlay(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	raw := chi.URLParam(r, "id")
	id, ok := catalog.ParseCardID(raw)
	if !ok {
		s.notFound(w, r)
		return
	}
	o, ok := handlers.CardOverlay(tr, id)
	if !ok {
		s.notFound(w, r)
		return
	}
	openOverlay(r, overlay.KindAbout, raw)
	s.renderOverlay(w, r, o)
}

func (s *server) productOverlay(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	id := chi.URLParam(r, "id")
	o, ok := handlers.ProductOverlay(tr, id)
	if !ok {
		s.notFound(w, r)
		return
	}
	openOverlay(r, overlay.KindProduct, id)
	s.renderOverlay(w, r, o)
}

func (s *server) legalOverlay(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	kind, ok := legal.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		s.notFound(w, r)
		return
	}
	page, err := s.legal.Legal(r.Context(), kind, tr.Lang())
	if err != nil {
		logError(r, "legal content unavailable", err)
		s.notFound(w, r)
		return
	}
	openOverlay(r, overlay.KindLegal, string(kind))
	s.renderOverlay(w, r, handlers.LegalOverlay(page))
}

func (s *server) menuOverlay(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	openOverlay(r, overlay.KindMenu, "")
	s.renderOverlay(w, r, handlers.MenuOverlay(tr))
}

// closeOverlay empties the overlay root and announces the close so the
// browser can restore the scroll offset captured when the layer opened.
func (s *server) closeOverlay(w http.ResponseWriter, r *http.Request) {
	sess := mw.GetSession(r)
	m := overlay.Restore(sess.Overlay)
	scrollY, restore := m.Close()
	sess.Overlay = m.Snapshot()
	sess.MarkDirty()

	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.Header().Set("HX-Trigger", overlay.TriggerHeader(scrollY, restore))
	writeNode(w, r, http.StatusOK, views.OverlayRoot(i18n.FromContext(r.Context()), nil))
}
