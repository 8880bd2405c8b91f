package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"omgagents.ai/web/internal/httpx"
	"omgagents.ai/web/internal/pageload"
	"omgagents.ai/web/internal/reveal"
)

// pageLoadStream plays the entrance timeline as server-sent events, one
// "state" event per frame followed by "done". The query parameter w carries
// the viewport width used to pick the mobile profile.
func (s *server) pageLoadStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteError(r.Context(), w, httpx.NewError("streaming_unsupported", "streaming unsupported", http.StatusInternalServerError))
		return
	}
	width, _ := strconv.Atoi(r.URL.Query().Get("w"))
	timing := pageload.TimingFor(r.UserAgent(), width)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	emit := func(st pageload.State) {
		// A closed connection still sees the timeline through; frames are dropped.
		if ctx.Err() != nil {
			return
		}
		b, _ := json.Marshal(st)
		fmt.Fprintf(w, "event: state\ndata: %s\n\n", b)
		flusher.Flush()
	}
	pageload.NewSequencer(timing, pageload.WithSleep(s.sleep)).Run(emit)
	if ctx.Err() == nil {
		fmt.Fprint(w, "event: done\ndata: {}\n\n")
		flusher.Flush()
	}
}

type revealReply struct {
	Section string `json:"section"`
	Visible bool   `json:"visible"`
}

// observeReveal latches a section visible once the browser reports it inside
// the viewport. Reports race ordinary navigation, so the latch goes to its
// own cookie and the session is never touched here.
func (s *server) observeReveal(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PostFormValue("section"))
	if !reveal.Known(id) {
		httpx.WriteError(r.Context(), w, httpx.NewError("unknown_section", "unknown section", http.StatusBadRequest))
		return
	}
	top, errTop := strconv.ParseFloat(r.PostFormValue("top"), 64)
	bottom, errBottom := strconv.ParseFloat(r.PostFormValue("bottom"), 64)
	vh, errVH := strconv.ParseFloat(r.PostFormValue("vh"), 64)
	if errTop != nil || errBottom != nil || errVH != nil {
		httpx.WriteError(r.Context(), w, httpx.NewError("invalid_geometry", "top, bottom and vh must be numbers", http.StatusBadRequest))
		return
	}

	tracker := reveal.NewTracker(s.sessions.Revealed(r)...)
	was := tracker.Visible(id)
	visible := tracker.Observe(id, reveal.Rect{Top: top, Bottom: bottom}, vh)
	if visible && !was {
		s.sessions.SetRevealed(w, tracker.Latched())
	}
	httpx.WriteJSON(w, http.StatusOK, revealReply{Section: id, Visible: visible})
}
