package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"omgagents.ai/web/internal/contact"
	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	mw "omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/observability"
	"omgagents.ai/web/internal/overlay"
	"omgagents.ai/web/internal/views"
)

// multipartMemory is how much of an upload is buffered in memory before
// parts spill to temporary files.
const multipartMemory = 8 << 20

// openContactForm starts the dwell clock and marks the contact layer open.
func (s *server) openContactForm(r *http.Request) handlers.ContactForm {
	sess := mw.GetSession(r)
	sess.ContactOpenedAt = s.contact.Now().UTC()
	openOverlay(r, overlay.KindContact, "")
	return handlers.NewContactForm(sess.CSRFToken, s.contact.Gate())
}

func (s *server) contactOverlay(w http.ResponseWriter, r *http.Request) {
	s.renderOverlay(w, r, handlers.ContactOverlay(s.openContactForm(r)))
}

// submitContact runs the gate and the relay. A rejection or relay failure
// replaces only the status line and keeps what the visitor typed; success
// swaps in a fresh form carrying the success message.
func (s *server) submitContact(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	sess := mw.GetSession(r)
	logger := observability.FromContext(r.Context())

	if st := parseUpload(r, tr); st != nil {
		s.contactFailure(w, r, tr, http.StatusUnprocessableEntity, contact.Submission{}, st)
		return
	}
	sub := handlers.SubmissionFromForm(r.MultipartForm)
	if r.MultipartForm == nil {
		sub = submissionFromValues(r)
	}

	_, err := s.contact.Submit(r.Context(), mw.ClientIP(r), sub, sess.ContactOpenedAt)
	if rej, ok := contact.AsRejection(err); ok {
		s.contactFailure(w, r, tr, http.StatusUnprocessableEntity, sub, handlers.RejectionStatus(tr, rej))
		return
	}
	if err != nil {
		logger.Warn("contact relay failed", zap.Error(err))
		s.contactFailure(w, r, tr, http.StatusBadGateway, sub, handlers.RelayStatus(tr, err))
		return
	}

	// The next submission needs a fresh dwell period.
	sess.ContactOpenedAt = s.contact.Now().UTC()
	sess.MarkDirty()
	form := handlers.NewContactForm(sess.CSRFToken, s.contact.Gate())
	form.Status = handlers.SuccessStatus(tr, s.cfg.Contact.SuccessDisplay)
	if wantsFragment(r) {
		writeNode(w, r, http.StatusOK, views.ContactForm(tr, form))
		return
	}
	s.renderPage(w, r, tr, http.StatusOK, handlers.ContactOverlay(form))
}

// contactFailure reports st. htmx gets the status line retargeted; plain
// form posts get the page with the filled-in form open.
func (s *server) contactFailure(w http.ResponseWriter, r *http.Request, tr i18n.Translator, status int, sub contact.Submission, st *handlers.FormStatus) {
	if wantsFragment(r) {
		w.Header().Set("HX-Retarget", "#"+views.ContactStatusID)
		w.Header().Set("HX-Reswap", "outerHTML")
		writeNode(w, r, status, views.ContactStatus(tr, st))
		return
	}
	form := handlers.NewContactForm(mw.GetSession(r).CSRFToken, s.contact.Gate())
	form.Values = handlers.ValuesOf(sub)
	form.Status = st
	s.renderPage(w, r, tr, status, handlers.ContactOverlay(form))
}

// checkAttachments validates files as soon as they are picked, before the
// visitor spends time on the rest of the form.
func (s *server) checkAttachments(w http.ResponseWriter, r *http.Request) {
	tr := i18n.FromContext(r.Context())
	if st := parseUpload(r, tr); st != nil {
		writeNode(w, r, http.StatusUnprocessableEntity, views.AttachmentList(tr, nil, st))
		return
	}
	files := handlers.AttachmentsFromForm(r.MultipartForm)
	if err := s.contact.Gate().ValidateAttachments(0, files); err != nil {
		rej, ok := contact.AsRejection(err)
		if !ok {
			rej = &contact.Rejection{Reason: contact.ReasonFileType}
		}
		writeNode(w, r, http.StatusUnprocessableEntity, views.AttachmentList(tr, nil, handlers.RejectionStatus(tr, rej)))
		return
	}
	writeNode(w, r, http.StatusOK, views.AttachmentList(tr, handlers.Attachments(files), nil))
}

// parseUpload reads the request body. An oversized body is reported like
// an oversized file.
func parseUpload(r *http.Request, tr i18n.Translator) *handlers.FormStatus {
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	observability.FromContext(r.Context()).Info("contact upload unreadable", zap.Error(err))
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return handlers.RejectionStatus(tr, &contact.Rejection{Reason: contact.ReasonFileTooLarge})
	}
	return &handlers.FormStatus{Message: tr.T("contactForm.validation.formError")}
}

// contactStatus clears the status line once a success message has shown.
func (s *server) contactStatus(w http.ResponseWriter, r *http.Request) {
	writeNode(w, r, http.StatusOK, views.ContactStatus(i18n.FromContext(r.Context()), nil))
}

// submissionFromValues reads a urlencoded post, which carries no files.
func submissionFromValues(r *http.Request) contact.Submission {
	checked := func(name string) bool { return r.PostFormValue(name) != "" }
	return contact.Submission{
		Name:          r.PostFormValue("name"),
		Email:         r.PostFormValue("email"),
		Message:       r.PostFormValue("message"),
		Company:       r.PostFormValue("company"),
		SecurityCheck: r.PostFormValue("securityCheck"),
		Honeypots:     [3]string{r.PostFormValue("botField"), r.PostFormValue("website"), r.PostFormValue("url")},
		HumanVerified: [2]bool{checked("humanVerification1"), checked("humanVerification2")},
	}
}
