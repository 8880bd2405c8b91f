package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"omgagents.ai/web/internal/contact"
	"omgagents.ai/web/internal/format"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/relay"
)

// ContactValues echoes the visitor's input back into a re-rendered form.
type ContactValues struct {
	Name    string
	Email   string
	Company string
	Message string
}

// FormStatus is the single inline message shown under the form.
type FormStatus struct {
	Success bool
	Message string
	// ClearAfter is how long a success message stays before the form clears it.
	ClearAfter time.Duration
}

// DefaultSuccessDisplay applies when no display time is configured.
const DefaultSuccessDisplay = 5 * time.Second

// AttachmentInfo is one row of the selected-files list.
type AttachmentInfo struct {
	Name string
	Size string
	Icon string
}

// ContactForm is the view model for the contact modal.
type ContactForm struct {
	CSRFToken   string
	Values      ContactValues
	Status      *FormStatus
	MaxFiles    int
	MaxFileSize string
	Accept      string
	Attachments []AttachmentInfo
}

// AcceptExtensions is the file input accept list.
const AcceptExtensions = ".pdf,.doc,.docx,.txt,.jpg,.jpeg,.png,.gif"

// NewContactForm returns an empty form sized to gate's limits.
func NewContactForm(csrf string, gate contact.Gate) ContactForm {
	return ContactForm{
		CSRFToken:   csrf,
		MaxFiles:    gate.MaxAttachments(),
		MaxFileSize: format.MaxSizeMB(gate.MaxAttachmentSize()),
		Accept:      AcceptExtensions,
	}
}

// RejectionStatus maps a gate rejection to its localized message. A file
// rejection names the offending file.
func RejectionStatus(tr i18n.Translator, rej *contact.Rejection) *FormStatus {
	msg := tr.T(rej.Reason.MessageKey())
	if rej.File != "" {
		msg = rej.File + ": " + msg
	}
	return &FormStatus{Message: msg}
}

// RelayStatus classifies a forwarding failure into the message shown to the
// visitor.
func RelayStatus(tr i18n.Translator, err error) *FormStatus {
	var rerr *relay.RelayError
	switch {
	case errors.Is(err, relay.ErrNetwork):
		return &FormStatus{Message: tr.T("contactForm.validation.networkError")}
	case errors.As(err, &rerr):
		return &FormStatus{Message: "Error: " + rerr.Message}
	default:
		return &FormStatus{Message: "Error: " + tr.T("contactForm.validation.formError")}
	}
}

// SuccessStatus is shown after the relay accepted a submission.
func SuccessStatus(tr i18n.Translator, display time.Duration) *FormStatus {
	if display <= 0 {
		display = DefaultSuccessDisplay
	}
	return &FormStatus{Success: true, Message: tr.T("contactForm.validation.successMessage"), ClearAfter: display}
}

// Attachments lists files for display.
func Attachments(files []contact.Attachment) []AttachmentInfo {
	out := make([]AttachmentInfo, 0, len(files))
	for _, f := range files {
		out = append(out, AttachmentInfo{
			Name: f.Filename,
			Size: format.FileSize(f.Size),
			Icon: fileIcon(f.ContentType),
		})
	}
	return out
}

func fileIcon(contentType string) string {
	switch {
	case strings.Contains(contentType, "pdf"):
		return "📄"
	case strings.Contains(contentType, "word"):
		return "📝"
	case strings.Contains(contentType, "text"):
		return "📄"
	default:
		return "🖼️"
	}
}

// SubmissionFromForm reads the posted contact fields. A checkbox counts as
// checked when it was sent at all.
func SubmissionFromForm(form *multipart.Form) contact.Submission {
	if form == nil {
		return contact.Submission{}
	}
	get := func(name string) string {
		if v := form.Value[name]; len(v) > 0 {
			return v[0]
		}
		return ""
	}
	checked := func(name string) bool {
		return len(form.Value[name]) > 0 && form.Value[name][0] != ""
	}
	return contact.Submission{
		Name:          get("name"),
		Email:         get("email"),
		Message:       get("message"),
		Company:       get("company"),
		SecurityCheck: get("securityCheck"),
		Honeypots:     [3]string{get("botField"), get("website"), get("url")},
		HumanVerified: [2]bool{checked("humanVerification1"), checked("humanVerification2")},
		Attachments:   AttachmentsFromForm(form),
	}
}

// AttachmentsFromForm wraps the uploaded "attachments" parts. Files are
// opened only when the relay streams them.
func AttachmentsFromForm(form *multipart.Form) []contact.Attachment {
	if form == nil {
		return nil
	}
	var out []contact.Attachment
	for _, fh := range form.File["attachments"] {
		if fh.Filename == "" {
			continue
		}
		out = append(out, contact.Attachment{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open:        func() (io.ReadCloser, error) { return fh.Open() },
		})
	}
	return out
}

// ValuesOf echoes a submission back into the form.
func ValuesOf(sub contact.Submission) ContactValues {
	return ContactValues{Name: sub.Name, Email: sub.Email, Company: sub.Company, Message: sub.Message}
}
