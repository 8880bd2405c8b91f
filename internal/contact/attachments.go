package contact

import (
	"mime"
	"strings"
)

// DefaultAllowedTypes is the attachment MIME allow-list.
var DefaultAllowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
}

func (g Gate) maxFiles() int {
	if g.MaxFiles > 0 {
		return g.MaxFiles
	}
	return DefaultMaxFiles
}

func (g Gate) maxFileSize() int64 {
	if g.MaxFileSize > 0 {
		return g.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (g Gate) allowed(contentType string) bool {
	list := g.AllowedTypes
	if len(list) == 0 {
		list = DefaultAllowedTypes
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.TrimSpace(contentType)
	}
	mt = strings.ToLower(mt)
	for _, t := range list {
		if mt == t {
			return true
		}
	}
	return false
}

// ValidateAttachments checks a batch of newly added files against the
// per-file size and type limits, then against the total count given the
// number of files already accepted. Any failure rejects the whole batch.
func (g Gate) ValidateAttachments(existing int, files []Attachment) error {
	for _, f := range files {
		if f.Size > g.maxFileSize() {
			return &Rejection{Reason: ReasonFileTooLarge, File: f.Filename}
		}
		if !g.allowed(f.ContentType) {
			return &Rejection{Reason: ReasonFileType, File: f.Filename}
		}
	}
	if existing+len(files) > g.maxFiles() {
		return &Rejection{Reason: ReasonTooManyFiles}
	}
	return nil
}

// MaxAttachments exposes the configured attachment cap.
func (g Gate) MaxAttachments() int { return g.maxFiles() }

// MaxAttachmentSize exposes the configured per-file size cap in bytes.
func (g Gate) MaxAttachmentSize() int64 { return g.maxFileSize() }
