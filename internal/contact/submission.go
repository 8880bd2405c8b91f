package contact

import (
	"io"
	"time"
)

// Submission is the raw form as posted by the browser.
type Submission struct {
	Name          string
	Email         string
	Message       string
	Company       string
	SecurityCheck string
	// Honeypots holds the hidden botField, website and url inputs.
	Honeypots     [3]string
	HumanVerified [2]bool
	Attachments   []Attachment
}

// Attachment describes one uploaded file. Open is called lazily when the
// relay streams the body.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Timing carries the clock readings the gate compares against.
type Timing struct {
	// OpenedAt is when the form became visible; zero means never recorded.
	OpenedAt time.Time
	// LastSubmission is the last accepted attempt from the same client.
	LastSubmission time.Time
}

// Sanitized is a submission that passed the gate, ready for relaying.
type Sanitized struct {
	Name          string
	Email         string
	Message       string
	Company       string
	SecurityCheck string
	Attachments   []Attachment
}

// Receipt acknowledges a relayed submission.
type Receipt struct {
	ID        string
	Submitted time.Time
}
