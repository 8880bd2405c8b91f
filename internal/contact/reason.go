package contact

import (
	"errors"
	"fmt"
)

// Reason identifies the check that rejected a submission. Each value is also
// the suffix of its contactForm.validation translation key.
type Reason string

const (
	ReasonRateLimit            Reason = "rateLimit"
	ReasonInvalidSubmission    Reason = "invalidSubmission"
	ReasonTakeTime             Reason = "takeTime"
	ReasonRequiredFields       Reason = "requiredFields"
	ReasonNameLength           Reason = "nameLength"
	ReasonValidEmail           Reason = "validEmail"
	ReasonMessageLength        Reason = "messageLength"
	ReasonSpamContent          Reason = "spamContent"
	ReasonSecurityVerification Reason = "securityVerification"
	ReasonTooManyFiles         Reason = "tooManyFiles"
	ReasonFileTooLarge         Reason = "fileTooLarge"
	ReasonFileType             Reason = "fileType"
)

// MessageKey returns the translation key of the user-facing message.
func (r Reason) MessageKey() string {
	return "contactForm.validation." + string(r)
}

// ErrRejected matches every *Rejection via errors.Is.
var ErrRejected = errors.New("contact: submission rejected")

// Rejection reports the first failed check. File names the offending
// attachment for file checks.
type Rejection struct {
	Reason Reason
	File   string
}

func (r *Rejection) Error() string {
	if r.File != "" {
		return fmt.Sprintf("contact: rejected (%s): %s", r.Reason, r.File)
	}
	return fmt.Sprintf("contact: rejected (%s)", r.Reason)
}

func (r *Rejection) Is(target error) bool { return target == ErrRejected }

func reject(reason Reason) error { return &Rejection{Reason: reason} }

// AsRejection unwraps err into a *Rejection.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}
