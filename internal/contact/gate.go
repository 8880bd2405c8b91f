package contact

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultMinDwell    = 5 * time.Second
	DefaultRateWindow  = 30 * time.Second
	DefaultMaxFiles    = 5
	DefaultMaxFileSize = 10 * 1024 * 1024
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	angleBracket = strings.NewReplacer("<", "", ">", "")

	spamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(http|https|www\.)`),
		regexp.MustCompile(`(buy|sell|cheap|free|offer|deal)`),
		regexp.MustCompile(`(viagra|casino|poker|loan|credit)`),
	}

	nameRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(2, 100),
	}
	emailRules = []validation.Rule{
		validation.Required,
		validation.Match(emailPattern),
	}
	messageRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(10, 2000),
	}
)

// Gate is the ordered validation and anti-spam pipeline. The zero value uses
// the default thresholds.
type Gate struct {
	MinDwell    time.Duration
	RateWindow  time.Duration
	MaxFiles    int
	MaxFileSize int64
	// AllowedTypes overrides the attachment MIME allow-list.
	AllowedTypes []string
}

func (g Gate) minDwell() time.Duration {
	if g.MinDwell > 0 {
		return g.MinDwell
	}
	return DefaultMinDwell
}

func (g Gate) rateWindow() time.Duration {
	if g.RateWindow > 0 {
		return g.RateWindow
	}
	return DefaultRateWindow
}

// Check runs every check in order and returns the sanitized submission, or a
// *Rejection for the first check that fails.
func (g Gate) Check(now time.Time, sub Submission, tm Timing) (Sanitized, error) {
	if !tm.LastSubmission.IsZero() && now.Sub(tm.LastSubmission) < g.rateWindow() {
		return Sanitized{}, reject(ReasonRateLimit)
	}

	for _, hp := range sub.Honeypots {
		if hp != "" {
			return Sanitized{}, reject(ReasonInvalidSubmission)
		}
	}

	// An unrecorded open time counts as zero dwell.
	if tm.OpenedAt.IsZero() || now.Sub(tm.OpenedAt) < g.minDwell() {
		return Sanitized{}, reject(ReasonTakeTime)
	}

	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return Sanitized{}, reject(ReasonRequiredFields)
	}

	clean := Sanitize(sub)

	if err := validation.Validate(clean.Name, nameRules...); err != nil {
		return Sanitized{}, reject(ReasonNameLength)
	}
	if err := validation.Validate(clean.Message, messageRules...); err != nil {
		return Sanitized{}, reject(ReasonMessageLength)
	}
	if err := validation.Validate(clean.Email, emailRules...); err != nil {
		return Sanitized{}, reject(ReasonValidEmail)
	}

	if IsSpam(clean.Message) {
		return Sanitized{}, reject(ReasonSpamContent)
	}

	if !sub.HumanVerified[0] || !sub.HumanVerified[1] {
		return Sanitized{}, reject(ReasonSecurityVerification)
	}
	return clean, nil
}

// Sanitize trims every field, strips angle brackets from name and message and
// lowercases the email.
func Sanitize(sub Submission) Sanitized {
	return Sanitized{
		Name:          angleBracket.Replace(strings.TrimSpace(sub.Name)),
		Email:         strings.ToLower(strings.TrimSpace(sub.Email)),
		Message:       angleBracket.Replace(strings.TrimSpace(sub.Message)),
		Company:       strings.TrimSpace(sub.Company),
		SecurityCheck: strings.TrimSpace(sub.SecurityCheck),
		Attachments:   sub.Attachments,
	}
}

// IsSpam reports whether the lowercased message hits any spam pattern.
func IsSpam(message string) bool {
	lower := strings.ToLower(message)
	for _, p := range spamPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
