package contact

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func validSubmission() Submission {
	return Submission{
		Name:          "  Hanako Sato ",
		Email:         " Hanako@Example.CO.JP ",
		Message:       "We would like to automate our reservation desk.",
		Company:       " Sato Dental ",
		SecurityCheck: "ok",
		HumanVerified: [2]bool{true, true},
	}
}

func openedLongAgo() Timing {
	return Timing{OpenedAt: t0.Add(-time.Minute)}
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	require.Error(t, err)
	rej, ok := AsRejection(err)
	require.True(t, ok, "expected *Rejection, got %T", err)
	assert.ErrorIs(t, err, ErrRejected)
	return rej.Reason
}

func TestCheckAcceptsAndSanitizes(t *testing.T) {
	sub := validSubmission()
	sub.Name = "<Hanako>"
	sub.Message = "Hello <script>team</script>, we need a helpdesk agent."

	clean, err := Gate{}.Check(t0, sub, openedLongAgo())
	require.NoError(t, err)
	assert.Equal(t, "Hanako", clean.Name)
	assert.Equal(t, "hanako@example.co.jp", clean.Email)
	assert.Equal(t, "Hello scriptteam/script, we need a helpdesk agent.", clean.Message)
	assert.Equal(t, "Sato Dental", clean.Company)
}

func TestCheckOrder(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Submission, *Timing)
		want   Reason
	}{
		{"rate limit wins over honeypot", func(s *Submission, tm *Timing) {
			tm.LastSubmission = t0.Add(-10 * time.Second)
			s.Honeypots[0] = "x"
		}, ReasonRateLimit},
		{"honeypot botField", func(s *Submission, _ *Timing) { s.Honeypots[0] = "bot" }, ReasonInvalidSubmission},
		{"honeypot website", func(s *Submission, _ *Timing) { s.Honeypots[1] = "http://spam" }, ReasonInvalidSubmission},
		{"honeypot url wins over dwell", func(s *Submission, tm *Timing) {
			s.Honeypots[2] = "x"
			tm.OpenedAt = t0
		}, ReasonInvalidSubmission},
		{"dwell too short", func(_ *Submission, tm *Timing) { tm.OpenedAt = t0.Add(-4 * time.Second) }, ReasonTakeTime},
		{"dwell never recorded", func(_ *Submission, tm *Timing) { tm.OpenedAt = time.Time{} }, ReasonTakeTime},
		{"required name", func(s *Submission, _ *Timing) { s.Name = "" }, ReasonRequiredFields},
		{"required email wins over spam", func(s *Submission, _ *Timing) {
			s.Email = ""
			s.Message = "cheap casino offer"
		}, ReasonRequiredFields},
		{"whitespace name fails length", func(s *Submission, _ *Timing) { s.Name = "   " }, ReasonNameLength},
		{"short name", func(s *Submission, _ *Timing) { s.Name = "A" }, ReasonNameLength},
		{"long name", func(s *Submission, _ *Timing) { s.Name = strings.Repeat("a", 101) }, ReasonNameLength},
		{"short message before bad email", func(s *Submission, _ *Timing) {
			s.Message = "too short"
			s.Email = "nope"
		}, ReasonMessageLength},
		{"long message", func(s *Submission, _ *Timing) { s.Message = strings.Repeat("a", 2001) }, ReasonMessageLength},
		{"bad email", func(s *Submission, _ *Timing) { s.Email = "hanako@example" }, ReasonValidEmail},
		{"email with space", func(s *Submission, _ *Timing) { s.Email = "han ako@example.com" }, ReasonValidEmail},
		{"url in message", func(s *Submission, _ *Timing) { s.Message = "visit http://x.com for details" }, ReasonSpamContent},
		{"www in message", func(s *Submission, _ *Timing) { s.Message = "see WWW.example.com please" }, ReasonSpamContent},
		{"spam keyword", func(s *Submission, _ *Timing) { s.Message = "Great DEAL on our service" }, ReasonSpamContent},
		{"spam term", func(s *Submission, _ *Timing) { s.Message = "Interested in a small loan?" }, ReasonSpamContent},
		{"first checkbox", func(s *Submission, _ *Timing) { s.HumanVerified[0] = false }, ReasonSecurityVerification},
		{"second checkbox", func(s *Submission, _ *Timing) { s.HumanVerified[1] = false }, ReasonSecurityVerification},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tm := openedLongAgo()
			tc.mutate(&sub, &tm)
			_, err := Gate{}.Check(t0, sub, tm)
			assert.Equal(t, tc.want, reasonOf(t, err))
		})
	}
}

func TestCheckBoundaries(t *testing.T) {
	sub := validSubmission()
	sub.Name = "李明"
	sub.Message = strings.Repeat("あ", 10)
	tm := Timing{OpenedAt: t0.Add(-5 * time.Second), LastSubmission: t0.Add(-30 * time.Second)}

	_, err := Gate{}.Check(t0, sub, tm)
	require.NoError(t, err, "limits are inclusive and counted in runes")

	sub.Name = strings.Repeat("名", 100)
	sub.Message = strings.Repeat("x", 2000)
	_, err = Gate{}.Check(t0, sub, tm)
	require.NoError(t, err)

	// Astral characters count once each.
	sub.Name = strings.Repeat("😀", 100)
	sub.Message = strings.Repeat("😀", 10)
	_, err = Gate{}.Check(t0, sub, tm)
	require.NoError(t, err)

	sub.Name = "😀"
	_, err = Gate{}.Check(t0, sub, tm)
	assert.Equal(t, ReasonNameLength, reasonOf(t, err))
}

func TestCheckHonorsConfiguredThresholds(t *testing.T) {
	g := Gate{MinDwell: time.Second, RateWindow: time.Minute}
	sub := validSubmission()

	_, err := g.Check(t0, sub, Timing{OpenedAt: t0.Add(-2 * time.Second)})
	require.NoError(t, err)

	_, err = g.Check(t0, sub, Timing{OpenedAt: t0.Add(-time.Hour), LastSubmission: t0.Add(-45 * time.Second)})
	assert.Equal(t, ReasonRateLimit, reasonOf(t, err))
}

func TestValidateAttachments(t *testing.T) {
	const mb = 1024 * 1024
	pdf := func(name string, size int64) Attachment {
		return Attachment{Filename: name, ContentType: "application/pdf", Size: size}
	}
	g := Gate{}

	require.NoError(t, g.ValidateAttachments(0, []Attachment{pdf("brief.pdf", 2*mb)}))
	require.NoError(t, g.ValidateAttachments(0, []Attachment{pdf("exact.pdf", 10*mb)}))
	require.NoError(t, g.ValidateAttachments(0, nil))

	err := g.ValidateAttachments(0, []Attachment{pdf("big.pdf", 11*mb)})
	assert.Equal(t, ReasonFileTooLarge, reasonOf(t, err))
	rej, _ := AsRejection(err)
	assert.Equal(t, "big.pdf", rej.File)

	err = g.ValidateAttachments(5, []Attachment{pdf("sixth.pdf", mb)})
	assert.Equal(t, ReasonTooManyFiles, reasonOf(t, err))

	six := make([]Attachment, 6)
	for i := range six {
		six[i] = pdf("f.pdf", 1)
	}
	assert.Equal(t, ReasonTooManyFiles, reasonOf(t, g.ValidateAttachments(0, six)))

	err = g.ValidateAttachments(0, []Attachment{{Filename: "run.exe", ContentType: "application/x-msdownload", Size: 10}})
	assert.Equal(t, ReasonFileType, reasonOf(t, err))

	// per-file problems are reported before the count
	err = g.ValidateAttachments(5, []Attachment{pdf("huge.pdf", 20*mb)})
	assert.Equal(t, ReasonFileTooLarge, reasonOf(t, err))

	for _, ct := range []string{"image/JPEG", "text/plain; charset=utf-8", "image/jpg", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"} {
		assert.NoError(t, g.ValidateAttachments(0, []Attachment{{Filename: "ok", ContentType: ct, Size: 1}}), ct)
	}
}

func TestReasonMessageKey(t *testing.T) {
	assert.Equal(t, "contactForm.validation.takeTime", ReasonTakeTime.MessageKey())
	assert.Equal(t, "contactForm.validation.fileTooLarge", ReasonFileTooLarge.MessageKey())
}
