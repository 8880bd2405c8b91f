package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingForwarder struct {
	calls []Sanitized
	err   error
}

func (f *recordingForwarder) Forward(_ context.Context, msg Sanitized) error {
	f.calls = append(f.calls, msg)
	return f.err
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestService(fwd Forwarder) (*Service, *fakeClock) {
	clock := &fakeClock{now: t0}
	return NewService(Gate{}, NewMemoryLimiter(30*time.Second), fwd, WithClock(clock.Now)), clock
}

func TestSubmitForwardsAndIssuesReceipt(t *testing.T) {
	fwd := &recordingForwarder{}
	svc, _ := newTestService(fwd)

	receipt, err := svc.Submit(context.Background(), "203.0.113.7", validSubmission(), t0.Add(-time.Minute))
	require.NoError(t, err)
	assert.Len(t, receipt.ID, 26)
	assert.Equal(t, t0, receipt.Submitted)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, "hanako@example.co.jp", fwd.calls[0].Email)
}

func TestSubmitHoneypotNeverForwards(t *testing.T) {
	fwd := &recordingForwarder{}
	svc, _ := newTestService(fwd)

	sub := validSubmission()
	sub.Honeypots[1] = "https://bot.example"
	_, err := svc.Submit(context.Background(), "ip", sub, t0.Add(-time.Minute))
	assert.Equal(t, ReasonInvalidSubmission, reasonOf(t, err))
	assert.Empty(t, fwd.calls)
}

func TestSubmitTooFastNeverForwards(t *testing.T) {
	fwd := &recordingForwarder{}
	svc, _ := newTestService(fwd)

	_, err := svc.Submit(context.Background(), "ip", validSubmission(), t0.Add(-2*time.Second))
	assert.Equal(t, ReasonTakeTime, reasonOf(t, err))
	assert.Empty(t, fwd.calls)
}

func TestSubmitRateLimitsSecondAttempt(t *testing.T) {
	fwd := &recordingForwarder{}
	svc, clock := newTestService(fwd)
	ctx := context.Background()
	opened := t0.Add(-time.Minute)

	_, err := svc.Submit(ctx, "ip-a", validSubmission(), opened)
	require.NoError(t, err)

	clock.now = t0.Add(20 * time.Second)
	_, err = svc.Submit(ctx, "ip-a", validSubmission(), opened)
	assert.Equal(t, ReasonRateLimit, reasonOf(t, err))

	_, err = svc.Submit(ctx, "ip-b", validSubmission(), opened)
	require.NoError(t, err, "other clients are unaffected")

	clock.now = t0.Add(31 * time.Second)
	_, err = svc.Submit(ctx, "ip-a", validSubmission(), opened)
	require.NoError(t, err)
	assert.Len(t, fwd.calls, 3)
}

func TestSubmitRelayFailureStillCountsAttempt(t *testing.T) {
	boom := errors.New("relay down")
	fwd := &recordingForwarder{err: boom}
	svc, clock := newTestService(fwd)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "ip", validSubmission(), t0.Add(-time.Minute))
	require.ErrorIs(t, err, boom)
	_, isRejection := AsRejection(err)
	assert.False(t, isRejection)

	clock.now = t0.Add(5 * time.Second)
	_, err = svc.Submit(ctx, "ip", validSubmission(), t0.Add(-time.Minute))
	assert.Equal(t, ReasonRateLimit, reasonOf(t, err))
}

func TestSubmitChecksAttachmentsFirst(t *testing.T) {
	fwd := &recordingForwarder{}
	svc, _ := newTestService(fwd)

	sub := validSubmission()
	sub.Honeypots[0] = "bot"
	sub.Attachments = []Attachment{{Filename: "a.zip", ContentType: "application/zip", Size: 10}}
	_, err := svc.Submit(context.Background(), "ip", sub, t0.Add(-time.Minute))
	assert.Equal(t, ReasonFileType, reasonOf(t, err))
	assert.Empty(t, fwd.calls)
}

func TestMemoryLimiterPrunesExpired(t *testing.T) {
	l := NewMemoryLimiter(time.Second)
	ctx := context.Background()
	require.NoError(t, l.Record(ctx, "a", t0))
	require.NoError(t, l.Record(ctx, "b", t0.Add(2*time.Second)))

	last, err := l.Last(ctx, "a")
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}
