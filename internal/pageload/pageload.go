// Package pageload drives the one-shot page entrance timeline: progress
// ticks from 0 to 100, then the hero appears, then the remaining content.
package pageload

import (
	"regexp"
	"time"
)

// State is one frame of the timeline.
type State struct {
	IsLoaded       bool `json:"isLoaded"`
	IsHeroVisible  bool `json:"isHeroVisible"`
	IsContentReady bool `json:"isContentReady"`
	LoadProgress   int  `json:"loadProgress"`
}

// Timing holds the delays between frames.
type Timing struct {
	ProgressStep time.Duration
	HeroDelay    time.Duration
	ContentDelay time.Duration
}

var (
	DesktopTiming = Timing{ProgressStep: 50 * time.Millisecond, HeroDelay: 200 * time.Millisecond, ContentDelay: 300 * time.Millisecond}
	MobileTiming  = Timing{ProgressStep: 30 * time.Millisecond, HeroDelay: 400 * time.Millisecond, ContentDelay: 500 * time.Millisecond}
)

const (
	progressStep   = 10
	mobileMaxWidth = 768
)

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobile applies the user-agent test, or a viewport width of at most 768
// pixels when the browser reported one.
func IsMobile(userAgent string, viewportWidth int) bool {
	if mobileUA.MatchString(userAgent) {
		return true
	}
	return viewportWidth > 0 && viewportWidth <= mobileMaxWidth
}

// TimingFor picks the timing profile for a client.
func TimingFor(userAgent string, viewportWidth int) Timing {
	if IsMobile(userAgent, viewportWidth) {
		return MobileTiming
	}
	return DesktopTiming
}

// Final is the state once the timeline has finished.
func Final() State {
	return State{IsLoaded: true, IsHeroVisible: true, IsContentReady: true, LoadProgress: 100}
}

// Sequencer runs the timeline once per Run call.
type Sequencer struct {
	timing Timing
	sleep  func(time.Duration)
}

// Option customises a Sequencer.
type Option func(*Sequencer)

// WithSleep replaces time.Sleep, letting tests run the timeline instantly.
func WithSleep(sleep func(time.Duration)) Option {
	return func(s *Sequencer) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

func NewSequencer(timing Timing, opts ...Option) *Sequencer {
	s := &Sequencer{timing: timing, sleep: time.Sleep}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run emits every frame in order and returns after the last one. There is
// no cancellation; emit is expected to drop frames its consumer can no
// longer receive.
func (s *Sequencer) Run(emit func(State)) {
	st := State{IsLoaded: true}
	emit(st)

	for p := 0; p <= 100; p += progressStep {
		s.sleep(s.timing.ProgressStep)
		st.LoadProgress = p
		emit(st)
	}

	s.sleep(s.timing.HeroDelay)
	st.IsHeroVisible = true
	emit(st)

	s.sleep(s.timing.ContentDelay)
	st.IsContentReady = true
	emit(st)
}

// Duration is the wall time Run takes with the real clock.
func (t Timing) Duration() time.Duration {
	return t.ProgressStep*time.Duration(100/progressStep+1) + t.HeroDelay + t.ContentDelay
}
