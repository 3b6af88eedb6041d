package animation

import (
	"context"
	"time"
)

// FrameFunc is called once per display refresh with the refresh timestamp.
type FrameFunc func(timestamp time.Time)

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// ManualScheduler holds the requested frame until Fire is called. It is
// driven by tests and by offline rendering with a virtual clock.
type ManualScheduler struct {
	pending FrameFunc
}

// RequestFrame implements the Scheduler interface. A second request
// before Fire replaces the first.
func (m *ManualScheduler) RequestFrame(fn FrameFunc) {
	m.pending = fn
}

// Pending reports whether a frame has been requested.
func (m *ManualScheduler) Pending() bool {
	return m.pending != nil
}

// Fire runs the pending frame at ts. It reports false if nothing was
// pending.
func (m *ManualScheduler) Fire(ts time.Time) bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn(ts)
	return true
}

// Drain fires frames at start, start+interval, ... until no frame is
// pending or limit frames have fired. It returns the number fired.
func Drain(m *ManualScheduler, start time.Time, interval time.Duration, limit int) int {
	n := 0
	ts := start
	for n < limit && m.Fire(ts) {
		n++
		ts = ts.Add(interval)
	}
	return n
}

// Loop is a real time Scheduler. Frames and posted work all run on the
// goroutine that calls Run.
type Loop struct {
	interval time.Duration
	posts    chan func()
	pending  FrameFunc
}

// NewLoop creates a Loop refreshing every interval.
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Loop{
		interval: interval,
		posts:    make(chan func(), 16),
	}
}

// RequestFrame implements the Scheduler interface. It must be called from
// the loop goroutine, i.e. from a frame callback or posted work.
func (l *Loop) RequestFrame(fn FrameFunc) {
	l.pending = fn
}

// Post queues fn to run on the loop goroutine. It blocks if the queue is
// full.
func (l *Loop) Post(fn func()) {
	l.posts <- fn
}

// Run drives the loop until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.posts:
			fn()
		case ts := <-ticker.C:
			if fn := l.pending; fn != nil {
				l.pending = nil
				fn(ts)
			}
		}
	}
}
