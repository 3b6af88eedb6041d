// Package animation moves a value from a start to a target over a fixed
// duration, one display refresh at a time.
package animation

import (
	"math"
	"time"
)

// run is the state of one call to Animate.
type run struct {
	from     float64
	to       float64
	duration time.Duration
	ease     EasingFunc
	started  bool
	start    time.Time
}

// value returns the eased value at ts. The caller has already latched the
// start of the run.
func (r *run) value(ts time.Time) float64 {
	fraction := float64(ts.Sub(r.start)) / float64(r.duration)
	return r.from + r.ease(fraction)*(r.to-r.from)
}

func (r *run) terminal(ts time.Time) bool {
	return !ts.Before(r.start.Add(r.duration))
}

// maxSeconds is the longest duration a time.Duration can hold.
var maxSeconds = time.Duration(math.MaxInt64).Seconds()

// seconds converts a non-negative duration in seconds, saturating at the
// largest time.Duration instead of overflowing.
func seconds(s float64) time.Duration {
	if s >= maxSeconds {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(s * float64(time.Second))
}

// Engine animates one value at a time. It is not safe for concurrent use:
// Animate and the scheduler's frame callbacks are expected to run on the
// same goroutine.
type Engine struct {
	scheduler  Scheduler
	ease       EasingFunc
	onFrame    func(float64)
	onComplete func()

	current *run
	pending bool
}

// NewEngine creates an Engine that requests frames from s.
func NewEngine(s Scheduler) *Engine {
	return &Engine{
		scheduler:  s,
		ease:       AcceleratedMotion,
		onComplete: func() {},
	}
}

// Animate starts moving from `from` to `to` over durationSeconds and
// drops any run in progress. onFrame receives every intermediate value and
// finally `to` itself, then onComplete is called once.
//
// A nil onFrame, onComplete or ease keeps the one given to the previous
// call. Animate panics if no onFrame was ever given.
func (e *Engine) Animate(from, to, durationSeconds float64, onFrame func(float64), onComplete func(), ease EasingFunc) {
	if onFrame != nil {
		e.onFrame = onFrame
	}
	if e.onFrame == nil {
		panic("animation: no frame callback to redraw the animated value")
	}
	if onComplete != nil {
		e.onComplete = onComplete
	}
	if ease != nil {
		e.ease = ease
	}

	if math.IsNaN(to) {
		e.current = nil
		return
	}
	if math.IsNaN(from) {
		from = to
	}
	if !(durationSeconds > 0) {
		durationSeconds = 0
	}

	e.current = &run{
		from:     from,
		to:       to,
		duration: seconds(durationSeconds),
		ease:     e.ease,
	}
	if !e.pending {
		e.pending = true
		e.scheduler.RequestFrame(e.step)
	}
}

// Active reports whether a run is in progress.
func (e *Engine) Active() bool {
	return e.current != nil
}

// Stop drops the run in progress without calling onComplete.
func (e *Engine) Stop() {
	e.current = nil
}

// step serves whichever run is current when the frame arrives, so a frame
// requested for a superseded run never reports its values.
func (e *Engine) step(ts time.Time) {
	e.pending = false
	r := e.current
	if r == nil {
		return
	}
	if !r.started {
		// the first frame defines the start, in case of a scheduling delay
		r.start = ts
		r.started = true
	}

	if r.terminal(ts) {
		e.current = nil
		e.onFrame(r.to)
		e.onComplete()
		return
	}

	e.onFrame(r.value(ts))
	// onFrame may have started a new run which already requested a frame
	if !e.pending && e.current != nil {
		e.pending = true
		e.scheduler.RequestFrame(e.step)
	}
}
