package stream

import (
	"context"
	"math"
	"time"

	"github.com/vasalvit/gauge"
	"github.com/vasalvit/gauge/animation"
)

// DefaultMaxFrames bounds a recording when Recorder.MaxFrames is 0.
const DefaultMaxFrames = 10000

// Recorder renders the animation of a gauge frame by frame against a
// virtual clock, as fast as the sink accepts frames.
type Recorder struct {
	Gauge     *gauge.Gauge
	FPS       float64
	MaxFrames int
}

func (r *Recorder) interval() time.Duration {
	fps := r.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// Record animates from `from` to `to` and sends every frame to sink. It
// returns the number of frames sent.
func (r *Recorder) Record(ctx context.Context, from, to float64, sink Sink) (int, error) {
	max := r.MaxFrames
	if max <= 0 {
		max = DefaultMaxFrames
	}

	s := &animation.ManualScheduler{}
	e := animation.NewEngine(s)
	sent := 0
	var sendErr error
	r.Gauge.Animate(e, from, to, func(svg string, v float64) {
		if sendErr != nil {
			return
		}
		sendErr = sink.Send(ctx, Frame{Index: sent, Value: v, SVG: svg})
		if sendErr == nil {
			sent++
		}
	}, nil)

	ts := time.Unix(0, 0)
	for s.Pending() && sent < max {
		s.Fire(ts)
		if sendErr != nil {
			e.Stop()
			return sent, sendErr
		}
		ts = ts.Add(r.interval())
	}
	return sent, nil
}

// Play animates in real time on an animation.Loop, sending each frame as
// the loop refreshes. It returns when the last frame was sent, the sink
// fails or ctx is done. A NaN target sends nothing.
func Play(ctx context.Context, g *gauge.Gauge, from, to float64, interval time.Duration, sink Sink) (int, error) {
	if math.IsNaN(to) {
		return 0, nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := animation.NewLoop(interval)
	e := animation.NewEngine(loop)
	sent := 0
	done := false
	var sendErr error
	loop.Post(func() {
		g.Animate(e, from, to, func(svg string, v float64) {
			if sendErr != nil {
				return
			}
			if sendErr = sink.Send(ctx, Frame{Index: sent, Value: v, SVG: svg}); sendErr != nil {
				e.Stop()
				cancel()
				return
			}
			sent++
		}, func(float64) {
			done = true
			cancel()
		})
	})

	// frames run on this goroutine, so the flags need no locking
	err := loop.Run(ctx)
	if sendErr != nil {
		return sent, sendErr
	}
	if done {
		return sent, nil
	}
	return sent, err
}
