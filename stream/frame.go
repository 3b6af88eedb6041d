// Package stream delivers rendered gauge frames to files or an MQTT
// broker.
package stream

import "context"

// Frame is one rendering of an animated gauge.
type Frame struct {
	Index int
	Value float64
	SVG   string
}

// A Sink receives frames in order.
type Sink interface {
	Send(ctx context.Context, f Frame) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, f Frame) error

// Send implements the Sink interface.
func (fn SinkFunc) Send(ctx context.Context, f Frame) error {
	return fn(ctx, f)
}
