package stream

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSink writes every frame to its own file in a directory.
type DirSink struct {
	dir string
}

// NewDirSink creates dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating frame directory: %w", err)
	}
	return &DirSink{dir: dir}, nil
}

// FrameName is the file name of the frame with index i.
func FrameName(i int) string {
	return fmt.Sprintf("frame-%04d.svg", i)
}

// Send implements the Sink interface.
func (d *DirSink) Send(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(d.dir, FrameName(f.Index))
	if err := os.WriteFile(path, []byte(f.SVG), 0o644); err != nil {
		return fmt.Errorf("writing frame %d: %w", f.Index, err)
	}
	return nil
}
