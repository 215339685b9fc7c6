package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"battery_alert/internal/models"
)

// DefaultControllerHeader tags every controller frame.
const DefaultControllerHeader uint16 = 0xfeed

// ControllerWriter renders "<header> : <code>\n" to w.
type ControllerWriter struct {
	mu     sync.Mutex
	w      io.Writer
	header uint16
}

var _ Controller = (*ControllerWriter)(nil)

func NewControllerWriter(w io.Writer, header uint16) *ControllerWriter {
	return &ControllerWriter{w: w, header: header}
}

func (c *ControllerWriter) SendToController(ctx context.Context, b models.Breach) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "%04x : %d\n", c.header, b.Code()); err != nil {
		return fmt.Errorf("write controller frame: %w", err)
	}
	return nil
}
