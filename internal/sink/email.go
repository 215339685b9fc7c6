package sink

import (
	"context"
	"fmt"
	"io"
	"sync"

	"battery_alert/internal/models"
)

const DefaultRecipient = "a.b@c.com"

// EmailWriter renders a short mail for TOO_LOW and TOO_HIGH. NORMAL writes nothing.
type EmailWriter struct {
	mu        sync.Mutex
	w         io.Writer
	recipient string
}

var _ Email = (*EmailWriter)(nil)

func NewEmailWriter(w io.Writer, recipient string) *EmailWriter {
	return &EmailWriter{w: w, recipient: recipient}
}

func (e *EmailWriter) SendToEmail(ctx context.Context, b models.Breach) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var word string
	switch b {
	case models.TooLow:
		word = "low"
	case models.TooHigh:
		word = "high"
	default:
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := fmt.Fprintf(e.w, "To: %s\nHi, the temperature is too %s\n", e.recipient, word); err != nil {
		return fmt.Errorf("write email to %s: %w", e.recipient, err)
	}
	return nil
}
