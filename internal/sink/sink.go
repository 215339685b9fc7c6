package sink

import (
	"context"

	"battery_alert/internal/models"
)

// Controller receives every classification as a numeric code.
type Controller interface {
	SendToController(ctx context.Context, b models.Breach) error
}

// Email receives classifications and mails only the breaches.
type Email interface {
	SendToEmail(ctx context.Context, b models.Breach) error
}

// Sinks groups both notification channels.
type Sinks struct {
	Controller Controller
	Email      Email
}
