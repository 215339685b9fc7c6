package service

import (
	"context"
	"fmt"
	"time"

	"battery_alert/internal/logger"
	"battery_alert/internal/models"
	"battery_alert/internal/repository"
	"battery_alert/internal/sink"

	"github.com/google/uuid"
)

// AlertService classifies readings and routes the result to exactly one sink.
type AlertService struct {
	sinks     sink.Sinks
	alertRepo repository.AlertRepo
	log       *logger.Logger
	now       func() time.Time
}

// NewAlertService wires the dispatcher. alertRepo may be nil to skip history.
func NewAlertService(sinks sink.Sinks, alertRepo repository.AlertRepo, log *logger.Logger) *AlertService {
	if log == nil {
		log = logger.Nop()
	}
	return &AlertService{
		sinks:     sinks,
		alertRepo: alertRepo,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Notify sends b to the sink selected by target.
func (s *AlertService) Notify(ctx context.Context, target models.Target, b models.Breach) error {
	switch target {
	case models.ToController:
		return s.sinks.Controller.SendToController(ctx, b)
	case models.ToEmail:
		return s.sinks.Email.SendToEmail(ctx, b)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTarget, int(target))
	}
}

// CheckAndAlert classifies temperature for the profile's strategy and notifies target.
// The returned record is also appended to the alert history when a repo is set;
// a history failure is logged and does not fail the call.
func (s *AlertService) CheckAndAlert(ctx context.Context, target models.Target, profile models.DeviceProfile, temperature float64) (models.AlertRecord, error) {
	if len(profile.Label) > models.MaxLabelLen {
		return models.AlertRecord{}, fmt.Errorf("%w: %d bytes, max %d", ErrLabelTooLong, len(profile.Label), models.MaxLabelLen)
	}

	breach, err := ClassifyForStrategy(profile.Strategy, temperature)
	if err != nil {
		s.log.Warnw("alert_rejected", "err", err, "target", target, "label", profile.Label)
		return models.AlertRecord{}, err
	}

	if err := s.Notify(ctx, target, breach); err != nil {
		s.log.Warnw("alert_notify_failed", "err", err, "target", target, "breach", breach)
		return models.AlertRecord{}, err
	}

	rec := models.AlertRecord{
		ID:           uuid.NewString(),
		OccurredAt:   s.now(),
		Target:       target,
		Strategy:     profile.Strategy,
		Label:        profile.Label,
		TemperatureC: temperature,
		Breach:       breach,
	}
	s.log.Infow("alert_dispatched",
		"target", target,
		"strategy", profile.Strategy,
		"label", profile.Label,
		"temp_c", temperature,
		"breach", breach,
	)

	if s.alertRepo != nil {
		seq, err := s.alertRepo.Append(ctx, rec)
		if err != nil {
			s.log.Errorw("alert_history_append_failed", "err", err, "alert_id", rec.ID)
		} else {
			rec.Seq = seq
		}
	}
	return rec, nil
}
