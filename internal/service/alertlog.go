package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"battery_alert/internal/models"
	"battery_alert/internal/repository"
)

// AlertFilter selects alert history. Zero values mean no bound.
type AlertFilter struct {
	From   time.Time // inclusive
	To     time.Time // inclusive
	Breach string    // "", NORMAL, TOO_LOW, TOO_HIGH
	Target string    // "", CONTROLLER, EMAIL
}

type AlertLogService struct {
	alertRepo repository.AlertRepo
}

func NewAlertLogService(alertRepo repository.AlertRepo) *AlertLogService {
	return &AlertLogService{alertRepo: alertRepo}
}

func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeFilter uppercases names, converts bounds to UTC and validates them.
func normalizeFilter(f AlertFilter) (AlertFilter, error) {
	out := AlertFilter{
		From:   toUTC(f.From),
		To:     toUTC(f.To),
		Breach: strings.ToUpper(strings.TrimSpace(f.Breach)),
		Target: strings.ToUpper(strings.TrimSpace(f.Target)),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return AlertFilter{}, ErrInvalidTimeRange
	}
	if out.Breach != "" {
		if _, err := models.ParseBreach(out.Breach); err != nil {
			return AlertFilter{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	if out.Target != "" {
		t, err := models.ParseTarget(out.Target)
		if err != nil {
			return AlertFilter{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		out.Target = t.String()
	}
	return out, nil
}

func (s *AlertLogService) List(ctx context.Context, f AlertFilter) ([]models.AlertRecord, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.alertRepo.List(ctx, nf.From, nf.To, nf.Breach, nf.Target)
}

// MaxTailBatch caps how many records one Tail call returns.
const MaxTailBatch = 500

// Tail returns records stored after seq, oldest first, at most limit of them.
// limit <= 0 or above MaxTailBatch is clamped to MaxTailBatch.
func (s *AlertLogService) Tail(ctx context.Context, after int64, limit int) ([]models.AlertRecord, error) {
	if after < 0 {
		return nil, fmt.Errorf("%w: negative cursor %d", ErrInvalidFilter, after)
	}
	if limit <= 0 || limit > MaxTailBatch {
		limit = MaxTailBatch
	}
	return s.alertRepo.ListAfter(ctx, after, limit)
}

// LastSeq is the cursor that makes Tail return only records stored from now on.
func (s *AlertLogService) LastSeq(ctx context.Context) (int64, error) {
	return s.alertRepo.LastSeq(ctx)
}
