package service

import (
	"context"
	"fmt"
	"strings"

	"battery_alert/internal/models"
	"battery_alert/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepo
	alerting    Alerting
}

func NewProfileService(profileRepo repository.ProfileRepo, alerting Alerting) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, alerting: alerting}
}

func validateProfile(p models.DeviceProfile) (models.DeviceProfile, error) {
	p.Label = strings.TrimSpace(p.Label)
	if p.Label == "" {
		return p, ErrEmptyLabel
	}
	if len(p.Label) > models.MaxLabelLen {
		return p, fmt.Errorf("%w: %d bytes, max %d", ErrLabelTooLong, len(p.Label), models.MaxLabelLen)
	}
	if !p.Strategy.Valid() {
		return p, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(p.Strategy))
	}
	return p, nil
}

func (s *ProfileService) Create(ctx context.Context, p models.DeviceProfile) (int, error) {
	p, err := validateProfile(p)
	if err != nil {
		return 0, err
	}
	return s.profileRepo.Create(ctx, p)
}

func (s *ProfileService) Get(ctx context.Context, id int) (models.DeviceProfile, error) {
	p, err := s.profileRepo.Get(ctx, id)
	if err != nil {
		return models.DeviceProfile{}, err
	}
	if p == nil {
		return models.DeviceProfile{}, fmt.Errorf("%w: %d", ErrProfileNotFound, id)
	}
	return *p, nil
}

func (s *ProfileService) List(ctx context.Context) ([]models.DeviceProfile, error) {
	return s.profileRepo.List(ctx)
}

// Check runs CheckAndAlert for a stored profile.
func (s *ProfileService) Check(ctx context.Context, id int, target models.Target, temperature float64) (models.AlertRecord, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.AlertRecord{}, err
	}
	return s.alerting.CheckAndAlert(ctx, target, p, temperature)
}
