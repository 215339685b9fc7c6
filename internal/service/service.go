package service

import (
	"context"
	"time"

	"battery_alert/internal/logger"
	"battery_alert/internal/models"
	"battery_alert/internal/repository"
	"battery_alert/internal/sink"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string, role models.Role) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (Principal, error)
}

// Limits resolves safe ranges and classifies readings. Pure, no I/O.
type Limits interface {
	Resolve(s models.CoolingStrategy) (models.SafetyRange, error)
	Classify(s models.CoolingStrategy, t float64) (models.Breach, models.SafetyRange, error)
}

// Alerting dispatches classifications to the controller or email sink.
type Alerting interface {
	Notify(ctx context.Context, target models.Target, b models.Breach) error
	CheckAndAlert(ctx context.Context, target models.Target, profile models.DeviceProfile, temperature float64) (models.AlertRecord, error)
}

// AlertLog exposes the dispatched-alert history.
type AlertLog interface {
	List(ctx context.Context, f AlertFilter) ([]models.AlertRecord, error)
	// Tail pages by insert sequence, which follows commit order.
	Tail(ctx context.Context, after int64, limit int) ([]models.AlertRecord, error)
	LastSeq(ctx context.Context) (int64, error)
}

type Profiles interface {
	Create(ctx context.Context, p models.DeviceProfile) (int, error)
	Get(ctx context.Context, id int) (models.DeviceProfile, error)
	List(ctx context.Context) ([]models.DeviceProfile, error)
	Check(ctx context.Context, id int, target models.Target, temperature float64) (models.AlertRecord, error)
}

// Service aggregates all sub-services.
type Service struct {
	Limits
	Alerting
	AlertLog
	Profiles
	Authorization
}

// AuthOptions configures token signing and sign-up policy.
type AuthOptions struct {
	SigningKey     string
	TokenTTL       time.Duration
	OperatorSignup bool
}

func NewService(repos *repository.Repository, sinks sink.Sinks, auth AuthOptions, log *logger.Logger) *Service {
	alerting := NewAlertService(sinks, repos.AlertRepo, log)
	return &Service{
		Limits:        NewLimitsService(),
		Alerting:      alerting,
		AlertLog:      NewAlertLogService(repos.AlertRepo),
		Profiles:      NewProfileService(repos.ProfileRepo, alerting),
		Authorization: NewAuthService(repos.Auth, auth),
	}
}
