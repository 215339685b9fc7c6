package repository

import (
	"context"
	"database/sql"
	"time"

	"battery_alert/internal/models"
)

// Authorization stores API users and their roles.
type Authorization interface {
	// Create stores u.Username, u.PasswordHash and u.Role and returns the new id.
	Create(ctx context.Context, u models.User) (int, error)
	// GetByUsername returns (nil, nil) when the user does not exist.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// AlertRepo is the append-only alert history.
type AlertRepo interface {
	// Append returns the record's sequence number, assigned in commit order.
	Append(ctx context.Context, a models.AlertRecord) (int64, error)
	// List filters by [from, to] and by breach/target names; zero values mean no filter.
	List(ctx context.Context, from, to time.Time, breach, target string) ([]models.AlertRecord, error)
	ListAfter(ctx context.Context, after int64, limit int) ([]models.AlertRecord, error)
	LastSeq(ctx context.Context) (int64, error)
}

type ProfileRepo interface {
	Create(ctx context.Context, p models.DeviceProfile) (int, error)
	// Get returns (nil, nil) when no profile has the id.
	Get(ctx context.Context, id int) (*models.DeviceProfile, error)
	List(ctx context.Context) ([]models.DeviceProfile, error)
}

type Repository struct {
	AlertRepo   AlertRepo
	ProfileRepo ProfileRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		AlertRepo:   NewAlertSQLite(db),
		ProfileRepo: NewProfileSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
