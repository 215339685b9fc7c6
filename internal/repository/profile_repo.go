package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"battery_alert/internal/models"
)

type ProfileSQLite struct {
	db *sql.DB
}

func NewProfileSQLite(db *sql.DB) *ProfileSQLite {
	return &ProfileSQLite{db: db}
}

const (
	insertProfileSQL  = `INSERT INTO device_profiles (label, strategy) VALUES (?, ?)`
	selectProfileSQL  = `SELECT id, label, strategy FROM device_profiles WHERE id = ?`
	selectProfilesSQL = `SELECT id, label, strategy FROM device_profiles ORDER BY id ASC`
)

func (r *ProfileSQLite) Create(ctx context.Context, p models.DeviceProfile) (int, error) {
	res, err := r.db.ExecContext(ctx, insertProfileSQL, p.Label, p.Strategy.String())
	if err != nil {
		return 0, fmt.Errorf("insert profile %q: %w", p.Label, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for profile %q: %w", p.Label, err)
	}
	return int(id), nil
}

func (r *ProfileSQLite) Get(ctx context.Context, id int) (*models.DeviceProfile, error) {
	var (
		p        models.DeviceProfile
		strategy string
	)
	err := r.db.QueryRowContext(ctx, selectProfileSQL, id).Scan(&p.ID, &p.Label, &strategy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select profile %d: %w", id, err)
	}
	if p.Strategy, err = models.ParseCoolingStrategy(strategy); err != nil {
		return nil, fmt.Errorf("profile %d: %w", id, err)
	}
	return &p, nil
}

func (r *ProfileSQLite) List(ctx context.Context) ([]models.DeviceProfile, error) {
	rows, err := r.db.QueryContext(ctx, selectProfilesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DeviceProfile
	for rows.Next() {
		var (
			p        models.DeviceProfile
			strategy string
		)
		if err := rows.Scan(&p.ID, &p.Label, &strategy); err != nil {
			return nil, err
		}
		if p.Strategy, err = models.ParseCoolingStrategy(strategy); err != nil {
			return nil, fmt.Errorf("profile %d: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
