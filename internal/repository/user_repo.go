package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"battery_alert/internal/models"
)

// UserRepository stores API users with their role.
type UserRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db, now: time.Now}
}

var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash, role, created_at) VALUES (?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash, role, created_at FROM users WHERE username = ?`
)

func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	if !u.Role.Valid() {
		return 0, fmt.Errorf("insert user %q: unknown role %q", u.Username, u.Role)
	}
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, string(u.Role), r.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername returns (nil, nil) when no user has that name.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		u    models.User
		role string
	)
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	if u.Role = models.Role(role); !u.Role.Valid() {
		return nil, fmt.Errorf("user %q has unknown role %q", username, role)
	}
	return &u, nil
}
