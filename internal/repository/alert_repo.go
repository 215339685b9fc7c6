package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"battery_alert/internal/models"

	"github.com/google/uuid"
)

type AlertSQLite struct {
	db *sql.DB
}

func NewAlertSQLite(db *sql.DB) *AlertSQLite { return &AlertSQLite{db: db} }

const (
	insertAlertSQL = `
		INSERT INTO alert_records (id, occurred_at, target, strategy, label, temp_c, breach)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectAlertsSQL      = `SELECT seq, id, occurred_at, target, strategy, label, temp_c, breach FROM alert_records`
	selectAlertsAfterSQL = selectAlertsSQL + ` WHERE seq > ? ORDER BY seq ASC LIMIT ?`
	selectLastSeqSQL     = `SELECT COALESCE(MAX(seq), 0) FROM alert_records`
)

// Append inserts a record and returns its sequence number. Missing ID and OccurredAt are filled in.
// Sequence numbers follow commit order, unlike OccurredAt which is stamped before the insert.
func (r *AlertSQLite) Append(ctx context.Context, a models.AlertRecord) (int64, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, insertAlertSQL,
		a.ID,
		a.OccurredAt.UTC(),
		a.Target.String(),
		a.Strategy.String(),
		a.Label,
		a.TemperatureC,
		a.Breach.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert alert %s: %w", a.ID, err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get seq for alert %s: %w", a.ID, err)
	}
	return seq, nil
}

// List returns records in [from, to] ordered by occurred_at ASC.
func (r *AlertSQLite) List(ctx context.Context, from, to time.Time, breach, target string) ([]models.AlertRecord, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}
	if breach = strings.ToUpper(strings.TrimSpace(breach)); breach != "" {
		conds = append(conds, "breach = ?")
		args = append(args, breach)
	}
	if target = strings.ToUpper(strings.TrimSpace(target)); target != "" {
		conds = append(conds, "target = ?")
		args = append(args, target)
	}

	q := selectAlertsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC, seq ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanAlerts(rows)
}

// ListAfter returns up to limit records with seq > after, oldest first.
func (r *AlertSQLite) ListAfter(ctx context.Context, after int64, limit int) ([]models.AlertRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectAlertsAfterSQL, after, limit)
	if err != nil {
		return nil, fmt.Errorf("select alerts after %d: %w", after, err)
	}
	return scanAlerts(rows)
}

// LastSeq returns the newest sequence number, 0 when the history is empty.
func (r *AlertSQLite) LastSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, selectLastSeqSQL).Scan(&seq); err != nil {
		return 0, fmt.Errorf("select last alert seq: %w", err)
	}
	return seq, nil
}

func scanAlerts(rows *sql.Rows) ([]models.AlertRecord, error) {
	defer rows.Close()

	out := make([]models.AlertRecord, 0, 64)
	for rows.Next() {
		var (
			a                           models.AlertRecord
			targetS, strategyS, breachS string
			label                       sql.NullString
		)
		if err := rows.Scan(&a.Seq, &a.ID, &a.OccurredAt, &targetS, &strategyS, &label, &a.TemperatureC, &breachS); err != nil {
			return nil, err
		}
		if err := decodeAlertEnums(&a, targetS, strategyS, breachS); err != nil {
			return nil, fmt.Errorf("alert %s: %w", a.ID, err)
		}
		a.Label = label.String
		a.OccurredAt = a.OccurredAt.UTC()
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeAlertEnums(a *models.AlertRecord, target, strategy, breach string) error {
	var err error
	if a.Target, err = models.ParseTarget(target); err != nil {
		return err
	}
	if a.Strategy, err = models.ParseCoolingStrategy(strategy); err != nil {
		return err
	}
	if a.Breach, err = models.ParseBreach(breach); err != nil {
		return err
	}
	return nil
}
