package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.HabitLogRepository = (*SQLHabitLogRepository)(nil)

const habitLogColumns = `id, habit_id, completed_at, completed_on`

type SQLHabitLogRepository struct {
	db *sqlx.DB
}

func NewSQLHabitLogRepository(db *sqlx.DB) *SQLHabitLogRepository {
	return &SQLHabitLogRepository{db: db}
}

func (r *SQLHabitLogRepository) Create(ctx context.Context, l *domain.HabitLog) error {
	query := `
		INSERT INTO habit_logs (` + habitLogColumns + `)
		VALUES (:id, :habit_id, :completed_at, :completed_on)`

	if _, err := r.db.NamedExecContext(ctx, query, l); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrHabitAlreadyLogged
		}
		return fmt.Errorf("failed to insert habit log: %w", err)
	}
	return nil
}

func (r *SQLHabitLogRepository) ExistsForDay(ctx context.Context, habitID, day string) (bool, error) {
	var count int
	query := r.db.Rebind(`SELECT COUNT(*) FROM habit_logs WHERE habit_id = ? AND completed_on = ?`)

	if err := r.db.GetContext(ctx, &count, query, habitID, day); err != nil {
		return false, fmt.Errorf("failed to check habit log: %w", err)
	}
	return count > 0, nil
}

func (r *SQLHabitLogRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	return r.ListByHabitIDWithRange(ctx, habitID, time.Time{}, time.Time{})
}

func (r *SQLHabitLogRepository) ListByHabitIDWithRange(ctx context.Context, habitID string, from, to time.Time) ([]*domain.HabitLog, error) {
	logs := []*domain.HabitLog{}

	query := `SELECT ` + habitLogColumns + ` FROM habit_logs WHERE habit_id = ?`
	args := []interface{}{habitID}
	if !from.IsZero() {
		query += ` AND completed_at >= ?`
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		query += ` AND completed_at < ?`
		args = append(args, to.UTC())
	}
	query += ` ORDER BY completed_at ASC`

	if err := r.db.SelectContext(ctx, &logs, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list habit logs: %w", err)
	}

	for _, l := range logs {
		l.CompletedAt = l.CompletedAt.UTC()
	}
	return logs, nil
}

func (r *SQLHabitLogRepository) Delete(ctx context.Context, id, habitID string) error {
	query := r.db.Rebind(`DELETE FROM habit_logs WHERE id = ? AND habit_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id, habitID)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return expectAffected(res, domain.ErrHabitLogNotFound)
}
