package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.CountdownRepository = (*SQLCountdownRepository)(nil)

const countdownColumns = `id, title, description, target_date, notify_before, is_timer, is_completed, created_at`

type SQLCountdownRepository struct {
	db *sqlx.DB
}

func NewSQLCountdownRepository(db *sqlx.DB) *SQLCountdownRepository {
	return &SQLCountdownRepository{db: db}
}

func normalizeCountdown(c *domain.Countdown) {
	c.TargetDate = c.TargetDate.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
}

func (r *SQLCountdownRepository) Create(ctx context.Context, c *domain.Countdown) error {
	query := `
		INSERT INTO countdowns (` + countdownColumns + `)
		VALUES (:id, :title, :description, :target_date, :notify_before, :is_timer, :is_completed, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to insert countdown: %w", err)
	}
	return nil
}

func (r *SQLCountdownRepository) GetByID(ctx context.Context, id string) (*domain.Countdown, error) {
	var c domain.Countdown
	query := r.db.Rebind(`SELECT ` + countdownColumns + ` FROM countdowns WHERE id = ?`)

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCountdownNotFound
		}
		return nil, fmt.Errorf("failed to get countdown: %w", err)
	}

	normalizeCountdown(&c)
	return &c, nil
}

func (r *SQLCountdownRepository) List(ctx context.Context) ([]*domain.Countdown, error) {
	countdowns := []*domain.Countdown{}
	query := `SELECT ` + countdownColumns + ` FROM countdowns ORDER BY target_date ASC, id ASC`

	if err := r.db.SelectContext(ctx, &countdowns, query); err != nil {
		return nil, fmt.Errorf("failed to list countdowns: %w", err)
	}

	for _, c := range countdowns {
		normalizeCountdown(c)
	}
	return countdowns, nil
}

func (r *SQLCountdownRepository) Update(ctx context.Context, c *domain.Countdown) error {
	query := `
		UPDATE countdowns
		SET title = :title,
		    description = :description,
		    target_date = :target_date,
		    notify_before = :notify_before,
		    is_timer = :is_timer,
		    is_completed = :is_completed
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return expectAffected(res, domain.ErrCountdownNotFound)
}

func (r *SQLCountdownRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM countdowns WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return expectAffected(res, domain.ErrCountdownNotFound)
}

func (r *SQLCountdownRepository) CompleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := r.db.Rebind(`
		UPDATE countdowns
		SET is_completed = ?
		WHERE is_completed = ? AND target_date <= ?`)

	res, err := r.db.ExecContext(ctx, query, true, false, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to complete expired countdowns: %w", err)
	}
	return res.RowsAffected()
}
