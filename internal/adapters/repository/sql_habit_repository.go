package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.HabitRepository = (*SQLHabitRepository)(nil)

const habitColumns = `id, title, description, frequency, custom_days, category_id, created_at`

type SQLHabitRepository struct {
	db *sqlx.DB
}

func NewSQLHabitRepository(db *sqlx.DB) *SQLHabitRepository {
	return &SQLHabitRepository{db: db}
}

func (r *SQLHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
		INSERT INTO habits (` + habitColumns + `)
		VALUES (:id, :title, :description, :frequency, :custom_days, :category_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *SQLHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	query := r.db.Rebind(`SELECT ` + habitColumns + ` FROM habits WHERE id = ?`)

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	h.CreatedAt = h.CreatedAt.UTC()
	return &h, nil
}

func (r *SQLHabitRepository) List(ctx context.Context, filter domain.HabitFilter) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}

	query := `SELECT ` + habitColumns + ` FROM habits`
	var args []interface{}
	if filter.CategoryID != "" {
		query += ` WHERE category_id = ?`
		args = append(args, filter.CategoryID)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &habits, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	for _, h := range habits {
		h.CreatedAt = h.CreatedAt.UTC()
	}
	return habits, nil
}

func (r *SQLHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `
		UPDATE habits
		SET title = :title,
		    description = :description,
		    frequency = :frequency,
		    custom_days = :custom_days,
		    category_id = :category_id
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, h)
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	return expectAffected(res, domain.ErrHabitNotFound)
}

// Delete removes the habit and its logs atomically.
func (r *SQLHabitRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM habit_logs WHERE habit_id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete habit logs: %w", err)
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM habits WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	if err := expectAffected(res, domain.ErrHabitNotFound); err != nil {
		return err
	}

	return tx.Commit()
}
