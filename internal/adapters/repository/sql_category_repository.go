package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/jmoiron/sqlx"
)

var _ domain.CategoryRepository = (*SQLCategoryRepository)(nil)

type SQLCategoryRepository struct {
	db *sqlx.DB
}

func NewSQLCategoryRepository(db *sqlx.DB) *SQLCategoryRepository {
	return &SQLCategoryRepository{db: db}
}

func (r *SQLCategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (id, name, color, created_at)
		VALUES (:id, :name, :color, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *SQLCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	query := r.db.Rebind(`SELECT id, name, color, created_at FROM categories WHERE id = ?`)

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

func (r *SQLCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	query := `SELECT id, name, color, created_at FROM categories ORDER BY created_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	for _, c := range categories {
		c.CreatedAt = c.CreatedAt.UTC()
	}
	return categories, nil
}

func (r *SQLCategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM categories WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	return expectAffected(res, domain.ErrCategoryNotFound)
}

// expectAffected maps a statement that touched no rows to notFound.
func expectAffected(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
