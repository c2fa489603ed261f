package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Validates and persists", func(t *testing.T) {
		repo := new(MockCategoryRepo)
		svc := services.NewCategoryService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Category) bool {
			return c.Name == "Health" && c.Color == "#00ff00" && c.ID != ""
		})).Return(nil)

		c, err := svc.Create(ctx, services.CreateCategoryInput{Name: "Health", Color: "#00ff00"})

		require.NoError(t, err)
		assert.Equal(t, "Health", c.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Invalid color never reaches the repository", func(t *testing.T) {
		repo := new(MockCategoryRepo)
		svc := services.NewCategoryService(repo)

		_, err := svc.Create(ctx, services.CreateCategoryInput{Name: "Health", Color: "green"})

		assert.ErrorIs(t, err, domain.ErrInvalidColor)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Repository error propagates", func(t *testing.T) {
		repo := new(MockCategoryRepo)
		svc := services.NewCategoryService(repo)
		dbErr := errors.New("db connection lost")

		repo.On("Create", ctx, mock.Anything).Return(dbErr)

		c, err := svc.Create(ctx, services.CreateCategoryInput{Name: "Work", Color: "#123"})

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, c)
	})
}

func TestCategoryService_ReadAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepo)
	svc := services.NewCategoryService(repo)

	existing := &domain.Category{ID: "cat-1", Name: "Health", Color: "#fff"}
	repo.On("GetByID", ctx, "cat-1").Return(existing, nil)
	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrCategoryNotFound)
	repo.On("List", ctx).Return([]*domain.Category{existing}, nil)
	repo.On("Delete", ctx, "cat-1").Return(nil)
	repo.On("Delete", ctx, "missing").Return(domain.ErrCategoryNotFound)

	got, err := svc.GetByID(ctx, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, existing, got)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, svc.Delete(ctx, "cat-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), domain.ErrCategoryNotFound)
}
