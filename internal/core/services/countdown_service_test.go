package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
	"github.com/comitanigiacomo/kanso-countdown/internal/core/services"
)

var fixedNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestCountdownService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Persists new countdown", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo)
		target := fixedNow.Add(24 * time.Hour)

		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Countdown) bool {
			return c.Title == "Trip" && c.TargetDate.Equal(target) && !c.IsCompleted
		})).Return(nil)

		c, err := svc.Create(ctx, services.CreateCountdownInput{Title: "Trip", TargetDate: target, NotifyBefore: ptr(30)})

		require.NoError(t, err)
		assert.Equal(t, 30, *c.NotifyBefore)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Missing title", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo)

		_, err := svc.Create(ctx, services.CreateCountdownInput{TargetDate: fixedNow})

		assert.ErrorIs(t, err, domain.ErrCountdownTitleEmpty)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCountdownService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Countdown {
		return &domain.Countdown{
			ID:           "cd-1",
			Title:        "Exam",
			Description:  ptr("chapter 1-4"),
			TargetDate:   fixedNow.Add(-time.Hour),
			NotifyBefore: ptr(10),
			IsCompleted:  true,
		}
	}

	t.Run("Success: Only supplied fields change", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo).WithClock(fixedClock)

		repo.On("GetByID", ctx, "cd-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		c, err := svc.Update(ctx, services.UpdateCountdownInput{ID: "cd-1", Title: ptr("Final exam")})

		require.NoError(t, err)
		assert.Equal(t, "Final exam", c.Title)
		assert.Equal(t, "chapter 1-4", *c.Description)
		assert.Equal(t, 10, *c.NotifyBefore)
		assert.True(t, c.IsCompleted, "target untouched keeps completion")
	})

	t.Run("Success: Future target reopens a completed countdown", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo).WithClock(fixedClock)
		newTarget := fixedNow.Add(72 * time.Hour)

		repo.On("GetByID", ctx, "cd-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.MatchedBy(func(c *domain.Countdown) bool {
			return !c.IsCompleted && c.TargetDate.Equal(newTarget)
		})).Return(nil)

		c, err := svc.Update(ctx, services.UpdateCountdownInput{ID: "cd-1", TargetDate: &newTarget, IsTimer: ptr(true)})

		require.NoError(t, err)
		assert.False(t, c.IsCompleted)
		assert.True(t, c.IsTimer)
		repo.AssertExpectations(t)
	})

	t.Run("Success: Empty description clears it", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo).WithClock(fixedClock)

		repo.On("GetByID", ctx, "cd-1").Return(existing(), nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		c, err := svc.Update(ctx, services.UpdateCountdownInput{ID: "cd-1", Description: ptr("")})

		require.NoError(t, err)
		assert.Nil(t, c.Description)
	})

	t.Run("Fail: Not found", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo)

		repo.On("GetByID", ctx, "nope").Return(nil, domain.ErrCountdownNotFound)

		_, err := svc.Update(ctx, services.UpdateCountdownInput{ID: "nope", Title: ptr("x")})

		assert.ErrorIs(t, err, domain.ErrCountdownNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Negative notify_before", func(t *testing.T) {
		repo := new(MockCountdownRepo)
		svc := services.NewCountdownService(repo)

		repo.On("GetByID", ctx, "cd-1").Return(existing(), nil)

		_, err := svc.Update(ctx, services.UpdateCountdownInput{ID: "cd-1", NotifyBefore: ptr(-5)})

		assert.ErrorIs(t, err, domain.ErrInvalidNotifyBefore)
	})
}

func TestCountdownService_CompleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCountdownRepo)
	svc := services.NewCountdownService(repo).WithClock(fixedClock)

	repo.On("CompleteExpired", ctx, fixedNow).Return(int64(3), nil)

	n, err := svc.CompleteExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	repo.AssertExpectations(t)
}
