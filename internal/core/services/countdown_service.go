package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-countdown/internal/core/domain"
)

type CountdownService struct {
	repo  domain.CountdownRepository
	clock func() time.Time
}

func NewCountdownService(repo domain.CountdownRepository) *CountdownService {
	return &CountdownService{
		repo:  repo,
		clock: time.Now,
	}
}

// WithClock replaces the time source used to decide expiry.
func (s *CountdownService) WithClock(clock func() time.Time) *CountdownService {
	s.clock = clock
	return s
}

type CreateCountdownInput struct {
	Title        string
	Description  string
	TargetDate   time.Time
	NotifyBefore *int
	IsTimer      bool
}

// UpdateCountdownInput carries a partial update: nil fields keep their
// stored value.
type UpdateCountdownInput struct {
	ID           string
	Title        *string
	Description  *string
	TargetDate   *time.Time
	NotifyBefore *int
	IsTimer      *bool
}

func (s *CountdownService) Create(ctx context.Context, input CreateCountdownInput) (*domain.Countdown, error) {
	countdown, err := domain.NewCountdown(input.Title, input.Description, input.TargetDate, input.NotifyBefore, input.IsTimer)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, countdown); err != nil {
		return nil, err
	}

	return countdown, nil
}

func (s *CountdownService) GetByID(ctx context.Context, id string) (*domain.Countdown, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CountdownService) List(ctx context.Context) ([]*domain.Countdown, error) {
	return s.repo.List(ctx)
}

func (s *CountdownService) Update(ctx context.Context, input UpdateCountdownInput) (*domain.Countdown, error) {
	countdown, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	title := countdown.Title
	if input.Title != nil {
		title = *input.Title
	}

	desc := derefString(countdown.Description)
	if input.Description != nil {
		desc = *input.Description
	}

	target := countdown.TargetDate
	if input.TargetDate != nil {
		target = *input.TargetDate
	}

	notify := countdown.NotifyBefore
	if input.NotifyBefore != nil {
		notify = input.NotifyBefore
	}

	isTimer := countdown.IsTimer
	if input.IsTimer != nil {
		isTimer = *input.IsTimer
	}

	if err := countdown.Update(title, desc, target, notify, isTimer, s.clock().UTC()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, countdown); err != nil {
		return nil, err
	}

	return countdown, nil
}

func (s *CountdownService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CompleteExpired marks every pending countdown whose target has passed.
func (s *CountdownService) CompleteExpired(ctx context.Context) (int64, error) {
	return s.repo.CompleteExpired(ctx, s.clock().UTC())
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
