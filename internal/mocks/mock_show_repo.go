package mocks

import (
	"context"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/google/uuid"
)

type MockShowRepo struct {
	domain.ShowRepository
	ShowtimesByMovieAndDateFunc func(ctx context.Context, movieUUID uuid.UUID, date time.Time, filters domain.ShowtimeFilters) ([]domain.Showtime, error)
	ShowsByDateFunc             func(ctx context.Context, date time.Time, filters domain.ShowFilters) ([]domain.ShowGroup, error)
	LastScrapeDateFunc          func(ctx context.Context) (time.Time, error)
}

func (m *MockShowRepo) ShowtimesByMovieAndDate(
	ctx context.Context,
	movieUUID uuid.UUID,
	date time.Time,
	filters domain.ShowtimeFilters,
) ([]domain.Showtime, error) {
	return m.ShowtimesByMovieAndDateFunc(ctx, movieUUID, date, filters)
}

func (m *MockShowRepo) ShowsByDate(ctx context.Context, date time.Time, filters domain.ShowFilters) ([]domain.ShowGroup, error) {
	return m.ShowsByDateFunc(ctx, date, filters)
}

func (m *MockShowRepo) LastScrapeDate(ctx context.Context) (time.Time, error) {
	return m.LastScrapeDateFunc(ctx)
}
