package mocks

import (
	"context"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
)

type MockFilterRepo struct {
	domain.FilterRepository
	UpcomingDatesFunc        func(ctx context.Context, from time.Time) ([]time.Time, error)
	CinemasWithShowtimesFunc func(ctx context.Context) ([]domain.Cinema, error)
	VersionCategoriesFunc    func(ctx context.Context) ([]string, error)
	GenresFunc               func(ctx context.Context) ([]domain.Genre, error)
}

func (m *MockFilterRepo) UpcomingDates(ctx context.Context, from time.Time) ([]time.Time, error) {
	return m.UpcomingDatesFunc(ctx, from)
}

func (m *MockFilterRepo) CinemasWithShowtimes(ctx context.Context) ([]domain.Cinema, error) {
	return m.CinemasWithShowtimesFunc(ctx)
}

func (m *MockFilterRepo) VersionCategories(ctx context.Context) ([]string, error) {
	return m.VersionCategoriesFunc(ctx)
}

func (m *MockFilterRepo) Genres(ctx context.Context) ([]domain.Genre, error) {
	return m.GenresFunc(ctx)
}
