package mocks

import (
	"context"

	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/google/uuid"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Movie, error)
	ShowDatesFunc func(ctx context.Context, movieUUID uuid.UUID) ([]string, error)
}

func (m *MockMovieRepo) GetBySlug(ctx context.Context, slug string) (*domain.Movie, error) {
	return m.GetBySlugFunc(ctx, slug)
}

func (m *MockMovieRepo) ShowDates(ctx context.Context, movieUUID uuid.UUID) ([]string, error) {
	return m.ShowDatesFunc(ctx, movieUUID)
}
