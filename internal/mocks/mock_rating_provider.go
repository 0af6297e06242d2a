package mocks

import (
	"context"

	"github.com/cinelist/cinelist-api/internal/domain"
)

type MockRatingProvider struct {
	domain.RatingProvider
	MovieRatingFunc func(ctx context.Context, imdbID string) (*domain.Rating, error)
}

func (m *MockRatingProvider) MovieRating(ctx context.Context, imdbID string) (*domain.Rating, error) {
	return m.MovieRatingFunc(ctx, imdbID)
}
