package domain

import "context"

// Rating keeps the provider's native string representation ("7.8",
// "1,234") untouched.
type Rating struct {
	Rating string
	Votes  string
}

type RatingProvider interface {
	// MovieRating returns (nil, nil) when the provider has no rating for
	// the title. A transport failure is returned as an error.
	MovieRating(ctx context.Context, imdbID string) (*Rating, error)
}
