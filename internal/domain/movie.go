package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ImageSet holds the URL variants of a poster or backdrop.
type ImageSet struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type Movie struct {
	UUID             uuid.UUID
	ImdbID           *string
	Title            string
	ReleaseDate      *time.Time
	Runtime          int
	OriginalLanguage *string
	Directors        []string
	Actors           []string
	Overview         *string
	Backdrop         *ImageSet
	Poster           *ImageSet
	Videos           []Video
	Genres           []string
}

type MovieRepository interface {
	// GetBySlug returns the movie's public fields plus its genre names.
	// Returns ErrRecordNotFound when no movie has the given slug.
	GetBySlug(ctx context.Context, slug string) (*Movie, error)

	// ShowDates returns every show date for the movie as YYYY-MM-DD
	// strings. The result carries no ordering guarantee.
	ShowDates(ctx context.Context, movieUUID uuid.UUID) ([]string, error)
}
