package domain

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type CinemaInfo struct {
	Name    string
	Website string
}

// Showtime is one concrete screening: a cinema showing one version of a
// show at one moment.
type Showtime struct {
	DateTime time.Time
	Version  string
	Cinema   CinemaInfo
}

// ShowRow is one flat row of the shows-by-date join. The join fans out one
// row per (genre, showtime) combination, so the same showtime appears once
// per genre of its movie.
type ShowRow struct {
	ShowUUID      uuid.UUID
	MovieUUID     uuid.UUID
	MovieSlug     string
	MovieTitle    string
	MovieRuntime  int
	MoviePoster   *ImageSet
	GenreID       int
	GenreName     string
	DateTime      time.Time
	Version       string
	CinemaName    string
	CinemaWebsite string
}

type ShowGroupMovie struct {
	Slug    string
	Title   string
	Runtime int
	Genres  []string
	Poster  *ImageSet
}

// ShowGroup is one movie's screening presence on a date with all of its
// showtimes.
type ShowGroup struct {
	Movie     ShowGroupMovie
	Showtimes []Showtime
}

type ShowRepository interface {
	ShowtimesByMovieAndDate(ctx context.Context, movieUUID uuid.UUID, date time.Time, filters ShowtimeFilters) ([]Showtime, error)
	ShowsByDate(ctx context.Context, date time.Time, filters ShowFilters) ([]ShowGroup, error)

	// LastScrapeDate returns the earliest distinct show date. Historically
	// named after the scraper run it reflects; the minimum-date behavior is
	// intentional and load-bearing for callers.
	LastScrapeDate(ctx context.Context) (time.Time, error)
}

// GroupShowRows folds the flat join rows into one group per (show, movie).
// Rows must arrive ordered by (movie slug, showtime date-time, genre name):
// the fold relies on that order both for the first-seen de-duplication and
// for the ascending-slug order of the result. It must process rows strictly
// in sequence, never concurrently.
func GroupShowRows(rows []ShowRow) []ShowGroup {
	groups := make(map[string]*ShowGroup)
	order := make([]string, 0)
	seenShowtimes := make(map[string]struct{})

	for _, row := range rows {
		key := row.ShowUUID.String() + "-" + row.MovieUUID.String()

		group, ok := groups[key]
		if !ok {
			group = &ShowGroup{
				Movie: ShowGroupMovie{
					Slug:    row.MovieSlug,
					Title:   row.MovieTitle,
					Runtime: row.MovieRuntime,
					Poster:  row.MoviePoster,
					Genres:  []string{},
				},
				Showtimes: []Showtime{},
			}
			groups[key] = group
			order = append(order, key)
		}

		if !slices.Contains(group.Movie.Genres, row.GenreName) {
			group.Movie.Genres = append(group.Movie.Genres, row.GenreName)
		}

		// The genre join duplicates every showtime once per genre, so a
		// showtime is appended only the first time its identity shows up.
		showtimeKey := fmt.Sprintf("%s-%s-%s-%s", row.ShowUUID, row.DateTime, row.Version, row.CinemaName)
		if _, seen := seenShowtimes[showtimeKey]; seen {
			continue
		}
		seenShowtimes[showtimeKey] = struct{}{}

		group.Showtimes = append(group.Showtimes, Showtime{
			DateTime: row.DateTime,
			Version:  row.Version,
			Cinema: CinemaInfo{
				Name:    row.CinemaName,
				Website: row.CinemaWebsite,
			},
		})
	}

	shows := make([]ShowGroup, 0, len(order))
	for _, key := range order {
		shows = append(shows, *groups[key])
	}

	return shows
}
