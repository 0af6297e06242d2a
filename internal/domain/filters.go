package domain

import (
	"context"
	"slices"
	"time"
)

// VersionCategoryLen is the number of leading characters of a version
// string that form its user-facing filter category ("VF-3D" -> "VF").
const VersionCategoryLen = 2

// ShowtimeFilters restricts showtime rows. An empty slice means no
// restriction on that dimension.
type ShowtimeFilters struct {
	CinemaIDs []int
	// VersionCategories must already be narrowed to categories that exist
	// in the store (see FilterExistingVersions); a showtime matches when
	// its version starts with any of them.
	VersionCategories []string
}

// ShowFilters restricts the shows-by-date query. GenreIDs keeps movies
// having at least one of the given genres.
type ShowFilters struct {
	ShowtimeFilters
	GenreIDs []int
}

type FilterRepository interface {
	// UpcomingDates returns distinct show dates on or after from, ascending.
	UpcomingDates(ctx context.Context, from time.Time) ([]time.Time, error)

	// CinemasWithShowtimes returns the cinemas that currently offer at
	// least one showtime, ascending by name.
	CinemasWithShowtimes(ctx context.Context) ([]Cinema, error)

	// VersionCategories returns the distinct version categories in
	// first-seen order over the version-ordered distinct version strings.
	VersionCategories(ctx context.Context) ([]string, error)

	// Genres returns the whole genre table ascending by name, not just
	// genres attached to a movie.
	Genres(ctx context.Context) ([]Genre, error)
}

// VersionCategories truncates version strings to their category and drops
// duplicates, keeping the first occurrence's position.
func VersionCategories(versions []string) []string {
	categories := make([]string, 0, len(versions))

	for _, version := range versions {
		if len(version) > VersionCategoryLen {
			version = version[:VersionCategoryLen]
		}
		if !slices.Contains(categories, version) {
			categories = append(categories, version)
		}
	}

	return categories
}

// FilterExistingVersions narrows candidates to values equal to a known
// version category, preserving candidate order. It guards query building
// against version values that can never match a row.
func FilterExistingVersions(candidates, known []string) []string {
	existing := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if slices.Contains(known, candidate) {
			existing = append(existing, candidate)
		}
	}

	return existing
}

// FilterExistingGenreIDs narrows candidate IDs to ones present in known,
// preserving candidate order.
func FilterExistingGenreIDs(candidates []int, known []Genre) []int {
	knownIDs := make([]int, len(known))
	for i, genre := range known {
		knownIDs[i] = genre.ID
	}

	existing := make([]int, 0, len(candidates))
	for _, id := range candidates {
		if slices.Contains(knownIDs, id) {
			existing = append(existing, id)
		}
	}

	return existing
}
