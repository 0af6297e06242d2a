package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMovieRepository struct {
	db *pgxpool.Pool
}

func NewPostgresMovieRepository(db *pgxpool.Pool) *PostgresMovieRepository {
	return &PostgresMovieRepository{
		db: db,
	}
}

func (p *PostgresMovieRepository) GetBySlug(ctx context.Context, slug string) (*domain.Movie, error) {
	// Explicit projection: internal columns like tmdb_id and slug itself
	// stay out of the detail payload.
	query := `
		SELECT uuid, imdb_id, title, release_date, runtime, original_language,
			directors, actors, overview, backdrop, poster, videos
		FROM movies
		WHERE slug = $1`

	var movie domain.Movie
	var backdropJson, posterJson json.RawMessage
	var videosJson [][]byte

	err := p.db.QueryRow(ctx, query, slug).Scan(
		&movie.UUID,
		&movie.ImdbID,
		&movie.Title,
		&movie.ReleaseDate,
		&movie.Runtime,
		&movie.OriginalLanguage,
		&movie.Directors,
		&movie.Actors,
		&movie.Overview,
		&backdropJson,
		&posterJson,
		&videosJson,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	if len(backdropJson) > 0 {
		if err := json.Unmarshal(backdropJson, &movie.Backdrop); err != nil {
			return nil, err
		}
	}

	if len(posterJson) > 0 {
		if err := json.Unmarshal(posterJson, &movie.Poster); err != nil {
			return nil, err
		}
	}

	for _, videoJson := range videosJson {
		var video domain.Video

		if err := json.Unmarshal(videoJson, &video); err != nil {
			return nil, err
		}

		movie.Videos = append(movie.Videos, video)
	}

	genres, err := p.genreNames(ctx, movie.UUID)
	if err != nil {
		return nil, err
	}
	movie.Genres = genres

	return &movie, nil
}

func (p *PostgresMovieRepository) genreNames(ctx context.Context, movieUUID uuid.UUID) ([]string, error) {
	// Left join so a movie with zero genres still resolves.
	query := `
		SELECT g.name
		FROM movies_genres mg
		LEFT JOIN genres g ON g.id = mg.genre_id
		WHERE mg.movie_uuid = $1`

	rows, err := p.db.Query(ctx, query, movieUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []string{}

	for rows.Next() {
		var name *string

		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		if name != nil {
			genres = append(genres, *name)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}

func (p *PostgresMovieRepository) ShowDates(ctx context.Context, movieUUID uuid.UUID) ([]string, error) {
	// No ORDER BY, callers get no ordering guarantee.
	query := `SELECT date FROM shows WHERE movie_uuid = $1`

	rows, err := p.db.Query(ctx, query, movieUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []string{}

	for rows.Next() {
		var date time.Time

		if err := rows.Scan(&date); err != nil {
			return nil, err
		}

		dates = append(dates, date.Format("2006-01-02"))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
