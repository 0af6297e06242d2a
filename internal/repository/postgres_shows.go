package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) ShowtimesByMovieAndDate(
	ctx context.Context,
	movieUUID uuid.UUID,
	date time.Time,
	filters domain.ShowtimeFilters,
) ([]domain.Showtime, error) {
	args := []any{movieUUID, date}
	joinFilters, args := renderPredicates(" AND ", showtimePredicates(filters), args)

	// The showtime uniqueness constraint already guarantees distinct rows,
	// no de-duplication needed here.
	query := fmt.Sprintf(`
		SELECT st.date_time, st.version, c.name, c.website
		FROM shows s
		INNER JOIN showtimes st ON st.show_uuid = s.uuid%s
		INNER JOIN cinemas c ON c.id = st.cinema_id
		WHERE s.movie_uuid = $1 AND s.date = $2
		ORDER BY st.date_time`, joinFilters)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.DateTime,
			&showtime.Version,
			&showtime.Cinema.Name,
			&showtime.Cinema.Website,
		)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (p *PostgresShowRepository) ShowsByDate(
	ctx context.Context,
	date time.Time,
	filters domain.ShowFilters,
) ([]domain.ShowGroup, error) {
	args := []any{date}
	showtimeFilters, args := renderPredicates(" AND ", showtimePredicates(filters.ShowtimeFilters), args)
	genreFilter, args := renderPredicates(" AND ", []*predicate{hasAnyGenre(filters.GenreIDs)}, args)

	// The ORDER BY is load-bearing: GroupShowRows depends on rows arriving
	// grouped by movie slug with showtimes and genre names ascending.
	query := fmt.Sprintf(`
		SELECT s.uuid, s.movie_uuid, m.slug, m.title, m.runtime, m.poster,
			g.id, g.name, st.date_time, st.version, c.name, c.website
		FROM shows s
		INNER JOIN movies m ON m.uuid = s.movie_uuid
		INNER JOIN movies_genres mg ON mg.movie_uuid = m.uuid
		INNER JOIN genres g ON g.id = mg.genre_id
		INNER JOIN showtimes st ON st.show_uuid = s.uuid%s
		INNER JOIN cinemas c ON c.id = st.cinema_id
		WHERE s.date = $1%s
		ORDER BY m.slug, st.date_time, g.name`, showtimeFilters, genreFilter)

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showRows := []domain.ShowRow{}

	for rows.Next() {
		var row domain.ShowRow
		var posterJson json.RawMessage

		err := rows.Scan(
			&row.ShowUUID,
			&row.MovieUUID,
			&row.MovieSlug,
			&row.MovieTitle,
			&row.MovieRuntime,
			&posterJson,
			&row.GenreID,
			&row.GenreName,
			&row.DateTime,
			&row.Version,
			&row.CinemaName,
			&row.CinemaWebsite,
		)
		if err != nil {
			return nil, err
		}

		if len(posterJson) > 0 {
			if err := json.Unmarshal(posterJson, &row.MoviePoster); err != nil {
				return nil, err
			}
		}

		showRows = append(showRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return domain.GroupShowRows(showRows), nil
}

func (p *PostgresShowRepository) LastScrapeDate(ctx context.Context) (time.Time, error) {
	query := `SELECT DISTINCT date FROM shows ORDER BY date LIMIT 1`

	var date time.Time

	err := p.db.QueryRow(ctx, query).Scan(&date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, domain.ErrRecordNotFound
		}
		return time.Time{}, err
	}

	return date, nil
}
