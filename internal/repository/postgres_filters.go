package repository

import (
	"context"
	"time"

	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresFilterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresFilterRepository(db *pgxpool.Pool) *PostgresFilterRepository {
	return &PostgresFilterRepository{
		db: db,
	}
}

func (p *PostgresFilterRepository) UpcomingDates(ctx context.Context, from time.Time) ([]time.Time, error) {
	query := `SELECT DISTINCT date FROM shows WHERE date >= $1 ORDER BY date`

	rows, err := p.db.Query(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := []time.Time{}

	for rows.Next() {
		var date time.Time

		if err := rows.Scan(&date); err != nil {
			return nil, err
		}

		dates = append(dates, date)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func (p *PostgresFilterRepository) CinemasWithShowtimes(ctx context.Context) ([]domain.Cinema, error) {
	query := `
		SELECT DISTINCT c.id, c.name
		FROM showtimes st
		INNER JOIN cinemas c ON c.id = st.cinema_id
		ORDER BY c.name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cinemas := []domain.Cinema{}

	for rows.Next() {
		var cinema domain.Cinema

		if err := rows.Scan(&cinema.ID, &cinema.Name); err != nil {
			return nil, err
		}

		cinemas = append(cinemas, cinema)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cinemas, nil
}

func (p *PostgresFilterRepository) VersionCategories(ctx context.Context) ([]string, error) {
	// Ordered on the full version string; the two-character truncation and
	// its first-seen de-duplication happen in Go.
	query := `SELECT DISTINCT version FROM showtimes ORDER BY version`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	versions := []string{}

	for rows.Next() {
		var version string

		if err := rows.Scan(&version); err != nil {
			return nil, err
		}

		versions = append(versions, version)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return domain.VersionCategories(versions), nil
}

func (p *PostgresFilterRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	// Deliberately the whole genre table, not only genres attached to a
	// movie.
	query := `SELECT DISTINCT id, name FROM genres ORDER BY name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []domain.Genre{}

	for rows.Next() {
		var genre domain.Genre

		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return genres, nil
}
