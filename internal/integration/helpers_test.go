package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	TestMovieArrivalPosterJSON = `{"small":"https://img.example/arrival-sm.jpg","medium":"https://img.example/arrival-md.jpg","large":"https://img.example/arrival-lg.jpg"}`
	TestMovieDunePosterJSON    = `{"small":"https://img.example/dune-sm.jpg","medium":"https://img.example/dune-md.jpg","large":"https://img.example/dune-lg.jpg"}`
	TestMovieDuneBackdropJSON  = `{"small":"https://img.example/dune-bd-sm.jpg","medium":"https://img.example/dune-bd-md.jpg","large":"https://img.example/dune-bd-lg.jpg"}`
	TestMovieDuneVideoJSON     = `{"key":"Way9Dexny3w","site":"YouTube","type":"Trailer","name":"Official Trailer"}`
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func mustExec(t testing.TB, db *pgxpool.Pool, sql string, args ...any) {
	t.Helper()

	_, err := db.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	mustExec(t, db, `TRUNCATE TABLE showtimes, shows, movies_genres, movies, genres, cinemas RESTART IDENTITY CASCADE`)
}

func showtimeAt(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, time.UTC)
}

func insertCinema(t testing.TB, db *pgxpool.Pool, id int, name, website string) {
	mustExec(t, db, `INSERT INTO cinemas (id, name, website) VALUES ($1, $2, $3)`, id, name, website)
}

func insertGenre(t testing.TB, db *pgxpool.Pool, id int, name string) {
	mustExec(t, db, `INSERT INTO genres (id, name) VALUES ($1, $2)`, id, name)
}

func linkMovieGenre(t testing.TB, db *pgxpool.Pool, movieUUID string, genreID int) {
	mustExec(t, db, `INSERT INTO movies_genres (movie_uuid, genre_id) VALUES ($1, $2)`, movieUUID, genreID)
}

func insertShow(t testing.TB, db *pgxpool.Pool, showUUID string, date time.Time, movieUUID string) {
	mustExec(t, db, `INSERT INTO shows (uuid, date, movie_uuid) VALUES ($1, $2, $3)`, showUUID, date, movieUUID)
}

func insertShowtime(t testing.TB, db *pgxpool.Pool, showUUID string, dateTime time.Time, version, versionLong string, cinemaID int) {
	mustExec(t, db,
		`INSERT INTO showtimes (date_time, version, version_long, show_uuid, cinema_id) VALUES ($1, $2, $3, $4, $5)`,
		dateTime, version, versionLong, showUUID, cinemaID)
}

// seedCatalog resets the database and loads the fixture set shared by the
// endpoint suites: three cinemas (one without showtimes), three genres (one
// unattached), three movies, and shows on two future dates.
func seedCatalog(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	truncateAll(t, db)

	insertCinema(t, db, TestCinemaRexId, TestCinemaRexName, TestCinemaRexWebsite)
	insertCinema(t, db, TestCinemaLuxId, TestCinemaLuxName, TestCinemaLuxWebsite)
	insertCinema(t, db, TestCinemaIdleId, TestCinemaIdleName, TestCinemaIdleWebsite)

	insertGenre(t, db, TestGenreDramaId, TestGenreDrama)
	insertGenre(t, db, TestGenreSciFiId, TestGenreSciFi)
	insertGenre(t, db, TestGenreComedyId, TestGenreComedy)

	mustExec(t, db,
		`INSERT INTO movies (uuid, slug, title, runtime, poster) VALUES ($1, $2, $3, $4, $5::jsonb)`,
		TestMovieArrivalUUID, TestMovieArrivalSlug, TestMovieArrivalTitle, TestMovieArrivalRuntime, TestMovieArrivalPosterJSON)

	mustExec(t, db,
		`INSERT INTO movies (uuid, imdb_id, slug, title, release_date, runtime, original_language,
			directors, actors, overview, backdrop, poster, videos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12::jsonb, ARRAY[$13::jsonb])`,
		TestMovieDuneUUID, TestMovieDuneImdbId, TestMovieDuneSlug, TestMovieDuneTitle,
		TestMovieDuneReleaseDate, TestMovieDuneRuntime, TestMovieDuneLanguage,
		TestMovieDuneDirectors, TestMovieDuneActors, TestMovieDuneOverview,
		TestMovieDuneBackdropJSON, TestMovieDunePosterJSON, TestMovieDuneVideoJSON)

	mustExec(t, db,
		`INSERT INTO movies (uuid, slug, title, runtime) VALUES ($1, $2, $3, $4)`,
		TestMovieMinimalUUID, TestMovieMinimalSlug, TestMovieMinimalTitle, TestMovieMinimalRuntime)

	linkMovieGenre(t, db, TestMovieArrivalUUID, TestGenreDramaId)
	linkMovieGenre(t, db, TestMovieArrivalUUID, TestGenreSciFiId)
	linkMovieGenre(t, db, TestMovieDuneUUID, TestGenreSciFiId)

	insertShow(t, db, TestShowArrivalUUID, TestShowDate, TestMovieArrivalUUID)
	insertShow(t, db, TestShowDuneUUID, TestShowDate, TestMovieDuneUUID)
	insertShow(t, db, TestShowArrival2UUID, TestShowDate2, TestMovieArrivalUUID)

	insertShowtime(t, db, TestShowArrivalUUID, showtimeAt(TestShowDate, 18), "VF-2D", "Version Française 2D", TestCinemaRexId)
	insertShowtime(t, db, TestShowArrivalUUID, showtimeAt(TestShowDate, 21), "VO-3D", "Version Originale 3D", TestCinemaRexId)
	insertShowtime(t, db, TestShowDuneUUID, showtimeAt(TestShowDate, 19), "VO-2D", "Version Originale 2D", TestCinemaLuxId)
	insertShowtime(t, db, TestShowArrival2UUID, showtimeAt(TestShowDate2, 20), "VF-2D", "Version Française 2D", TestCinemaRexId)
}
