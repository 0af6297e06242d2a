package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinelist/cinelist-api/internal/api"
	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type showtimeParams struct {
	Date     string   `validate:"required,datetime=2006-01-02"`
	Cinemas  []int    `validate:"dive,min=1"`
	Versions []string `validate:"dive,min=2,max=20"`
}

type showParams struct {
	showtimeParams
	Genres []int `validate:"dive,min=1"`
}

func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	params, err := app.parseShowParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(params); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	date, err := app.parseDate(params.Date, time.Now().UTC())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters, err := app.buildShowFilters(r, params)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	shows, err := app.showRepo.ShowsByDate(r.Context(), date, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows: toApiShowGroups(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieShowtimes(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid movie ID"))
		return
	}

	params, err := app.parseShowtimeParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.validator.Struct(params); err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	date, err := app.parseDate(params.Date, time.Now().UTC())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters, err := app.buildShowtimeFilters(r, params)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	showtimes, err := app.showRepo.ShowtimesByMovieAndDate(r.Context(), movieID, date, filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: toApiShowtimes(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieShowDates(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid movie ID"))
		return
	}

	dates, err := app.movieRepo.ShowDates(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DateListResponse{
		Dates: dates,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetLastUpdate(w http.ResponseWriter, r *http.Request) {
	date, err := app.showRepo.LastScrapeDate(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LastUpdateResponse{
		Date: date.Format("2006-01-02"),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) parseShowtimeParams(r *http.Request) (showtimeParams, error) {
	qs := r.URL.Query()

	cinemas, err := readInts(qs, "cinema")
	if err != nil {
		return showtimeParams{}, err
	}

	return showtimeParams{
		Date:     qs.Get("date"),
		Cinemas:  cinemas,
		Versions: readStrings(qs, "version"),
	}, nil
}

func (app *Application) parseShowParams(r *http.Request) (showParams, error) {
	showtimes, err := app.parseShowtimeParams(r)
	if err != nil {
		return showParams{}, err
	}

	genres, err := readInts(r.URL.Query(), "genre")
	if err != nil {
		return showParams{}, err
	}

	return showParams{
		showtimeParams: showtimes,
		Genres:         genres,
	}, nil
}

// parseDate parses the date parameter and rejects days before the request's
// own "today".
func (app *Application) parseDate(value string, now time.Time) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be a date in YYYY-MM-DD format")
	}

	if date.Before(today(now)) {
		return time.Time{}, fmt.Errorf("date must not be in the past")
	}

	return date, nil
}

// buildShowtimeFilters narrows the requested versions to categories that
// exist in the store, so the query never carries predicates that cannot
// match anything.
func (app *Application) buildShowtimeFilters(r *http.Request, params showtimeParams) (domain.ShowtimeFilters, error) {
	filters := domain.ShowtimeFilters{
		CinemaIDs: params.Cinemas,
	}

	if len(params.Versions) > 0 {
		known, err := app.filterRepo.VersionCategories(r.Context())
		if err != nil {
			return domain.ShowtimeFilters{}, err
		}

		filters.VersionCategories = domain.FilterExistingVersions(params.Versions, known)
	}

	return filters, nil
}

func (app *Application) buildShowFilters(r *http.Request, params showParams) (domain.ShowFilters, error) {
	showtimeFilters, err := app.buildShowtimeFilters(r, params.showtimeParams)
	if err != nil {
		return domain.ShowFilters{}, err
	}

	filters := domain.ShowFilters{
		ShowtimeFilters: showtimeFilters,
	}

	if len(params.Genres) > 0 {
		known, err := app.filterRepo.Genres(r.Context())
		if err != nil {
			return domain.ShowFilters{}, err
		}

		filters.GenreIDs = domain.FilterExistingGenreIDs(params.Genres, known)
	}

	return filters, nil
}

func toApiShowtimes(showtimes []domain.Showtime) []api.Showtime {
	apiShowtimes := make([]api.Showtime, len(showtimes))
	for i, showtime := range showtimes {
		apiShowtimes[i] = api.Showtime{
			DateTime: showtime.DateTime,
			Version:  showtime.Version,
			Cinema: api.CinemaInfo{
				Name:    showtime.Cinema.Name,
				Website: showtime.Cinema.Website,
			},
		}
	}

	return apiShowtimes
}

func toApiShowGroups(shows []domain.ShowGroup) []api.ShowGroup {
	apiShows := make([]api.ShowGroup, len(shows))
	for i, show := range shows {
		apiShows[i] = api.ShowGroup{
			Movie: api.ShowGroupMovie{
				Slug:    show.Movie.Slug,
				Title:   show.Movie.Title,
				Runtime: show.Movie.Runtime,
				Genres:  show.Movie.Genres,
				Poster:  toApiImageSet(show.Movie.Poster),
			},
			Showtimes: toApiShowtimes(show.Showtimes),
		}
	}

	return apiShows
}
