package app

import (
	"net/http"
	"time"

	"github.com/cinelist/cinelist-api/internal/api"
	"github.com/cinelist/cinelist-api/internal/domain"
)

func (app *Application) GetFilterDates(w http.ResponseWriter, r *http.Request) {
	dates, err := app.filterRepo.UpcomingDates(r.Context(), today(time.Now()))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DateListResponse{
		Dates: formatDates(dates),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilterCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := app.filterRepo.CinemasWithShowtimes(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaListResponse{
		Cinemas: toApiCinemas(cinemas),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilterVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := app.filterRepo.VersionCategories(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.VersionListResponse{
		Versions: versions,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetFilterGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.filterRepo.Genres(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GenreListResponse{
		Genres: toApiGenres(genres),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func formatDates(dates []time.Time) []string {
	formatted := make([]string, len(dates))
	for i, date := range dates {
		formatted[i] = date.Format("2006-01-02")
	}

	return formatted
}

func toApiCinemas(cinemas []domain.Cinema) []api.Cinema {
	apiCinemas := make([]api.Cinema, len(cinemas))
	for i, cinema := range cinemas {
		apiCinemas[i] = api.Cinema{
			Id:   cinema.ID,
			Name: cinema.Name,
		}
	}

	return apiCinemas
}

func toApiGenres(genres []domain.Genre) []api.Genre {
	apiGenres := make([]api.Genre, len(genres))
	for i, genre := range genres {
		apiGenres[i] = api.Genre{
			Id:   genre.ID,
			Name: genre.Name,
		}
	}

	return apiGenres
}
