package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("cinelist-api", otelchi.WithChiRoutes(r)))

	r.Get("/health", app.GetHealth)

	r.Route("/filters", func(r chi.Router) {
		r.Get("/dates", app.GetFilterDates)
		r.Get("/cinemas", app.GetFilterCinemas)
		r.Get("/versions", app.GetFilterVersions)
		r.Get("/genres", app.GetFilterGenres)
	})

	r.Get("/movies/{slug}", app.GetMovie)

	r.Get("/ratings/{imdbID}", app.GetMovieRating)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.GetShows)
		r.Get("/last-update", app.GetLastUpdate)

		r.Route("/{movieID}", func(r chi.Router) {
			r.Get("/showtimes", app.GetMovieShowtimes)
			r.Get("/dates", app.GetMovieShowDates)
		})
	})

	return r
}
