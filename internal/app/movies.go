package app

import (
	"errors"
	"net/http"

	"github.com/cinelist/cinelist-api/internal/api"
	"github.com/cinelist/cinelist-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	err := app.validator.Var(slug, "required,max=255")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toMovieDetailResponse(movie)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovieRating proxies the rating lookup to the provider. A missing
// rating is a valid outcome and answers with a JSON null body, only a
// provider transport failure is an error.
func (app *Application) GetMovieRating(w http.ResponseWriter, r *http.Request) {
	imdbID := chi.URLParam(r, "imdbID")

	err := app.validator.Var(imdbID, "required,imdb_id")
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	rating, err := app.ratingProvider.MovieRating(r.Context(), imdbID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	if rating == nil {
		err = app.writeJSON(w, http.StatusOK, nil, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.RatingResponse{
		Rating:    rating.Rating,
		VoteCount: rating.Votes,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieDetailResponse(movie *domain.Movie) api.MovieDetailResponse {
	resp := api.MovieDetailResponse{
		ImdbId:           movie.ImdbID,
		Title:            movie.Title,
		Runtime:          movie.Runtime,
		OriginalLanguage: movie.OriginalLanguage,
		Directors:        movie.Directors,
		Actors:           movie.Actors,
		Overview:         movie.Overview,
		Backdrop:         toApiImageSet(movie.Backdrop),
		Poster:           toApiImageSet(movie.Poster),
		Genres:           movie.Genres,
	}

	if movie.ReleaseDate != nil {
		releaseDate := movie.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &releaseDate
	}

	for _, video := range movie.Videos {
		resp.Videos = append(resp.Videos, api.Video{
			Key:  video.Key,
			Site: video.Site,
			Type: video.Type,
			Name: video.Name,
		})
	}

	return resp
}

func toApiImageSet(images *domain.ImageSet) *api.ImageSet {
	if images == nil {
		return nil
	}

	return &api.ImageSet{
		Small:  images.Small,
		Medium: images.Medium,
		Large:  images.Large,
	}
}
