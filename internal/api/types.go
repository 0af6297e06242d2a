// Package api defines the JSON contract of the HTTP endpoints.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// Dates are calendar days formatted as YYYY-MM-DD.
type DateListResponse struct {
	Dates []string `json:"dates"`
}

type Cinema struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type CinemaListResponse struct {
	Cinemas []Cinema `json:"cinemas"`
}

type VersionListResponse struct {
	Versions []string `json:"versions"`
}

type Genre struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

type ImageSet struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type MovieDetailResponse struct {
	ImdbId           *string   `json:"imdbId"`
	Title            string    `json:"title"`
	ReleaseDate      *string   `json:"releaseDate"`
	Runtime          int       `json:"runtime"`
	OriginalLanguage *string   `json:"originalLanguage"`
	Directors        []string  `json:"directors"`
	Actors           []string  `json:"actors"`
	Overview         *string   `json:"overview"`
	Backdrop         *ImageSet `json:"backdrop"`
	Poster           *ImageSet `json:"poster"`
	Videos           []Video   `json:"videos"`
	Genres           []string  `json:"genres"`
}

type RatingResponse struct {
	Rating    string `json:"rating"`
	VoteCount string `json:"voteCount"`
}

type CinemaInfo struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

type Showtime struct {
	DateTime time.Time  `json:"dateTime"`
	Version  string     `json:"version"`
	Cinema   CinemaInfo `json:"cinema"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
}

type ShowGroupMovie struct {
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Runtime int       `json:"runtime"`
	Genres  []string  `json:"genres"`
	Poster  *ImageSet `json:"poster"`
}

type ShowGroup struct {
	Movie     ShowGroupMovie `json:"movie"`
	Showtimes []Showtime     `json:"showtimes"`
}

type ShowListResponse struct {
	Shows []ShowGroup `json:"shows"`
}

type LastUpdateResponse struct {
	Date string `json:"date"`
}
