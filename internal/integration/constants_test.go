package integration_test

import "time"

const (
	// Cinema related constants
	TestCinemaRexId       = 1
	TestCinemaRexName     = "Cinema Rex"
	TestCinemaRexWebsite  = "https://cinema-rex.example"
	TestCinemaLuxId       = 2
	TestCinemaLuxName     = "Cinema Lux"
	TestCinemaLuxWebsite  = "https://cinema-lux.example"
	TestCinemaIdleId      = 3
	TestCinemaIdleName    = "Cinema Idle"
	TestCinemaIdleWebsite = "https://cinema-idle.example"

	// Genre related constants
	TestGenreDramaId  = 1
	TestGenreDrama    = "Drama"
	TestGenreSciFiId  = 2
	TestGenreSciFi    = "Sci-Fi"
	TestGenreComedyId = 3
	TestGenreComedy   = "Comedy"

	// Movie related constants
	TestMovieArrivalUUID    = "7e6b4a9e-0b1d-4f7a-9c3e-2d8f5a6b7c8d"
	TestMovieArrivalSlug    = "arrival"
	TestMovieArrivalTitle   = "Arrival"
	TestMovieArrivalRuntime = 116

	TestMovieDuneUUID     = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
	TestMovieDuneSlug     = "dune-part-two"
	TestMovieDuneTitle    = "Dune: Part Two"
	TestMovieDuneRuntime  = 166
	TestMovieDuneImdbId   = "tt15239678"
	TestMovieDuneLanguage = "en"
	TestMovieDuneOverview = "Paul Atreides unites with the Fremen while seeking revenge."

	TestMovieMinimalUUID    = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	TestMovieMinimalSlug    = "untitled-preview"
	TestMovieMinimalTitle   = "Untitled Preview"
	TestMovieMinimalRuntime = 0

	// Show related constants
	TestShowArrivalUUID  = "c56a4180-65aa-42ec-a945-5fd21dec0538"
	TestShowDuneUUID     = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	TestShowArrival2UUID = "a8098c1a-f86e-4f39-9d0c-6b1f3f0c2a45"
)

var (
	// Show dates sit in the future so they survive the past-date guard on
	// the showtime endpoints regardless of when the suite runs.
	TestShowDate  = time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	TestShowDate2 = time.Now().UTC().AddDate(0, 0, 8).Truncate(24 * time.Hour)

	TestShowDateStr  = TestShowDate.Format("2006-01-02")
	TestShowDate2Str = TestShowDate2.Format("2006-01-02")

	TestMovieDuneReleaseDate = "2024-02-27"
	TestMovieDuneDirectors   = []string{"Denis Villeneuve"}
	TestMovieDuneActors      = []string{"Timothée Chalamet", "Zendaya"}
)
