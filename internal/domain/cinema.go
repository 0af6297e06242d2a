package domain

// Cinema IDs come from the scraper's upstream catalogue, they are not
// generated by this service.
type Cinema struct {
	ID      int
	Name    string
	Website string
}

type Genre struct {
	ID   int
	Name string
}
