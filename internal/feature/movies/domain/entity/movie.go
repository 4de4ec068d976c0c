// Package entity defines the domain entities for the movies feature.
// Movie metadata is never persisted; values here only exist in flight
// between the external provider and the API response.
package entity

// Movie is a single movie as reported by the external metadata provider.
// Search results carry only the summary fields; Plot, Actors and Rating are
// filled by a detail lookup.
type Movie struct {
	Title  string
	Year   string
	IMDBID string
	Type   string
	Poster string
	Plot   string
	Actors []string
	Rating string
}

// SearchResult is one page of movie summaries plus the provider's total hit count.
type SearchResult struct {
	Movies       []Movie
	TotalResults int
}
