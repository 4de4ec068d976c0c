// Package dto defines data transfer objects for the movies feature's HTTP transport layer.
package dto

// MovieItem is the public representation of a single movie.
// Detail-only fields are omitted from search responses.
type MovieItem struct {
	Title  string   `json:"title"`
	Year   string   `json:"year"`
	IMDBID string   `json:"imdbID"`
	Type   string   `json:"type"`
	Poster string   `json:"poster"`
	Plot   string   `json:"plot,omitempty"`
	Actors []string `json:"actors,omitempty"`
	Rating string   `json:"rating,omitempty"`
}

// MoviesResult wraps a list of movies with the total hit count.
type MoviesResult struct {
	Movies       []MovieItem `json:"movies"`
	TotalResults int         `json:"totalResults"`
}
