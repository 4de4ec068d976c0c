// Package dto defines the wire format of OMDb API responses.
package dto

// SearchResponse is the body of a search-by-title request.
// OMDb reports failures in-band: Response is "False" and Error carries the reason.
type SearchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

// SearchItem is one movie summary in a search result page.
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// DetailResponse is the body of a lookup-by-id request.
type DetailResponse struct {
	Title    string   `json:"Title"`
	Year     string   `json:"Year"`
	ImdbID   string   `json:"imdbID"`
	Type     string   `json:"Type"`
	Poster   string   `json:"Poster"`
	Plot     string   `json:"Plot"`
	Actors   string   `json:"Actors"`
	Ratings  []Rating `json:"Ratings"`
	Response string   `json:"Response"`
	Error    string   `json:"Error"`
}

// Rating is a single source/value rating pair.
type Rating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
