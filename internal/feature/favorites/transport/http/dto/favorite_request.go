// Package dto defines data transfer objects for the favorites feature's HTTP transport layer.
package dto

// AddFavoriteReq represents the request body for POST /favorites.
type AddFavoriteReq struct {
	IMDBID string `json:"imdb_id" binding:"required"`
}

// MessageResponse carries the outcome message of an add/remove operation.
type MessageResponse struct {
	Message string `json:"message"`
}
