// Package usecase implements the business logic for the favorites feature.
package usecase

import "errors"

var (
	// ErrFavoriteNotFound is returned when no favorite entry exists for an imdb id.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrNotFavorited is returned when removing a movie the user never favorited.
	// Removal is deliberately not idempotent, unlike Add.
	ErrNotFavorited = errors.New("movie hasn't been favorited")
)
