// Package entity defines the domain entities for the favorites feature.
package entity

import "time"

// Favorite anchors a movie from the external provider in the local store.
// Only the stable external identifier is persisted, never movie metadata.
// A Favorite is created at most once per imdb id and is kept even when no
// user references it anymore.
type Favorite struct {
	// ID is the unique identifier for the favorite entry.
	ID uint `gorm:"primaryKey"`

	// IMDBID is the stable identifier assigned by the external provider.
	// It must be unique across all favorite entries.
	IMDBID string `gorm:"column:imdb_id;uniqueIndex;size:32;not null"`

	// CreatedAt is the timestamp when the entry was created.
	CreatedAt time.Time
}

// UserFavorite is one link in the user↔favorite relation. The composite
// primary key makes membership unique, and a single row represents both
// sides of the relation, so the two sides can never disagree.
type UserFavorite struct {
	UserID     uint `gorm:"primaryKey"`
	FavoriteID uint `gorm:"primaryKey"`

	CreatedAt time.Time
}
