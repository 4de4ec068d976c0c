// Package omdb provides a client for the OMDb movie metadata API.
package omdb

import "time"

// Config holds configuration for the OMDb API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://www.omdbapi.com")
	Timeout time.Duration // HTTP request timeout
}
