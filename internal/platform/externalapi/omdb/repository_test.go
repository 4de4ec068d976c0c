package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewOMDbMovies(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	movies := NewOMDbMovies(cfg, client)

	if movies == nil {
		t.Fatal("expected non-nil repository")
	}
	if movies.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, movies.cfg.APIKey)
	}
}

func TestOMDbMovies_Search_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Query().Get("s") != "matrix" {
			t.Errorf("expected s=matrix, got %s", r.URL.Query().Get("s"))
		}
		if r.URL.Query().Get("page") != "1" {
			t.Errorf("expected page=1, got %s", r.URL.Query().Get("page"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey=test-key, got %s", r.URL.Query().Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Search": [
				{
					"Title": "The Matrix",
					"Year": "1999",
					"imdbID": "tt0133093",
					"Type": "movie",
					"Poster": "https://example.com/matrix.jpg"
				},
				{
					"Title": "The Matrix Reloaded",
					"Year": "2003",
					"imdbID": "tt0234215",
					"Type": "movie",
					"Poster": "N/A"
				}
			],
			"totalResults": "42",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	movies := NewOMDbMovies(cfg, server.Client())

	result, err := movies.Search(context.Background(), "matrix", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalResults != 42 {
		t.Errorf("expected total 42, got %d", result.TotalResults)
	}
	if len(result.Movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(result.Movies))
	}
	first := result.Movies[0]
	if first.Title != "The Matrix" || first.IMDBID != "tt0133093" || first.Year != "1999" {
		t.Errorf("unexpected first movie: %+v", first)
	}
}

func TestOMDbMovies_Search_ProviderError(t *testing.T) {
	t.Parallel()

	// OMDbはHTTP 200のボディ内でエラーを報告する
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	movies := NewOMDbMovies(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	_, err := movies.Search(context.Background(), "zzzzz", 1)
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "Movie not found!") {
		t.Errorf("expected provider message in error, got: %v", err)
	}
}

func TestOMDbMovies_Search_HTTPError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	movies := NewOMDbMovies(Config{APIKey: "bad-key", BaseURL: server.URL}, server.Client())

	_, err := movies.Search(context.Background(), "matrix", 1)
	if err == nil {
		t.Fatal("expected error but got nil")
	}
	if !strings.Contains(err.Error(), "omdb http 401") {
		t.Errorf("expected http status in error, got: %v", err)
	}
}

func TestOMDbMovies_Search_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	movies := NewOMDbMovies(Config{APIKey: "test-key", BaseURL: server.URL}, client)

	// タイムアウトはハングではなくエラーとして返る
	_, err := movies.Search(context.Background(), "matrix", 1)
	if err == nil {
		t.Fatal("expected timeout error but got nil")
	}
}

func TestOMDbMovies_Detail_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("i") != "tt0111161" {
			t.Errorf("expected i=tt0111161, got %s", r.URL.Query().Get("i"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Title": "The Shawshank Redemption",
			"Year": "1994",
			"imdbID": "tt0111161",
			"Type": "movie",
			"Poster": "https://example.com/shawshank.jpg",
			"Plot": "Two imprisoned men bond over a number of years.",
			"Actors": "Tim Robbins, Morgan Freeman, Bob Gunton",
			"Ratings": [
				{"Source": "Internet Movie Database", "Value": "9.3/10"},
				{"Source": "Rotten Tomatoes", "Value": "89%"}
			],
			"Response": "True"
		}`))
	}))
	defer server.Close()

	movies := NewOMDbMovies(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	movie, err := movies.Detail(context.Background(), "tt0111161")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if movie.Title != "The Shawshank Redemption" {
		t.Errorf("unexpected title: %q", movie.Title)
	}
	// 俳優名はカンマ区切りから分割される
	if len(movie.Actors) != 3 || movie.Actors[0] != "Tim Robbins" || movie.Actors[2] != "Bob Gunton" {
		t.Errorf("unexpected actors: %v", movie.Actors)
	}
	// 最初のレーティングが採用される
	if movie.Rating != "9.3/10" {
		t.Errorf("expected rating 9.3/10, got %q", movie.Rating)
	}
}

func TestOMDbMovies_Detail_NoRatings(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"Title": "Obscure Film",
			"imdbID": "tt0000001",
			"Actors": "N/A",
			"Ratings": [],
			"Response": "True"
		}`))
	}))
	defer server.Close()

	movies := NewOMDbMovies(Config{APIKey: "test-key", BaseURL: server.URL}, server.Client())

	movie, err := movies.Detail(context.Background(), "tt0000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie.Rating != "No Rating Available" {
		t.Errorf("expected fallback rating, got %q", movie.Rating)
	}
}
