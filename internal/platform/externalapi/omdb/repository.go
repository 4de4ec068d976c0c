package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/externalapi/omdb/dto"
)

// noRating is returned when the provider reports no rating for a movie.
const noRating = "No Rating Available"

// OMDbMovies はOMDb外部APIから映画メタデータを取得するMovieRepository実装です。
type OMDbMovies struct {
	cfg    Config
	client *http.Client
}

// OMDbMoviesがMovieRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MovieRepository = (*OMDbMovies)(nil)

// NewOMDbMovies は指定された設定とHTTPクライアントでOMDbMoviesの新しいインスタンスを生成します。
func NewOMDbMovies(cfg Config, client *http.Client) *OMDbMovies {
	return &OMDbMovies{cfg: cfg, client: client}
}

// get はOMDbへのGETリクエストを実行し、レスポンスボディをoutへデコードします。
func (o *OMDbMovies) get(ctx context.Context, q url.Values, out any) error {
	q.Set("apikey", o.cfg.APIKey)
	u := fmt.Sprintf("%s/?%s", o.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := o.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("omdb http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// Search はタイトルとページ番号で映画サマリーの1ページ分を取得します。
func (o *OMDbMovies) Search(ctx context.Context, title string, page int) (entity.SearchResult, error) {
	q := url.Values{}
	q.Set("s", title)
	q.Set("page", strconv.Itoa(page))

	var body dto.SearchResponse
	if err := o.get(ctx, q, &body); err != nil {
		return entity.SearchResult{}, err
	}
	// OMDbはエラーを200のボディ内で報告する
	if body.Response == "False" {
		return entity.SearchResult{}, fmt.Errorf("omdb: %s", body.Error)
	}

	total, err := strconv.Atoi(body.TotalResults)
	if err != nil {
		return entity.SearchResult{}, fmt.Errorf("parse totalResults %q: %w", body.TotalResults, err)
	}

	movies := make([]entity.Movie, 0, len(body.Search))
	for _, v := range body.Search {
		movies = append(movies, entity.Movie{
			Title:  v.Title,
			Year:   v.Year,
			IMDBID: v.ImdbID,
			Type:   v.Type,
			Poster: v.Poster,
		})
	}
	return entity.SearchResult{Movies: movies, TotalResults: total}, nil
}

// Detail は外部識別子で1件の詳細情報を取得します。
func (o *OMDbMovies) Detail(ctx context.Context, imdbID string) (entity.Movie, error) {
	q := url.Values{}
	q.Set("i", imdbID)

	var body dto.DetailResponse
	if err := o.get(ctx, q, &body); err != nil {
		return entity.Movie{}, err
	}
	if body.Response == "False" {
		return entity.Movie{}, fmt.Errorf("omdb: %s", body.Error)
	}

	// 俳優名はカンマ区切りの1文字列で返ってくる
	var actors []string
	for _, a := range strings.Split(body.Actors, ",") {
		if a = strings.TrimSpace(a); a != "" {
			actors = append(actors, a)
		}
	}
	rating := noRating
	if len(body.Ratings) > 0 && body.Ratings[0].Value != "" {
		rating = body.Ratings[0].Value
	}

	return entity.Movie{
		Title:  body.Title,
		Year:   body.Year,
		IMDBID: body.ImdbID,
		Type:   body.Type,
		Poster: body.Poster,
		Plot:   body.Plot,
		Actors: actors,
		Rating: rating,
	}, nil
}
