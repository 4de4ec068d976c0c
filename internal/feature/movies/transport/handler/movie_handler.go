// Package handler はmoviesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/feature/movies/domain/entity"
	"movie_backend/internal/feature/movies/transport/http/dto"
	"movie_backend/internal/feature/movies/usecase"
)

// MoviesUsecase は映画メタデータ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MoviesUsecase interface {
	Search(ctx context.Context, title string, page int) (entity.SearchResult, error)
	Detail(ctx context.Context, imdbID string) (entity.Movie, error)
}

// MovieHandler は映画メタデータのHTTPリクエストを処理します。
type MovieHandler struct {
	uc MoviesUsecase
}

// NewMovieHandler は指定されたusecaseでMovieHandlerの新しいインスタンスを生成します。
func NewMovieHandler(uc MoviesUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// ToMovieItem converts a domain movie into its transport representation.
func ToMovieItem(m entity.Movie) dto.MovieItem {
	return dto.MovieItem{
		Title:  m.Title,
		Year:   m.Year,
		IMDBID: m.IMDBID,
		Type:   m.Type,
		Poster: m.Poster,
		Plot:   m.Plot,
		Actors: m.Actors,
		Rating: m.Rating,
	}
}

// Search はタイトルとページ番号で映画を検索するAPIです。
//
// エンドポイント例:
// GET /movies/search?title=matrix&page=1
func (h *MovieHandler) Search(c *gin.Context) {
	title := c.Query("title")
	// 未指定・不正な場合はデフォルト値を使用
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.uc.Search(c.Request.Context(), title, page)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}
		slog.Warn("movie search failed", "title", title, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie provider unavailable"})
		return
	}

	out := make([]dto.MovieItem, 0, len(result.Movies))
	for _, m := range result.Movies {
		out = append(out, ToMovieItem(m))
	}
	c.JSON(http.StatusOK, dto.MoviesResult{Movies: out, TotalResults: result.TotalResults})
}

// Detail は外部識別子を指定して1件の詳細情報を返すAPIです。
//
// エンドポイント例:
// GET /movies/tt0111161
func (h *MovieHandler) Detail(c *gin.Context) {
	imdbID := c.Param("id")

	movie, err := h.uc.Detail(c.Request.Context(), imdbID)
	if err != nil {
		slog.Warn("movie detail failed", "imdb_id", imdbID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, ToMovieItem(movie))
}
