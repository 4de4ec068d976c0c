// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecase "movie_backend/internal/feature/auth/usecase"
	"movie_backend/internal/feature/favorites/transport/http/dto"
	"movie_backend/internal/feature/favorites/usecase"
	movieentity "movie_backend/internal/feature/movies/domain/entity"
	moviedto "movie_backend/internal/feature/movies/transport/http/dto"
	moviehandler "movie_backend/internal/feature/movies/transport/handler"
	jwtmw "movie_backend/internal/platform/jwt"
)

// FavoritesUsecase はお気に入り操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FavoritesUsecase interface {
	Add(ctx context.Context, userID uint, imdbID string) (usecase.Outcome, error)
	Remove(ctx context.Context, userID uint, imdbID string) (usecase.Outcome, error)
	List(ctx context.Context, userID uint) ([]string, error)
}

// MovieDetailer resolves imdb ids to full movie details via the external provider.
type MovieDetailer interface {
	DetailAll(ctx context.Context, imdbIDs []string) ([]movieentity.Movie, error)
}

// FavoriteHandler はお気に入り操作のHTTPリクエストを処理します。
// 全ルートがRequireUserの内側にあるため、クレームは常に存在します。
type FavoriteHandler struct {
	uc      FavoritesUsecase
	details MovieDetailer
}

// NewFavoriteHandler はFavoriteHandlerの新しいインスタンスを生成します。
func NewFavoriteHandler(uc FavoritesUsecase, details MovieDetailer) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, details: details}
}

// Add はお気に入り追加APIです。既に追加済みならエラーではなくその旨のメッセージを返します。
//
// POST /favorites  {"imdb_id": "tt0111161"}
func (h *FavoriteHandler) Add(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req dto.AddFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	outcome, err := h.uc.Add(c.Request.Context(), claims.UserID, req.IMDBID)
	if err != nil {
		// 有効なトークンでもユーザーが消えていれば認証エラー扱い
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		slog.Error("add favorite failed", "user_id", claims.UserID, "imdb_id", req.IMDBID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add favorite"})
		return
	}
	slog.Info("favorite added", "user_id", claims.UserID, "imdb_id", req.IMDBID, "outcome", outcome.Message())
	c.JSON(http.StatusOK, dto.MessageResponse{Message: outcome.Message()})
}

// Remove はお気に入り削除APIです。リンクされていない映画の削除は404になります。
//
// DELETE /favorites/tt0111161
func (h *FavoriteHandler) Remove(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	imdbID := c.Param("id")

	outcome, err := h.uc.Remove(c.Request.Context(), claims.UserID, imdbID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		if errors.Is(err, usecase.ErrNotFavorited) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie hasn't been favorited"})
			return
		}
		slog.Error("remove favorite failed", "user_id", claims.UserID, "imdb_id", imdbID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not remove favorite"})
		return
	}
	slog.Info("favorite removed", "user_id", claims.UserID, "imdb_id", imdbID)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: outcome.Message()})
}

// List は呼び出しユーザーのお気に入り詳細一覧APIです。
// 登録済みのimdb idごとに外部プロバイダーから詳細を取得して返します。
//
// GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	claims, ok := jwtmw.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	ids, err := h.uc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		slog.Error("list favorites failed", "user_id", claims.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list favorites"})
		return
	}

	movies, err := h.details.DetailAll(c.Request.Context(), ids)
	if err != nil {
		slog.Warn("favorite details lookup failed", "user_id", claims.UserID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "movie provider unavailable"})
		return
	}

	out := make([]moviedto.MovieItem, 0, len(movies))
	for _, m := range movies {
		out = append(out, moviehandler.ToMovieItem(m))
	}
	c.JSON(http.StatusOK, moviedto.MoviesResult{Movies: out, TotalResults: len(out)})
}
