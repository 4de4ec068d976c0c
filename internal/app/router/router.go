package router

import (
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	favhandler "movie_backend/internal/feature/favorites/transport/handler"
	moviehandler "movie_backend/internal/feature/movies/transport/handler"
	"movie_backend/internal/platform/http/handler"
	jwtmw "movie_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles all routes. The Authenticate middleware runs on every
// route: a request without a token stays anonymous, but a present token that
// fails verification aborts with 401 everywhere, even on public routes.
func NewRouter(verifier jwtmw.Verifier, auth *authhandler.AuthHandler,
	movies *moviehandler.MovieHandler, favorites *favhandler.FavoriteHandler) *gin.Engine {
	r := gin.Default()
	r.Use(jwtmw.Authenticate(verifier))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", auth.Login)
	// 映画検索（外部プロバイダーのプロキシ）
	r.GET("/movies/search", movies.Search)
	// imdb id直指定の詳細取得
	r.GET("/movies/:id", movies.Detail)

	// 認証必須のルート
	fav := r.Group("/favorites")
	fav.Use(jwtmw.RequireUser())
	{
		fav.GET("", favorites.List)
		fav.POST("", favorites.Add)
		fav.DELETE("/:id", favorites.Remove)
	}

	return r
}
