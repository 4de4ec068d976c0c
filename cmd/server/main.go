package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"movie_backend/internal/app/router"
	authadapters "movie_backend/internal/feature/auth/adapters"
	authhandler "movie_backend/internal/feature/auth/transport/handler"
	authusecase "movie_backend/internal/feature/auth/usecase"
	favadapters "movie_backend/internal/feature/favorites/adapters"
	favhandler "movie_backend/internal/feature/favorites/transport/handler"
	favusecase "movie_backend/internal/feature/favorites/usecase"
	moviehandler "movie_backend/internal/feature/movies/transport/handler"
	movieusecase "movie_backend/internal/feature/movies/usecase"
	"movie_backend/internal/platform/cache"
	"movie_backend/internal/platform/config"
	infradb "movie_backend/internal/platform/db"
	"movie_backend/internal/platform/externalapi/omdb"
	platformhttp "movie_backend/internal/platform/http"
	jwtmw "movie_backend/internal/platform/jwt"
	infraredis "movie_backend/internal/platform/redis"
)

func main() {
	// .envは任意（コンテナ環境では環境変数を直接渡す）
	_ = godotenv.Load()
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg.DatabaseDSN, cfg.RunMigrations)

	// Redis（任意: 無ければキャッシュなしで動く）
	var rdb *redisv9.Client
	if cfg.RedisAddr == "" {
		rdb = nil
	} else if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	favoriteRepo := favadapters.NewFavoriteRepository(db)
	omdbRepo := omdb.NewOMDbMovies(omdb.Config{
		APIKey:  cfg.OMDbAPIKey,
		BaseURL: cfg.OMDbBaseURL,
		Timeout: cfg.OMDbTimeout,
	}, platformhttp.NewHTTPClient(cfg.OMDbTimeout))

	// Redisキャッシュでラップ
	cachedMovieRepo := cache.NewCachingMovieRepository(rdb, cfg.SearchCacheTTL, omdbRepo, "movies")

	// Token service
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	moviesUC := movieusecase.NewMoviesUsecase(cachedMovieRepo)
	favoritesUC := favusecase.NewFavoritesUsecase(favoriteRepo, userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	moviesH := moviehandler.NewMovieHandler(moviesUC)
	favoritesH := favhandler.NewFavoriteHandler(favoritesUC, moviesUC)

	// ルータ生成
	r := router.NewRouter(verifier, authH, moviesH, favoritesH)

	server := &stdhttp.Server{Addr: cfg.Addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
