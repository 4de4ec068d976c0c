// Package usecase は映画メタデータ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie_backend/internal/feature/movies/domain/entity"
)

const (
	// DefaultPage は検索クエリのデフォルトページ番号です。
	DefaultPage = 1
)

// ErrEmptyTitle is returned when a search is requested without a title.
var ErrEmptyTitle = errors.New("search title must not be empty")

// MovieRepository は外部プロバイダーからの映画メタデータ取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MovieRepository interface {
	// Search は指定タイトルの検索結果を1ページ分取得します。
	Search(ctx context.Context, title string, page int) (entity.SearchResult, error)
	// Detail は外部識別子で1件の詳細情報を取得します。
	Detail(ctx context.Context, imdbID string) (entity.Movie, error)
}

// moviesUsecase は映画メタデータ操作のユースケースを定義します。
type moviesUsecase struct {
	movies MovieRepository
}

// NewMoviesUsecase はmoviesUsecaseの新しいインスタンスを生成します。
func NewMoviesUsecase(movies MovieRepository) *moviesUsecase {
	return &moviesUsecase{movies: movies}
}

// Search は指定タイトル・ページの検索結果を返します。
func (u *moviesUsecase) Search(ctx context.Context, title string, page int) (entity.SearchResult, error) {
	if strings.TrimSpace(title) == "" {
		return entity.SearchResult{}, ErrEmptyTitle
	}
	if page < 1 {
		page = DefaultPage
	}
	return u.movies.Search(ctx, title, page)
}

// Detail は外部識別子で1件の詳細情報を返します。
func (u *moviesUsecase) Detail(ctx context.Context, imdbID string) (entity.Movie, error) {
	return u.movies.Detail(ctx, imdbID)
}

// DetailAll は識別子ごとの詳細情報をまとめて返します。
// プロバイダー障害は最初の失敗で打ち切ります。
func (u *moviesUsecase) DetailAll(ctx context.Context, imdbIDs []string) ([]entity.Movie, error) {
	out := make([]entity.Movie, 0, len(imdbIDs))
	for _, id := range imdbIDs {
		m, err := u.movies.Detail(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("detail %q: %w", id, err)
		}
		out = append(out, m)
	}
	return out, nil
}
