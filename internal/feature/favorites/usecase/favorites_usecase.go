// Package usecase はfavoritesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/favorites/domain/entity"
)

// Outcome identifies the result of an add/remove operation on the
// user↔favorite relation.
type Outcome int

const (
	// OutcomeAdded means the link did not exist and was created.
	OutcomeAdded Outcome = iota
	// OutcomeAlreadyAdded means the link already existed; Add was a no-op.
	OutcomeAlreadyAdded
	// OutcomeRemoved means the link existed and was removed.
	OutcomeRemoved
)

// Message returns the client-facing message for the outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeAdded:
		return "Movie has been added to favorites"
	case OutcomeAlreadyAdded:
		return "Movie already added to favorites"
	case OutcomeRemoved:
		return "Movie has been removed from favorites"
	default:
		return ""
	}
}

// FavoriteRepository はお気に入りエントリとユーザー・リンクの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FavoriteRepository interface {
	// FindOrCreate はimdb idでエントリを取得し、なければ作成します。
	// 同一idに対する並行呼び出しでも重複レコードを作りません。
	FindOrCreate(ctx context.Context, imdbID string) (*entity.Favorite, error)

	// FindByIMDBID はimdb idでエントリを取得します。
	// 存在しない場合、ErrFavoriteNotFoundを返します。
	FindByIMDBID(ctx context.Context, imdbID string) (*entity.Favorite, error)

	// Link はユーザーとお気に入りを結びつけます。
	// 既にリンク済みの場合は何もせずfalseを返します。
	Link(ctx context.Context, userID, favoriteID uint) (bool, error)

	// Unlink はリンクを外します。リンクが存在しなかった場合falseを返します。
	Unlink(ctx context.Context, userID, favoriteID uint) (bool, error)

	// ListIMDBIDs はユーザーがお気に入りにしたimdb idを追加順に返します。
	ListIMDBIDs(ctx context.Context, userID uint) ([]string, error)

	// CountUsers はお気に入りをリンクしているユーザー数を返します。
	CountUsers(ctx context.Context, favoriteID uint) (int64, error)
}

// UserFinder はユーザー存在確認のための読み取りインターフェースです。
// authフィーチャーのリポジトリが実装します。
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*authentity.User, error)
}

// favoritesUsecase orchestrates add/remove operations across the user store
// and the favorite registry.
type favoritesUsecase struct {
	favorites FavoriteRepository
	users     UserFinder
}

// NewFavoritesUsecase はfavoritesUsecaseの新しいインスタンスを生成します。
func NewFavoritesUsecase(favorites FavoriteRepository, users UserFinder) *favoritesUsecase {
	return &favoritesUsecase{favorites: favorites, users: users}
}

// Add links a movie to the user's favorites. Adding an already-linked movie
// is a no-op reported as OutcomeAlreadyAdded, never an error.
func (u *favoritesUsecase) Add(ctx context.Context, userID uint, imdbID string) (Outcome, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return 0, fmt.Errorf("add favorite: %w", err)
	}

	fav, err := u.favorites.FindOrCreate(ctx, imdbID)
	if err != nil {
		return 0, fmt.Errorf("add favorite %q: %w", imdbID, err)
	}

	linked, err := u.favorites.Link(ctx, userID, fav.ID)
	if err != nil {
		return 0, fmt.Errorf("add favorite %q: %w", imdbID, err)
	}
	if !linked {
		return OutcomeAlreadyAdded, nil
	}
	return OutcomeAdded, nil
}

// Remove unlinks a movie from the user's favorites. Removing a movie that was
// never linked fails with ErrNotFavorited. The favorite entry itself is kept
// even when its last user unlinks it.
func (u *favoritesUsecase) Remove(ctx context.Context, userID uint, imdbID string) (Outcome, error) {
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return 0, fmt.Errorf("remove favorite: %w", err)
	}

	fav, err := u.favorites.FindByIMDBID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			return 0, ErrNotFavorited
		}
		return 0, fmt.Errorf("remove favorite %q: %w", imdbID, err)
	}

	unlinked, err := u.favorites.Unlink(ctx, userID, fav.ID)
	if err != nil {
		return 0, fmt.Errorf("remove favorite %q: %w", imdbID, err)
	}
	if !unlinked {
		return 0, ErrNotFavorited
	}
	return OutcomeRemoved, nil
}

// List returns the imdb ids of the user's favorites in the order they were added.
func (u *favoritesUsecase) List(ctx context.Context, userID uint) ([]string, error) {
	ids, err := u.favorites.ListIMDBIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return ids, nil
}
