// Package adapters はfavoritesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"movie_backend/internal/feature/favorites/domain/entity"
	"movie_backend/internal/feature/favorites/usecase"
)

// favoriteGorm はFavoriteRepositoryインターフェースのGORM実装です。
// ユーザー・リンクはuser_favoritesの1行で両側を表現するため、
// 参照の対称性はスキーマレベルで保証されます。
type favoriteGorm struct {
	db *gorm.DB
}

// favoriteGormがFavoriteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FavoriteRepository = (*favoriteGorm)(nil)

// NewFavoriteRepository は指定されたgorm.DB接続でfavoriteGormの新しいインスタンスを生成します。
func NewFavoriteRepository(db *gorm.DB) *favoriteGorm {
	return &favoriteGorm{db: db}
}

// isUniqueViolation はユニーク制約違反を判定します。
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// FindOrCreate はimdb idでエントリを取得し、なければ作成します。
// チェック後INSERTは競合するため、先にINSERTしてユニーク制約違反を
// 「既に存在する」のシグナルとして再読込します。
func (r *favoriteGorm) FindOrCreate(ctx context.Context, imdbID string) (*entity.Favorite, error) {
	fav := &entity.Favorite{IMDBID: imdbID}
	err := r.db.WithContext(ctx).Create(fav).Error
	if err == nil {
		return fav, nil
	}
	if isUniqueViolation(err) {
		// 並行呼び出しに先を越されただけなので、既存行を返す
		return r.FindByIMDBID(ctx, imdbID)
	}
	return nil, err
}

// FindByIMDBID はimdb idでエントリを取得します。
// 存在しない場合、usecase.ErrFavoriteNotFoundを返します。
func (r *favoriteGorm) FindByIMDBID(ctx context.Context, imdbID string) (*entity.Favorite, error) {
	var fav entity.Favorite
	if err := r.db.WithContext(ctx).Where("imdb_id = ?", imdbID).First(&fav).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &fav, nil
}

// Link はユーザーとお気に入りのリンク行を挿入します。
// 既存リンクはON CONFLICT DO NOTHINGで吸収し、挿入されたかどうかを返します。
func (r *favoriteGorm) Link(ctx context.Context, userID, favoriteID uint) (bool, error) {
	link := &entity.UserFavorite{UserID: userID, FavoriteID: favoriteID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(link)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Unlink はリンク行を削除し、行が存在したかどうかを返します。
func (r *favoriteGorm) Unlink(ctx context.Context, userID, favoriteID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND favorite_id = ?", userID, favoriteID).
		Delete(&entity.UserFavorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListIMDBIDs はユーザーがお気に入りにしたimdb idをリンク作成順に返します。
func (r *favoriteGorm) ListIMDBIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Favorite{}).
		Joins("JOIN user_favorites ON user_favorites.favorite_id = favorites.id").
		Where("user_favorites.user_id = ?", userID).
		Order("user_favorites.created_at ASC").
		Pluck("favorites.imdb_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CountUsers はお気に入りをリンクしているユーザー数を返します。
func (r *favoriteGorm) CountUsers(ctx context.Context, favoriteID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.UserFavorite{}).
		Where("favorite_id = ?", favoriteID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
