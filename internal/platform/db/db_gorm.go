package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "movie_backend/internal/feature/auth/domain/entity"
	faventity "movie_backend/internal/feature/favorites/domain/entity"
)

// OpenDB はPostgresへのGORM接続を確立します。起動直後のDBが立ち上がるまで
// 最大60秒リトライします。
func OpenDB(dsn string, runMigrations bool) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError: ユニーク制約違反をドライバ非依存の
		// gorm.ErrDuplicatedKey として受け取る
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if runMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&faventity.Favorite{},
			&faventity.UserFavorite{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
