package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"movie_backend/internal/feature/auth/domain/entity"
	"movie_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError matches the production connection: unique violations come
// back as gorm.ErrDuplicatedKey on both drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newUser(email string) *entity.User {
	return &entity.User{
		Name:     "Alice",
		LastName: "Smith",
		Email:    email,
		Password: "hashed_password",
	}
}

func TestUserGorm_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := newUser("test@example.com")
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate email yields ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newUser("duplicate@example.com")))

		err := repo.Create(context.Background(), newUser("duplicate@example.com"))

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})

	t.Run("registration succeeds exactly once per email", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), newUser("once@example.com")))
		require.Error(t, repo.Create(context.Background(), newUser("once@example.com")))

		var count int64
		require.NoError(t, db.Model(&entity.User{}).Where("email = ?", "once@example.com").Count(&count).Error)
		assert.EqualValues(t, 1, count, "expected exactly one user record")
	})
}

func TestUserGorm_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := newUser("find@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserGorm_FindByID(t *testing.T) {
	t.Run("find user by id successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		expected := newUser("byid@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, expected.Email, found.Email)
	})

	t.Run("id not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByID(context.Background(), 12345)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}
