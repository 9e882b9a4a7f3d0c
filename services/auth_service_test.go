package services

import (
	"testing"

	"gin-inventory/models"
	"gin-inventory/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) IAuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}))
	return NewAuthService(repositories.NewAuthRepository(db))
}

func TestRegisterThenLogin(t *testing.T) {
	service := setupAuthService(t)

	user, err := service.Register("alice", "", "secret123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Nil(t, user.Email)

	loggedIn, err := service.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	service := setupAuthService(t)

	user, err := service.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	require.NotNil(t, user.Email)
	assert.Equal(t, "alice@example.com", *user.Email)
}

func TestRegisterShortPassword(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "", "secret123")
	require.NoError(t, err)

	_, err = service.Register("alice", "other@example.com", "different456")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "shared@example.com", "secret123")
	require.NoError(t, err)

	_, err = service.Register("bob", "shared@example.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterWithoutEmailTwice(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "", "secret123")
	require.NoError(t, err)

	// メール省略は重複とみなさない
	_, err = service.Register("bob", "", "secret123")
	assert.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	service := setupAuthService(t)

	_, err := service.Register("alice", "", "secret123")
	require.NoError(t, err)

	_, wrongPassword := service.Login("alice", "wrongpass")
	_, unknownUser := service.Login("nobody", "secret123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}
