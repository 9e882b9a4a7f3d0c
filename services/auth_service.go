package services

import (
	"errors"
	"strings"

	"gin-inventory/models"
	"gin-inventory/repositories"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const minPasswordLength = 6

type IAuthService interface {
	Register(username string, email string, password string) (*models.User, error)
	Login(username string, password string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

func (s *AuthService) Register(username string, email string, password string) (*models.User, error) {
	// ストレージに触れる前に検証する
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if email != "" {
		user.Email = &email
	}

	created, err := s.repository.CreateUser(user)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return created, nil
}

// Login はユーザー不在とパスワード不一致を区別しない（列挙攻撃対策）
func (s *AuthService) Login(username string, password string) (*models.User, error) {
	foundUser, err := s.repository.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return foundUser, nil
}

// isDuplicateKeyError はドライバごとの一意制約違反メッセージを吸収する
// (PostgreSQL: "duplicate key", SQLite: "UNIQUE constraint failed")
func isDuplicateKeyError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}
