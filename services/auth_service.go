package services

import (
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUserExists         = errors.New("username or email already in use")
)

var (
	usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9]{3,16}$`)
	emailRegexp    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	passwordRegexp = regexp.MustCompile(`^.{8,}$`) // 8+ chars
)

type AuthService struct {
	Users     *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

// Signup validates the fields, stores the user with a bcrypt hash, and
// returns the user with a fresh session token.
func (s *AuthService) Signup(username, email, password string) (*entity.User, string, error) {
	if !usernameRegexp.MatchString(username) {
		return nil, "", ErrInvalidUsername
	}
	if !emailRegexp.MatchString(email) {
		return nil, "", ErrInvalidEmail
	}
	if !passwordRegexp.MatchString(password) {
		return nil, "", ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
	}
	if err := s.Users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUserExists
		}
		return nil, "", ErrUserExists
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}

	user.HashedPassword = ""
	return user, token, nil
}

// Login checks the identifier (username or email) and password and
// returns the user with a session token.
func (s *AuthService) Login(identifier, password string) (*entity.User, string, error) {
	user, err := s.Users.FindByNameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.HashedPassword),
		[]byte(password),
	); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", err
	}

	user.HashedPassword = ""
	return user, token, nil
}
