package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/repository"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles register/login/password business logic.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidatePassword enforces the account password policy: 8..16 chars,
// at least one uppercase letter and one special character.
func ValidatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 16 {
		return apperr.New(apperr.Validation, "password must be between 8 and 16 characters")
	}
	if !upperRe.MatchString(pw) {
		return apperr.New(apperr.Validation, "password must contain at least one uppercase letter")
	}
	if !specialRe.MatchString(pw) {
		return apperr.New(apperr.Validation, "password must contain at least one special character")
	}
	return nil
}

// Register creates a USER-role account. Self-registration never grants
// another role.
func (s *AuthService) Register(name, email, password, address string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := ValidatePassword(password); err != nil {
		return nil, "", err
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", apperr.New(apperr.Conflict, "user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "hash password failed", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
		Address:  strings.TrimSpace(address),
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "cannot generate token", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a signed 24h token binding id,
// email and role. Unknown email and wrong password are the same error.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.New(apperr.Authentication, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Authentication, "invalid credentials")
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.Storage, "cannot generate token", err)
	}
	return token, user, nil
}

// ChangePassword re-hashes after verifying the current password.
// Outstanding tokens stay valid until natural expiry.
func (s *AuthService) ChangePassword(userID uint, current, next string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return apperr.New(apperr.Authentication, "current password is incorrect")
	}
	if err := ValidatePassword(next); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(apperr.Storage, "hash password failed", err)
	}
	return s.userRepo.Update(userID, map[string]any{"password": string(hashed)})
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
