package services

import (
	"strings"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService backs the admin-only user administration endpoints.
type UserService struct {
	userRepo  *repository.UserRepository
	storeRepo *repository.StoreRepository
}

func NewUserService(users *repository.UserRepository, stores *repository.StoreRepository) *UserService {
	return &UserService{userRepo: users, storeRepo: stores}
}

type UserDetail struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	// Set for store owners: the aggregate of their store's ratings.
	AverageRating *float64 `json:"averageRating,omitempty"`
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     entity.Role
}

type UpdateUserInput struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role
}

func (s *UserService) Search(f repository.UserFilter) ([]entity.User, error) {
	return s.userRepo.Search(f)
}

// Create adds an account with an assignable role (unlike public
// registration, which always yields USER).
func (s *UserService) Create(in CreateUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, apperr.New(apperr.Validation, "invalid role")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.New(apperr.Conflict, "user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "hash password failed", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashed),
		Address:  strings.TrimSpace(in.Address),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns one user; for a store owner the detail carries the
// average rating of their store.
func (s *UserService) Get(id uint) (*UserDetail, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	detail := &UserDetail{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Role == entity.RoleStoreOwner {
		store, err := s.storeRepo.FirstByOwner(user.ID)
		if err != nil {
			return nil, err
		}
		avg := 0.0
		if store != nil {
			avg = Summarize(store.Ratings).AverageRating
		}
		detail.AverageRating = &avg
	}
	return detail, nil
}

// Update is the only place a role changes by request (admin). Store
// creation may still promote an owner as a side effect elsewhere.
func (s *UserService) Update(id uint, in UpdateUserInput) (*entity.User, error) {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return nil, err
	}
	if in.Role != "" && !in.Role.Valid() {
		return nil, apperr.New(apperr.Validation, "invalid role")
	}

	updates := map[string]any{
		"name":    strings.TrimSpace(in.Name),
		"email":   strings.ToLower(strings.TrimSpace(in.Email)),
		"address": strings.TrimSpace(in.Address),
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}
	if err := s.userRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(id)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
