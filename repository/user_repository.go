package repository

import (
	"strings"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// UserFilter narrows Search; empty fields are ignored.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    entity.Role
}

func (r *UserRepository) Create(user *entity.User) error {
	if err := r.DB.Create(user).Error; err != nil {
		return apperr.FromDB(err, "user not found")
	}
	return nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, apperr.FromDB(err, "user not found")
	}
	return count, nil
}

func (r *UserRepository) Search(f UserFilter) ([]entity.User, error) {
	q := r.DB.Model(&entity.User{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Email != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(f.Email)+"%")
	}
	if f.Address != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(f.Address)+"%")
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	var users []entity.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return users, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	if err := r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return apperr.FromDB(err, "user not found")
	}
	return nil
}

// Delete removes the user and their ratings in one transaction. A user
// still owning stores cannot be deleted; stores have exactly one owner.
func (r *UserRepository) Delete(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&entity.Store{}).Where("user_id = ?", id).Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return apperr.New(apperr.Conflict, "user still owns stores")
		}
		if err := tx.Where("user_id = ?", id).Delete(&entity.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, id).Error
	})
	if err != nil && apperr.KindOf(err) == apperr.Storage {
		return apperr.FromDB(err, "user not found")
	}
	return err
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB(err, "user not found")
	}
	return count, nil
}

// CountByRole returns a breakdown with every role present, zero-filled.
func (r *UserRepository) CountByRole() (map[entity.Role]int64, error) {
	type row struct {
		Role  entity.Role
		Count int64
	}
	var rows []row
	if err := r.DB.Model(&entity.User{}).
		Select("role, COUNT(*) as count").
		Group("role").
		Find(&rows).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}

	counts := make(map[entity.Role]int64, len(entity.Roles()))
	for _, role := range entity.Roles() {
		counts[role] = 0
	}
	for _, rw := range rows {
		counts[rw.Role] = rw.Count
	}
	return counts, nil
}

func (r *UserRepository) Recent(limit int) ([]entity.User, error) {
	var users []entity.User
	if err := r.DB.Order("created_at DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, apperr.FromDB(err, "user not found")
	}
	return users, nil
}
