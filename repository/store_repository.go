package repository

import (
	"errors"
	"strings"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"

	"gorm.io/gorm"
)

// StoreRepository talks to the stores table only.
type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

// CreateWithOwnerPromotion inserts the store and, when the owner is not
// yet a store owner, promotes their role in the same transaction. No
// demotion happens on delete or reassignment.
func (r *StoreRepository) CreateWithOwnerPromotion(store *entity.Store, owner *entity.User) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if owner.Role != entity.RoleStoreOwner {
			if err := tx.Model(&entity.User{}).
				Where("id = ?", owner.ID).
				Update("role", entity.RoleStoreOwner).Error; err != nil {
				return err
			}
		}
		return tx.Create(store).Error
	})
	return apperr.FromDB(err, "store not found")
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.First(&store, id).Error; err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return &store, nil
}

// FindDetail loads the store with owner and ratings (raters included).
func (r *StoreRepository) FindDetail(id uint) (*entity.Store, error) {
	var store entity.Store
	if err := r.DB.
		Preload("Owner").
		Preload("Ratings").
		Preload("Ratings.User").
		First(&store, id).Error; err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return &store, nil
}

// Search filters by name/address (case-insensitive contains), ordered
// by name, ratings preloaded for aggregation.
func (r *StoreRepository) Search(name, address string) ([]entity.Store, error) {
	q := r.DB.Model(&entity.Store{}).
		Preload("Owner").
		Preload("Ratings")
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if address != "" {
		q = q.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(address)+"%")
	}

	var stores []entity.Store
	if err := q.Order("name ASC").Find(&stores).Error; err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return stores, nil
}

func (r *StoreRepository) Update(id uint, updates map[string]any) error {
	return apperr.FromDB(
		r.DB.Model(&entity.Store{}).Where("id = ?", id).Updates(updates).Error,
		"store not found",
	)
}

// DeleteCascade removes the store and its ratings transactionally so
// no orphan rating rows survive.
func (r *StoreRepository) DeleteCascade(id uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", id).Delete(&entity.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Store{}, id).Error
	})
	return apperr.FromDB(err, "store not found")
}

// FindByOwner loads every store of one owner with ratings and raters.
func (r *StoreRepository) FindByOwner(ownerID uint) ([]entity.Store, error) {
	var stores []entity.Store
	if err := r.DB.
		Where("user_id = ?", ownerID).
		Preload("Ratings").
		Preload("Ratings.User").
		Find(&stores).Error; err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return stores, nil
}

func (r *StoreRepository) CountAll() (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Store{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB(err, "store not found")
	}
	return count, nil
}

func (r *StoreRepository) Recent(limit int) ([]entity.Store, error) {
	var stores []entity.Store
	if err := r.DB.
		Preload("Owner").
		Preload("Ratings").
		Order("created_at DESC").
		Limit(limit).
		Find(&stores).Error; err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return stores, nil
}

// FirstByOwner returns the owner's first store, or nil without error
// when they own none.
func (r *StoreRepository) FirstByOwner(ownerID uint) (*entity.Store, error) {
	var store entity.Store
	err := r.DB.Where("user_id = ?", ownerID).Preload("Ratings").First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromDB(err, "store not found")
	}
	return &store, nil
}
