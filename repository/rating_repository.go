package repository

import (
	"errors"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRepository talks to the ratings table only. The one-rating-
// per-(user,store) invariant lives in the composite unique index plus
// the ON CONFLICT upsert below.
type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Upsert inserts the rating or, when a row for (user_id, store_id)
// already exists, replaces its value in place. ID and created_at of an
// existing row are preserved; two concurrent submissions can never
// produce two rows or surface a duplicate-key error.
func (r *RatingRepository) Upsert(rating *entity.Rating) error {
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating).Error
	return apperr.FromDB(err, "rating not found")
}

func (r *RatingRepository) FindByID(id uint) (*entity.Rating, error) {
	var rating entity.Rating
	if err := r.DB.First(&rating, id).Error; err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return &rating, nil
}

// FindByUserAndStore returns (nil, nil) when the user has not rated
// the store.
func (r *RatingRepository) FindByUserAndStore(userID, storeID uint) (*entity.Rating, error) {
	var rating entity.Rating
	err := r.DB.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return &rating, nil
}

func (r *RatingRepository) Delete(id uint) error {
	return apperr.FromDB(r.DB.Delete(&entity.Rating{}, id).Error, "rating not found")
}

// ListByStore returns a store's ratings newest first, raters attached.
func (r *RatingRepository) ListByStore(storeID uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if err := r.DB.
		Where("store_id = ?", storeID).
		Preload("User").
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return ratings, nil
}

// ListByUser returns a user's ratings newest first, stores attached.
func (r *RatingRepository) ListByUser(userID uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if err := r.DB.
		Where("user_id = ?", userID).
		Preload("Store").
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return ratings, nil
}

func (r *RatingRepository) Recent(limit int) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if err := r.DB.
		Preload("User").
		Preload("Store").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return ratings, nil
}

// RecentByStores returns the newest ratings across the given stores.
func (r *RatingRepository) RecentByStores(storeIDs []uint, limit int) ([]entity.Rating, error) {
	var ratings []entity.Rating
	if err := r.DB.
		Where("store_id IN ?", storeIDs).
		Preload("User").
		Preload("Store").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return nil, apperr.FromDB(err, "rating not found")
	}
	return ratings, nil
}

func (r *RatingRepository) CountAll() (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Rating{}).Count(&count).Error; err != nil {
		return 0, apperr.FromDB(err, "rating not found")
	}
	return count, nil
}
