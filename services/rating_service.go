package services

import (
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/repository"
)

// RatingService is the rating ledger: validation, the self-rating
// rule, and upsert-style writes.
type RatingService struct {
	ratingRepo *repository.RatingRepository
	storeRepo  *repository.StoreRepository
}

func NewRatingService(ratings *repository.RatingRepository, stores *repository.StoreRepository) *RatingService {
	return &RatingService{ratingRepo: ratings, storeRepo: stores}
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StoreSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type StoreRatingItem struct {
	ID        uint        `json:"id"`
	Rating    int         `json:"rating"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	User      UserSummary `json:"user"`
}

type UserRatingItem struct {
	ID        uint         `json:"id"`
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Store     StoreSummary `json:"store"`
}

// Submit creates or replaces ident's rating for the store. The write
// itself is an atomic upsert; the pre-read only decides created vs
// replaced for the response. Returns the canonical row.
func (s *RatingService) Submit(ident authz.Identity, storeID uint, value int) (*entity.Rating, bool, error) {
	if value < entity.MinRating || value > entity.MaxRating {
		return nil, false, apperr.New(apperr.Validation, "rating must be a number between 1 and 5")
	}

	store, err := s.storeRepo.FindByID(storeID)
	if err != nil {
		return nil, false, err
	}

	if d := authz.Authorize(ident, authz.SubmitRating, &authz.Resource{Store: store}); !d.Allowed {
		return nil, false, apperr.New(apperr.Authorization, d.Reason)
	}

	existing, err := s.ratingRepo.FindByUserAndStore(ident.ID, storeID)
	if err != nil {
		return nil, false, err
	}

	if err := s.ratingRepo.Upsert(&entity.Rating{
		Rating:  value,
		UserID:  ident.ID,
		StoreID: storeID,
	}); err != nil {
		return nil, false, err
	}

	rating, err := s.ratingRepo.FindByUserAndStore(ident.ID, storeID)
	if err != nil {
		return nil, false, err
	}
	if rating == nil {
		return nil, false, apperr.New(apperr.Storage, "rating not persisted")
	}
	return rating, existing == nil, nil
}

// Remove deletes one rating after the guard approves the requester.
func (s *RatingService) Remove(ident authz.Identity, ratingID uint) error {
	rating, err := s.ratingRepo.FindByID(ratingID)
	if err != nil {
		return err
	}
	if d := authz.Authorize(ident, authz.DeleteRating, &authz.Resource{Rating: rating}); !d.Allowed {
		return apperr.New(apperr.Authorization, d.Reason)
	}
	return s.ratingRepo.Delete(ratingID)
}

// ListByStore returns a store's ratings newest first with rater info.
func (s *RatingService) ListByStore(storeID uint) ([]StoreRatingItem, error) {
	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}

	items := make([]StoreRatingItem, 0, len(ratings))
	for _, r := range ratings {
		items = append(items, StoreRatingItem{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			User:      UserSummary{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email},
		})
	}
	return items, nil
}

// ListByUser returns a user's ratings newest first; only admins may
// read another user's list.
func (s *RatingService) ListByUser(ident authz.Identity, userID uint) ([]UserRatingItem, error) {
	if d := authz.Authorize(ident, authz.ViewUserRatings, &authz.Resource{UserID: userID}); !d.Allowed {
		return nil, apperr.New(apperr.Authorization, d.Reason)
	}

	ratings, err := s.ratingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := make([]UserRatingItem, 0, len(ratings))
	for _, r := range ratings {
		items = append(items, UserRatingItem{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			Store:     StoreSummary{ID: r.Store.ID, Name: r.Store.Name, Address: r.Store.Address},
		})
	}
	return items, nil
}
