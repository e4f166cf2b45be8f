package services

import (
	"strings"
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/repository"
)

type StoreService struct {
	storeRepo *repository.StoreRepository
	userRepo  *repository.UserRepository
}

func NewStoreService(stores *repository.StoreRepository, users *repository.UserRepository) *StoreService {
	return &StoreService{storeRepo: stores, userRepo: users}
}

type StoreListItem struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
	Owner         UserSummary `json:"owner"`
	AverageRating float64     `json:"averageRating"`
	TotalRatings  int         `json:"totalRatings"`
	UserRating    *int        `json:"userRating"`
}

type StoreDetail struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Owner     UserSummary `json:"owner"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	RatingSummary
	Ratings    []StoreRatingItem `json:"ratings"`
	UserRating *int              `json:"userRating"`
}

type StoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID uint
}

// List returns stores matching the optional name/address filters,
// ordered by name, each with its aggregate and the requester's own
// rating (nil when they have not rated it).
func (s *StoreService) List(ident authz.Identity, name, address string) ([]StoreListItem, error) {
	stores, err := s.storeRepo.Search(name, address)
	if err != nil {
		return nil, err
	}

	items := make([]StoreListItem, 0, len(stores))
	for _, store := range stores {
		summary := Summarize(store.Ratings)
		items = append(items, StoreListItem{
			ID:            store.ID,
			Name:          store.Name,
			Email:         store.Email,
			Address:       store.Address,
			Owner:         UserSummary{ID: store.Owner.ID, Name: store.Owner.Name, Email: store.Owner.Email},
			AverageRating: summary.AverageRating,
			TotalRatings:  summary.TotalRatings,
			UserRating:    ownRating(store.Ratings, ident.ID),
		})
	}
	return items, nil
}

// Detail returns one store with aggregate, full rating list and the
// requester's own rating.
func (s *StoreService) Detail(ident authz.Identity, id uint) (*StoreDetail, error) {
	store, err := s.storeRepo.FindDetail(id)
	if err != nil {
		return nil, err
	}

	ratings := make([]StoreRatingItem, 0, len(store.Ratings))
	for _, r := range store.Ratings {
		ratings = append(ratings, StoreRatingItem{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
			User:      UserSummary{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email},
		})
	}

	return &StoreDetail{
		ID:            store.ID,
		Name:          store.Name,
		Email:         store.Email,
		Address:       store.Address,
		Owner:         UserSummary{ID: store.Owner.ID, Name: store.Owner.Name, Email: store.Owner.Email},
		CreatedAt:     store.CreatedAt,
		UpdatedAt:     store.UpdatedAt,
		RatingSummary: Summarize(store.Ratings),
		Ratings:       ratings,
		UserRating:    ownRating(store.Ratings, ident.ID),
	}, nil
}

// Create inserts a store for an existing owner. An owner whose role is
// not yet STORE_OWNER is promoted as a side effect (and never demoted
// later).
func (s *StoreService) Create(in StoreInput) (*entity.Store, error) {
	owner, err := s.userRepo.FindByID(in.OwnerID)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return nil, apperr.New(apperr.NotFound, "store owner not found")
		}
		return nil, err
	}

	store := &entity.Store{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Address: strings.TrimSpace(in.Address),
		UserID:  owner.ID,
	}
	if err := s.storeRepo.CreateWithOwnerPromotion(store, owner); err != nil {
		return nil, err
	}
	return store, nil
}

// Update changes name/email/address; the guard has already decided
// admin-or-owner before this runs.
func (s *StoreService) Update(id uint, name, email, address string) (*entity.Store, error) {
	if err := s.storeRepo.Update(id, map[string]any{
		"name":    strings.TrimSpace(name),
		"email":   strings.ToLower(strings.TrimSpace(email)),
		"address": strings.TrimSpace(address),
	}); err != nil {
		return nil, err
	}
	return s.storeRepo.FindByID(id)
}

// Delete removes the store and all of its ratings.
func (s *StoreService) Delete(id uint) error {
	if _, err := s.storeRepo.FindByID(id); err != nil {
		return err
	}
	return s.storeRepo.DeleteCascade(id)
}

// Find loads the bare store row, for guard checks in controllers.
func (s *StoreService) Find(id uint) (*entity.Store, error) {
	return s.storeRepo.FindByID(id)
}

func ownRating(ratings []entity.Rating, userID uint) *int {
	for _, r := range ratings {
		if r.UserID == userID {
			v := r.Rating
			return &v
		}
	}
	return nil
}
