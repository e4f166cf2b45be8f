package services

import (
	"time"

	"github.com/SARVESHYOGI/store-rating-system/entity"
	"github.com/SARVESHYOGI/store-rating-system/pkg/apperr"
	"github.com/SARVESHYOGI/store-rating-system/pkg/authz"
	"github.com/SARVESHYOGI/store-rating-system/repository"
)

// DashboardService composes read-only role views out of the
// repositories. Aggregates are recomputed on every call.
type DashboardService struct {
	userRepo   *repository.UserRepository
	storeRepo  *repository.StoreRepository
	ratingRepo *repository.RatingRepository
}

func NewDashboardService(users *repository.UserRepository, stores *repository.StoreRepository, ratings *repository.RatingRepository) *DashboardService {
	return &DashboardService{userRepo: users, storeRepo: stores, ratingRepo: ratings}
}

type AdminCounts struct {
	Users   int64 `json:"users"`
	Stores  int64 `json:"stores"`
	Ratings int64 `json:"ratings"`
}

type RecentUser struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type RecentStore struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	OwnerName     string    `json:"ownerName"`
	CreatedAt     time.Time `json:"createdAt"`
	AverageRating float64   `json:"averageRating"`
	TotalRatings  int       `json:"totalRatings"`
}

type RecentRating struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	UserName  string    `json:"userName"`
	StoreName string    `json:"storeName"`
}

type AdminOverview struct {
	Counts        AdminCounts           `json:"counts"`
	UsersByRole   map[entity.Role]int64 `json:"usersByRole"`
	RecentUsers   []RecentUser          `json:"recentUsers"`
	RecentStores  []RecentStore         `json:"recentStores"`
	RecentRatings []RecentRating        `json:"recentRatings"`
}

type OwnerStore struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	RatingSummary
	Ratings []StoreRatingItem `json:"ratings"`
}

type OwnerRecentRating struct {
	ID        uint         `json:"id"`
	Rating    int          `json:"rating"`
	CreatedAt time.Time    `json:"createdAt"`
	User      UserSummary  `json:"user"`
	Store     StoreSummary `json:"store"`
}

type OwnerOverview struct {
	Stores        []OwnerStore        `json:"stores"`
	RecentRatings []OwnerRecentRating `json:"recentRatings"`
}

// Admin returns system-wide counts, the per-role breakdown and the 5
// most recent users, stores and ratings. Zero rows yield zeroed
// output, never an error.
func (s *DashboardService) Admin() (*AdminOverview, error) {
	users, err := s.userRepo.CountAll()
	if err != nil {
		return nil, err
	}
	stores, err := s.storeRepo.CountAll()
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratingRepo.CountAll()
	if err != nil {
		return nil, err
	}

	byRole, err := s.userRepo.CountByRole()
	if err != nil {
		return nil, err
	}

	recentUsers, err := s.userRepo.Recent(5)
	if err != nil {
		return nil, err
	}
	recentStores, err := s.storeRepo.Recent(5)
	if err != nil {
		return nil, err
	}
	recentRatings, err := s.ratingRepo.Recent(5)
	if err != nil {
		return nil, err
	}

	overview := &AdminOverview{
		Counts:        AdminCounts{Users: users, Stores: stores, Ratings: ratings},
		UsersByRole:   byRole,
		RecentUsers:   make([]RecentUser, 0, len(recentUsers)),
		RecentStores:  make([]RecentStore, 0, len(recentStores)),
		RecentRatings: make([]RecentRating, 0, len(recentRatings)),
	}
	for _, u := range recentUsers {
		overview.RecentUsers = append(overview.RecentUsers, RecentUser{
			ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt,
		})
	}
	for _, st := range recentStores {
		summary := Summarize(st.Ratings)
		overview.RecentStores = append(overview.RecentStores, RecentStore{
			ID:            st.ID,
			Name:          st.Name,
			OwnerName:     st.Owner.Name,
			CreatedAt:     st.CreatedAt,
			AverageRating: summary.AverageRating,
			TotalRatings:  summary.TotalRatings,
		})
	}
	for _, r := range recentRatings {
		overview.RecentRatings = append(overview.RecentRatings, RecentRating{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			UserName:  r.User.Name,
			StoreName: r.Store.Name,
		})
	}
	return overview, nil
}

// Owner returns every store the requester owns, each with its full
// aggregate and rating list, plus the 10 most recent ratings across
// those stores. Owning zero stores is NoStoresForOwner (404).
func (s *DashboardService) Owner(ident authz.Identity) (*OwnerOverview, error) {
	stores, err := s.storeRepo.FindByOwner(ident.ID)
	if err != nil {
		return nil, err
	}
	if len(stores) == 0 {
		return nil, apperr.New(apperr.NotFound, "no stores found for this owner")
	}

	overview := &OwnerOverview{Stores: make([]OwnerStore, 0, len(stores))}
	storeIDs := make([]uint, 0, len(stores))
	for _, st := range stores {
		storeIDs = append(storeIDs, st.ID)

		items := make([]StoreRatingItem, 0, len(st.Ratings))
		for _, r := range st.Ratings {
			items = append(items, StoreRatingItem{
				ID:        r.ID,
				Rating:    r.Rating,
				CreatedAt: r.CreatedAt,
				UpdatedAt: r.UpdatedAt,
				User:      UserSummary{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email},
			})
		}
		overview.Stores = append(overview.Stores, OwnerStore{
			ID:            st.ID,
			Name:          st.Name,
			Email:         st.Email,
			Address:       st.Address,
			RatingSummary: Summarize(st.Ratings),
			Ratings:       items,
		})
	}

	recent, err := s.ratingRepo.RecentByStores(storeIDs, 10)
	if err != nil {
		return nil, err
	}
	overview.RecentRatings = make([]OwnerRecentRating, 0, len(recent))
	for _, r := range recent {
		overview.RecentRatings = append(overview.RecentRatings, OwnerRecentRating{
			ID:        r.ID,
			Rating:    r.Rating,
			CreatedAt: r.CreatedAt,
			User:      UserSummary{ID: r.User.ID, Name: r.User.Name, Email: r.User.Email},
			Store:     StoreSummary{ID: r.Store.ID, Name: r.Store.Name},
		})
	}
	return overview, nil
}
