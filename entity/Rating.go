package entity

import "time"

// Rating holds one user's 1..5 rating of one store. The composite
// unique index carries the one-rating-per-(user,store) invariant;
// writes go through an ON CONFLICT upsert, never check-then-insert.
type Rating struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	Rating int  `gorm:"not null" json:"rating"`

	UserID  uint `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"userId"`
	StoreID uint `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"storeId"`

	User  User  `json:"-"`
	Store Store `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)
