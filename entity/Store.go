package entity

import "time"

// Store is owned by exactly one user. Ratings belong to the store and
// are deleted together with it.
type Store struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:60;not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Address string `gorm:"size:400" json:"address"`

	UserID uint `gorm:"not null;index" json:"ownerId"`
	Owner  User `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Ratings []Rating `json:"-"`
}
