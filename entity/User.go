package entity

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:60;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Address  string `gorm:"size:400" json:"address"`
	Role     Role   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations — preload only when needed
	Stores  []Store  `gorm:"foreignKey:UserID" json:"-"`
	Ratings []Rating `json:"-"`
}
