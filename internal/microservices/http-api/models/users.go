package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultProfilePicture = "/assets/default-avatar.png"

type User struct {
	ID             string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:50;not null" bson:"username" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;not null" bson:"password" json:"-"` // never serialized
	Bio            string    `gorm:"size:500" bson:"bio" json:"bio"`
	Location       string    `gorm:"size:100" bson:"location" json:"location"`
	FavoriteAnime  string    `gorm:"size:100" bson:"favoriteAnime" json:"favoriteAnime"`
	ProfilePicture string    `gorm:"not null;default:'/assets/default-avatar.png'" bson:"profilePicture" json:"profilePicture"`
	IsActive       bool      `gorm:"not null;default:true" bson:"isActive" json:"isActive"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
