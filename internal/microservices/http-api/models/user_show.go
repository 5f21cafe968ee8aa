package models

import "time"

const (
	WatchStatusWatching    = "watching"
	WatchStatusCompleted   = "completed"
	WatchStatusPlanToWatch = "plan_to_watch"
	WatchStatusDropped     = "dropped"
)

// UserShow is one entry of a user's watch list.
type UserShow struct {
	ID      string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID  string    `gorm:"size:64;not null;uniqueIndex:idx_user_shows_user_show,priority:1" bson:"user" json:"userId"`
	ShowID  string    `gorm:"size:64;not null;uniqueIndex:idx_user_shows_user_show,priority:2" bson:"show" json:"showId"`
	Status  string    `gorm:"size:20;not null;default:'plan_to_watch'" bson:"status" json:"status"`
	AddedAt time.Time `gorm:"not null" bson:"addedAt" json:"addedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
	Show *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"-" json:"show,omitempty"`
}

func (UserShow) TableName() string {
	return "user_shows"
}
