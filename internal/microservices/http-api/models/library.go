package models

import "time"

// Favorite marks a show as one of a user's favorites.
// (UserID, ShowID) is unique.
type Favorite struct {
	ID        string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_favorites_user_show,priority:1" bson:"user" json:"userId"`
	ShowID    string    `gorm:"size:64;not null;uniqueIndex:idx_favorites_user_show,priority:2" bson:"show" json:"showId"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
	Show *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"-" json:"show,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// WatchProgress is how far a user got through a show and when they last
// watched it. (UserID, ShowID) is unique.
type WatchProgress struct {
	ID          string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID      string    `gorm:"size:64;not null;uniqueIndex:idx_watch_history_user_show,priority:1" bson:"user" json:"userId"`
	ShowID      string    `gorm:"size:64;not null;uniqueIndex:idx_watch_history_user_show,priority:2" bson:"show" json:"showId"`
	Progress    float64   `gorm:"not null;default:0;check:progress >= 0" bson:"progress" json:"progress"`
	LastWatched time.Time `gorm:"not null;index" bson:"lastWatched" json:"lastWatched"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
	Show *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"-" json:"show,omitempty"`
}

func (WatchProgress) TableName() string {
	return "watch_history"
}

// HomeItem features a show on the home page.
type HomeItem struct {
	ID        string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	ShowID    string    `gorm:"size:64;not null;index" bson:"show" json:"showId"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`

	Show *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"-" json:"show,omitempty"`
}

func (HomeItem) TableName() string {
	return "home_items"
}
