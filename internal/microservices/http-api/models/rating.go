package models

import "time"

// SeasonRating is one user's 0-5 score for one season of one show.
// (UserID, ShowID, SeasonNumber) is unique.
type SeasonRating struct {
	ID              string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID          string    `gorm:"size:64;not null;uniqueIndex:idx_season_ratings_key,priority:1" bson:"user" json:"userId"`
	ShowID          string    `gorm:"size:64;not null;index;uniqueIndex:idx_season_ratings_key,priority:2" bson:"show" json:"showId"`
	SeasonNumber    int       `gorm:"not null;uniqueIndex:idx_season_ratings_key,priority:3" bson:"seasonNumber" json:"seasonNumber"`
	SeasonTitle     string    `gorm:"not null" bson:"seasonTitle" json:"seasonTitle"`
	Rating          float64   `gorm:"not null;check:rating >= 0 AND rating <= 5" bson:"rating" json:"rating"`
	Review          string    `gorm:"type:text;not null;default:''" bson:"review" json:"review"`
	EpisodesWatched int       `gorm:"not null;default:0" bson:"episodesWatched" json:"episodesWatched"`
	TotalEpisodes   int       `gorm:"not null;default:0" bson:"totalEpisodes" json:"totalEpisodes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
	Show *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
}

func (SeasonRating) TableName() string {
	return "season_ratings"
}
