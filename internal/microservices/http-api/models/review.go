package models

import "time"

// Review is a 0-10 score with a title and body. AnimeID is an opaque
// identifier and is not a foreign key. AnimeTitle and AnimeImage are
// snapshots taken when the review was written.
//
// When EpisodeNumber is set, (UserID, AnimeID, SeasonNumber, EpisodeNumber)
// is unique. The partial index is created by database.Migrate.
type Review struct {
	ID            string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID        string    `gorm:"size:64;not null;index" bson:"user" json:"userId"`
	AnimeID       string    `gorm:"size:128;not null;index" bson:"animeId" json:"animeId"`
	AnimeTitle    string    `gorm:"not null" bson:"animeTitle" json:"animeTitle"`
	AnimeImage    string    `bson:"animeImage" json:"animeImage"`
	SeasonNumber  *int      `bson:"seasonNumber,omitempty" json:"seasonNumber,omitempty"`
	EpisodeNumber *int      `bson:"episodeNumber,omitempty" json:"episodeNumber,omitempty"`
	Rating        float64   `gorm:"not null;check:rating >= 0 AND rating <= 10" bson:"rating" json:"rating"`
	Title         string    `gorm:"not null" bson:"title" json:"title"`
	Content       string    `gorm:"type:text;not null" bson:"content" json:"content"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
