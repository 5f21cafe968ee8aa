package models

import (
	"time"

	"gorm.io/datatypes"
)

// Show is read-mostly catalog data. Seasons live in their own table under
// postgres and are embedded in the show document under mongo.
type Show struct {
	ID            string                      `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	Title         string                      `gorm:"uniqueIndex;not null" bson:"title" json:"title"`
	Description   string                      `gorm:"type:text;not null" bson:"description" json:"description"`
	Genres        datatypes.JSONSlice[string] `bson:"genres" json:"genres"`
	ImageURL      string                      `bson:"imageUrl" json:"imageUrl"`
	CoverImageURL string                      `bson:"coverImageUrl" json:"coverImageUrl"`
	Episodes      int                         `gorm:"not null;default:0" bson:"episodes" json:"episodes"`
	TotalSeasons  int                         `gorm:"not null;default:1" bson:"totalSeasons" json:"totalSeasons"`
	CreatedAt     time.Time                   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time                   `bson:"updatedAt" json:"updatedAt"`

	Seasons []Season `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE;" bson:"seasons" json:"seasons"`
}

func (Show) TableName() string {
	return "shows"
}

type Season struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" bson:"-" json:"-"`
	ShowID       string `gorm:"size:64;not null;uniqueIndex:idx_show_seasons_show_number,priority:1" bson:"-" json:"-"`
	SeasonNumber int    `gorm:"not null;uniqueIndex:idx_show_seasons_show_number,priority:2" bson:"seasonNumber" json:"seasonNumber"`
	Title        string `gorm:"not null" bson:"title" json:"title"`
	Description  string `gorm:"type:text" bson:"description" json:"description"`
	Episodes     int    `gorm:"not null;default:0" bson:"episodes" json:"episodes"`
	ImageURL     string `bson:"imageUrl" json:"imageUrl"`
}

func (Season) TableName() string {
	return "show_seasons"
}
