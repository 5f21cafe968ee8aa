package models

import (
	"time"

	"gorm.io/datatypes"
)

type Blog struct {
	ID          string                      `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	Title       string                      `gorm:"size:200;not null" bson:"title" json:"title"`
	Content     string                      `gorm:"type:text;not null" bson:"content" json:"content"`
	AuthorID    string                      `gorm:"size:64;not null;index" bson:"author" json:"authorId"`
	Tags        datatypes.JSONSlice[string] `bson:"tags" json:"tags"`
	IsPublished bool                        `gorm:"not null;default:true;index" bson:"isPublished" json:"isPublished"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime" bson:"updatedAt" json:"updatedAt"`

	Likes    []BlogLike    `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;" bson:"likes" json:"likes"`
	Comments []BlogComment `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE;" bson:"comments" json:"comments"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
}

func (Blog) TableName() string {
	return "blogs"
}

type BlogLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" bson:"-" json:"-"`
	BlogID    string    `gorm:"size:64;not null;uniqueIndex:idx_blog_likes_blog_user,priority:1" bson:"-" json:"-"`
	UserID    string    `gorm:"size:64;not null;uniqueIndex:idx_blog_likes_blog_user,priority:2" bson:"user" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`
}

func (BlogLike) TableName() string {
	return "blog_likes"
}

type BlogComment struct {
	ID        string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	BlogID    string    `gorm:"size:64;not null;index" bson:"-" json:"-"`
	UserID    string    `gorm:"size:64;not null" bson:"user" json:"userId"`
	Content   string    `gorm:"size:500;not null" bson:"content" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" bson:"createdAt" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" bson:"-" json:"-"`
}

func (BlogComment) TableName() string {
	return "blog_comments"
}
