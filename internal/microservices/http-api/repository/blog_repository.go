package repository

import (
	"context"
	"time"

	"animehub/internal/microservices/http-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// withBlogAssociations preloads everything a blog response needs.
func withBlogAssociations(db *gorm.DB) *gorm.DB {
	return db.Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments.User")
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return mapError(r.db.WithContext(ctx).Omit("Author", "Likes", "Comments").Create(blog).Error, "create blog")
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	result := r.db.WithContext(ctx).Model(blog).
		Select("Title", "Content", "Tags", "IsPublished", "UpdatedAt").
		Updates(blog)
	if result.Error != nil {
		return mapError(result.Error, "update blog")
	}
	if result.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound, "update blog")
	}
	return nil
}

// Delete removes a blog only when authorID owns it.
func (r *blogRepository) Delete(ctx context.Context, id, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		Delete(&models.Blog{})
	if result.Error != nil {
		return mapError(result.Error, "delete blog")
	}
	if result.RowsAffected == 0 {
		return mapError(gorm.ErrRecordNotFound, "delete blog")
	}
	return nil
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := withBlogAssociations(r.db.WithContext(ctx)).First(&blog, "id = ?", id).Error; err != nil {
		return nil, mapError(err, "find blog")
	}
	return &blog, nil
}

func (r *blogRepository) ListPublished(ctx context.Context, offset, limit int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Blog{}).
		Where("is_published = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, mapError(err, "count blogs")
	}

	if err := withBlogAssociations(r.db.WithContext(ctx)).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogs).Error; err != nil {
		return nil, 0, mapError(err, "list blogs")
	}
	return blogs, total, nil
}

func (r *blogRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := withBlogAssociations(r.db.WithContext(ctx)).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&blogs).Error; err != nil {
		return nil, mapError(err, "list blogs by author")
	}
	return blogs, nil
}

func (r *blogRepository) ToggleLike(ctx context.Context, blogID, userID string) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Blog{}, "id = ?", blogID).Error; err != nil {
			return err
		}

		res := tx.Where("blog_id = ? AND user_id = ?", blogID, userID).Delete(&models.BlogLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		liked = true
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blog_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&models.BlogLike{BlogID: blogID, UserID: userID}).Error
	})
	if err != nil {
		return false, mapError(err, "toggle blog like")
	}
	return liked, nil
}

func (r *blogRepository) AddComment(ctx context.Context, blogID string, comment *models.BlogComment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Blog{}, "id = ?", blogID).Error; err != nil {
			return err
		}
		if comment.ID == "" {
			comment.ID = uuid.New().String()
		}
		comment.BlogID = blogID
		if comment.CreatedAt.IsZero() {
			comment.CreatedAt = time.Now()
		}
		return tx.Omit("User").Create(comment).Error
	})
	return mapError(err, "add blog comment")
}
