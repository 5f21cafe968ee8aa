package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
	"animehub/internal/validate"

	"github.com/google/uuid"
)

const (
	DefaultBlogPageSize = 10
	MaxBlogPageSize     = 50
)

type BlogService interface {
	ListPublic(ctx context.Context, page, limit int) (*dto.PaginatedBlogResponse, error)
	ListMine(ctx context.Context, userID string) ([]dto.BlogResponse, error)
	Create(ctx context.Context, userID string, req dto.CreateBlogRequest) (*dto.BlogResponse, error)
	// Update and Delete act only on the caller's own blogs.
	Update(ctx context.Context, userID, blogID string, req dto.UpdateBlogRequest) (*dto.BlogResponse, error)
	Delete(ctx context.Context, userID, blogID string) error
	ToggleLike(ctx context.Context, userID, blogID string) (*dto.LikeResponse, error)
	AddComment(ctx context.Context, userID, blogID string, req dto.CommentRequest) (*dto.BlogResponse, error)
}

type blogService struct {
	blogs repository.BlogRepository
}

func NewBlogService(blogs repository.BlogRepository) BlogService {
	return &blogService{blogs: blogs}
}

func (s *blogService) ListPublic(ctx context.Context, page, limit int) (*dto.PaginatedBlogResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultBlogPageSize
	}
	limit = min(limit, MaxBlogPageSize)

	blogs, total, err := s.blogs.ListPublished(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list public blogs: %w", err)
	}
	resp := dto.NewPaginatedBlogResponse(dto.FromModelsToBlogResponses(blogs), total, page, limit)
	return &resp, nil
}

func (s *blogService) ListMine(ctx context.Context, userID string) ([]dto.BlogResponse, error) {
	blogs, err := s.blogs.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list blogs of %s: %w", userID, err)
	}
	return dto.FromModelsToBlogResponses(blogs), nil
}

func (s *blogService) Create(ctx context.Context, userID string, req dto.CreateBlogRequest) (*dto.BlogResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	blog := &models.Blog{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    userID,
		Tags:        cleanTags(req.Tags),
		IsPublished: req.IsPublished == nil || *req.IsPublished,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return s.reload(ctx, blog.ID)
}

func (s *blogService) Update(ctx context.Context, userID, blogID string, req dto.UpdateBlogRequest) (*dto.BlogResponse, error) {
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		req.Title = &t
	}
	if req.Content != nil {
		c := strings.TrimSpace(*req.Content)
		req.Content = &c
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	blog, err := s.owned(ctx, userID, blogID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Tags != nil {
		blog.Tags = cleanTags(req.Tags)
	}
	if req.IsPublished != nil {
		blog.IsPublished = *req.IsPublished
	}

	if err := s.blogs.Update(ctx, blog); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBlogNotOwned
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return s.reload(ctx, blog.ID)
}

func (s *blogService) Delete(ctx context.Context, userID, blogID string) error {
	if err := s.blogs.Delete(ctx, blogID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrBlogNotOwned
		}
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

func (s *blogService) ToggleLike(ctx context.Context, userID, blogID string) (*dto.LikeResponse, error) {
	liked, err := s.blogs.ToggleLike(ctx, blogID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("toggle like: %w", err)
	}
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("reload blog: %w", err)
	}
	return &dto.LikeResponse{Liked: liked, LikeCount: dto.LikeCount(blog)}, nil
}

func (s *blogService) AddComment(ctx context.Context, userID, blogID string, req dto.CommentRequest) (*dto.BlogResponse, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, domain.NewError(domain.ErrValidation, "Comment content is required")
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	comment := &models.BlogComment{ID: uuid.New().String(), UserID: userID, Content: req.Content}
	if err := s.blogs.AddComment(ctx, blogID, comment); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return s.reload(ctx, blogID)
}

// owned loads a blog and hides blogs of other authors behind the same not-found error.
func (s *blogService) owned(ctx context.Context, userID, blogID string) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBlogNotOwned
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	if blog.AuthorID != userID {
		return nil, ErrBlogNotOwned
	}
	return blog, nil
}

func (s *blogService) reload(ctx context.Context, blogID string) (*dto.BlogResponse, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("reload blog: %w", err)
	}
	resp := dto.FromModelToBlogResponse(blog)
	return &resp, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
