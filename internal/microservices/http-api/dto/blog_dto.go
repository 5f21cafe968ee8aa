package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

type CreateBlogRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Content     string   `json:"content" validate:"required,max=5000"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

// UpdateBlogRequest is a partial update, nil fields are left untouched.
type UpdateBlogRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string  `json:"content" validate:"omitempty,min=1,max=5000"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

type BlogCommentResponse struct {
	ID        string    `json:"id"`
	User      UserRef   `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type BlogResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Content      string                `json:"content"`
	Author       UserRef               `json:"author"`
	Tags         []string              `json:"tags"`
	IsPublished  bool                  `json:"isPublished"`
	Likes        []string              `json:"likes"`
	Comments     []BlogCommentResponse `json:"comments"`
	LikeCount    int                   `json:"likeCount"`
	CommentCount int                   `json:"commentCount"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

type PaginatedBlogResponse struct {
	Blogs       []BlogResponse `json:"blogs"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Total       int64          `json:"total"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// LikeCount and CommentCount are derived here rather than stored.
func LikeCount(b *models.Blog) int    { return len(b.Likes) }
func CommentCount(b *models.Blog) int { return len(b.Comments) }

func FromModelToBlogResponse(b *models.Blog) BlogResponse {
	resp := BlogResponse{
		ID:           b.ID,
		Title:        b.Title,
		Content:      b.Content,
		Author:       UserRef{ID: b.AuthorID},
		Tags:         append([]string{}, b.Tags...),
		IsPublished:  b.IsPublished,
		Likes:        make([]string, 0, len(b.Likes)),
		Comments:     make([]BlogCommentResponse, 0, len(b.Comments)),
		LikeCount:    LikeCount(b),
		CommentCount: CommentCount(b),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if b.Author != nil {
		resp.Author.Username = b.Author.Username
	}
	for _, l := range b.Likes {
		resp.Likes = append(resp.Likes, l.UserID)
	}
	for _, c := range b.Comments {
		cr := BlogCommentResponse{ID: c.ID, User: UserRef{ID: c.UserID}, Content: c.Content, CreatedAt: c.CreatedAt}
		if c.User != nil {
			cr.User.Username = c.User.Username
		}
		resp.Comments = append(resp.Comments, cr)
	}
	return resp
}

func FromModelsToBlogResponses(list []models.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelToBlogResponse(&list[i]))
	}
	return out
}

// NewPaginatedBlogResponse creates a paginated blog response
func NewPaginatedBlogResponse(blogs []BlogResponse, total int64, page, limit int) PaginatedBlogResponse {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return PaginatedBlogResponse{
		Blogs:       blogs,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}
}
