package mongostore

import (
	"context"
	"time"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blogRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *blogRepo) Create(ctx context.Context, blog *models.Blog) error {
	ensureID(&blog.ID)
	stamp(&blog.CreatedAt, &blog.UpdatedAt)
	if blog.Likes == nil {
		blog.Likes = []models.BlogLike{}
	}
	if blog.Comments == nil {
		blog.Comments = []models.BlogComment{}
	}
	_, err := r.col.InsertOne(ctx, blog)
	return mapError(err, "create blog")
}

func (r *blogRepo) Update(ctx context.Context, blog *models.Blog) error {
	stamp(nil, &blog.UpdatedAt)
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": blog.ID}, bson.M{"$set": bson.M{
		"title":       blog.Title,
		"content":     blog.Content,
		"tags":        blog.Tags,
		"isPublished": blog.IsPublished,
		"updatedAt":   blog.UpdatedAt,
	}})
	if err != nil {
		return mapError(err, "update blog")
	}
	if res.MatchedCount == 0 {
		return mapError(domain.ErrNotFound, "update blog")
	}
	return nil
}

func (r *blogRepo) Delete(ctx context.Context, id, authorID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "author": authorID})
	if err != nil {
		return mapError(err, "delete blog")
	}
	if res.DeletedCount == 0 {
		return mapError(domain.ErrNotFound, "delete blog")
	}
	return nil
}

func (r *blogRepo) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog); err != nil {
		return nil, mapError(err, "find blog")
	}
	blogs := []models.Blog{blog}
	if err := r.populate(ctx, blogs); err != nil {
		return nil, err
	}
	return &blogs[0], nil
}

func (r *blogRepo) ListPublished(ctx context.Context, offset, limit int) ([]models.Blog, int64, error) {
	filter := bson.M{"isPublished": true}
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mapError(err, "count blogs")
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	blogs, err := r.find(ctx, filter, opts, "list blogs")
	if err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (r *blogRepo) ListByAuthor(ctx context.Context, authorID string) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"author": authorID}, opts, "list blogs by author")
}

// ToggleLike pushes the like when the user has not liked the blog yet and
// pulls it otherwise. Each branch is a single atomic update.
func (r *blogRepo) ToggleLike(ctx context.Context, blogID, userID string) (bool, error) {
	like := models.BlogLike{UserID: userID, CreatedAt: time.Now().UTC()}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": blogID, "likes.user": bson.M{"$ne": userID}},
		bson.M{"$push": bson.M{"likes": like}},
	)
	if err != nil {
		return false, mapError(err, "like blog")
	}
	if res.MatchedCount == 1 {
		return true, nil
	}

	res, err = r.col.UpdateOne(ctx,
		bson.M{"_id": blogID, "likes.user": userID},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}},
	)
	if err != nil {
		return false, mapError(err, "unlike blog")
	}
	if res.MatchedCount == 0 {
		return false, mapError(domain.ErrNotFound, "toggle blog like")
	}
	return false, nil
}

func (r *blogRepo) AddComment(ctx context.Context, blogID string, comment *models.BlogComment) error {
	ensureID(&comment.ID)
	stamp(&comment.CreatedAt, nil)
	comment.BlogID = blogID
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": blogID}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return mapError(err, "add blog comment")
	}
	if res.MatchedCount == 0 {
		return mapError(domain.ErrNotFound, "add blog comment")
	}
	return nil
}

func (r *blogRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions, op string) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError(err, op)
	}
	var blogs []models.Blog
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, mapError(err, op)
	}
	if err := r.populate(ctx, blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// populate expands blog authors and comment authors.
func (r *blogRepo) populate(ctx context.Context, blogs []models.Blog) error {
	var ids []string
	for _, b := range blogs {
		ids = append(ids, b.AuthorID)
		for _, c := range b.Comments {
			ids = append(ids, c.UserID)
		}
	}
	users, err := usersByID(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for i := range blogs {
		blogs[i].Author = users[blogs[i].AuthorID]
		for j := range blogs[i].Comments {
			blogs[i].Comments[j].BlogID = blogs[i].ID
			blogs[i].Comments[j].User = users[blogs[i].Comments[j].UserID]
		}
	}
	return nil
}
