// Package mongostore implements the repository interfaces on MongoDB.
// Show seasons, blog likes and blog comments are embedded documents.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	colUsers         = "users"
	colShows         = "shows"
	colSeasonRatings = "seasonratings"
	colReviews       = "reviews"
	colBlogs         = "blogs"
	colUserShows     = "usershows"
	colFavorites     = "favorites"
	colWatchHistory  = "watchhistory"
	colHome          = "home"
)

// NewStore creates a repository.Store backed by db.
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Users:         &userRepo{col: db.Collection(colUsers)},
		Shows:         &showRepo{col: db.Collection(colShows)},
		SeasonRatings: &seasonRatingRepo{db: db, col: db.Collection(colSeasonRatings)},
		Reviews:       &reviewRepo{db: db, col: db.Collection(colReviews)},
		Blogs:         &blogRepo{db: db, col: db.Collection(colBlogs)},
		UserShows:     &userShowRepo{db: db, col: db.Collection(colUserShows)},
		Favorites:     &favoriteRepo{db: db, col: db.Collection(colFavorites)},
		WatchHistory:  &watchHistoryRepo{db: db, col: db.Collection(colWatchHistory)},
		HomeItems:     &homeItemRepo{db: db, col: db.Collection(colHome)},
	}
}

func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created != nil && created.IsZero() {
		*created = now
	}
	if updated != nil {
		*updated = now
	}
}

// usersByID loads the users referenced by ids in one round trip.
func usersByID(ctx context.Context, db *mongo.Database, ids []string) (map[string]*models.User, error) {
	out := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := db.Collection(colUsers).Find(ctx, bson.M{"_id": bson.M{"$in": uniq(ids)}})
	if err != nil {
		return nil, mapError(err, "load users")
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, mapError(err, "decode users")
	}
	for i := range users {
		out[users[i].ID] = &users[i]
	}
	return out, nil
}

// showsByID loads the shows referenced by ids in one round trip.
func showsByID(ctx context.Context, db *mongo.Database, ids []string) (map[string]*models.Show, error) {
	out := make(map[string]*models.Show, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := db.Collection(colShows).Find(ctx, bson.M{"_id": bson.M{"$in": uniq(ids)}})
	if err != nil {
		return nil, mapError(err, "load shows")
	}
	var shows []models.Show
	if err := cur.All(ctx, &shows); err != nil {
		return nil, mapError(err, "decode shows")
	}
	for i := range shows {
		out[shows[i].ID] = &shows[i]
	}
	return out, nil
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type ratingValue struct {
	Rating float64 `bson:"rating"`
}

func ratingValues(ctx context.Context, col *mongo.Collection, filter bson.M, op string) ([]float64, error) {
	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, mapError(err, op)
	}
	var docs []ratingValue
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, op)
	}
	values := make([]float64, 0, len(docs))
	for _, d := range docs {
		values = append(values, d.Rating)
	}
	return values, nil
}

type keyedRating struct {
	Show    string  `bson:"show"`
	AnimeID string  `bson:"animeId"`
	Rating  float64 `bson:"rating"`
}

// ratingValuesBy groups the ratings of col by field, the show reference of
// the collection, for the documents whose field is in ids.
func ratingValuesBy(ctx context.Context, col *mongo.Collection, field string, ids []string, op string) (map[string][]float64, error) {
	out := make(map[string][]float64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	opts := options.Find().SetProjection(bson.M{field: 1, "rating": 1})
	cur, err := col.Find(ctx, bson.M{field: bson.M{"$in": uniq(ids)}}, opts)
	if err != nil {
		return nil, mapError(err, op)
	}
	var docs []keyedRating
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, op)
	}
	for _, d := range docs {
		id := d.Show
		if field == "animeId" {
			id = d.AnimeID
		}
		out[id] = append(out[id], d.Rating)
	}
	return out, nil
}
