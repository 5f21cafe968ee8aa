package mongostore

import (
	"context"

	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type reviewRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *reviewRepo) Create(ctx context.Context, review *models.Review) error {
	ensureID(&review.ID)
	stamp(&review.CreatedAt, &review.UpdatedAt)
	_, err := r.col.InsertOne(ctx, review)
	return mapError(err, "create review")
}

func (r *reviewRepo) ExistsForEpisode(ctx context.Context, key repository.EpisodeKey) (bool, error) {
	filter := bson.M{"user": key.UserID, "animeId": key.AnimeID, "episodeNumber": key.EpisodeNumber}
	if key.SeasonNumber != nil {
		filter["seasonNumber"] = *key.SeasonNumber
	}
	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, mapError(err, "check episode review")
	}
	return n > 0, nil
}

func (r *reviewRepo) List(ctx context.Context, q repository.ReviewQuery) ([]models.Review, error) {
	filter := bson.M{"animeId": q.AnimeID}
	if q.SeasonNumber != nil {
		filter["seasonNumber"] = *q.SeasonNumber
	}
	if q.EpisodeNumber != nil {
		filter["episodeNumber"] = *q.EpisodeNumber
	}
	reviews, err := r.find(ctx, filter, "list reviews")
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reviews))
	for _, rv := range reviews {
		ids = append(ids, rv.UserID)
	}
	users, err := usersByID(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].User = users[reviews[i].UserID]
	}
	return reviews, nil
}

func (r *reviewRepo) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"user": userID}, "list reviews by user")
}

func (r *reviewRepo) RatingValuesForAnime(ctx context.Context, animeID string) ([]float64, error) {
	return ratingValues(ctx, r.col, bson.M{"animeId": animeID}, "review rating values")
}

func (r *reviewRepo) find(ctx context.Context, filter bson.M, op string) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, mapError(err, op)
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, mapError(err, op)
	}
	return reviews, nil
}

func (r *reviewRepo) RatingValuesByAnimes(ctx context.Context, animeIDs []string) (map[string][]float64, error) {
	return ratingValuesBy(ctx, r.col, "animeId", animeIDs, "review rating values by animes")
}
