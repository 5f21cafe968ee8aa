package mongostore

import (
	"context"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seasonRatingRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *seasonRatingRepo) Create(ctx context.Context, rating *models.SeasonRating) error {
	ensureID(&rating.ID)
	stamp(&rating.CreatedAt, &rating.UpdatedAt)
	_, err := r.col.InsertOne(ctx, rating)
	return mapError(err, "create season rating")
}

func (r *seasonRatingRepo) Update(ctx context.Context, rating *models.SeasonRating) error {
	stamp(nil, &rating.UpdatedAt)
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": rating.ID}, bson.M{"$set": bson.M{
		"seasonTitle":     rating.SeasonTitle,
		"rating":          rating.Rating,
		"review":          rating.Review,
		"episodesWatched": rating.EpisodesWatched,
		"totalEpisodes":   rating.TotalEpisodes,
		"updatedAt":       rating.UpdatedAt,
	}})
	if err != nil {
		return mapError(err, "update season rating")
	}
	if res.MatchedCount == 0 {
		return mapError(domain.ErrNotFound, "update season rating")
	}
	return nil
}

func (r *seasonRatingRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err, "delete season rating")
	}
	if res.DeletedCount == 0 {
		return mapError(domain.ErrNotFound, "delete season rating")
	}
	return nil
}

func (r *seasonRatingRepo) FindByID(ctx context.Context, id string) (*models.SeasonRating, error) {
	var rating models.SeasonRating
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rating); err != nil {
		return nil, mapError(err, "find season rating")
	}
	return &rating, nil
}

func (r *seasonRatingRepo) FindByKey(ctx context.Context, userID, showID string, seasonNumber int) (*models.SeasonRating, error) {
	var rating models.SeasonRating
	filter := bson.M{"user": userID, "show": showID, "seasonNumber": seasonNumber}
	if err := r.col.FindOne(ctx, filter).Decode(&rating); err != nil {
		return nil, mapError(err, "find season rating by key")
	}
	return &rating, nil
}

func (r *seasonRatingRepo) find(ctx context.Context, filter bson.M, sort bson.D, withUsers bool, op string) ([]models.SeasonRating, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, mapError(err, op)
	}
	var ratings []models.SeasonRating
	if err := cur.All(ctx, &ratings); err != nil {
		return nil, mapError(err, op)
	}

	showIDs := make([]string, 0, len(ratings))
	userIDs := make([]string, 0, len(ratings))
	for _, rt := range ratings {
		showIDs = append(showIDs, rt.ShowID)
		userIDs = append(userIDs, rt.UserID)
	}
	shows, err := showsByID(ctx, r.db, showIDs)
	if err != nil {
		return nil, err
	}
	users := map[string]*models.User{}
	if withUsers {
		if users, err = usersByID(ctx, r.db, userIDs); err != nil {
			return nil, err
		}
	}
	for i := range ratings {
		ratings[i].Show = shows[ratings[i].ShowID]
		ratings[i].User = users[ratings[i].UserID]
	}
	return ratings, nil
}

func (r *seasonRatingRepo) ListByShow(ctx context.Context, showID, userID string) ([]models.SeasonRating, error) {
	filter := bson.M{"show": showID}
	if userID != "" {
		filter["user"] = userID
	}
	sort := bson.D{{Key: "seasonNumber", Value: 1}, {Key: "createdAt", Value: -1}}
	return r.find(ctx, filter, sort, true, "list season ratings by show")
}

func (r *seasonRatingRepo) ListByUser(ctx context.Context, userID string) ([]models.SeasonRating, error) {
	sort := bson.D{{Key: "createdAt", Value: -1}}
	return r.find(ctx, bson.M{"user": userID}, sort, false, "list season ratings by user")
}

func (r *seasonRatingRepo) RatingValuesForShow(ctx context.Context, showID string) ([]float64, error) {
	return ratingValues(ctx, r.col, bson.M{"show": showID}, "season rating values")
}

func (r *seasonRatingRepo) RatingValuesByShows(ctx context.Context, showIDs []string) (map[string][]float64, error) {
	return ratingValuesBy(ctx, r.col, "show", showIDs, "season rating values by shows")
}
