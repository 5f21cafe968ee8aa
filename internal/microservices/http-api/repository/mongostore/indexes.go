package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and lookup indexes every collection relies on.
// Creating an index that already exists with the same options is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colShows: {
			{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colSeasonRatings: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "show", Value: 1}, {Key: "seasonNumber", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("user_show_season_unique"),
			},
			{Keys: bson.D{{Key: "show", Value: 1}, {Key: "seasonNumber", Value: 1}}},
		},
		colReviews: {
			{
				// only reviews that carry a numeric episode are deduplicated
				Keys: bson.D{
					{Key: "user", Value: 1},
					{Key: "animeId", Value: 1},
					{Key: "seasonNumber", Value: 1},
					{Key: "episodeNumber", Value: 1},
				},
				Options: options.Index().
					SetUnique(true).
					SetName("user_anime_season_episode_unique").
					SetPartialFilterExpression(bson.M{"episodeNumber": bson.M{"$type": "number"}}),
			},
			{Keys: bson.D{{Key: "animeId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		colBlogs: {
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "author", Value: 1}}},
		},
		colUserShows: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "show", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		colFavorites: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "show", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		colWatchHistory: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "show", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "lastWatched", Value: -1}}},
		},
		colHome: {
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
	}

	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}
