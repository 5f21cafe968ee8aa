package mongostore

import (
	"context"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userShowRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *userShowRepo) Add(ctx context.Context, entry *models.UserShow) error {
	ensureID(&entry.ID)
	stamp(&entry.AddedAt, nil)
	_, err := r.col.InsertOne(ctx, entry)
	return mapError(err, "add user show")
}

func (r *userShowRepo) Delete(ctx context.Context, id, userID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user": userID})
	if err != nil {
		return mapError(err, "remove user show")
	}
	if res.DeletedCount == 0 {
		return mapError(domain.ErrNotFound, "remove user show")
	}
	return nil
}

func (r *userShowRepo) ListByUser(ctx context.Context, userID string) ([]models.UserShow, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}}))
	if err != nil {
		return nil, mapError(err, "list user shows")
	}
	var list []models.UserShow
	if err := cur.All(ctx, &list); err != nil {
		return nil, mapError(err, "list user shows")
	}

	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ShowID)
	}
	shows, err := showsByID(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Show = shows[list[i].ShowID]
	}
	return list, nil
}
