package mongostore

import (
	"context"

	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type showRepo struct {
	col *mongo.Collection
}

func (r *showRepo) Create(ctx context.Context, show *models.Show) error {
	ensureID(&show.ID)
	stamp(&show.CreatedAt, &show.UpdatedAt)
	_, err := r.col.InsertOne(ctx, show)
	return mapError(err, "create show")
}

func (r *showRepo) List(ctx context.Context) ([]models.Show, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list shows")
	}
	var shows []models.Show
	if err := cur.All(ctx, &shows); err != nil {
		return nil, mapError(err, "list shows")
	}
	return shows, nil
}

func (r *showRepo) FindByID(ctx context.Context, id string) (*models.Show, error) {
	var show models.Show
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&show); err != nil {
		return nil, mapError(err, "find show")
	}
	return &show, nil
}

func (r *showRepo) FindByTitle(ctx context.Context, title string) (*models.Show, error) {
	var show models.Show
	if err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&show); err != nil {
		return nil, mapError(err, "find show by title")
	}
	return &show, nil
}
