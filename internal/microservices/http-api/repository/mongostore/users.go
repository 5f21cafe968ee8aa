package mongostore

import (
	"context"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepo struct {
	col *mongo.Collection
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	ensureID(&user.ID)
	stamp(&user.CreatedAt, &user.UpdatedAt)
	_, err := r.col.InsertOne(ctx, user)
	return mapError(err, "create user")
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	stamp(nil, &user.UpdatedAt)
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"username":       user.Username,
		"bio":            user.Bio,
		"location":       user.Location,
		"favoriteAnime":  user.FavoriteAnime,
		"profilePicture": user.ProfilePicture,
		"isActive":       user.IsActive,
		"updatedAt":      user.UpdatedAt,
	}})
	if err != nil {
		return mapError(err, "update user")
	}
	if res.MatchedCount == 0 {
		return mapError(domain.ErrNotFound, "update user")
	}
	return nil
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M, op string) (*models.User, error) {
	var user models.User
	if err := r.col.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapError(err, op)
	}
	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "find user by id")
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "find user by email")
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username}, "find user by username")
}
