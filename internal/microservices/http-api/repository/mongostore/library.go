package mongostore

import (
	"context"
	"time"

	"animehub/internal/microservices/http-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type favoriteRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

// Add upserts on (user, show) so a repeated add keeps the first document.
func (r *favoriteRepo) Add(ctx context.Context, fav *models.Favorite) error {
	ensureID(&fav.ID)
	stamp(&fav.CreatedAt, nil)
	filter := bson.M{"user": fav.UserID, "show": fav.ShowID}
	update := bson.M{"$setOnInsert": bson.M{"_id": fav.ID, "createdAt": fav.CreatedAt}}
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// a concurrent add inserted the same pair
		return nil
	}
	return mapError(err, "add favorite")
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, showID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"user": userID, "show": showID})
	return mapError(err, "remove favorite")
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, mapError(err, "list favorites")
	}
	var favs []models.Favorite
	if err := cur.All(ctx, &favs); err != nil {
		return nil, mapError(err, "list favorites")
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.ShowID)
	}
	shows, err := showsByID(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range favs {
		favs[i].Show = shows[favs[i].ShowID]
	}
	return favs, nil
}

type watchHistoryRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *watchHistoryRepo) Upsert(ctx context.Context, entry *models.WatchProgress) error {
	ensureID(&entry.ID)
	if entry.LastWatched.IsZero() {
		entry.LastWatched = time.Now().UTC()
	}
	filter := bson.M{"user": entry.UserID, "show": entry.ShowID}
	update := bson.M{
		"$set":         bson.M{"progress": entry.Progress, "lastWatched": entry.LastWatched},
		"$setOnInsert": bson.M{"_id": entry.ID},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// lost an insert race; the pair exists now, so this matches it
		_, err = r.col.UpdateOne(ctx, filter, update, opts)
	}
	return mapError(err, "record watch progress")
}

func (r *watchHistoryRepo) ListByUser(ctx context.Context, userID string) ([]models.WatchProgress, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": userID}, options.Find().SetSort(bson.D{{Key: "lastWatched", Value: -1}}))
	if err != nil {
		return nil, mapError(err, "list watch history")
	}
	var list []models.WatchProgress
	if err := cur.All(ctx, &list); err != nil {
		return nil, mapError(err, "list watch history")
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

type homeItemRepo struct {
	db  *mongo.Database
	col *mongo.Collection
}

func (r *homeItemRepo) Create(ctx context.Context, item *models.HomeItem) error {
	ensureID(&item.ID)
	stamp(&item.CreatedAt, &item.UpdatedAt)
	_, err := r.col.InsertOne(ctx, item)
	return mapError(err, "create home item")
}

func (r *homeItemRepo) List(ctx context.Context) ([]models.HomeItem, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list home items")
	}
	var items []models.HomeItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, mapError(err, "list home items")
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ShowID)
	}
	shows, err := showsByID(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Show = shows[items[i].ShowID]
	}
	return items, nil
}

func (r *homeItemRepo) FindByID(ctx context.Context, id string) (*models.HomeItem, error) {
	var item models.HomeItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, mapError(err, "find home item")
	}
	show, err := showsByID(ctx, r.db, []string{item.ShowID})
	if err != nil {
		return nil, err
	}
	item.Show = show[item.ShowID]
	return &item, nil
}
