package handler_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"
)

// memStore is an in-memory repository.Store with the same uniqueness rules
// as the real backends. It serves the end-to-end handler tests.
type memStore struct {
	mu      sync.Mutex
	users   map[string]*models.User
	shows   map[string]*models.Show
	ratings map[string]*models.SeasonRating
	reviews []*models.Review
	favs    []*models.Favorite
	history map[string]*models.WatchProgress
	home    []*models.HomeItem
	seq     int
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*models.User{},
		shows:   map[string]*models.Show{},
		ratings: map[string]*models.SeasonRating{},
		history: map[string]*models.WatchProgress{},
	}
}

func (s *memStore) Store() *repository.Store {
	return &repository.Store{
		Users:         memUsers{s},
		Shows:         memShows{s},
		SeasonRatings: memRatings{s},
		Reviews:       memReviews{s},
		Favorites:     memFavorites{s},
		WatchHistory:  memHistory{s},
		HomeItems:     memHome{s},
	}
}

func (s *memStore) tick() time.Time {
	s.seq++
	return time.Date(2024, 1, 1, 0, 0, s.seq, 0, time.UTC)
}

func notFound(what string) error { return fmt.Errorf("%s: %w", what, domain.ErrNotFound) }

func duplicate(what string) error { return fmt.Errorf("%s: %w", what, domain.ErrAlreadyExists) }

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return duplicate("user")
		}
	}
	u.CreatedAt = r.s.tick()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) Update(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return notFound("user")
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("user")
}

func (r memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

type memShows struct{ s *memStore }

func (r memShows) Create(_ context.Context, show *models.Show) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *show
	r.s.shows[show.ID] = &cp
	return nil
}

func (r memShows) List(_ context.Context) ([]models.Show, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.Show, 0, len(r.s.shows))
	for _, show := range r.s.shows {
		out = append(out, *show)
	}
	return out, nil
}

func (r memShows) FindByID(_ context.Context, id string) (*models.Show, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if show, ok := r.s.shows[id]; ok {
		cp := *show
		return &cp, nil
	}
	return nil, notFound("show")
}

func (r memShows) FindByTitle(_ context.Context, title string) (*models.Show, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, show := range r.s.shows {
		if show.Title == title {
			cp := *show
			return &cp, nil
		}
	}
	return nil, notFound("show")
}

type memRatings struct{ s *memStore }

// expand copies a rating with its associations; callers hold the lock.
func (r memRatings) expand(rating *models.SeasonRating) models.SeasonRating {
	cp := *rating
	cp.User = r.s.users[rating.UserID]
	cp.Show = r.s.shows[rating.ShowID]
	return cp
}

func (r memRatings) Create(_ context.Context, rating *models.SeasonRating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.ratings {
		if existing.UserID == rating.UserID && existing.ShowID == rating.ShowID && existing.SeasonNumber == rating.SeasonNumber {
			return duplicate("season rating")
		}
	}
	rating.CreatedAt = r.s.tick()
	rating.UpdatedAt = rating.CreatedAt
	cp := *rating
	cp.User, cp.Show = nil, nil
	r.s.ratings[rating.ID] = &cp
	return nil
}

func (r memRatings) Update(_ context.Context, rating *models.SeasonRating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.ratings[rating.ID]
	if !ok {
		return notFound("season rating")
	}
	existing.SeasonTitle = rating.SeasonTitle
	existing.Rating = rating.Rating
	existing.Review = rating.Review
	existing.EpisodesWatched = rating.EpisodesWatched
	existing.TotalEpisodes = rating.TotalEpisodes
	existing.UpdatedAt = r.s.tick()
	return nil
}

func (r memRatings) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.ratings[id]; !ok {
		return notFound("season rating")
	}
	delete(r.s.ratings, id)
	return nil
}

func (r memRatings) FindByID(_ context.Context, id string) (*models.SeasonRating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rating, ok := r.s.ratings[id]; ok {
		cp := r.expand(rating)
		return &cp, nil
	}
	return nil, notFound("season rating")
}

func (r memRatings) FindByKey(_ context.Context, userID, showID string, seasonNumber int) (*models.SeasonRating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rating := range r.s.ratings {
		if rating.UserID == userID && rating.ShowID == showID && rating.SeasonNumber == seasonNumber {
			cp := r.expand(rating)
			return &cp, nil
		}
	}
	return nil, notFound("season rating")
}

func (r memRatings) filter(match func(*models.SeasonRating) bool) []models.SeasonRating {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.SeasonRating
	for _, rating := range r.s.ratings {
		if match(rating) {
			out = append(out, r.expand(rating))
		}
	}
	return out
}

func (r memRatings) ListByShow(_ context.Context, showID, userID string) ([]models.SeasonRating, error) {
	out := r.filter(func(rating *models.SeasonRating) bool {
		return rating.ShowID == showID && (userID == "" || rating.UserID == userID)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].SeasonNumber != out[j].SeasonNumber {
			return out[i].SeasonNumber < out[j].SeasonNumber
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r memRatings) ListByUser(_ context.Context, userID string) ([]models.SeasonRating, error) {
	out := r.filter(func(rating *models.SeasonRating) bool { return rating.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memRatings) RatingValuesForShow(_ context.Context, showID string) ([]float64, error) {
	var values []float64
	for _, rating := range r.filter(func(rating *models.SeasonRating) bool { return rating.ShowID == showID }) {
		values = append(values, rating.Rating)
	}
	return values, nil
}

func (r memRatings) RatingValuesByShows(ctx context.Context, showIDs []string) (map[string][]float64, error) {
	out := map[string][]float64{}
	for _, id := range showIDs {
		values, _ := r.RatingValuesForShow(ctx, id)
		if len(values) > 0 {
			out[id] = values
		}
	}
	return out, nil
}

type memReviews struct{ s *memStore }

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r memReviews) Create(_ context.Context, review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if review.EpisodeNumber != nil {
		for _, existing := range r.s.reviews {
			if existing.UserID == review.UserID && existing.AnimeID == review.AnimeID &&
				sameInt(existing.SeasonNumber, review.SeasonNumber) && sameInt(existing.EpisodeNumber, review.EpisodeNumber) {
				return duplicate("review")
			}
		}
	}
	review.CreatedAt = r.s.tick()
	review.UpdatedAt = review.CreatedAt
	cp := *review
	r.s.reviews = append(r.s.reviews, &cp)
	return nil
}

func (r memReviews) ExistsForEpisode(_ context.Context, key repository.EpisodeKey) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.reviews {
		if existing.UserID != key.UserID || existing.AnimeID != key.AnimeID || existing.EpisodeNumber == nil {
			continue
		}
		if *existing.EpisodeNumber != key.EpisodeNumber {
			continue
		}
		if key.SeasonNumber == nil || sameInt(existing.SeasonNumber, key.SeasonNumber) {
			return true, nil
		}
	}
	return false, nil
}

func (r memReviews) collect(match func(*models.Review) bool) []models.Review {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Review
	for i := len(r.s.reviews) - 1; i >= 0; i-- {
		if review := r.s.reviews[i]; match(review) {
			cp := *review
			cp.User = r.s.users[review.UserID]
			out = append(out, cp)
		}
	}
	return out
}

func (r memReviews) List(_ context.Context, q repository.ReviewQuery) ([]models.Review, error) {
	return r.collect(func(review *models.Review) bool {
		if review.AnimeID != q.AnimeID {
			return false
		}
		if q.SeasonNumber != nil && !sameInt(review.SeasonNumber, q.SeasonNumber) {
			return false
		}
		return q.EpisodeNumber == nil || sameInt(review.EpisodeNumber, q.EpisodeNumber)
	}), nil
}

func (r memReviews) ListByUser(_ context.Context, userID string) ([]models.Review, error) {
	return r.collect(func(review *models.Review) bool { return review.UserID == userID }), nil
}

func (r memReviews) RatingValuesForAnime(_ context.Context, animeID string) ([]float64, error) {
	var values []float64
	for _, review := range r.collect(func(review *models.Review) bool { return review.AnimeID == animeID }) {
		values = append(values, review.Rating)
	}
	return values, nil
}

func (r memReviews) RatingValuesByAnimes(ctx context.Context, animeIDs []string) (map[string][]float64, error) {
	out := map[string][]float64{}
	for _, id := range animeIDs {
		values, _ := r.RatingValuesForAnime(ctx, id)
		if len(values) > 0 {
			out[id] = values
		}
	}
	return out, nil
}

type memFavorites struct{ s *memStore }

func (r memFavorites) Add(_ context.Context, fav *models.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.favs {
		if existing.UserID == fav.UserID && existing.ShowID == fav.ShowID {
			return nil
		}
	}
	fav.CreatedAt = r.s.tick()
	cp := *fav
	r.s.favs = append(r.s.favs, &cp)
	return nil
}

func (r memFavorites) Remove(_ context.Context, userID, showID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.favs[:0]
	for _, f := range r.s.favs {
		if f.UserID != userID || f.ShowID != showID {
			kept = append(kept, f)
		}
	}
	r.s.favs = kept
	return nil
}

func (r memFavorites) ListByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Favorite
	for i := len(r.s.favs) - 1; i >= 0; i-- {
		if f := r.s.favs[i]; f.UserID == userID {
			cp := *f
			cp.Show = r.s.shows[f.ShowID]
			out = append(out, cp)
		}
	}
	return out, nil
}

type memHistory struct{ s *memStore }

func (r memHistory) Upsert(_ context.Context, entry *models.WatchProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := entry.UserID + "/" + entry.ShowID
	if existing, ok := r.s.history[key]; ok {
		existing.Progress = entry.Progress
		existing.LastWatched = r.s.tick()
		return nil
	}
	cp := *entry
	cp.LastWatched = r.s.tick()
	r.s.history[key] = &cp
	return nil
}

func (r memHistory) ListByUser(_ context.Context, userID string) ([]models.WatchProgress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.WatchProgress
	for _, e := range r.s.history {
		if e.UserID == userID {
			cp := *e
			cp.Show = r.s.shows[e.ShowID]
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastWatched.After(out[j].LastWatched) })
	return out, nil
}

type memHome struct{ s *memStore }

func (r memHome) Create(_ context.Context, item *models.HomeItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.CreatedAt = r.s.tick()
	item.UpdatedAt = item.CreatedAt
	cp := *item
	r.s.home = append(r.s.home, &cp)
	return nil
}

func (r memHome) List(_ context.Context) ([]models.HomeItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.HomeItem, 0, len(r.s.home))
	for _, item := range r.s.home {
		cp := *item
		cp.Show = r.s.shows[item.ShowID]
		out = append(out, cp)
	}
	return out, nil
}

func (r memHome) FindByID(_ context.Context, id string) (*models.HomeItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, item := range r.s.home {
		if item.ID == id {
			cp := *item
			cp.Show = r.s.shows[item.ShowID]
			return &cp, nil
		}
	}
	return nil, notFound("home item")
}
