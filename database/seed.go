package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"animehub/internal/domain"
	"animehub/internal/microservices/http-api/dto"
	"animehub/internal/microservices/http-api/models"
	"animehub/internal/microservices/http-api/repository"

	"github.com/google/uuid"
)

// SeedShows inserts the shows of a JSON array read from r. Shows whose title
// already exists are skipped. Featured shows that get inserted are also put
// on the home page when home is non-nil. It returns the number inserted.
func SeedShows(ctx context.Context, shows repository.ShowRepository, home repository.HomeItemRepository, r io.Reader, logger *slog.Logger) (int, error) {
	var entries []dto.SeedShow
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	inserted := 0
	for i, entry := range entries {
		entry.Title = strings.TrimSpace(entry.Title)
		if entry.Title == "" {
			return inserted, fmt.Errorf("seed entry %d: title is required", i)
		}

		if _, err := shows.FindByTitle(ctx, entry.Title); err == nil {
			logger.Debug("seed_show_skipped", "title", entry.Title)
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return inserted, fmt.Errorf("seed %q: %w", entry.Title, err)
		}

		show := entry.ToModel()
		if show.ID == "" {
			show.ID = uuid.New().String()
		}
		if err := shows.Create(ctx, show); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return inserted, fmt.Errorf("seed %q: %w", entry.Title, err)
		}
		inserted++

		if entry.Featured && home != nil {
			item := &models.HomeItem{ID: uuid.New().String(), ShowID: show.ID}
			if err := home.Create(ctx, item); err != nil {
				return inserted, fmt.Errorf("feature %q: %w", entry.Title, err)
			}
		}
	}

	logger.Info("seed_shows_done", "inserted", inserted, "total", len(entries))
	return inserted, nil
}
