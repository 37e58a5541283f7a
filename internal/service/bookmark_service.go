package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/recipe-api/internal/metrics"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/store"
)

// BookmarkResult is the bookmark state after a toggle.
type BookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

// BookmarkService toggles and reports bookmarks. The bookmarked state is the
// existence of the row; nothing else records it.
type BookmarkService interface {
	// Toggle removes the bookmark if it exists and creates it otherwise.
	Toggle(ctx context.Context, login string, recipeID int64) (BookmarkResult, error)

	// IsBookmarked reports whether login has bookmarked recipeID.
	// Any failure, including an unknown login, reads as false.
	IsBookmarked(ctx context.Context, login string, recipeID int64) bool
}

type bookmarkService struct {
	db      *sql.DB
	stores  Stores
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewBookmarkService creates a BookmarkService. m may be nil.
func NewBookmarkService(db *sql.DB, stores Stores, m *metrics.Metrics, logger *slog.Logger) BookmarkService {
	return &bookmarkService{
		db:      db,
		stores:  stores,
		metrics: m,
		logger:  logger.With(slog.String("component", "bookmark_service")),
	}
}

func (s *bookmarkService) Toggle(ctx context.Context, login string, recipeID int64) (BookmarkResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var result BookmarkResult
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		account, err := s.stores.Accounts.WithTx(tx).GetByLogin(ctx, strings.TrimSpace(login))
		if err != nil {
			return lookupError("account", "retrieve account", err)
		}
		if _, err := s.stores.Recipes.WithTx(tx).GetByID(ctx, recipeID); err != nil {
			return lookupError("recipe", "retrieve recipe", err)
		}

		bookmarks := s.stores.Bookmarks.WithTx(tx)
		exists, err := bookmarks.Exists(ctx, account.ID, recipeID)
		if err != nil {
			return fmt.Errorf("failed to check bookmark: %w", err)
		}

		if exists {
			// A racing toggle may have removed it already; the end state is the same.
			if err := bookmarks.Delete(ctx, account.ID, recipeID); err != nil && !store.IsNotFoundError(err) {
				return fmt.Errorf("failed to remove bookmark: %w", err)
			}
			result.Bookmarked = false
			return nil
		}

		if err := bookmarks.Insert(ctx, account.ID, recipeID); err != nil {
			if !errors.Is(err, store.ErrBookmarkExists) {
				return fmt.Errorf("failed to add bookmark: %w", err)
			}
			log.Debug("bookmark added concurrently",
				slog.Int64("account_id", account.ID),
				slog.Int64("recipe_id", recipeID))
		}
		result.Bookmarked = true
		return nil
	})
	if err != nil {
		if !isDomainError(err) {
			log.Error("failed to toggle bookmark",
				slog.String("error", err.Error()),
				slog.Int64("recipe_id", recipeID))
		}
		return BookmarkResult{}, err
	}

	s.metrics.ObserveBookmarkToggle(result.Bookmarked)
	log.Debug("bookmark toggled",
		slog.Int64("recipe_id", recipeID),
		slog.Bool("bookmarked", result.Bookmarked))
	return result, nil
}

func (s *bookmarkService) IsBookmarked(ctx context.Context, login string, recipeID int64) bool {
	login = strings.TrimSpace(login)
	if login == "" {
		return false
	}
	log := logger.FromContextOrDefault(ctx, s.logger)

	account, err := s.stores.Accounts.GetByLogin(ctx, login)
	if err != nil {
		log.Debug("bookmark check without account", slog.String("error", err.Error()))
		return false
	}
	exists, err := s.stores.Bookmarks.Exists(ctx, account.ID, recipeID)
	if err != nil {
		log.Warn("bookmark check failed",
			slog.String("error", err.Error()),
			slog.Int64("recipe_id", recipeID))
		return false
	}
	return exists
}
