package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/store"
)

// LikeService records likes.
type LikeService interface {
	// Like records that login likes recipeID. A second like is CONFLICT.
	Like(ctx context.Context, login string, recipeID int64) error
}

type likeService struct {
	stores Stores
	logger *slog.Logger
}

// NewLikeService creates a LikeService.
func NewLikeService(stores Stores, logger *slog.Logger) LikeService {
	return &likeService{
		stores: stores,
		logger: logger.With(slog.String("component", "like_service")),
	}
}

func (s *likeService) Like(ctx context.Context, login string, recipeID int64) error {
	account, err := s.stores.Accounts.GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return lookupError("account", "retrieve account", err)
	}
	if _, err := s.stores.Recipes.GetByID(ctx, recipeID); err != nil {
		return lookupError("recipe", "retrieve recipe", err)
	}

	err = s.stores.Likes.Insert(ctx, account.ID, recipeID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrLikeExists):
		return domain.Conflict("already liked", err)
	case errors.Is(err, store.ErrDuplicate), errors.Is(err, store.ErrConstraintViolation):
		logger.FromContextOrDefault(ctx, s.logger).Warn("like rejected by constraint",
			slog.String("error", err.Error()),
			slog.Int64("recipe_id", recipeID))
		return integrityViolation(err)
	default:
		return fmt.Errorf("failed to record like: %w", err)
	}
}
