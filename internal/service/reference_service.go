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

// ReferenceService records user references to recipes.
type ReferenceService interface {
	// RecordCompletion records that login completed recipeID.
	RecordCompletion(ctx context.Context, login string, recipeID int64) (*domain.UserReference, error)
}

type referenceService struct {
	stores Stores
	logger *slog.Logger
}

// NewReferenceService creates a ReferenceService.
func NewReferenceService(stores Stores, logger *slog.Logger) ReferenceService {
	return &referenceService{
		stores: stores,
		logger: logger.With(slog.String("component", "reference_service")),
	}
}

func (s *referenceService) RecordCompletion(
	ctx context.Context,
	login string,
	recipeID int64,
) (*domain.UserReference, error) {
	account, err := s.stores.Accounts.GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return nil, lookupError("account", "retrieve account", err)
	}
	if _, err := s.stores.Recipes.GetByID(ctx, recipeID); err != nil {
		return nil, lookupError("recipe", "retrieve recipe", err)
	}

	ref := &domain.UserReference{
		AccountID: account.ID,
		RecipeID:  recipeID,
		Kind:      domain.ReferenceCompletion,
	}
	if err := s.stores.References.Insert(ctx, ref); err != nil {
		if errors.Is(err, store.ErrConstraintViolation) || errors.Is(err, store.ErrDuplicate) {
			return nil, integrityViolation(err)
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("completion recorded",
		slog.Int64("account_id", account.ID),
		slog.Int64("recipe_id", recipeID),
		slog.Int64("reference_id", ref.ID))
	return ref, nil
}
