package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/service"
	"github.com/phrazzld/recipe-api/internal/service/auth"
)

// RecipeHandler serves the per-recipe interactions under /api/details.
type RecipeHandler struct {
	bookmarks  service.BookmarkService
	likes      service.LikeService
	references service.ReferenceService
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(
	bookmarks service.BookmarkService,
	likes service.LikeService,
	references service.ReferenceService,
) *RecipeHandler {
	return &RecipeHandler{bookmarks: bookmarks, likes: likes, references: references}
}

// ToggleBookmark handles POST /api/details/bookmarks.
func (h *RecipeHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req RecipeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.bookmarks.Toggle(r.Context(), id.Login, req.RecipeID)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BookmarkResponse{Bookmarked: result.Bookmarked})
}

// BookmarkStatus handles GET /api/details/bookmarks/{recipeId}. The route is
// public; anonymous callers always see false.
func (h *RecipeHandler) BookmarkStatus(w http.ResponseWriter, r *http.Request) {
	recipeID, err := strconv.ParseInt(chi.URLParam(r, "recipeId"), 10, 64)
	if err != nil || recipeID <= 0 {
		HandleError(w, r, domain.ValidationFailed(map[string]string{"recipeId": "must be a positive integer"}))
		return
	}

	var bookmarked bool
	if id, ok := auth.IdentityFromContext(r.Context()); ok {
		bookmarked = h.bookmarks.IsBookmarked(r.Context(), id.Login, recipeID)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BookmarkResponse{Bookmarked: bookmarked})
}

// Like handles POST /api/details/likes.
func (h *RecipeHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req RecipeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.likes.Like(r.Context(), id.Login, req.RecipeID); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Message: "liked"})
}

// Complete handles POST /api/details/completion.
func (h *RecipeHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req RecipeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ref, err := h.references.RecordCompletion(r.Context(), id.Login, req.RecipeID)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, CompletionResponse{ReferenceID: ref.ID, RecipeID: ref.RecipeID})
}
