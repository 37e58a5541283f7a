package api

import (
	"net/http"

	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/service"
)

// AccountHandler serves the caller's own account under /api/user.
// Every route requires an identity bound by the authorization gate.
type AccountHandler struct {
	accounts service.AccountService
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Me handles GET /api/user/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	account, err := h.accounts.GetAccount(r.Context(), id.AccountID)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, AccountResponse{
		AccountID: account.ID,
		Login:     account.Login,
		Nickname:  account.Nickname,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	})
}

// ChangePassword handles PATCH /api/user/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.accounts.ChangePassword(r.Context(), id.AccountID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "password changed"})
}

// Delete handles DELETE /api/user/delete.
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := identityOrUnauthorized(w, r)
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), id.Login, req.Password); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "account deleted"})
}
