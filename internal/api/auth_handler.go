package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/recipe-api/internal/api/shared"
	"github.com/phrazzld/recipe-api/internal/domain"
	"github.com/phrazzld/recipe-api/internal/platform/logger"
	"github.com/phrazzld/recipe-api/internal/service"
	"github.com/phrazzld/recipe-api/internal/service/auth"
)

// HeaderRefreshToken carries refresh tokens in both directions.
const HeaderRefreshToken = "Refresh-Token"

// AuthHandler handles the public account endpoints under /api/auth.
type AuthHandler struct {
	accounts   service.AccountService
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Login:    req.Login,
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		HandleError(w, r, err)
		return
	}

	h.respondWithTokens(w, r, http.StatusCreated, auth.Identity{AccountID: account.ID, Login: account.Login})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := h.accounts.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	h.respondWithTokens(w, r, http.StatusOK, auth.Identity{AccountID: account.ID, Login: account.Login})
}

// Refresh handles POST /api/auth/refresh. The refresh token arrives in the
// Refresh-Token header and a rotated pair is returned.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.Header.Get(HeaderRefreshToken))
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Refresh token required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), raw)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid refresh token", err)
		return
	}

	// The account may have been deleted since the token was issued.
	account, err := h.accounts.GetAccount(r.Context(), claims.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid refresh token", err)
			return
		}
		HandleError(w, r, err)
		return
	}

	h.respondWithTokens(w, r, http.StatusOK, auth.Identity{AccountID: account.ID, Login: account.Login})
}

// CheckID handles GET /api/auth/check-id?id=.
func (h *AuthHandler) CheckID(w http.ResponseWriter, r *http.Request) {
	login := strings.TrimSpace(r.URL.Query().Get("id"))
	if login == "" {
		HandleError(w, r, domain.ValidationFailed(map[string]string{"id": "is required"}))
		return
	}
	exists, err := h.accounts.LoginExists(r.Context(), login)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ExistsResponse{Exists: exists})
}

// CheckNickname handles GET /api/auth/check-nickname?nickname=.
func (h *AuthHandler) CheckNickname(w http.ResponseWriter, r *http.Request) {
	nickname := strings.TrimSpace(r.URL.Query().Get("nickname"))
	if nickname == "" {
		HandleError(w, r, domain.ValidationFailed(map[string]string{"nickname": "is required"}))
		return
	}
	exists, err := h.accounts.NicknameExists(r.Context(), nickname)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ExistsResponse{Exists: exists})
}

// FindID handles POST /api/auth/find-id.
func (h *AuthHandler) FindID(w http.ResponseWriter, r *http.Request) {
	var req FindIDRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	login, err := h.accounts.FindLoginByEmail(r.Context(), req.Email)
	if err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, FindIDResponse{Login: login})
}

// ResetPassword handles POST /api/auth/reset-password. The reset token proves
// control of the email; the email alone is never enough.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		HandleError(w, r, domain.InvalidRequest("new password and confirmation do not match"))
		return
	}

	email, err := h.jwtService.ValidateResetToken(r.Context(), req.ResetToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid reset token", err)
		return
	}

	if err := h.accounts.ResetPassword(r.Context(), email, req.NewPassword); err != nil {
		HandleError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "password has been reset"})
}

func (h *AuthHandler) respondWithTokens(w http.ResponseWriter, r *http.Request, status int, id auth.Identity) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	token, err := h.jwtService.GenerateToken(r.Context(), id)
	if err != nil {
		log.Error("failed to generate token", slog.Int64("account_id", id.AccountID))
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}
	refresh, err := h.jwtService.GenerateRefreshToken(r.Context(), id)
	if err != nil {
		log.Error("failed to generate refresh token", slog.Int64("account_id", id.AccountID))
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set(HeaderRefreshToken, refresh)
	shared.RespondWithJSON(w, r, status, AuthResponse{
		AccountID:    id.AccountID,
		Token:        token,
		RefreshToken: refresh,
	})
}
