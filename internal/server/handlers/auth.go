package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophmedia/internal/crypto"
	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/internal/server/token"
	"github.com/iudanet/gophmedia/internal/validation"
	"github.com/iudanet/gophmedia/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	state       *site.State
	codec       *token.Codec
	bcryptCost  int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(
	logger *slog.Logger,
	userStorage storage.UserStorage,
	state *site.State,
	codec *token.Codec,
	bcryptCost int,
) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		state:       state,
		codec:       codec,
		bcryptCost:  bcryptCost,
	}
}

// Login обрабатывает POST /api/login
// Проверяет пароль и выдает access и refresh токены в cookies
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateCredentials(req.Username, req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid login format", slog.Any("error", err))
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			WriteError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "login failed: wrong password", slog.String("username", req.Username))
			WriteError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp, ok := h.issueSession(w, r, user)
	if !ok {
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Refresh обрабатывает GET /api/user/refresh
// Выдает новую пару токенов по refresh cookie; права перечитываются из БД
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(RefreshCookie)
	if err != nil || cookie.Value == "" {
		h.logger.WarnContext(ctx, "refresh rejected", slog.String("reason", "missing"))
		WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	current, err := h.state.Get()
	if err != nil {
		h.logger.WarnContext(ctx, "refresh rejected", slog.String("reason", "site not configured"))
		WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	claims, err := h.codec.Decode(cookie.Value, current.Secret, token.KindRefresh)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh rejected",
			slog.String("reason", token.Reason(err)),
			slog.Any("error", err))
		WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "refresh for unknown user", slog.Int64("user_id", claims.UserID))
			WriteError(w, "unknown user", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp, ok := h.issueSession(w, r, user)
	if !ok {
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.Int64("user_id", user.ID))

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Signout обрабатывает GET /api/user/signout
// Всегда успешен: cookies перезаписываются пустыми, даже если сессия уже истекла
func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w, r)
	h.logger.InfoContext(r.Context(), "session cookies cleared")
	w.WriteHeader(http.StatusOK)
}

// ChangePassword обрабатывает PUT /api/user/password
// После смены пароля сессия завершается, клиент должен войти заново
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.ChangePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode change password request", slog.Any("error", err))
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.OldPassword == "" {
		WriteError(w, "old_password is required", http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "password change for unknown user", slog.Int64("user_id", userID))
			WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(user.PasswordHash, req.OldPassword); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "password change rejected: wrong old password", slog.Int64("user_id", userID))
			WriteError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	hash, err := crypto.HashPassword(req.NewPassword, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.userStorage.UpdatePassword(ctx, userID, hash); err != nil {
		h.logger.ErrorContext(ctx, "failed to update password", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	clearSessionCookies(w, r)
	h.logger.InfoContext(ctx, "password changed", slog.Int64("user_id", userID))
	w.WriteHeader(http.StatusOK)
}

// issueSession signs both tokens and sets the cookies. On failure the
// response is already written and ok is false.
func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, user *models.User) (api.LoginResponse, bool) {
	ctx := r.Context()

	current, err := h.state.Get()
	if err != nil {
		h.logger.ErrorContext(ctx, "cannot issue tokens", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return api.LoginResponse{}, false
	}

	access, err := h.codec.IssueAccess(user.ID, user.Permission, current.Secret)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return api.LoginResponse{}, false
	}

	refresh, err := h.codec.IssueRefresh(user.ID, current.Secret)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return api.LoginResponse{}, false
	}

	setSessionCookies(w, r, h.codec, access, refresh)

	return api.LoginResponse{
		Username:   user.Username,
		Permission: int(user.Permission),
		Expire:     access.ExpiresAt.Unix(),
	}, true
}
