package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iudanet/gophmedia/internal/crypto"
	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/pathres"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/internal/validation"
	"github.com/iudanet/gophmedia/pkg/api"
)

// SetupHandler обрабатывает первичную настройку сайта
type SetupHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	siteStorage storage.SiteStorage
	state       *site.State
	bcryptCost  int
}

// NewSetupHandler создает новый handler первичной настройки
func NewSetupHandler(
	logger *slog.Logger,
	userStorage storage.UserStorage,
	siteStorage storage.SiteStorage,
	state *site.State,
	bcryptCost int,
) *SetupHandler {
	return &SetupHandler{
		logger:      logger,
		userStorage: userStorage,
		siteStorage: siteStorage,
		state:       state,
		bcryptCost:  bcryptCost,
	}
}

// Status обрабатывает GET /api/setup
func (h *SetupHandler) Status(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, api.SetupStatusResponse{FirstRun: h.state.FirstRun()}, http.StatusOK)
}

// Setup обрабатывает POST /api/setup
// Создает корень хранилища, секрет подписи и первого администратора
func (h *SetupHandler) Setup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.state.FirstRun() {
		h.logger.WarnContext(ctx, "setup rejected: site already configured")
		WriteError(w, "site already configured", http.StatusUnauthorized)
		return
	}

	var req api.SetupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode setup request", slog.Any("error", err))
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Storage == "" || !filepath.IsAbs(req.Storage) {
		WriteError(w, "storage must be an absolute path", http.StatusBadRequest)
		return
	}

	if _, err := h.userStorage.GetUserByUsername(ctx, req.Username); err == nil {
		WriteError(w, "username already taken", http.StatusConflict)
		return
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		h.logger.ErrorContext(ctx, "failed to check username", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	root, err := prepareStorage(req.Storage, req.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to prepare storage", slog.String("storage", req.Storage), slog.Any("error", err))
		WriteError(w, "cannot create storage directory", http.StatusBadRequest)
		return
	}

	secret, err := crypto.GenerateSecret()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate secret", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	hash, err := crypto.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	newSite := &models.Site{StorageRoot: root, Secret: secret}
	admin := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Permission:   models.PermissionAdmin,
	}

	if err := h.siteStorage.Setup(ctx, newSite, admin); err != nil {
		switch {
		case errors.Is(err, storage.ErrSiteAlreadyExists):
			WriteError(w, "site already configured", http.StatusUnauthorized)
		case errors.Is(err, storage.ErrUserAlreadyExists):
			WriteError(w, "username already taken", http.StatusConflict)
		default:
			h.logger.ErrorContext(ctx, "failed to store site", slog.Any("error", err))
			WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if !h.state.CompareAndSwapFirstRun(newSite) {
		// БД уже отклонила бы вторую настройку, сюда попасть не должны
		h.logger.WarnContext(ctx, "site state was already replaced")
	}

	h.logger.InfoContext(ctx, "site configured",
		slog.String("storage", root),
		slog.String("admin", admin.Username))

	w.WriteHeader(http.StatusOK)
}

// prepareStorage creates the storage root and the admin's home directory
// and returns the canonical root.
func prepareStorage(storagePath, username string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", err
	}
	root, err := pathres.CanonicalRoot(storagePath)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", errors.New("storage is not a directory")
	}
	if err := os.MkdirAll(filepath.Join(root, username), 0o755); err != nil {
		return "", err
	}
	return root, nil
}
