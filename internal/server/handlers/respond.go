package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophmedia/internal/server/apperr"
	"github.com/iudanet/gophmedia/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет JSON ответ с ошибкой. Used by middleware too.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// sendAppError logs err and answers with the status of its kind.
// Internal details never reach the client.
func sendAppError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, msg string, err error) {
	appErr := apperr.From(err)
	status := appErr.Kind.Status()

	switch {
	case status >= http.StatusInternalServerError:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
	default:
		logger.WarnContext(ctx, msg,
			slog.String("kind", appErr.Kind.String()),
			slog.Any("error", err))
	}

	WriteError(w, appErr.Message, status)
}

// decodeJSON читает тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(dst)
}
