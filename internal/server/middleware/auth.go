package middleware

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/gophmedia/internal/server/handlers"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/token"
)

// SessionMiddleware создает middleware для проверки access token из cookie.
// Причина отказа пишется в лог, клиент всегда получает одинаковый 401.
func SessionMiddleware(logger *slog.Logger, codec *token.Codec, state *site.State) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			reject := func(reason string, err error) {
				attrs := []any{
					slog.String("reason", reason),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				if err != nil {
					attrs = append(attrs, slog.Any("error", err))
				}
				logger.WarnContext(ctx, "request not authenticated", attrs...)
				handlers.WriteError(w, "unauthorized", http.StatusUnauthorized)
			}

			// Извлекаем токен из cookie
			cookie, err := r.Cookie(handlers.AccessCookie)
			if err != nil || cookie.Value == "" {
				reject("missing", nil)
				return
			}

			current, err := state.Get()
			if err != nil {
				reject("site not configured", err)
				return
			}

			claims, err := codec.Decode(cookie.Value, current.Secret, token.KindAccess)
			if err != nil {
				reject(token.Reason(err), err)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.Int64("user_id", claims.UserID))

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, claims.UserID, claims.Permission)))
		})
	}
}
