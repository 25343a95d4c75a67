package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/gophmedia/internal/server/handlers"
)

// RecoveryMiddleware создает middleware для восстановления после паники
// Перехватывает panic, логирует стек вызовов и возвращает 500 Internal Server Error.
// http.ErrAbortHandler пробрасывается дальше: net/http молча рвет соединение.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}
				if err == http.ErrAbortHandler { //nolint:errorlint
					panic(err)
				}

				// Получаем стек вызовов для диагностики
				stackTrace := debug.Stack()

				// Логируем критическую ошибку со стеком
				logger.ErrorContext(r.Context(), "Panic recovered",
					slog.Any("error", err),
					slog.String("request_id", RequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr),
					slog.String("stack", string(stackTrace)),
				)

				// Возвращаем generic ошибку клиенту (не раскрываем детали)
				handlers.WriteError(w, "internal server error", http.StatusInternalServerError)
			}()

			// Передаем управление следующему обработчику
			next.ServeHTTP(w, r)
		})
	}
}
