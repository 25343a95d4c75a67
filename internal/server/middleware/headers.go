package middleware

import "net/http"

// SecurityHeaders выставляет базовые заголовки защиты для всех ответов API
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		// ответы зависят от cookie сессии, общие кэши их хранить не должны
		h.Set("Cache-Control", "private")

		next.ServeHTTP(w, r)
	})
}
