package handlers

import (
	"net/http"
	"time"

	"github.com/iudanet/gophmedia/internal/server/token"
)

const (
	// AccessCookie carries the access token on every request
	AccessCookie = "access_token"
	// RefreshCookie carries the refresh token, scoped to RefreshCookiePath
	RefreshCookie = "refresh_token"
	// RefreshCookiePath keeps the refresh token away from file requests
	RefreshCookiePath = "/api/user"
)

func sessionCookie(r *http.Request, name, value, path string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

// setSessionCookies sets both tokens with Max-Age equal to their lifetimes
func setSessionCookies(w http.ResponseWriter, r *http.Request, codec *token.Codec, access, refresh token.Token) {
	http.SetCookie(w, sessionCookie(r, AccessCookie, access.Value, "/", seconds(codec.AccessTTL())))
	http.SetCookie(w, sessionCookie(r, RefreshCookie, refresh.Value, RefreshCookiePath, seconds(codec.RefreshTTL())))
}

// clearSessionCookies overwrites both cookies with empty expired ones
func clearSessionCookies(w http.ResponseWriter, r *http.Request) {
	// MaxAge < 0 превращается в "Max-Age=0"
	http.SetCookie(w, sessionCookie(r, AccessCookie, "", "/", -1))
	http.SetCookie(w, sessionCookie(r, RefreshCookie, "", RefreshCookiePath, -1))
}

func seconds(d time.Duration) int {
	if s := int(d / time.Second); s > 0 {
		return s
	}
	return 1
}
