package storage

import (
	"context"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage keeps the single logged-in session of the client
type SessionStorage interface {
	// SaveSession replaces the stored session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession returns ErrSessionNotFound if nobody is logged in
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated reports whether a session exists whose refresh token is still usable
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents a session as kept on disk.
// The tokens are the raw cookie values issued by the server; the file is created with 0600.
type SessionData struct {
	ServerURL        string `json:"server_url"`
	Username         string `json:"username"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	Permission       int    `json:"permission"`
	AccessExpiresAt  int64  `json:"access_expires_at"`  // unix seconds
	RefreshExpiresAt int64  `json:"refresh_expires_at"` // unix seconds, 0 если неизвестно
}

// Usable reports whether the session can still be used or refreshed at now
func (s *SessionData) Usable(now time.Time) bool {
	if s.RefreshToken == "" && s.AccessToken == "" {
		return false
	}
	if s.RefreshExpiresAt > 0 {
		return now.Unix() < s.RefreshExpiresAt
	}
	return now.Unix() < s.AccessExpiresAt
}
