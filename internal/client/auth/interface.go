package auth

import (
	"context"
	"errors"

	"github.com/iudanet/gophmedia/internal/client/storage"
	"github.com/iudanet/gophmedia/pkg/api"
)

var (
	// ErrNotLoggedIn is returned when no usable session is stored
	ErrNotLoggedIn = errors.New("not logged in, run 'gophmedia-client login' first")
	// ErrAlreadyConfigured is returned by Setup on a configured server
	ErrAlreadyConfigured = errors.New("server is already configured")
)

//go:generate moq -out service_mock.go . Service

// Service manages the client session: it talks to the server and keeps
// the session cookies in local storage between runs.
type Service interface {
	// Setup configures a fresh server and creates its first admin
	Setup(ctx context.Context, username, password, storageRoot string) error

	// Login выполняет аутентификацию и сохраняет сессию
	Login(ctx context.Context, username, password string) (*storage.SessionData, error)

	// Restore loads the stored session into the API client.
	// Returns ErrNotLoggedIn if there is none or it has expired.
	Restore(ctx context.Context) (*storage.SessionData, error)

	// SaveRefreshed persists tokens rotated by the API client
	SaveRefreshed(ctx context.Context, resp *api.LoginResponse)

	// Logout удаляет локальную сессию и уведомляет сервер (best effort)
	Logout(ctx context.Context) error

	// ChangePassword меняет пароль; сервер завершает сессию, локальная тоже удаляется
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// Status reports the local session and whether the server awaits setup
	Status(ctx context.Context) (*Status, error)
}

// Status is what 'status' shows
type Status struct {
	Session       *storage.SessionData // nil если сессии нет
	ServerError   error                // сервер недоступен
	ServerURL     string
	Authenticated bool
	FirstRun      bool
}
