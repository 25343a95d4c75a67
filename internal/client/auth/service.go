package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gophmedia/internal/client/api"
	"github.com/iudanet/gophmedia/internal/client/storage"
	"github.com/iudanet/gophmedia/internal/validation"
	pkgapi "github.com/iudanet/gophmedia/pkg/api"
)

// service предоставляет функции авторизации
type service struct {
	apiClient api.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

// NewService создает новый сервис авторизации для сервера serverURL
func NewService(apiClient api.ClientAPI, sessions storage.SessionStorage, serverURL string, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		sessions:  sessions,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

// Setup configures a fresh server
func (s *service) Setup(ctx context.Context, username, password, storageRoot string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if strings.TrimSpace(storageRoot) == "" {
		return fmt.Errorf("storage path cannot be empty")
	}

	status, err := s.apiClient.SetupStatus(ctx)
	if err != nil {
		return err
	}
	if !status.FirstRun {
		return ErrAlreadyConfigured
	}

	req := pkgapi.SetupRequest{
		Username: username,
		Password: password,
		Storage:  storageRoot,
	}
	if err := s.apiClient.Setup(ctx, req); err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	s.logger.InfoContext(ctx, "server configured", slog.String("username", username))
	return nil
}

// Login выполняет аутентификацию пользователя
func (s *service) Login(ctx context.Context, username, password string) (*storage.SessionData, error) {
	// Те же правила, что и на сервере: не тратим запрос на заведомо неверные данные
	if err := validation.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	tokens := s.apiClient.Tokens()
	if tokens.Access == "" || tokens.Refresh == "" {
		return nil, fmt.Errorf("login failed: server did not set session cookies")
	}

	session := &storage.SessionData{
		ServerURL:  s.serverURL,
		Username:   resp.Username,
		Permission: resp.Permission,
	}
	s.applyTokens(session, tokens, resp.Expire)

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.DebugContext(ctx, "session saved", slog.String("username", session.Username))
	return session, nil
}

// Restore loads the stored session into the API client
func (s *service) Restore(ctx context.Context) (*storage.SessionData, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.ServerURL != s.serverURL {
		return nil, fmt.Errorf("%w: stored session belongs to %s", ErrNotLoggedIn, session.ServerURL)
	}
	if !session.Usable(s.now()) {
		return nil, fmt.Errorf("%w: session expired", ErrNotLoggedIn)
	}

	s.apiClient.SetTokens(api.Tokens{Access: session.AccessToken, Refresh: session.RefreshToken})
	return session, nil
}

// SaveRefreshed is registered as the API client's refresh hook
func (s *service) SaveRefreshed(ctx context.Context, resp *pkgapi.LoginResponse) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refreshed tokens not persisted", slog.Any("error", err))
		return
	}

	session.Permission = resp.Permission
	s.applyTokens(session, s.apiClient.Tokens(), resp.Expire)

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.WarnContext(ctx, "refreshed tokens not persisted", slog.Any("error", err))
		return
	}
	s.logger.DebugContext(ctx, "session refreshed", slog.String("username", session.Username))
}

// Logout выполняет выход из системы
// Удаляет локальные данные и уведомляет сервер, если тот доступен
func (s *service) Logout(ctx context.Context) error {
	if _, err := s.Restore(ctx); err != nil {
		s.logger.DebugContext(ctx, "no usable session during logout", slog.Any("error", err))
	} else if err := s.apiClient.Signout(ctx); err != nil {
		// Не прерываем процесс, если сервер недоступен
		s.logger.WarnContext(ctx, "failed to sign out on server", slog.Any("error", err))
	}

	s.apiClient.ClearTokens()

	// Всегда удаляем локальные данные
	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// ChangePassword меняет пароль текущего пользователя
func (s *service) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return fmt.Errorf("old password cannot be empty")
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("invalid new password: %w", err)
	}
	if oldPassword == newPassword {
		return fmt.Errorf("new password must differ from the old one")
	}

	if _, err := s.Restore(ctx); err != nil {
		return err
	}

	req := pkgapi.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if err := s.apiClient.ChangePassword(ctx, req); err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}

	// Сервер уже сбросил cookies, старые токены больше не нужны
	s.apiClient.ClearTokens()
	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// Status собирает состояние локальной сессии и сервера
func (s *service) Status(ctx context.Context) (*Status, error) {
	st := &Status{ServerURL: s.serverURL}

	session, err := s.sessions.GetSession(ctx)
	switch {
	case err == nil:
		st.Session = session
		st.Authenticated = session.ServerURL == s.serverURL && session.Usable(s.now())
	case errors.Is(err, storage.ErrSessionNotFound):
	default:
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	setup, err := s.apiClient.SetupStatus(ctx)
	if err != nil {
		st.ServerError = err
		return st, nil
	}
	st.FirstRun = setup.FirstRun
	return st, nil
}

func (s *service) applyTokens(session *storage.SessionData, tokens api.Tokens, accessExpire int64) {
	session.AccessToken = tokens.Access
	session.RefreshToken = tokens.Refresh
	session.AccessExpiresAt = accessExpire
	session.RefreshExpiresAt = tokenExpiry(tokens.Refresh)
}

// tokenExpiry reads the exp claim without verifying the signature:
// the client never holds the signing secret, it only needs to know when to stop trying.
func tokenExpiry(raw string) int64 {
	if raw == "" {
		return 0
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Unix()
}
