package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/gophmedia/internal/crypto"
	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/internal/server/token"
)

var testSecret = []byte("handlers-test-secret-0123456789ab")

// setupTestLogger создает logger, который ничего не выводит
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users        map[string]*models.User // username -> User
	getUserError error
	updateError  error
	nextID       int64
	mu           sync.Mutex
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	c := *user
	return &c, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			c := *user
			return &c, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdatePassword(ctx context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}
	for _, user := range m.users {
		if user.ID == id {
			user.PasswordHash = hash
			return nil
		}
	}
	return storage.ErrUserNotFound
}

// addUser creates a user with a real (cheap) bcrypt hash
func (m *mockUserStorage) addUser(t *testing.T, username, password string, perm models.Permission) *models.User {
	t.Helper()
	hash, err := crypto.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: username, PasswordHash: hash, Permission: perm}
	require.NoError(t, m.CreateUser(context.Background(), user))
	return user
}

func newTestState(root string) *site.State {
	return site.NewState(&models.Site{StorageRoot: root, Secret: testSecret})
}

func newTestCodec() *token.Codec {
	return token.NewCodec(30*time.Minute, 7*24*time.Hour)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
