package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage"
	"github.com/iudanet/gophmedia/pkg/api"
)

// mockSiteStorage stores the site in memory and admins in a mockUserStorage
type mockSiteStorage struct {
	users *mockUserStorage
	site  *models.Site
}

func (m *mockSiteStorage) GetSite(ctx context.Context) (*models.Site, error) {
	if m.site == nil {
		return nil, storage.ErrSiteNotFound
	}
	return m.site, nil
}

func (m *mockSiteStorage) Setup(ctx context.Context, s *models.Site, admin *models.User) error {
	if m.site != nil {
		return storage.ErrSiteAlreadyExists
	}
	if err := m.users.CreateUser(ctx, admin); err != nil {
		return err
	}
	m.site = s
	return nil
}

func setupRequest(t *testing.T, req api.SetupRequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/setup", bytes.NewReader(body))
}

func newTestSetupHandler() (*SetupHandler, *mockUserStorage, *mockSiteStorage, *site.State) {
	users := newMockUserStorage()
	sites := &mockSiteStorage{users: users}
	state := site.NewState(nil)
	return NewSetupHandler(setupTestLogger(), users, sites, state, 4), users, sites, state
}

func TestSetupHandler_Status(t *testing.T) {
	handler, _, _, state := newTestSetupHandler()

	w := httptest.NewRecorder()
	handler.Status(w, httptest.NewRequest(http.MethodGet, "/api/setup", nil))
	var resp api.SetupStatusResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.FirstRun)

	state.Replace(&models.Site{StorageRoot: "/srv", Secret: testSecret})
	w = httptest.NewRecorder()
	handler.Status(w, httptest.NewRequest(http.MethodGet, "/api/setup", nil))
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.FirstRun)
}

func TestSetupHandler_Setup(t *testing.T) {
	handler, users, sites, state := newTestSetupHandler()
	storagePath := filepath.Join(t.TempDir(), "media")

	w := httptest.NewRecorder()
	handler.Setup(w, setupRequest(t, api.SetupRequest{Username: "admin", Password: "secret-pass", Storage: storagePath}))
	require.Equal(t, http.StatusOK, w.Code)

	// корень и домашняя директория администратора созданы
	info, err := os.Stat(filepath.Join(storagePath, "admin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	current, err := state.Get()
	require.NoError(t, err)
	assert.Len(t, current.Secret, 32)
	assert.Equal(t, sites.site.StorageRoot, current.StorageRoot)

	admin, err := users.GetUserByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.PermissionAdmin, admin.Permission)
	assert.NotEqual(t, "secret-pass", admin.PasswordHash)

	// повторная настройка запрещена
	w = httptest.NewRecorder()
	handler.Setup(w, setupRequest(t, api.SetupRequest{Username: "other", Password: "secret-pass", Storage: storagePath}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetupHandler_Setup_Invalid(t *testing.T) {
	storagePath := t.TempDir()

	tests := []struct {
		name       string
		req        api.SetupRequest
		wantStatus int
	}{
		{name: "short username", req: api.SetupRequest{Username: "a", Password: "secret-pass", Storage: storagePath}, wantStatus: http.StatusBadRequest},
		{name: "bad username chars", req: api.SetupRequest{Username: "ad min", Password: "secret-pass", Storage: storagePath}, wantStatus: http.StatusBadRequest},
		{name: "short password", req: api.SetupRequest{Username: "admin", Password: "123", Storage: storagePath}, wantStatus: http.StatusBadRequest},
		{name: "relative storage", req: api.SetupRequest{Username: "admin", Password: "secret-pass", Storage: "media"}, wantStatus: http.StatusBadRequest},
		{name: "empty storage", req: api.SetupRequest{Username: "admin", Password: "secret-pass"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _, _, state := newTestSetupHandler()
			w := httptest.NewRecorder()
			handler.Setup(w, setupRequest(t, tt.req))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.True(t, state.FirstRun())
		})
	}
}

func TestSetupHandler_Setup_UserExists(t *testing.T) {
	handler, users, _, state := newTestSetupHandler()
	users.addUser(t, "admin", "whatever-pass", models.PermissionMember)

	w := httptest.NewRecorder()
	handler.Setup(w, setupRequest(t, api.SetupRequest{Username: "admin", Password: "secret-pass", Storage: t.TempDir()}))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, state.FirstRun())
}

func TestSetupHandler_Setup_StorageIsFile(t *testing.T) {
	handler, _, _, _ := newTestSetupHandler()
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	w := httptest.NewRecorder()
	handler.Setup(w, setupRequest(t, api.SetupRequest{Username: "admin", Password: "secret-pass", Storage: file}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
