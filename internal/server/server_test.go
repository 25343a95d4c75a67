package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/gophmedia/internal/server/config"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/storage/sqlite"
	"github.com/iudanet/gophmedia/internal/server/token"
	"github.com/iudanet/gophmedia/pkg/api"
)

type stubTracks struct{}

func (stubTracks) Extract(ctx context.Context, path string, index int) (string, error) {
	return "WEBVTT\n", nil
}

type testEnv struct {
	server *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := config.Default()
	cfg.BcryptCost = bcrypt.MinCost
	cfg.LoginRate = 100

	srv := New(Options{
		Logger:  logger,
		Config:  &cfg,
		Storage: store,
		State:   site.NewState(nil),
		Codec:   token.NewCodec(cfg.AccessTTL, cfg.RefreshTTL),
		Tracks:  stubTracks{},
	})
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testEnv{
		server: ts,
		client: &http.Client{Jar: jar},
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return data
}

// setupSite проходит первичную настройку и кладет файл в хранилище
func setupSite(t *testing.T, e *testEnv) string {
	t.Helper()

	storageDir := filepath.Join(t.TempDir(), "media")
	resp := e.do(t, http.MethodPost, "/api/setup", api.SetupRequest{
		Username: "admin",
		Password: "secret123",
		Storage:  storageDir,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	root, err := filepath.EvalSymlinks(storageDir)
	require.NoError(t, err)
	return root
}

func TestServer_Health(t *testing.T) {
	e := newTestEnv(t)

	resp := e.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health api.HealthResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestServer_SessionFlow(t *testing.T) {
	e := newTestEnv(t)

	// до настройки
	resp := e.do(t, http.MethodGet, "/api/setup", nil)
	var status api.SetupStatusResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &status))
	assert.True(t, status.FirstRun)

	resp = e.do(t, http.MethodGet, "/api/dir?path=", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	root := setupSite(t, e)
	video := bytes.Repeat([]byte("0123456789"), 100)
	require.NoError(t, os.WriteFile(filepath.Join(root, "admin", "clip one.mp4"), video, 0o644))

	// повторная настройка запрещена
	resp = e.do(t, http.MethodPost, "/api/setup", api.SetupRequest{Username: "other", Password: "secret123", Storage: root})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// невалидный формат
	resp = e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "a", Password: "secret123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "admin", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "admin", Password: "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login api.LoginResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &login))
	assert.Equal(t, "admin", login.Username)
	assert.Equal(t, 1, login.Permission)
	assert.Greater(t, login.Expire, time.Now().Unix())

	names := map[string]bool{}
	for _, c := range resp.Cookies() {
		names[c.Name] = true
		assert.True(t, c.HttpOnly)
	}
	assert.True(t, names["access_token"])
	assert.True(t, names["refresh_token"])

	// защищенные эндпоинты
	resp = e.do(t, http.MethodGet, "/api/dir?path=admin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []api.FileEntry
	require.NoError(t, json.Unmarshal(readBody(t, resp), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "clip one.mp4", entries[0].Name)
	assert.Equal(t, "video", entries[0].Type)

	resp = e.do(t, http.MethodGet, "/api/file/admin/clip%20one.mp4", nil, "Range", "bytes=10-19")
	assert.Equal(t, http.StatusPartialContent, resp.StatusCode)
	assert.Equal(t, "bytes 10-19/1000", resp.Header.Get("Content-Range"))
	assert.Equal(t, video[10:20], readBody(t, resp))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp = e.do(t, http.MethodGet, "/api/file/admin/clip%20one.mp4", nil, "Range", "bytes=2000-")
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, resp.StatusCode)
	assert.Equal(t, "bytes */1000", resp.Header.Get("Content-Range"))

	resp = e.do(t, http.MethodGet, "/api/file/..%2F..%2Fetc%2Fpasswd", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/file/track?path=admin%2Fclip%20one.mp4", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WEBVTT\n", string(readBody(t, resp)))

	// refresh выдает новую пару
	resp = e.do(t, http.MethodGet, "/api/user/refresh", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// после выхода те же запросы отклоняются
	resp = e.do(t, http.MethodGet, "/api/user/signout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/dir?path=admin", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodGet, "/api/user/refresh", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ChangePassword(t *testing.T) {
	e := newTestEnv(t)
	setupSite(t, e)

	resp := e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "admin", Password: "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, http.MethodPut, "/api/user/password", api.ChangePasswordRequest{OldPassword: "secret123", NewPassword: "newsecret456"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// cookies очищены
	resp = e.do(t, http.MethodGet, "/api/dir?path=", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "admin", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = e.do(t, http.MethodPost, "/api/login", api.LoginRequest{Username: "admin", Password: "newsecret456"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_LoginRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer store.Close()

	cfg := config.Default()
	cfg.LoginRate = 2

	srv := New(Options{
		Logger:  logger,
		Config:  &cfg,
		Storage: store,
		State:   site.NewState(nil),
		Codec:   token.NewCodec(cfg.AccessTTL, cfg.RefreshTTL),
		Tracks:  stubTracks{},
	})
	defer srv.Close()

	body := []byte(`{"username":"nobody","password":"secret123"}`)
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer store.Close()

	cfg := config.Default()
	cfg.ShutdownTimeout = time.Second

	srv := New(Options{
		Logger:  logger,
		Config:  &cfg,
		Storage: store,
		State:   site.NewState(nil),
		Codec:   token.NewCodec(cfg.AccessTTL, cfg.RefreshTTL),
		Tracks:  stubTracks{},
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
