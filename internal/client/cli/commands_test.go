package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophmedia/internal/client/api"
	"github.com/iudanet/gophmedia/internal/client/auth"
	"github.com/iudanet/gophmedia/internal/client/media"
	"github.com/iudanet/gophmedia/internal/client/storage"
	"github.com/iudanet/gophmedia/internal/client/sync"
	pkgapi "github.com/iudanet/gophmedia/pkg/api"
)

func loggedIn() *auth.ServiceMock {
	return &auth.ServiceMock{
		RestoreFunc: func(ctx context.Context) (*storage.SessionData, error) {
			return &storage.SessionData{Username: "alice"}, nil
		},
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	cli := &Cli{}
	err := cli.Run(context.Background(), "frobnicate", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_RequiresSession(t *testing.T) {
	authMock := &auth.ServiceMock{
		RestoreFunc: func(ctx context.Context) (*storage.SessionData, error) {
			return nil, auth.ErrNotLoggedIn
		},
	}
	mediaMock := &media.ServiceMock{}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), authService: authMock, media: mediaMock, syncService: &sync.ServiceMock{}}

	for _, args := range [][]string{{"ls"}, {"cat", "a.txt"}, {"track", "a.mkv"}, {"get", "a.mp4"}, {"sync", "a", "b"}} {
		err := cli.Run(context.Background(), args[0], args[1:])
		assert.ErrorIs(t, err, auth.ErrNotLoggedIn, args[0])
	}
	assert.Empty(t, mediaMock.ListCalls())
	assert.Empty(t, mediaMock.GetCalls())
}

func TestRun_Setup(t *testing.T) {
	authMock := &auth.ServiceMock{
		SetupFunc: func(ctx context.Context, username, password, storageRoot string) error {
			return nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, []string{"/srv/media"}, []string{"secret123", "secret123"}), authService: authMock, getenv: env(nil)}

	require.NoError(t, cli.Run(context.Background(), "setup", []string{"admin"}))
	require.Len(t, authMock.SetupCalls(), 1)
	call := authMock.SetupCalls()[0]
	assert.Equal(t, "admin", call.Username)
	assert.Equal(t, "secret123", call.Password)
	assert.Equal(t, "/srv/media", call.StorageRoot)
	assert.Contains(t, out.String(), "Server configured")

	// Пароль из окружения не переспрашивается
	cli = &Cli{io: recordIO(&out, nil, nil), authService: authMock, getenv: env(map[string]string{PasswordEnv: "fromenv1"})}
	require.NoError(t, cli.Run(context.Background(), "setup", []string{"admin", "/srv"}))
	assert.Equal(t, "fromenv1", authMock.SetupCalls()[1].Password)

	authMock.SetupFunc = func(ctx context.Context, username, password, storageRoot string) error {
		return auth.ErrAlreadyConfigured
	}
	err := cli.Run(context.Background(), "setup", []string{"admin", "/srv"})
	assert.ErrorIs(t, err, auth.ErrAlreadyConfigured)
}

func TestRun_Login(t *testing.T) {
	authMock := &auth.ServiceMock{
		LoginFunc: func(ctx context.Context, username, password string) (*storage.SessionData, error) {
			if password != "secret123" {
				return nil, &api.StatusError{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}
			}
			return &storage.SessionData{Username: username, Permission: 1, RefreshExpiresAt: 1_700_000_000}, nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, []string{"alice"}, []string{"secret123", "wrong"}), authService: authMock, getenv: env(nil)}

	require.NoError(t, cli.Run(context.Background(), "login", nil))
	assert.Contains(t, out.String(), "Login successful")
	assert.Contains(t, out.String(), "alice (admin)")

	err := cli.Run(context.Background(), "login", []string{"alice"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusCode(err))
}

func TestRun_LogoutAndPasswd(t *testing.T) {
	authMock := &auth.ServiceMock{
		LogoutFunc: func(ctx context.Context) error { return nil },
		ChangePasswordFunc: func(ctx context.Context, oldPassword, newPassword string) error {
			return nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, []string{"old-pass", "new-pass1", "new-pass1", "old", "x", "y"}), authService: authMock}

	require.NoError(t, cli.Run(context.Background(), "logout", nil))
	assert.Len(t, authMock.LogoutCalls(), 1)

	require.NoError(t, cli.Run(context.Background(), "passwd", nil))
	require.Len(t, authMock.ChangePasswordCalls(), 1)
	assert.Equal(t, "old-pass", authMock.ChangePasswordCalls()[0].OldPassword)
	assert.Equal(t, "new-pass1", authMock.ChangePasswordCalls()[0].NewPassword)

	err := cli.Run(context.Background(), "passwd", nil)
	assert.EqualError(t, err, "passwords do not match")
	assert.Len(t, authMock.ChangePasswordCalls(), 1)
}

func TestRun_Status(t *testing.T) {
	tests := []struct {
		name   string
		status *auth.Status
		want   []string
	}{
		{
			name: "authenticated",
			status: &auth.Status{
				ServerURL:     "http://media.local",
				Authenticated: true,
				Session:       &storage.SessionData{Username: "alice", Permission: 2},
			},
			want: []string{"http://media.local", "Authenticated", "alice (member)", "valid until unknown"},
		},
		{
			name:   "first run",
			status: &auth.Status{ServerURL: "http://media.local", FirstRun: true},
			want:   []string{"not configured", "Not authenticated"},
		},
		{
			name: "expired and unreachable",
			status: &auth.Status{
				ServerURL:   "http://media.local",
				ServerError: errors.New("connection refused"),
				Session:     &storage.SessionData{Username: "alice"},
			},
			want: []string{"unreachable: connection refused", "Session expired"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cli := &Cli{
				io: recordIO(&out, nil, nil),
				authService: &auth.ServiceMock{
					StatusFunc: func(ctx context.Context) (*auth.Status, error) { return tt.status, nil },
				},
			}
			require.NoError(t, cli.Run(context.Background(), "status", nil))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRun_List(t *testing.T) {
	mediaMock := &media.ServiceMock{
		ListFunc: func(ctx context.Context, remotePath string) ([]pkgapi.FileEntry, error) {
			if remotePath == "empty" {
				return nil, nil
			}
			return []pkgapi.FileEntry{
				{Name: "movies", Type: "dir", IsDir: true},
				{Name: "clip.mp4", Type: "video", Size: 5 * 1024 * 1024},
			}, nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), authService: loggedIn(), media: mediaMock}

	require.NoError(t, cli.Run(context.Background(), "ls", []string{"alice"}))
	assert.Equal(t, "alice", mediaMock.ListCalls()[0].RemotePath)
	assert.Contains(t, out.String(), "movies/")
	assert.Contains(t, out.String(), "5.0 MiB")
	assert.Contains(t, out.String(), "video")

	out.Reset()
	require.NoError(t, cli.Run(context.Background(), "ls", []string{"empty"}))
	assert.Contains(t, out.String(), "Directory is empty.")
}

func TestRun_CatAndTrack(t *testing.T) {
	mediaMock := &media.ServiceMock{
		CatFunc: func(ctx context.Context, remotePath string) (string, error) {
			return "Привет", nil
		},
		TrackFunc: func(ctx context.Context, remotePath string, index int) (string, error) {
			return "WEBVTT\n\n", nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), authService: loggedIn(), media: mediaMock}

	require.NoError(t, cli.Run(context.Background(), "cat", []string{"notes.txt"}))
	assert.Equal(t, "Привет\n", out.String())

	out.Reset()
	require.NoError(t, cli.Run(context.Background(), "track", []string{"--index", "2", "movies/a.mkv"}))
	assert.Equal(t, "WEBVTT\n\n", out.String())
	require.Len(t, mediaMock.TrackCalls(), 1)
	assert.Equal(t, 2, mediaMock.TrackCalls()[0].Index)
	assert.Equal(t, "movies/a.mkv", mediaMock.TrackCalls()[0].RemotePath)

	assert.Error(t, cli.Run(context.Background(), "cat", nil))
	assert.Error(t, cli.Run(context.Background(), "track", []string{"--index", "x", "a.mkv"}))
}

func TestRun_Get(t *testing.T) {
	var results []*media.GetResult
	mediaMock := &media.ServiceMock{
		GetFunc: func(ctx context.Context, remotePath, localPath string, restart bool) (*media.GetResult, error) {
			res := results[0]
			results = results[1:]
			if res == nil {
				return nil, errors.New("connection reset")
			}
			return res, nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), authService: loggedIn(), media: mediaMock}

	results = []*media.GetResult{{LocalPath: "/tmp/clip.mp4", DownloadResult: api.DownloadResult{Written: 2048}}}
	require.NoError(t, cli.Run(context.Background(), "get", []string{"--restart", "movies/clip.mp4", "/tmp"}))
	call := mediaMock.GetCalls()[0]
	assert.Equal(t, "movies/clip.mp4", call.RemotePath)
	assert.Equal(t, "/tmp", call.LocalPath)
	assert.True(t, call.Restart)
	assert.Contains(t, out.String(), "Downloaded 2.0 KiB")

	out.Reset()
	results = []*media.GetResult{{LocalPath: "/tmp/clip.mp4", DownloadResult: api.DownloadResult{Offset: 1024, Written: 1024}}}
	require.NoError(t, cli.Run(context.Background(), "get", []string{"movies/clip.mp4"}))
	assert.Contains(t, out.String(), "Resumed at 1.0 KiB")
	assert.False(t, mediaMock.GetCalls()[1].Restart)

	out.Reset()
	results = []*media.GetResult{{LocalPath: "/tmp/clip.mp4", DownloadResult: api.DownloadResult{Offset: 2048, AlreadyComplete: true}}}
	require.NoError(t, cli.Run(context.Background(), "get", []string{"movies/clip.mp4"}))
	assert.Contains(t, out.String(), "Already complete")

	results = []*media.GetResult{nil}
	err := cli.Run(context.Background(), "get", []string{"movies/clip.mp4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume")

	assert.Error(t, cli.Run(context.Background(), "get", nil))
}

func TestRun_Downloads(t *testing.T) {
	records := []*storage.DownloadRecord{
		{RemotePath: "movies/a.mp4", LocalPath: "/tmp/a.mp4", Size: 1024, Total: 1024, Complete: true},
		{RemotePath: "movies/b.mp4", LocalPath: "/tmp/b.mp4", Size: 10, Total: -1},
	}
	mediaMock := &media.ServiceMock{
		DownloadsFunc: func(ctx context.Context) ([]*storage.DownloadRecord, error) { return records, nil },
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), media: mediaMock}

	require.NoError(t, cli.Run(context.Background(), "downloads", nil))
	assert.Contains(t, out.String(), "Found 2 download(s)")
	assert.Contains(t, out.String(), "complete, 1.0 KiB of 1.0 KiB")
	assert.Contains(t, out.String(), "partial, 10 B of ?")

	records = nil
	out.Reset()
	require.NoError(t, cli.Run(context.Background(), "downloads", nil))
	assert.Contains(t, out.String(), "No downloads yet.")
}

func TestRun_Sync(t *testing.T) {
	syncMock := &sync.ServiceMock{
		MirrorFunc: func(ctx context.Context, remoteDir, localDir string, jobs int) (*sync.Result, error) {
			if remoteDir == "broken" {
				return &sync.Result{Downloaded: 1, Failed: []string{"broken/x.mp4"}}, sync.ErrPartial
			}
			return &sync.Result{Downloaded: 2, Resumed: 1, UpToDate: 3, Bytes: 4096}, nil
		},
	}
	var out bytes.Buffer
	cli := &Cli{io: recordIO(&out, nil, nil), authService: loggedIn(), syncService: syncMock}

	require.NoError(t, cli.Run(context.Background(), "sync", []string{"--jobs", "4", "music", "/tmp/music"}))
	call := syncMock.MirrorCalls()[0]
	assert.Equal(t, "music", call.RemoteDir)
	assert.Equal(t, "/tmp/music", call.LocalDir)
	assert.Equal(t, 4, call.Jobs)
	assert.Contains(t, out.String(), "Received:    4.0 KiB")
	assert.Contains(t, out.String(), "Synchronization completed")

	out.Reset()
	err := cli.Run(context.Background(), "sync", []string{"broken", "/tmp/b"})
	assert.ErrorIs(t, err, sync.ErrPartial)
	assert.Contains(t, out.String(), "Failed:      broken/x.mp4")
	assert.Equal(t, 2, syncMock.MirrorCalls()[1].Jobs)

	assert.Error(t, cli.Run(context.Background(), "sync", []string{"--jobs", "0", "a", "b"}))
	assert.Error(t, cli.Run(context.Background(), "sync", []string{"only-one"}))
	assert.Len(t, syncMock.MirrorCalls(), 2)
}
