package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/iudanet/gophmedia/internal/client/api"
	"github.com/iudanet/gophmedia/internal/client/storage"
	pkgapi "github.com/iudanet/gophmedia/pkg/api"
)

// ErrForeignFile is returned when the local file exists but was not produced
// by a download of the same remote path
var ErrForeignFile = errors.New("local file exists and is not a download of this path")

//go:generate moq -out service_mock.go . Service

// Service определяет операции клиента над файлами сервера
type Service interface {
	// List возвращает содержимое каталога
	List(ctx context.Context, remotePath string) ([]pkgapi.FileEntry, error)

	// Cat returns a text file decoded to UTF-8
	Cat(ctx context.Context, remotePath string) (string, error)

	// Track returns a subtitle track as WebVTT
	Track(ctx context.Context, remotePath string, index int) (string, error)

	// Get downloads remotePath to localPath, resuming a previous partial download.
	// An empty localPath means the base name in the current directory; a directory
	// means the base name inside it. restart discards the local copy first.
	Get(ctx context.Context, remotePath, localPath string, restart bool) (*GetResult, error)

	// Downloads returns the download registry
	Downloads(ctx context.Context) ([]*storage.DownloadRecord, error)
}

// GetResult describes a finished Get
type GetResult struct {
	api.DownloadResult
	LocalPath string
}

type service struct {
	apiClient api.ClientAPI
	downloads storage.DownloadStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new media service
func NewService(apiClient api.ClientAPI, downloads storage.DownloadStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		downloads: downloads,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *service) List(ctx context.Context, remotePath string) ([]pkgapi.FileEntry, error) {
	return s.apiClient.ListDir(ctx, cleanRemote(remotePath))
}

func (s *service) Cat(ctx context.Context, remotePath string) (string, error) {
	if cleanRemote(remotePath) == "" {
		return "", fmt.Errorf("file path is required")
	}
	return s.apiClient.Text(ctx, cleanRemote(remotePath))
}

func (s *service) Track(ctx context.Context, remotePath string, index int) (string, error) {
	if cleanRemote(remotePath) == "" {
		return "", fmt.Errorf("file path is required")
	}
	if index < 0 {
		return "", fmt.Errorf("track index must not be negative")
	}
	return s.apiClient.Track(ctx, cleanRemote(remotePath), index)
}

func (s *service) Downloads(ctx context.Context) ([]*storage.DownloadRecord, error) {
	return s.downloads.ListDownloads(ctx)
}

// Get скачивает файл с докачкой
func (s *service) Get(ctx context.Context, remotePath, localPath string, restart bool) (*GetResult, error) {
	remotePath = cleanRemote(remotePath)
	if remotePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	localPath, err := resolveLocal(remotePath, localPath)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(ctx, remotePath, localPath, restart); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	flags := os.O_RDWR | os.O_CREATE
	if restart {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(localPath, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open local file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close local file", slog.String("path", localPath), slog.Any("error", cerr))
		}
	}()

	rec := &storage.DownloadRecord{RemotePath: remotePath, LocalPath: localPath, Total: -1}
	if err := s.save(ctx, rec); err != nil {
		return nil, err
	}

	res, dlErr := s.apiClient.Download(ctx, remotePath, f)
	if res != nil {
		rec.Size = res.Size()
		rec.Total = res.Total
		rec.Complete = dlErr == nil
	} else if info, err := f.Stat(); err == nil {
		rec.Size = info.Size()
	}

	if err := s.save(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "download registry not updated", slog.Any("error", err))
	}

	if dlErr != nil {
		return nil, dlErr
	}

	s.logger.DebugContext(ctx, "download finished",
		slog.String("remote", remotePath),
		slog.String("local", localPath),
		slog.Int64("offset", res.Offset),
		slog.Int64("written", res.Written),
		slog.Bool("already_complete", res.AlreadyComplete))

	return &GetResult{DownloadResult: *res, LocalPath: localPath}, nil
}

// checkOwnership не дает дописать байты одного файла в конец другого
func (s *service) checkOwnership(ctx context.Context, remotePath, localPath string, restart bool) error {
	rec, err := s.downloads.GetDownload(ctx, localPath)
	switch {
	case err == nil:
		if rec.RemotePath != remotePath && !restart {
			return fmt.Errorf("%w: %s was downloaded from %s, use --restart to replace it", ErrForeignFile, localPath, rec.RemotePath)
		}
		return nil
	case !errors.Is(err, storage.ErrDownloadNotFound):
		return fmt.Errorf("failed to read download registry: %w", err)
	}

	info, err := os.Stat(localPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat local file: %w", err)
	}
	if info.Size() > 0 && !restart {
		return fmt.Errorf("%w: %s, use --restart to replace it", ErrForeignFile, localPath)
	}
	return nil
}

func (s *service) save(ctx context.Context, rec *storage.DownloadRecord) error {
	rec.UpdatedAt = s.now().Unix()
	if err := s.downloads.SaveDownload(ctx, rec); err != nil {
		return fmt.Errorf("failed to update download registry: %w", err)
	}
	return nil
}

// cleanRemote приводит виртуальный путь к виду "a/b" без ведущего слэша
func cleanRemote(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func resolveLocal(remotePath, localPath string) (string, error) {
	base := path.Base(remotePath)
	if localPath == "" {
		localPath = base
	} else if info, err := os.Stat(localPath); err == nil && info.IsDir() {
		localPath = filepath.Join(localPath, base)
	}

	abs, err := filepath.Abs(localPath)
	if err != nil {
		return "", fmt.Errorf("invalid local path: %w", err)
	}
	return abs, nil
}
