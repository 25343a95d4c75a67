package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gophmedia/internal/client/media"
)

// ErrPartial is returned when some files of a mirror could not be fetched
var ErrPartial = errors.New("some files were not synchronized")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Mirror downloads every file below remoteDir into localDir, keeping
	// the directory structure and resuming partial files. At most jobs
	// files are fetched at once.
	Mirror(ctx context.Context, remoteDir, localDir string, jobs int) (*Result, error)
}

// Result contains mirror results
type Result struct {
	Failed     []string // удаленные пути, которые не удалось скачать
	Downloaded int      // скачано с нуля или перезаписано
	Resumed    int      // докачано с места обрыва
	UpToDate   int      // уже были скачаны полностью
	Skipped    int      // записи с недопустимыми именами
	Bytes      int64    // получено байт
}

type service struct {
	media  media.Service
	logger *slog.Logger
}

// NewService creates a new sync service
func NewService(mediaService media.Service, logger *slog.Logger) Service {
	return &service{
		media:  mediaService,
		logger: logger,
	}
}

// Mirror сначала обходит дерево каталогов, затем качает файлы параллельно
func (s *service) Mirror(ctx context.Context, remoteDir, localDir string, jobs int) (*Result, error) {
	if localDir == "" {
		return nil, fmt.Errorf("local directory is required")
	}
	if jobs < 1 {
		jobs = 1
	}
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local directory: %w", err)
	}

	s.logger.InfoContext(ctx, "starting mirror",
		slog.String("remote", remoteDir),
		slog.String("local", localDir),
		slog.Int("jobs", jobs))

	result := &Result{}
	var files []fileJob
	if err := s.walk(ctx, strings.Trim(remoteDir, "/"), localDir, result, &files); err != nil {
		return result, err
	}

	if err := s.fetch(ctx, files, jobs, result); err != nil {
		return result, err
	}

	s.logger.InfoContext(ctx, "mirror completed",
		slog.Int("downloaded", result.Downloaded),
		slog.Int("resumed", result.Resumed),
		slog.Int("up_to_date", result.UpToDate),
		slog.Int("failed", len(result.Failed)),
		slog.Int64("bytes", result.Bytes))

	if len(result.Failed) > 0 {
		return result, fmt.Errorf("%w: %d failed", ErrPartial, len(result.Failed))
	}
	return result, nil
}

type fileJob struct {
	remote string
	local  string
}

// walk создает локальные каталоги и собирает список файлов
func (s *service) walk(ctx context.Context, remoteDir, localDir string, result *Result, files *[]fileJob) error {
	entries, err := s.media.List(ctx, remoteDir)
	if err != nil {
		return fmt.Errorf("failed to list %q: %w", remoteDir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Имя приходит с сервера: не даем ему выйти за пределы localDir
		if !safeName(entry.Name) {
			s.logger.WarnContext(ctx, "skipping entry with unsafe name", slog.String("name", entry.Name))
			result.Skipped++
			continue
		}

		remote := path.Join(remoteDir, entry.Name)
		local := filepath.Join(localDir, entry.Name)

		if !entry.IsDir {
			*files = append(*files, fileJob{remote: remote, local: local})
			continue
		}

		if err := os.MkdirAll(local, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		if err := s.walk(ctx, remote, local, result, files); err != nil {
			return err
		}
	}
	return nil
}

// fetch качает файлы, ошибка одного файла не останавливает остальные
func (s *service) fetch(ctx context.Context, files []fileJob, jobs int, result *Result) error {
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := s.media.Get(gctx, f.remote, f.local, false)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				s.logger.WarnContext(ctx, "failed to download file", slog.String("path", f.remote), slog.Any("error", err))
				result.Failed = append(result.Failed, f.remote)
				return nil
			}

			result.Bytes += res.Written
			switch {
			case res.AlreadyComplete:
				result.UpToDate++
			case res.Offset > 0:
				result.Resumed++
			default:
				result.Downloaded++
			}
			return nil
		})
	}

	err := g.Wait()
	sort.Strings(result.Failed)
	return err
}

func safeName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
