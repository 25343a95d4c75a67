package handlers

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/iudanet/gophmedia/internal/server/apperr"
	"github.com/iudanet/gophmedia/internal/server/filetype"
	"github.com/iudanet/gophmedia/internal/server/pathres"
	"github.com/iudanet/gophmedia/internal/server/site"
	"github.com/iudanet/gophmedia/internal/server/stream"
	"github.com/iudanet/gophmedia/internal/server/textenc"
	"github.com/iudanet/gophmedia/pkg/api"
)

// FilePrefix is the route prefix of the file endpoint
const FilePrefix = "/api/file/"

// TrackExtractor returns a subtitle stream of a media file as WebVTT
type TrackExtractor interface {
	Extract(ctx context.Context, path string, index int) (string, error)
}

// FilesHandler обслуживает листинг директорий и выдачу файлов
type FilesHandler struct {
	logger       *slog.Logger
	state        *site.State
	streamer     *stream.Streamer
	tracks       TrackExtractor
	textMaxBytes int64
}

// NewFilesHandler создает handler файловых запросов
func NewFilesHandler(
	logger *slog.Logger,
	state *site.State,
	streamer *stream.Streamer,
	tracks TrackExtractor,
	textMaxBytes int64,
) *FilesHandler {
	return &FilesHandler{
		logger:       logger,
		state:        state,
		streamer:     streamer,
		tracks:       tracks,
		textMaxBytes: textMaxBytes,
	}
}

// resolve maps an encoded virtual path onto the storage root
func (h *FilesHandler) resolve(encoded string) (root, path string, err error) {
	current, err := h.state.Get()
	if err != nil {
		return "", "", apperr.Internal(err)
	}
	root, err = pathres.CanonicalRoot(current.StorageRoot)
	if err != nil {
		return "", "", apperr.Internal(err)
	}
	path, err = pathres.Resolve(encoded, root)
	if err != nil {
		return "", "", err
	}
	return root, path, nil
}

// Dir обрабатывает GET /api/dir?path=
// Возвращает содержимое директории: сначала поддиректории, затем файлы по имени
func (h *FilesHandler) Dir(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	root, dir, err := h.resolve(rawQueryParam(r, "path"))
	if err != nil {
		sendAppError(ctx, h.logger, w, "dir request rejected", err)
		return
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		sendAppError(ctx, h.logger, w, "dir request rejected", apperr.BadRequest("not a directory", err))
		return
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		sendAppError(ctx, h.logger, w, "failed to read directory", apperr.Internal(err))
		return
	}

	entries := make([]api.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		p := filepath.Join(dir, de.Name())
		fi, err := entryInfo(root, p, de)
		if err != nil {
			h.logger.DebugContext(ctx, "skipping directory entry",
				slog.String("name", de.Name()),
				slog.Any("error", err))
			continue
		}
		entries = append(entries, filetype.Entry(root, p, fi))
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	sendJSON(h.logger, w, entries, http.StatusOK)
}

// entryInfo returns file info for a listing entry. Symlinks are followed only
// when their target stays under root, so a listing never sniffs foreign files.
func entryInfo(root, path string, de fs.DirEntry) (fs.FileInfo, error) {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.Info()
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, err
	}
	if !pathres.IsWithin(root, target) {
		return nil, pathres.ErrOutsideRoot
	}
	return os.Stat(target)
}

// File обрабатывает GET /api/file/{path...}
// Медиа отдается с поддержкой Range, остальные файлы целиком
func (h *FilesHandler) File(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, path, err := h.resolve(rawPathSuffix(r, FilePrefix))
	if err != nil {
		sendAppError(ctx, h.logger, w, "file request rejected", err)
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		sendAppError(ctx, h.logger, w, "file request rejected", apperr.BadRequest("invalid path", err))
		return
	}

	kind := filetype.Classify(path)
	contentType := filetype.ContentType(path, kind)

	if kind.IsMedia() {
		err = h.streamer.ServeMedia(w, r, path, contentType)
	} else {
		err = h.streamer.ServeFull(w, r, path, contentType)
	}
	if err != nil {
		sendAppError(ctx, h.logger, w, "file request failed", err)
	}
}

// Track обрабатывает GET /api/file/track?path=&index=
// Извлекает дорожку субтитров через ffmpeg и отдает WebVTT
func (h *FilesHandler) Track(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, path, err := h.resolve(rawQueryParam(r, "path"))
	if err != nil {
		sendAppError(ctx, h.logger, w, "track request rejected", err)
		return
	}

	index := 0
	if raw := r.URL.Query().Get("index"); raw != "" {
		index, err = strconv.Atoi(raw)
		if err != nil || index < 0 {
			WriteError(w, "invalid track index", http.StatusBadRequest)
			return
		}
	}

	vtt, err := h.tracks.Extract(ctx, path, index)
	if err != nil {
		sendAppError(ctx, h.logger, w, "track extraction failed", apperr.NotFound("track not found", err))
		return
	}

	w.Header().Set("Content-Type", "text/vtt; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, vtt)
}

// Text обрабатывает GET /api/file/text?path=
// Отдает текстовый файл, перекодированный в UTF-8
func (h *FilesHandler) Text(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, path, err := h.resolve(rawQueryParam(r, "path"))
	if err != nil {
		sendAppError(ctx, h.logger, w, "text request rejected", err)
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		sendAppError(ctx, h.logger, w, "text request rejected", apperr.NotFound("file not found", err))
		return
	}
	if info.Size() > h.textMaxBytes {
		WriteError(w, "file too large", http.StatusBadRequest)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fail := apperr.Internal(err)
		if errors.Is(err, fs.ErrNotExist) {
			fail = apperr.NotFound("file not found", err)
		}
		sendAppError(ctx, h.logger, w, "failed to read text file", fail)
		return
	}

	text, enc, err := textenc.ToUTF8(data)
	if err != nil {
		sendAppError(ctx, h.logger, w, "failed to decode text file", apperr.Internal(err))
		return
	}
	if enc != "utf-8" {
		h.logger.DebugContext(ctx, "text file converted", slog.String("encoding", enc))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// rawQueryParam returns the still percent-encoded value of key. The path
// resolver decodes it exactly once, so url.Values (which decodes) is not used.
// A form-encoded '+' is rewritten to %20 so it decodes to a space.
func rawQueryParam(r *http.Request, key string) string {
	for _, pair := range strings.Split(r.URL.RawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if uk, err := url.QueryUnescape(k); err == nil && uk == key {
			return strings.ReplaceAll(v, "+", "%20")
		}
	}
	return ""
}

// rawPathSuffix returns the encoded request path after prefix
func rawPathSuffix(r *http.Request, prefix string) string {
	return strings.TrimPrefix(r.URL.EscapedPath(), prefix)
}
