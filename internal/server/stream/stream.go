// Package stream serves file bodies, with byte range support for media.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/iudanet/gophmedia/internal/server/apperr"
)

// DefaultChunkSize is the copy buffer size per request
const DefaultChunkSize = 64 * 1024

var errClientGone = errors.New("client gone")

// Streamer copies files to clients in fixed size chunks. It holds no
// per-request state: every call opens its own handle and buffer.
type Streamer struct {
	logger    *slog.Logger
	chunkSize int
}

// NewStreamer создает Streamer; chunkSize <= 0 означает DefaultChunkSize
func NewStreamer(logger *slog.Logger, chunkSize int) *Streamer {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Streamer{logger: logger, chunkSize: chunkSize}
}

// ServeMedia serves path honoring the request's Range header.
// Errors returned are *apperr.Error and mean nothing was written yet.
func (s *Streamer) ServeMedia(w http.ResponseWriter, r *http.Request, path, contentType string) error {
	return s.serveFile(w, r, path, contentType, true)
}

// ServeFull serves the whole file with status 200 and ignores Range.
func (s *Streamer) ServeFull(w http.ResponseWriter, r *http.Request, path, contentType string) error {
	return s.serveFile(w, r, path, contentType, false)
}

func (s *Streamer) serveFile(w http.ResponseWriter, r *http.Request, path, contentType string, ranged bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperr.NotFound("file not found", err)
		}
		return apperr.Internal(fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return apperr.Internal(fmt.Errorf("failed to stat file: %w", err))
	}
	if info.IsDir() {
		return apperr.BadRequest("not a file", nil)
	}

	return s.serveContent(w, r, f, info.Size(), info.ModTime(), contentType, ranged)
}

func (s *Streamer) serveContent(
	w http.ResponseWriter,
	r *http.Request,
	content io.ReaderAt,
	length int64,
	modTime time.Time,
	contentType string,
	ranged bool,
) error {
	h := w.Header()
	status := http.StatusOK
	start, end := int64(0), length-1
	if ranged {
		h.Set("Accept-Ranges", "bytes")

		rng, err := ParseRange(r.Header.Get("Range"))
		if err == nil {
			start, end, err = rng.Window(length)
		}
		if err != nil {
			h.Set("Content-Range", fmt.Sprintf("bytes */%d", length))
			return apperr.RangeUnsatisfiable(err)
		}
		if rng.Partial {
			status = http.StatusPartialContent
			h.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, length))
		}
	}

	// до этой точки ответ еще может стать JSON ошибкой
	h.Set("Content-Type", contentType)
	if !modTime.IsZero() {
		h.Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	}
	n := end - start + 1
	h.Set("Content-Length", strconv.FormatInt(n, 10))
	w.WriteHeader(status)

	if r.Method == http.MethodHead || n == 0 {
		return nil
	}

	err := s.copyWindow(r.Context(), w, io.NewSectionReader(content, start, n), n)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errClientGone):
		s.logger.DebugContext(r.Context(), "client disconnected during stream",
			slog.Int64("start", start),
			slog.Int64("end", end),
			slog.Any("error", err))
		return nil
	default:
		s.logger.ErrorContext(r.Context(), "stream aborted",
			slog.Int64("start", start),
			slog.Int64("end", end),
			slog.Any("error", err))
		// заголовки уже отправлены, ответ можно только оборвать
		panic(http.ErrAbortHandler)
	}
}

// copyWindow copies exactly n bytes from src. A failed write or a canceled
// context is reported as errClientGone, anything else is a read failure.
func (s *Streamer) copyWindow(ctx context.Context, w io.Writer, src io.Reader, n int64) error {
	buf := make([]byte, s.chunkSize)
	var written int64
	for written < n {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", errClientGone, err)
		}

		nr, rerr := src.Read(buf)
		if nr > 0 {
			if _, werr := w.Write(buf[:nr]); werr != nil {
				return fmt.Errorf("%w: %w", errClientGone, werr)
			}
			written += int64(nr)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("read failed at offset %d: %w", written, rerr)
		}
	}
	if written < n {
		return fmt.Errorf("file shrank: wrote %d of %d bytes", written, n)
	}
	return nil
}
