package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Destination is the local file a download is appended to
type Destination interface {
	io.Writer
	io.Seeker
	Truncate(size int64) error
}

// DownloadResult describes what a Download call did
type DownloadResult struct {
	Offset          int64 // bytes already present locally before the request
	Written         int64 // bytes received in this call
	Total           int64 // remote file size, -1 when the server did not say
	AlreadyComplete bool  // the local file already had every byte
	Restarted       bool  // the server ignored Range and the file was rewritten
}

// Size returns the local file size after the call
func (r *DownloadResult) Size() int64 {
	return r.Offset + r.Written
}

// Download fetches a file into dst, resuming from the current end of dst
// with a Range request. A 416 answer to a resume means the local copy is
// already complete.
func (c *Client) Download(ctx context.Context, path string, dst Destination) (*DownloadResult, error) {
	offset, err := dst.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to seek destination: %w", err)
	}

	target := "/api/file/" + EscapePath(path)
	build := func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, target, nil)()
		if err != nil {
			return nil, err
		}
		if offset > 0 {
			req.Header.Set("Range", "bytes="+strconv.FormatInt(offset, 10)+"-")
		}
		return req, nil
	}

	resp, err := c.send(ctx, c.streamClient, build, true)
	if err != nil {
		return nil, fmt.Errorf("download request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	res := &DownloadResult{Offset: offset, Total: -1}

	switch resp.StatusCode {
	case http.StatusPartialContent:
		start, total, err := parseContentRange(resp.Header.Get("Content-Range"))
		if err != nil {
			return nil, err
		}
		if start != offset {
			return nil, fmt.Errorf("server resumed at byte %d, expected %d", start, offset)
		}
		res.Total = total

	case http.StatusOK:
		// Range проигнорирован (не медиа файл): пишем заново
		if offset > 0 {
			if err := restart(dst); err != nil {
				return nil, err
			}
			res.Offset = 0
			res.Restarted = true
		}
		res.Total = resp.ContentLength

	case http.StatusRequestedRangeNotSatisfiable:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		statusErr := newStatusError(resp.StatusCode, body)
		if offset == 0 {
			return nil, statusErr
		}
		total, err := parseUnsatisfiedRange(resp.Header.Get("Content-Range"))
		if err != nil || total != offset {
			return nil, fmt.Errorf("local file (%d bytes) does not match remote: %w", offset, statusErr)
		}
		res.Total = total
		res.AlreadyComplete = true
		return res, nil

	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, newStatusError(resp.StatusCode, body)
	}

	n, err := io.Copy(dst, resp.Body)
	res.Written = n
	if err != nil {
		return res, fmt.Errorf("download interrupted after %d bytes: %w", res.Size(), err)
	}
	if res.Total >= 0 && res.Size() != res.Total {
		return res, fmt.Errorf("download incomplete: %d of %d bytes", res.Size(), res.Total)
	}
	return res, nil
}

func restart(dst Destination) error {
	if err := dst.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate destination: %w", err)
	}
	if _, err := dst.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek destination: %w", err)
	}
	return nil
}

// parseContentRange разбирает "bytes start-end/total"
func parseContentRange(v string) (start, total int64, err error) {
	rest, ok := strings.CutPrefix(v, "bytes ")
	if !ok {
		return 0, 0, fmt.Errorf("invalid Content-Range %q", v)
	}
	rng, size, ok := strings.Cut(rest, "/")
	if !ok {
		return 0, 0, fmt.Errorf("invalid Content-Range %q", v)
	}
	first, _, ok := strings.Cut(rng, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid Content-Range %q", v)
	}
	if start, err = strconv.ParseInt(first, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid Content-Range %q: %w", v, err)
	}
	if size == "*" {
		return start, -1, nil
	}
	if total, err = strconv.ParseInt(size, 10, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid Content-Range %q: %w", v, err)
	}
	return start, total, nil
}

// parseUnsatisfiedRange разбирает "bytes */total"
func parseUnsatisfiedRange(v string) (int64, error) {
	size, ok := strings.CutPrefix(v, "bytes */")
	if !ok {
		return 0, errors.New("missing Content-Range")
	}
	return strconv.ParseInt(size, 10, 64)
}
