// Package track extracts embedded subtitle tracks with an external ffmpeg.
package track

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrNoTrack is returned when ffmpeg produced no subtitle output
var ErrNoTrack = errors.New("no subtitle track")

// maxStderr bounds the ffmpeg diagnostics kept for the error message
const maxStderr = 2048

// Extractor runs ffmpeg to convert one subtitle stream to WebVTT
type Extractor struct {
	binary  string
	timeout time.Duration
}

// NewExtractor создает Extractor; пустой binary означает "ffmpeg" из PATH
func NewExtractor(binary string, timeout time.Duration) *Extractor {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Extractor{binary: binary, timeout: timeout}
}

// Args returns the ffmpeg arguments for subtitle stream index of path
func Args(path string, index int) []string {
	return []string{
		"-nostdin",
		"-v", "error",
		"-i", path,
		"-map", "0:s:" + strconv.Itoa(index),
		"-f", "webvtt",
		"-",
	}
}

// Extract returns subtitle stream index of the media file at path as WebVTT
func (e *Extractor) Extract(ctx context.Context, path string, index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("invalid track index %d", index)
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, Args(path, index)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("ffmpeg interrupted: %w", ctxErr)
		}
		return "", fmt.Errorf("ffmpeg failed: %w: %s", err, trimStderr(stderr.String()))
	}

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		return "", ErrNoTrack
	}
	return out, nil
}

func trimStderr(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderr {
		s = s[:maxStderr] + "..."
	}
	return s
}
