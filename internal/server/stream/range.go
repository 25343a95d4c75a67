package stream

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrRangeUnsatisfiable covers both malformed Range headers and windows that
// do not fit the file.
var ErrRangeUnsatisfiable = errors.New("range not satisfiable")

const bytesUnit = "bytes="

// Range is a parsed Range header. The zero value requests the full body.
type Range struct {
	Start   int64
	End     int64
	Partial bool
	HasEnd  bool
}

// ParseRange accepts only a single "bytes=start-end" or "bytes=start-" range.
// An empty header yields the full body.
func ParseRange(header string) (Range, error) {
	if header == "" {
		return Range{}, nil
	}
	if !strings.HasPrefix(header, bytesUnit) {
		return Range{}, fmt.Errorf("%w: unsupported unit in %q", ErrRangeUnsatisfiable, header)
	}
	set := strings.TrimSpace(header[len(bytesUnit):])
	if strings.Contains(set, ",") {
		return Range{}, fmt.Errorf("%w: multiple ranges", ErrRangeUnsatisfiable)
	}

	startStr, endStr, ok := strings.Cut(set, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: missing dash in %q", ErrRangeUnsatisfiable, header)
	}
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)
	if startStr == "" {
		// суффиксные диапазоны (bytes=-N) не поддерживаются
		return Range{}, fmt.Errorf("%w: suffix range %q", ErrRangeUnsatisfiable, header)
	}

	start, err := parseOffset(startStr)
	if err != nil {
		return Range{}, err
	}
	r := Range{Start: start, Partial: true}
	if endStr == "" {
		return r, nil
	}
	end, err := parseOffset(endStr)
	if err != nil {
		return Range{}, err
	}
	r.End = end
	r.HasEnd = true
	return r, nil
}

func parseOffset(s string) (int64, error) {
	// ParseInt допускает знак, поэтому проверяем цифры сами
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: bad offset %q", ErrRangeUnsatisfiable, s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad offset %q", ErrRangeUnsatisfiable, s)
	}
	return v, nil
}

// Window returns the inclusive byte window for a file of the given length.
// An open or overlong end is clamped to length-1; nothing else is adjusted.
func (r Range) Window(length int64) (start, end int64, err error) {
	if !r.Partial {
		return 0, length - 1, nil
	}
	if r.Start >= length {
		return 0, 0, fmt.Errorf("%w: start %d beyond length %d", ErrRangeUnsatisfiable, r.Start, length)
	}
	end = length - 1
	if r.HasEnd {
		if r.End < r.Start {
			return 0, 0, fmt.Errorf("%w: end %d before start %d", ErrRangeUnsatisfiable, r.End, r.Start)
		}
		if r.End < end {
			end = r.End
		}
	}
	return r.Start, end, nil
}
