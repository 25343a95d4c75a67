package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session is stored
	ErrSessionNotFound = errors.New("session not found")

	// ErrDownloadNotFound indicates that the download registry has no such entry
	ErrDownloadNotFound = errors.New("download not found")
)
