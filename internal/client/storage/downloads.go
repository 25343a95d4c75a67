package storage

import "context"

//go:generate moq -out downloads_mock.go . DownloadStorage

// DownloadStorage remembers downloads so that interrupted ones can be resumed
type DownloadStorage interface {
	// SaveDownload creates or replaces the record keyed by LocalPath
	SaveDownload(ctx context.Context, rec *DownloadRecord) error

	// GetDownload returns ErrDownloadNotFound for an unknown local path
	GetDownload(ctx context.Context, localPath string) (*DownloadRecord, error)

	// ListDownloads returns all records ordered by local path
	ListDownloads(ctx context.Context) ([]*DownloadRecord, error)

	// DeleteDownload removes a record; deleting a missing one is not an error
	DeleteDownload(ctx context.Context, localPath string) error
}

// DownloadRecord describes one local copy of a remote file
type DownloadRecord struct {
	RemotePath string `json:"remote_path"`
	LocalPath  string `json:"local_path"`
	Size       int64  `json:"size"`  // байт на диске
	Total      int64  `json:"total"` // размер на сервере, -1 если неизвестен
	UpdatedAt  int64  `json:"updated_at"`
	Complete   bool   `json:"complete"`
}
