package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophmedia/internal/client/storage"
)

// Compile-time check
var _ storage.DownloadStorage = (*Storage)(nil)

// SaveDownload creates or replaces a download record
func (s *Storage) SaveDownload(ctx context.Context, rec *storage.DownloadRecord) error {
	if rec == nil || rec.LocalPath == "" {
		return fmt.Errorf("download record must have a local path")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDownloads)
		if bucket == nil {
			return fmt.Errorf("downloads bucket not found")
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal download record: %w", err)
		}

		if err := bucket.Put([]byte(rec.LocalPath), data); err != nil {
			return fmt.Errorf("failed to save download record: %w", err)
		}
		return nil
	})
}

// GetDownload returns the record for localPath
func (s *Storage) GetDownload(ctx context.Context, localPath string) (*storage.DownloadRecord, error) {
	var rec *storage.DownloadRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDownloads)
		if bucket == nil {
			return fmt.Errorf("downloads bucket not found")
		}

		data := bucket.Get([]byte(localPath))
		if data == nil {
			return storage.ErrDownloadNotFound
		}

		rec = &storage.DownloadRecord{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal download record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListDownloads returns every record; bbolt keeps keys sorted
func (s *Storage) ListDownloads(ctx context.Context) ([]*storage.DownloadRecord, error) {
	var records []*storage.DownloadRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDownloads)
		if bucket == nil {
			return fmt.Errorf("downloads bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			rec := &storage.DownloadRecord{}
			if err := json.Unmarshal(v, rec); err != nil {
				return fmt.Errorf("failed to unmarshal download record %q: %w", k, err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteDownload removes a record
func (s *Storage) DeleteDownload(ctx context.Context, localPath string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDownloads)
		if bucket == nil {
			return fmt.Errorf("downloads bucket not found")
		}

		if err := bucket.Delete([]byte(localPath)); err != nil {
			return fmt.Errorf("failed to delete download record: %w", err)
		}
		return nil
	})
}
