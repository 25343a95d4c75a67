package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophmedia/internal/models"
	"github.com/iudanet/gophmedia/internal/server/storage"
)

// GetSite returns the single site row
func (s *Storage) GetSite(ctx context.Context) (*models.Site, error) {
	query := `SELECT storage_root, secret, created_at FROM sites WHERE id = 1`

	site := &models.Site{}
	err := s.db.QueryRowContext(ctx, query).Scan(&site.StorageRoot, &site.Secret, &site.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return site, nil
}

// Setup writes the site and the admin user atomically
func (s *Storage) Setup(ctx context.Context, site *models.Site, admin *models.User) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if site.CreatedAt.IsZero() {
		site.CreatedAt = time.Now().UTC()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sites (id, storage_root, secret, created_at) VALUES (1, ?, ?, ?)`,
		site.StorageRoot, site.Secret, site.CreatedAt,
	)
	if err != nil {
		// CHECK (id = 1) + PRIMARY KEY: вторая строка невозможна
		if isUniqueViolation(err) {
			return storage.ErrSiteAlreadyExists
		}
		return fmt.Errorf("failed to insert site: %w", err)
	}

	if err = insertUser(ctx, tx, admin); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit setup: %w", err)
	}

	return nil
}
