package storage

import (
	"context"

	"github.com/iudanet/gophmedia/internal/models"
)

// SiteStorage persists the single site record
type SiteStorage interface {
	// GetSite returns the configured site
	// Returns ErrSiteNotFound before the first setup
	GetSite(ctx context.Context) (*models.Site, error)

	// Setup stores the site and its first admin in one transaction and fills admin.ID.
	// Returns ErrSiteAlreadyExists or ErrUserAlreadyExists, nothing is written then.
	Setup(ctx context.Context, site *models.Site, admin *models.User) error
}
