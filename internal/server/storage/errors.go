package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrSiteNotFound indicates that the site has not been set up yet
	ErrSiteNotFound = errors.New("site not found")

	// ErrSiteAlreadyExists indicates a second setup attempt
	ErrSiteAlreadyExists = errors.New("site already exists")
)
