// Package site holds the live site configuration shared by all requests.
package site

import (
	"errors"
	"sync/atomic"

	"github.com/iudanet/gophmedia/internal/models"
)

// ErrNotConfigured is returned while the site awaits its first setup
var ErrNotConfigured = errors.New("site is not configured")

// State is the process wide site value. Readers get an immutable snapshot;
// Replace swaps the whole value so a reader never sees a half updated site.
type State struct {
	current atomic.Pointer[models.Site]
}

// NewState returns a State in first-run mode when site is nil
func NewState(site *models.Site) *State {
	s := &State{}
	if site == nil {
		s.current.Store(&models.Site{FirstRun: true})
	} else {
		s.Replace(site)
	}
	return s
}

// Get returns the current site. The value must not be modified.
func (s *State) Get() (*models.Site, error) {
	site := s.current.Load()
	if site == nil || site.FirstRun {
		return nil, ErrNotConfigured
	}
	return site, nil
}

// FirstRun reports whether setup is still pending
func (s *State) FirstRun() bool {
	site := s.current.Load()
	return site == nil || site.FirstRun
}

// Replace installs a copy of site as the new live value
func (s *State) Replace(site *models.Site) {
	c := site.Clone()
	c.FirstRun = false
	s.current.Store(c)
}

// CompareAndSwapFirstRun installs site only if setup is still pending.
// Returns false when another request finished setup first.
func (s *State) CompareAndSwapFirstRun(site *models.Site) bool {
	old := s.current.Load()
	if old != nil && !old.FirstRun {
		return false
	}
	c := site.Clone()
	c.FirstRun = false
	return s.current.CompareAndSwap(old, c)
}
