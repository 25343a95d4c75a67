package models

import "time"

// Site is the single live installation: where files live and how sessions are signed.
// A Site value is never mutated after construction; replace it as a whole.
type Site struct {
	CreatedAt   time.Time
	StorageRoot string // absolute path, all virtual paths are confined to it
	Secret      []byte // HMAC key for session tokens
	FirstRun    bool
}

// Clone returns a deep copy so callers cannot alias the secret of a shared value
func (s *Site) Clone() *Site {
	if s == nil {
		return nil
	}
	c := *s
	c.Secret = append([]byte(nil), s.Secret...)
	return &c
}
