// Package pathres maps client supplied virtual paths onto the storage root.
package pathres

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/gophmedia/internal/server/apperr"
)

var (
	// ErrMalformedPath indicates invalid percent-encoding or a NUL byte
	ErrMalformedPath = errors.New("malformed path")
	// ErrOutsideRoot indicates a path that canonicalizes outside the storage root
	ErrOutsideRoot = errors.New("path escapes storage root")
)

// clientMessage is the same for every rejection so a probing client cannot
// tell a bad encoding from a root escape.
const clientMessage = "invalid path"

// Resolve decodes encoded once, joins it onto root and returns the canonical
// absolute path. The result is always root itself or a descendant of it,
// symlinks included. Every failure is an *apperr.Error of kind BadRequest.
func Resolve(encoded, root string) (string, error) {
	decoded, err := url.PathUnescape(encoded)
	if err != nil {
		return "", apperr.BadRequest(clientMessage, fmt.Errorf("%w: %v", ErrMalformedPath, err))
	}
	if strings.ContainsRune(decoded, 0) {
		return "", apperr.BadRequest(clientMessage, fmt.Errorf("%w: NUL byte", ErrMalformedPath))
	}

	rootCanon, err := CanonicalRoot(root)
	if err != nil {
		return "", apperr.Internal(err)
	}

	// Windows-style separators from clients are treated as separators too.
	rel := filepath.FromSlash(strings.ReplaceAll(decoded, "\\", "/"))
	joined := filepath.Join(rootCanon, rel)

	canon, err := canonicalize(joined)
	if err != nil {
		return "", apperr.BadRequest(clientMessage, err)
	}

	if !IsWithin(rootCanon, canon) {
		return "", apperr.BadRequest(clientMessage, fmt.Errorf("%w: %q", ErrOutsideRoot, decoded))
	}

	return canon, nil
}

// CanonicalRoot returns the absolute, symlink free form of root
func CanonicalRoot(root string) (string, error) {
	if root == "" {
		return "", errors.New("storage root is not configured")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage root: %w", err)
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage root: %w", err)
	}
	return filepath.Clean(canon), nil
}

// Rel returns the slash separated virtual path of an already resolved path
func Rel(rootCanon, resolved string) string {
	rel, err := filepath.Rel(rootCanon, resolved)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// IsWithin reports whether candidate equals root or lies below it.
// Both paths must already be clean and absolute.
func IsWithin(root, candidate string) bool {
	if root == candidate {
		return true
	}
	sep := string(filepath.Separator)
	if !strings.HasSuffix(root, sep) {
		root += sep
	}
	return strings.HasPrefix(candidate, root)
}

// canonicalize evaluates symlinks on the longest existing prefix of p and
// re-appends the part that does not exist yet.
func canonicalize(p string) (string, error) {
	existing := p
	var rest []string
	for {
		// ENOENT, ENOTDIR: компонент еще не существует, поднимаемся выше
		if _, err := os.Lstat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return "", fmt.Errorf("no existing ancestor for %q", p)
		}
		rest = append(rest, filepath.Base(existing))
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", fmt.Errorf("failed to evaluate symlinks: %w", err)
	}

	for i := len(rest) - 1; i >= 0; i-- {
		resolved = filepath.Join(resolved, rest[i])
	}
	return filepath.Clean(resolved), nil
}
