package pathres

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophmedia/internal/server/apperr"
)

// setupRoot creates root/{movies/a.mp4, docs/} and returns the canonical root
func setupRoot(t *testing.T) string {
	t.Helper()
	root, err := CanonicalRoot(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "movies"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "movies", "a.mp4"), []byte("x"), 0o644))
	return root
}

func TestResolve_Valid(t *testing.T) {
	root := setupRoot(t)

	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"empty is root", "", root},
		{"slash is root", "/", root},
		{"plain file", "movies/a.mp4", filepath.Join(root, "movies", "a.mp4")},
		{"encoded slash", "movies%2Fa.mp4", filepath.Join(root, "movies", "a.mp4")},
		{"encoded space", "docs/my%20notes.txt", filepath.Join(root, "docs", "my notes.txt")},
		{"leading slash", "/movies", filepath.Join(root, "movies")},
		{"dotdot inside root", "movies/../docs", filepath.Join(root, "docs")},
		{"not existing yet", "docs/new/deeper.txt", filepath.Join(root, "docs", "new", "deeper.txt")},
		{"backslashes", "movies\\a.mp4", filepath.Join(root, "movies", "a.mp4")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.encoded, root)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Rejects(t *testing.T) {
	root := setupRoot(t)

	tests := []struct {
		name    string
		encoded string
		cause   error
	}{
		{"bad escape", "movies/%zz", ErrMalformedPath},
		{"truncated escape", "movies/%2", ErrMalformedPath},
		{"nul byte", "movies/a.mp4%00.txt", ErrMalformedPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.encoded, root)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
		})
	}
}

// TestResolve_NeverEscapes checks that any number of .. segments either fails
// or stays inside the root.
func TestResolve_NeverEscapes(t *testing.T) {
	root := setupRoot(t)

	var inputs []string
	for depth := 1; depth <= 8; depth++ {
		up := strings.Repeat("../", depth)
		inputs = append(inputs,
			up,
			up+"etc/passwd",
			"movies/"+up+"etc",
			"/"+up+"tmp",
			strings.Repeat("%2e%2e%2f", depth)+"etc",
			strings.Repeat("..%2F", depth),
			strings.Repeat("..\\", depth)+"windows",
			"docs/"+strings.Repeat("./../", depth),
		)
	}
	inputs = append(inputs, "/etc/passwd", "//etc", "C:\\Windows", "~/.ssh")

	for _, in := range inputs {
		got, err := Resolve(in, root)
		if err != nil {
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err), in)
			continue
		}
		assert.True(t, IsWithin(root, got), "input %q resolved outside root: %q", in, got)
	}
}

func TestResolve_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink behavior varies on windows")
	}
	root := setupRoot(t)
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "secret.txt"), []byte("s"), 0o644))

	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	for _, in := range []string{"link", "link/secret.txt", "link/missing/file"} {
		_, err := Resolve(in, root)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, ErrOutsideRoot, in)
	}
}

func TestResolve_SymlinkInsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink behavior varies on windows")
	}
	root := setupRoot(t)

	if err := os.Symlink(filepath.Join(root, "movies"), filepath.Join(root, "films")); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	got, err := Resolve("films/a.mp4", root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "movies", "a.mp4"), got)
}

func TestResolve_SymlinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink behavior varies on windows")
	}
	real := setupRoot(t)
	alias := filepath.Join(t.TempDir(), "alias")
	if err := os.Symlink(real, alias); err != nil {
		t.Skipf("symlink not supported: %v", err)
	}

	got, err := Resolve("movies/a.mp4", alias)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(real, "movies", "a.mp4"), got)
}

func TestResolve_RootNotConfigured(t *testing.T) {
	_, err := Resolve("a", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestIsWithin(t *testing.T) {
	sep := string(filepath.Separator)
	root := sep + filepath.Join("srv", "media")

	assert.True(t, IsWithin(root, root))
	assert.True(t, IsWithin(root, filepath.Join(root, "a")))
	assert.False(t, IsWithin(root, root+"-other"))
	assert.False(t, IsWithin(root, sep+"srv"))
}

func TestRel(t *testing.T) {
	root := setupRoot(t)
	assert.Equal(t, "", Rel(root, root))
	assert.Equal(t, "movies/a.mp4", Rel(root, filepath.Join(root, "movies", "a.mp4")))
}
