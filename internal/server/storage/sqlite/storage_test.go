package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "gophmedia.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	// повторное открытие не должно заново применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	var version int64
	err = s.DB().QueryRowContext(ctx, "SELECT MAX(version_id) FROM goose_db_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	var mode string
	require.NoError(t, s.DB().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")))
}
