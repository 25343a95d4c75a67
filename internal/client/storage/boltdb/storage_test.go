package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

// создаём тестовое BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД создан с правами только для владельца
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketDownloads} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Путь с нулевым символом даст ошибку
	invalidPath := string([]byte{0})
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNew_LockedByAnotherClient(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "locked.db")

	first, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, first.Close())
	}()

	second, err := New(context.Background(), dbPath)
	assert.Error(t, err)
	assert.Nil(t, second)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	// Закрываем БД
	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0o600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())

	// Повторная инициализация не ломает существующие бакеты
	require.NoError(t, store.initBuckets())

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketDownloads} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}
