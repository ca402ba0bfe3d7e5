package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/simplecyberhub/txc/internal/domain/error"
	"github.com/simplecyberhub/txc/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func newStore(t *testing.T, maxBytes int64) *LocalStore {
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "uploads"), maxBytes, logger.NewNoopLogger())
	require.NoError(t, err)
	return store
}

func TestLocalStore_Save(t *testing.T) {
	store := newStore(t, 0)
	assert.Equal(t, DefaultMaxBytes, store.MaxBytes())

	testCases := []struct {
		name string
		data []byte
		ext  string
	}{
		{"PNG", pngHeader, ".png"},
		{"PDF", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), ".pdf"},
		{"JPEG", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}, ".jpg"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := store.Save(context.Background(), bytes.NewReader(tc.data))
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(path, tc.ext), path)

			stored, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.data, stored)
		})
	}
}

func TestLocalStore_Rejects(t *testing.T) {
	store := newStore(t, 32)

	_, err := store.Save(context.Background(), strings.NewReader("just some text"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFileType)
	assert.ErrorIs(t, err, errs.ErrValidation)

	big := append(append([]byte{}, pngHeader...), make([]byte, 64)...)
	_, err = store.Save(context.Background(), bytes.NewReader(big))
	assert.ErrorIs(t, err, errs.ErrFileTooLarge)

	entries, err := os.ReadDir(store.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store := newStore(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLocalStore_Delete(t *testing.T) {
	store := newStore(t, 0)
	ctx := context.Background()

	path, err := store.Save(ctx, bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// already gone
	require.NoError(t, store.Delete(ctx, path))

	outside := filepath.Join(t.TempDir(), "keep.png")
	require.NoError(t, os.WriteFile(outside, pngHeader, 0o600))
	assert.Error(t, store.Delete(ctx, outside))
	assert.Error(t, store.Delete(ctx, filepath.Join(store.dir, "..", "keep.png")))
	assert.Error(t, store.Delete(ctx, store.dir))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
