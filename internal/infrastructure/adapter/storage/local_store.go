package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	errs "github.com/simplecyberhub/txc/internal/domain/error"
	coreport "github.com/simplecyberhub/txc/internal/domain/port/core"
)

// DefaultMaxBytes bounds a single upload
const DefaultMaxBytes int64 = 5 << 20

var allowedTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// LocalStore writes documents to a directory on local disk
type LocalStore struct {
	dir      string
	maxBytes int64
	logger   coreport.Logger
}

// NewLocalStore creates the directory if needed
func NewLocalStore(dir string, maxBytes int64, logger coreport.Logger) (*LocalStore, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		dir:      dir,
		maxBytes: maxBytes,
		logger:   logger.With(map[string]any{"component": "storage"}),
	}, nil
}

// MaxBytes returns the upload size limit
func (s *LocalStore) MaxBytes() int64 {
	return s.maxBytes
}

// Save sniffs the content type, then writes it under a random name with the matching extension
func (s *LocalStore) Save(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", errs.ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	if !mimetype.EqualsAny(mime.String(), allowedTypes...) {
		return "", fmt.Errorf("%w: got %s", errs.ErrUnsupportedFileType, mime.String())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, uuid.NewString()+mime.Extension())
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	s.logger.Info("Document stored", map[string]any{
		"path":       path,
		"size":       len(data),
		"mime":       mime.String(),
		"request_id": coreport.RequestIDFromContext(ctx),
	})
	return path, nil
}

// Delete removes a stored document. Paths outside the upload directory are refused.
func (s *LocalStore) Delete(ctx context.Context, path string) error {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("refusing to delete %q outside the upload dir", path)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}

	s.logger.Info("Document deleted", map[string]any{
		"path":       path,
		"request_id": coreport.RequestIDFromContext(ctx),
	})
	return nil
}
