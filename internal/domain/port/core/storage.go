package core

import (
	"context"
	"io"
)

// DocumentStore persists uploaded KYC documents
type DocumentStore interface {
	// Save stores the content and returns the path to record on the KYC row
	Save(ctx context.Context, r io.Reader) (string, error)

	// Delete removes a document returned by Save. A missing document is not an error.
	Delete(ctx context.Context, path string) error
}
