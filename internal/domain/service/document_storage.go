package service

import (
	"context"
	"io"
)

// StoredDocument describes an uploaded document.
type StoredDocument struct {
	Reference   string // Opaque key used to retrieve the document later.
	ContentType string
	Size        int64
	Checksum    string // Hex SHA-256 of the content.
}

// DocumentStorage persists uploaded documents such as business licenses.
type DocumentStorage interface {
	// Store writes content under a fresh key derived from filename and returns its reference.
	Store(ctx context.Context, filename, contentType string, content io.Reader) (*StoredDocument, error)

	// Exists reports whether a reference points to a stored document.
	Exists(ctx context.Context, reference string) (bool, error)
}
