package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "marketplace/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T, maxBytes int64) (*blobStorage, func()) {
	bucket := memblob.OpenBucket(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewBlobStorage(bucket, "licenses/", maxBytes, logger).(*blobStorage)

	return s, func() { _ = bucket.Close() }
}

func TestBlobStorage_Store(t *testing.T) {
	s, closeFn := newTestStorage(t, 1024)
	defer closeFn()

	ctx := context.Background()
	content := "license-scan-bytes"

	doc, err := s.Store(ctx, "Trade License.PDF", "application/pdf", strings.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.Reference, "licenses/"))
	assert.True(t, strings.HasSuffix(doc.Reference, ".pdf"))
	assert.Equal(t, int64(len(content)), doc.Size)

	sum := sha256.Sum256([]byte(content))
	assert.Equal(t, hex.EncodeToString(sum[:]), doc.Checksum)

	stored, err := s.bucket.ReadAll(ctx, doc.Reference)
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))

	exists, err := s.Exists(ctx, doc.Reference)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBlobStorage_StoreTooLarge(t *testing.T) {
	s, closeFn := newTestStorage(t, 4)
	defer closeFn()

	ctx := context.Background()
	_, err := s.Store(ctx, "license.pdf", "application/pdf", strings.NewReader("too large"))
	assert.ErrorIs(t, err, domainerrors.ErrDocumentTooLarge)

	iter := s.bucket.List(nil)
	_, err = iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF, "partial upload must not be kept")
}

func TestBlobStorage_Exists(t *testing.T) {
	s, closeFn := newTestStorage(t, 1024)
	defer closeFn()

	ctx := context.Background()

	exists, err := s.Exists(ctx, "licenses/missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.Exists(ctx, "elsewhere/file.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSafeExtension(t *testing.T) {
	tests := map[string]string{
		"scan.PDF":           ".pdf",
		"photo.jpeg":         ".jpeg",
		"noext":              "",
		"../../etc/passwd":   "",
		"evil.p$f":           "",
		"archive.tar.gz":     ".gz",
		`C:\docs\permit.png`: ".png",
		"weird.extension1":   "",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, safeExtension(input), input)
	}
}
