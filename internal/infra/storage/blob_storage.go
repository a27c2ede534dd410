// Package storage keeps uploaded documents in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"path"
	"strings"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStorage struct {
	bucket   *blob.Bucket
	prefix   string
	maxBytes int64
	logger   *slog.Logger
}

// StorageParams holds dependencies for DocumentStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDocumentStorage opens the configured bucket and closes it on shutdown
func NewDocumentStorage(params StorageParams) (service.DocumentStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Document storage initialized", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing document storage")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, cfg.LicensePrefix, cfg.MaxUploadBytes, params.Logger), nil
}

// NewBlobStorage wraps an already opened bucket
func NewBlobStorage(bucket *blob.Bucket, prefix string, maxBytes int64, logger *slog.Logger) service.DocumentStorage {
	return &blobStorage{
		bucket:   bucket,
		prefix:   prefix,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Store streams content into the bucket, rejecting documents above the size limit
func (s *blobStorage) Store(ctx context.Context, filename, contentType string, content io.Reader) (*service.StoredDocument, error) {
	key := s.prefix + uuid.NewString() + safeExtension(filename)

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDocumentStoreFailed, err.Error())
	}

	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(writer, hash), io.LimitReader(content, s.maxBytes+1))
	if err == nil && written > s.maxBytes {
		err = domainerrors.ErrDocumentTooLarge
	}
	if err != nil {
		// Cancelling before Close discards the partial object.
		cancel()
		_ = writer.Close()

		if errors.Is(err, domainerrors.ErrDocumentTooLarge) {
			return nil, errors.WithStack(err)
		}

		return nil, errors.Wrap(domainerrors.ErrDocumentStoreFailed, err.Error())
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrDocumentStoreFailed, err.Error())
	}

	s.logger.Info("Stored document",
		slog.String("reference", key),
		slog.String("size", util.FormatBytes(written)),
	)

	return &service.StoredDocument{
		Reference:   key,
		ContentType: contentType,
		Size:        written,
		Checksum:    hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// Exists reports whether the reference is a stored document under the license prefix
func (s *blobStorage) Exists(ctx context.Context, reference string) (bool, error) {
	if !strings.HasPrefix(reference, s.prefix) {
		return false, nil
	}

	exists, err := s.bucket.Exists(ctx, reference)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}

		return false, errors.WithStack(err)
	}

	return exists, nil
}

// safeExtension keeps a short alphanumeric extension from the client filename
func safeExtension(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	if len(ext) < 2 || len(ext) > 6 {
		return ""
	}

	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}

	return ext
}
