// Package archive keeps copies of exported invoices in a blob bucket.
package archive

import (
	"context"

	"backoffice/config"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
)

type blobArchive struct {
	bucket *blob.Bucket
}

// NewInvoiceArchive opens the configured bucket. When no archive is
// configured, exports are not kept and a no-op archive is returned.
func NewInvoiceArchive(ctx context.Context, cfg *config.Config) (service.InvoiceArchive, error) {
	if cfg.Archive == nil || cfg.Archive.BucketURL == "" {
		return &noopArchive{}, nil
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Archive.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Archive.BucketURL)
	}

	return &blobArchive{bucket: bucket}, nil
}

func (a *blobArchive) Store(ctx context.Context, name string, data []byte) error {
	if err := a.bucket.WriteAll(ctx, name, data, nil); err != nil {
		return errors.Wrapf(err, "archive %s", name)
	}

	return nil
}

func (a *blobArchive) Close() error {
	return a.bucket.Close()
}

type noopArchive struct{}

func (a *noopArchive) Store(context.Context, string, []byte) error { return nil }

func (a *noopArchive) Close() error { return nil }
