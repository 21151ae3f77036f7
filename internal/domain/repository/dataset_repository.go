package repository

import (
	"context"

	"github.com/mfvianna/sales-dashboard-go/internal/domain/entity"
)

// DatasetRepository defines the interface for loading the sales dataset.
// Source is a local file path or an s3://bucket/key URI.
type DatasetRepository interface {
	Load(ctx context.Context, source string) ([]entity.SaleRecord, error)

	// Fingerprint returns the content hash of the cached dataset, or "" when
	// the source has not been loaded yet.
	Fingerprint(source string) string

	// Invalidate drops the cached entry so the next Load re-reads the source.
	Invalidate(source string)
}
