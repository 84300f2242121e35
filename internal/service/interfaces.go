package service

import (
	"context"

	"github.com/MKhiriev/sstatic/internal/store"
)

// PageService serves the maintenance page.
type PageService interface {
	// Render returns the page for a request with the given Host and
	// User-Agent header values.
	Render(ctx context.Context, host, userAgent string) string
	// Policy returns the Content-Security-Policy header value for the page.
	Policy() string
}

// AssetService serves static content.
type AssetService interface {
	// Asset returns the static asset stored under name, or an error matching
	// [store.ErrAssetNotFound].
	Asset(ctx context.Context, name string) (store.Asset, error)
}

// AssetRepository is the storage behind [AssetService].
type AssetRepository interface {
	Resolve(ctx context.Context, name string) (store.Asset, error)
}
