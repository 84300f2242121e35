package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAssetRepository serves a fixed set of assets.
type mockAssetRepository struct {
	assets map[string]store.Asset
}

func (m *mockAssetRepository) Resolve(_ context.Context, name string) (store.Asset, error) {
	if name == "../escape" {
		return store.Asset{}, fmt.Errorf("%w: %w", store.ErrAssetNotFound, store.ErrOutsideRoot)
	}
	asset, ok := m.assets[name]
	if !ok {
		return store.Asset{}, store.ErrAssetNotFound
	}
	return asset, nil
}

func TestAssetService_Asset(t *testing.T) {
	repo := &mockAssetRepository{assets: map[string]store.Asset{
		"a.css": {Content: []byte("a{}"), MimeType: "text/css"},
	}}
	svc := NewAssetService(repo, logger.Nop())

	asset, err := svc.Asset(context.Background(), "a.css")
	require.NoError(t, err)
	assert.Equal(t, "text/css", asset.MimeType)

	_, err = svc.Asset(context.Background(), "b.css")
	assert.ErrorIs(t, err, store.ErrAssetNotFound)

	_, err = svc.Asset(context.Background(), "../escape")
	assert.ErrorIs(t, err, store.ErrAssetNotFound)
}

func TestAssetService_Disabled(t *testing.T) {
	svc := NewAssetService(nil, logger.Nop())

	_, err := svc.Asset(context.Background(), "a.css")
	assert.ErrorIs(t, err, ErrStaticDisabled)
}
