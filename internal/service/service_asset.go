package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/store"
)

type assetService struct {
	repository AssetRepository

	logger *logger.Logger
}

// NewAssetService returns an [AssetService] backed by repository. A nil
// repository means static serving is disabled.
func NewAssetService(repository AssetRepository, logger *logger.Logger) AssetService {
	return &assetService{
		repository: repository,
		logger:     logger,
	}
}

func (s *assetService) Asset(ctx context.Context, name string) (store.Asset, error) {
	if s.repository == nil {
		return store.Asset{}, ErrStaticDisabled
	}

	asset, err := s.repository.Resolve(ctx, name)
	if errors.Is(err, store.ErrOutsideRoot) {
		s.logger.Warn().Str("name", name).Msg("rejected static asset outside content root")
	}
	return asset, err
}
