package service

import (
	"github.com/MKhiriev/sstatic/internal/config"
	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/store"
)

type Services struct {
	PageService  PageService
	AssetService AssetService
}

func NewServices(storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	var assets AssetRepository
	if storages.Assets != nil {
		assets = storages.Assets
	}

	return &Services{
		PageService:  NewPageService(storages.Content, cfg.UnsafeInline, logger),
		AssetService: NewAssetService(assets, logger),
	}
}
