package store

import (
	"fmt"

	"github.com/MKhiriev/sstatic/internal/config"
	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/mimetype"
)

// Storages groups the content sources read at startup.
type Storages struct {
	// Content is the raw maintenance page material.
	Content *Content

	// Types is the MIME type table for static content.
	Types *mimetype.Table

	// Assets serves the static route. It is nil when static serving is
	// disabled.
	Assets *AssetStore
}

// NewStorages loads the page content, the MIME table and, when enabled, the
// static content root described by cfg.
func NewStorages(cfg *config.Config, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	content, err := LoadContent(cfg.HTMLPath, cfg.CSSPath, cfg.JSPath, logger)
	if err != nil {
		return nil, err
	}

	storages := &Storages{
		Content: content,
		Types:   mimetype.Load(cfg.MimeTypesPath),
	}

	if cfg.StaticEnabled() {
		storages.Assets, err = NewAssetStore(cfg.StaticContent, storages.Types)
		if err != nil {
			return nil, fmt.Errorf("error creating static content store: %w", err)
		}
		logger.Info().
			Str("route", "/"+cfg.StaticPath).
			Str("root", storages.Assets.Root()).
			Int("mime_types", storages.Types.Len()).
			Msg("static content enabled")
	}

	return storages, nil
}
