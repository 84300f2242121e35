package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/MKhiriev/sstatic/internal/logger"
	"github.com/MKhiriev/sstatic/internal/store"
	"github.com/go-chi/chi/v5"
)

const (
	prefixParam = "prefix"
	fileParam   = "file"
)

func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	prefix, err := urlParam(r, prefixParam)
	if err != nil || prefix != h.staticPath {
		h.serveMaintenance(w, r)
		return
	}

	name, err := urlParam(r, fileParam)
	if err != nil {
		notFound(w)
		return
	}

	asset, err := h.services.AssetService.Asset(r.Context(), name)
	if err != nil {
		if !errors.Is(err, store.ErrAssetNotFound) {
			log.Error().Err(err).Str("file", name).Msg("error serving static asset")
		}
		notFound(w)
		return
	}

	w.Header().Set("Content-Type", asset.MimeType)
	w.WriteHeader(http.StatusOK)
	w.Write(asset.Content)
}

// urlParam returns the unescaped value of a route parameter. chi routes on
// the raw path when the request path has escapes.
func urlParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("404"))
}
