package http

import (
	"net/http"
)

const cspHeader = "Content-Security-Policy"

func (h *Handler) serveMaintenance(w http.ResponseWriter, r *http.Request) {
	page := h.services.PageService.Render(r.Context(), r.Host, r.UserAgent())

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set(cspHeader, h.services.PageService.Policy())
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte(page))
}
