// Package server exposes the dashboard views as a JSON API. The loaded
// bundle is immutable; every request recomputes its view's aggregates from
// it, matching the render-per-refresh model of the original dashboard.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"commerce-dashboard/internal/dataset"
	"commerce-dashboard/internal/metrics"
	"commerce-dashboard/internal/stats"
	"commerce-dashboard/internal/views"
)

type Handler struct {
	bundle   *dataset.Bundle
	recorder *stats.Recorder
	metrics  *metrics.Registry
	log      *zap.Logger
}

func New(bundle *dataset.Bundle, recorder *stats.Recorder, reg *metrics.Registry, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{bundle: bundle, recorder: recorder, metrics: reg, log: log}
}

// Routes builds the full handler chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return requestLogger(h.log)(mux)
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/views/journey", h.renderView("journey", func() interface{} { return views.Journey(h.bundle) }))
	mux.HandleFunc("/api/views/finance", h.renderView("finance", func() interface{} { return views.Finance(h.bundle) }))
	mux.HandleFunc("/api/views/products", h.renderView("products", func() interface{} { return views.Products(h.bundle) }))
	mux.HandleFunc("/api/views/regional", h.renderView("regional", func() interface{} { return views.Regional(h.bundle) }))
	mux.HandleFunc("/api/stats", h.handleStats)
	mux.HandleFunc("/api/health", h.handleHealth)
	if h.metrics != nil {
		mux.Handle("/metrics", h.metrics.Handler())
	}
}

// renderView times the aggregate computation and records it in both the
// HDR recorder and the Prometheus histogram before writing the payload.
func (h *Handler) renderView(name string, compute func() interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		start := time.Now()
		payload := compute()
		elapsed := time.Since(start)

		if h.recorder != nil {
			h.recorder.Record(name, elapsed)
		}
		if h.metrics != nil {
			h.metrics.RenderSeconds.WithLabelValues(name).Observe(elapsed.Seconds())
		}
		h.writeJSON(w, payload)
	}
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.recorder == nil {
		h.writeJSON(w, map[string]stats.RenderStats{})
		return
	}
	h.writeJSON(w, h.recorder.Snapshot())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]interface{}{
		"status":         "ok",
		"orders":         len(h.bundle.Orders),
		"enriched_rows":  len(h.bundle.Enriched),
		"products":       len(h.bundle.Products),
		"customers":      len(h.bundle.Customers),
		"sellers":        len(h.bundle.Sellers),
		"lifecycle_rows": len(h.bundle.Lifecycle),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Warn("write response", zap.Error(err))
	}
}
