package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	TablesLoaded  prometheus.Counter
	LoadFailures  prometheus.Counter
	RowsLoaded    prometheus.Counter
	EnrichedRows  prometheus.Gauge
	RenderSeconds *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	tablesLoaded := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_tables_loaded_total"})
	loadFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_table_load_failures_total"})
	rowsLoaded := prometheus.NewCounter(prometheus.CounterOpts{Name: "dashboard_rows_loaded_total"})
	enrichedRows := prometheus.NewGauge(prometheus.GaugeOpts{Name: "dashboard_enriched_rows"})
	renderSeconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_view_render_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})

	r.MustRegister(tablesLoaded, loadFailures, rowsLoaded, enrichedRows, renderSeconds)
	return &Registry{
		reg:           r,
		TablesLoaded:  tablesLoaded,
		LoadFailures:  loadFailures,
		RowsLoaded:    rowsLoaded,
		EnrichedRows:  enrichedRows,
		RenderSeconds: renderSeconds,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
