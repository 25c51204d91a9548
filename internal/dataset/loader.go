package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"commerce-dashboard/internal/source"
	"commerce-dashboard/internal/table"
)

// Source table names as exported by the upstream warehouse job.
const (
	TableOrders    = "dim_order"
	TablePayments  = "dim_payments"
	TableProducts  = "dim_products"
	TableCustomers = "dim_customer"
	TableSellers   = "dim_sellers"
	TableLifecycle = "fact_order_lifecycle"
)

// Result is the typed outcome of a single table load: the table that was
// produced and, when it is empty because the source failed, the reason.
// Reasons never leave the loader as errors; they exist for logging.
type Result struct {
	Table  table.Table
	Reason error
}

// Loader fetches tables from a Source and memoizes each result for the
// process lifetime. There is no invalidation; the dashboard's tables are
// loaded once and treated as immutable afterwards.
type Loader struct {
	src source.Source
	log *zap.Logger

	mu    sync.Mutex
	cache map[string]Result
}

func NewLoader(src source.Source, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		src:   src,
		log:   log,
		cache: make(map[string]Result),
	}
}

// Load fetches the named table, caching the outcome. A source failure is
// converted into an empty table with the reason attached; it is logged once,
// on the load that populated the cache.
func (l *Loader) Load(ctx context.Context, name string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	if res, ok := l.cache[name]; ok {
		return res
	}

	tbl, err := l.src.Fetch(ctx, name)
	res := Result{Table: tbl}
	if err != nil {
		res = Result{Table: table.Empty(), Reason: err}
		l.log.Warn("table unavailable, substituting empty table",
			zap.String("table", name),
			zap.Error(err),
		)
	} else {
		l.log.Debug("table loaded",
			zap.String("table", name),
			zap.Int("rows", tbl.NumRows()),
		)
	}
	l.cache[name] = res
	return res
}

// Table is the pipeline-boundary accessor: always a usable (possibly
// zero-row) table, never an error.
func (l *Loader) Table(ctx context.Context, name string) table.Table {
	return l.Load(ctx, name).Table
}
