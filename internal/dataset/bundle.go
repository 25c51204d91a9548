package dataset

import (
	"context"

	"commerce-dashboard/internal/enrich"
	"commerce-dashboard/internal/model"
)

// Bundle holds every loaded table in typed form plus the enriched order
// table the views aggregate over. It is built once at startup and treated
// as immutable; views only ever derive new slices from it.
type Bundle struct {
	Orders    []model.Order
	Payments  []model.Payment
	Products  []model.Product
	Customers []model.Customer
	Sellers   []model.Seller
	Lifecycle []model.LifecycleEvent
	Enriched  []model.EnrichedOrder
}

// Load pulls all six tables through the loader, decodes them, and runs
// enrichment. It never fails: any unavailable source has already collapsed
// to an empty table inside the loader.
func Load(ctx context.Context, l *Loader) *Bundle {
	b := &Bundle{
		Orders:    DecodeOrders(l.Table(ctx, TableOrders)),
		Payments:  DecodePayments(l.Table(ctx, TablePayments)),
		Products:  DecodeProducts(l.Table(ctx, TableProducts)),
		Customers: DecodeCustomers(l.Table(ctx, TableCustomers)),
		Sellers:   DecodeSellers(l.Table(ctx, TableSellers)),
		Lifecycle: DecodeLifecycle(l.Table(ctx, TableLifecycle)),
	}
	b.Enriched = enrich.BuildEnriched(b.Orders, b.Lifecycle, b.Customers, b.Payments)
	return b
}
