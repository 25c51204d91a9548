package dataset

import (
	"strconv"
	"strings"

	"commerce-dashboard/internal/model"
	"commerce-dashboard/internal/table"
)

// The decoders below turn raw tables into typed rows. Each applies the
// schema normalization pass first (EnsureColumn), so a decoded slice can be
// consumed without per-field presence checks.

func DecodeOrders(t table.Table) []model.Order {
	t = t.EnsureColumn("order_id", "").
		EnsureColumn("customer_id", "").
		EnsureColumn("order_status", "")

	ids := t.Column("order_id")
	customers := t.Column("customer_id")
	statuses := t.Column("order_status")
	purchase := ParseTimestamps(t.Column("order_purchase_timestamp"), nil)
	approved := ParseTimestamps(t.Column("order_approved_at"), nil)
	carrier := ParseTimestamps(t.Column("order_delivered_carrier_date"), nil)
	delivered := ParseTimestamps(t.Column("order_delivered_customer_date"), nil)
	estimated := ParseTimestamps(t.Column("order_estimated_delivery_date"), nil)

	out := make([]model.Order, t.NumRows())
	for i := range out {
		out[i] = model.Order{
			OrderID:               ids[i],
			CustomerID:            customers[i],
			OrderStatus:           statuses[i],
			PurchaseTimestamp:     purchase[i],
			ApprovedAt:            approved[i],
			DeliveredCarrierDate:  carrier[i],
			DeliveredCustomerDate: delivered[i],
			EstimatedDeliveryDate: estimated[i],
		}
	}
	return out
}

func DecodePayments(t table.Table) []model.Payment {
	t = t.EnsureColumn("order_id", "").
		EnsureColumn("payment_installments", "0")

	ids := t.Column("order_id")
	types := t.Column("payment_type")
	installments := t.Column("payment_installments")
	values := t.Column("payment_value")

	out := make([]model.Payment, t.NumRows())
	for i := range out {
		inst := 0.0
		if f, ok := parseFloat(installments[i]); ok {
			inst = f
		}
		out[i] = model.Payment{
			OrderID:      ids[i],
			Type:         types[i],
			Installments: inst,
			Value:        parseFloatPtr(values[i]),
		}
	}
	return out
}

func DecodeProducts(t table.Table) []model.Product {
	t = t.EnsureColumn("product_id", "").
		EnsureColumn("product_category_name", "Unknown")

	ids := t.Column("product_id")
	categories := t.Column("product_category_name")

	out := make([]model.Product, t.NumRows())
	for i := range out {
		out[i] = model.Product{ProductID: ids[i], CategoryName: categories[i]}
	}
	return out
}

func DecodeCustomers(t table.Table) []model.Customer {
	t = t.EnsureColumn("customer_id", "").
		EnsureColumn("customer_city", "").
		EnsureColumn("customer_state", "")

	ids := t.Column("customer_id")
	unique := t.Column("customer_unique_id")
	cities := t.Column("customer_city")
	states := t.Column("customer_state")

	out := make([]model.Customer, t.NumRows())
	for i := range out {
		out[i] = model.Customer{
			CustomerID: ids[i],
			UniqueID:   unique[i],
			City:       cities[i],
			State:      states[i],
		}
	}
	return out
}

func DecodeSellers(t table.Table) []model.Seller {
	t = t.EnsureColumn("seller_id", "")
	ids := t.Column("seller_id")
	out := make([]model.Seller, t.NumRows())
	for i := range out {
		out[i] = model.Seller{SellerID: ids[i]}
	}
	return out
}

// DecodeLifecycle requires a real order_id column: a lifecycle table that
// cannot be keyed to orders contributes nothing to enrichment.
func DecodeLifecycle(t table.Table) []model.LifecycleEvent {
	if !t.HasColumn("order_id") {
		return nil
	}
	ids := t.Column("order_id")
	types := t.Column("event_type")
	timestamps := ParseTimestamps(t.Column("event_timestamp"), nil)

	out := make([]model.LifecycleEvent, t.NumRows())
	for i := range out {
		out[i] = model.LifecycleEvent{
			OrderID:   ids[i],
			EventType: types[i],
			Timestamp: timestamps[i],
		}
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseFloatPtr(s string) *float64 {
	if f, ok := parseFloat(s); ok {
		return &f
	}
	return nil
}
