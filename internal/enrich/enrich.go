// Package enrich builds the wide per-order table the dashboard views
// aggregate over: orders left-joined with the latest lifecycle event,
// customer location, and a single payment row, plus computed columns.
package enrich

import (
	"sort"
	"time"

	"commerce-dashboard/internal/model"
)

// DefaultPaymentValue is the explicit placeholder for orders with no
// resolvable payment amount. Deliberately not zero, so averages over
// payment_value are not dragged down by missing data.
const DefaultPaymentValue = 100.0

const secondsPerDay = 24 * 3600

// lifecycleAgg is the one-row-per-order reduction of the lifecycle table.
type lifecycleAgg struct {
	timestamp *time.Time
	eventType string
}

// BuildEnriched produces one EnrichedOrder per Order. Every join is
// left-preserving: the output row count always equals len(orders),
// regardless of which side tables are empty.
func BuildEnriched(orders []model.Order, events []model.LifecycleEvent, customers []model.Customer, payments []model.Payment) []model.EnrichedOrder {
	lifecycle := aggregateLifecycle(events)
	customerByID := dedupeCustomers(customers)
	paymentByOrder := selectPayments(payments)

	out := make([]model.EnrichedOrder, len(orders))
	for i, o := range orders {
		e := model.EnrichedOrder{Order: o}

		if agg, ok := lifecycle[o.OrderID]; ok {
			e.EventType = agg.eventType
			e.EventTimestamp = agg.timestamp
		}
		if c, ok := customerByID[o.CustomerID]; ok {
			e.CustomerCity = c.City
			e.CustomerState = c.State
		}
		if p, ok := paymentByOrder[o.OrderID]; ok {
			e.PaymentType = p.Type
			inst := p.Installments
			e.PaymentInstallments = &inst
			if p.Value != nil {
				e.PaymentValue = *p.Value
			} else {
				e.PaymentValue = DefaultPaymentValue
			}
		} else {
			e.PaymentValue = DefaultPaymentValue
		}

		e.Month = monthOf(o.PurchaseTimestamp)
		e.LifecycleMonth = monthOf(e.EventTimestamp)
		e.ProcessingTimeDays = processingDays(o.PurchaseTimestamp, o.DeliveredCustomerDate)

		out[i] = e
	}
	return out
}

// aggregateLifecycle reduces the event table to one row per order: the
// maximum non-missing timestamp, and the event type of the last row (in
// order-id-then-timestamp sort order, missing timestamps last, input order
// preserved on ties) that carries a non-empty type.
func aggregateLifecycle(events []model.LifecycleEvent) map[string]lifecycleAgg {
	if len(events) == 0 {
		return nil
	}
	sorted := make([]model.LifecycleEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OrderID != sorted[j].OrderID {
			return sorted[i].OrderID < sorted[j].OrderID
		}
		ti, tj := sorted[i].Timestamp, sorted[j].Timestamp
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		default:
			return ti.Before(*tj)
		}
	})

	out := make(map[string]lifecycleAgg)
	for _, ev := range sorted {
		agg := out[ev.OrderID]
		if ev.Timestamp != nil && (agg.timestamp == nil || ev.Timestamp.After(*agg.timestamp)) {
			agg.timestamp = ev.Timestamp
		}
		if ev.EventType != "" {
			agg.eventType = ev.EventType
		}
		out[ev.OrderID] = agg
	}
	return out
}

// dedupeCustomers keeps the first occurrence per customer id.
func dedupeCustomers(customers []model.Customer) map[string]model.Customer {
	if len(customers) == 0 {
		return nil
	}
	out := make(map[string]model.Customer, len(customers))
	for _, c := range customers {
		if _, ok := out[c.CustomerID]; !ok {
			out[c.CustomerID] = c
		}
	}
	return out
}

// selectPayments keeps, for each order, the payment row with the smallest
// installment count; the earliest input row wins ties.
func selectPayments(payments []model.Payment) map[string]model.Payment {
	if len(payments) == 0 {
		return nil
	}
	out := make(map[string]model.Payment, len(payments))
	for _, p := range payments {
		best, ok := out[p.OrderID]
		if !ok || p.Installments < best.Installments {
			out[p.OrderID] = p
		}
	}
	return out
}

// monthOf renders a timestamp at year-month granularity, empty when missing.
func monthOf(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01")
}

// processingDays is the purchase-to-delivery duration in fractional days,
// defined only when both timestamps are present. Negative durations (bad
// source data) pass through unmodified.
func processingDays(purchase, delivered *time.Time) *float64 {
	if purchase == nil || delivered == nil {
		return nil
	}
	days := delivered.Sub(*purchase).Seconds() / secondsPerDay
	return &days
}
