// Package views computes the scalar metrics and chart-ready aggregates for
// the four dashboard tabs. Every renderer tolerates empty tables and
// missing values by substituting documented defaults (0, "N/A", "Unknown")
// and never returns an error.
package views

import (
	"math/rand"
	"sort"

	"commerce-dashboard/internal/dataset"
	"commerce-dashboard/internal/model"
)

// demoSeed makes the placeholder series (demo sales, review scores, segment
// assignment) reproducible across renders.
const demoSeed = 42

type MonthValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// deliveredOrders filters the enriched table to delivered orders with a
// known delivery timestamp. Renderers derive their own copies; the bundle
// is never mutated.
func deliveredOrders(b *dataset.Bundle) []model.EnrichedOrder {
	var out []model.EnrichedOrder
	for _, e := range b.Enriched {
		if e.OrderStatus == "delivered" && e.DeliveredCustomerDate != nil {
			out = append(out, e)
		}
	}
	return out
}

// byStatus filters the enriched table on order status alone.
func byStatus(b *dataset.Bundle, status string) []model.EnrichedOrder {
	var out []model.EnrichedOrder
	for _, e := range b.Enriched {
		if e.OrderStatus == status {
			out = append(out, e)
		}
	}
	return out
}

// monthlySums groups rows by month key and sums the extracted value,
// skipping rows with an empty month. Results are sorted by month.
func monthlySums(rows []model.EnrichedOrder, month func(model.EnrichedOrder) string, value func(model.EnrichedOrder) float64) []MonthValue {
	sums := map[string]float64{}
	for _, r := range rows {
		m := month(r)
		if m == "" {
			continue
		}
		sums[m] += value(r)
	}
	return sortedMonthValues(sums)
}

func sortedMonthValues(m map[string]float64) []MonthValue {
	out := make([]MonthValue, 0, len(m))
	for k, v := range m {
		out = append(out, MonthValue{Month: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedLabelValues(m map[string]float64) []LabelValue {
	out := make([]LabelValue, 0, len(m))
	for k, v := range m {
		out = append(out, LabelValue{Label: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// demoSalesFor assigns each product a deterministic placeholder sales
// figure in [1000, 5000), in product order. Stands in for a sales column
// the product export does not carry.
func demoSalesFor(products []model.Product) []float64 {
	rng := rand.New(rand.NewSource(demoSeed))
	out := make([]float64, len(products))
	for i := range products {
		out[i] = 1000 + rng.Float64()*4000
	}
	return out
}

// demoReviewScoresFor assigns each product a deterministic placeholder
// review score in 1..4, in product order.
func demoReviewScoresFor(products []model.Product) []int {
	rng := rand.New(rand.NewSource(demoSeed))
	out := make([]int, len(products))
	for i := range products {
		out[i] = 1 + rng.Intn(4)
	}
	return out
}

// pickTimestamp chooses the column used for monthly series: the lifecycle
// event timestamp when any row carries one, else the purchase timestamp.
// The returned accessor yields "" for rows where the chosen column is
// missing; ok is false when neither column has any value.
func pickTimestamp(rows []model.EnrichedOrder) (name string, month func(model.EnrichedOrder) string, ok bool) {
	anyEvent, anyPurchase := false, false
	for _, r := range rows {
		if r.EventTimestamp != nil {
			anyEvent = true
		}
		if r.PurchaseTimestamp != nil {
			anyPurchase = true
		}
	}
	switch {
	case anyEvent:
		return "event_timestamp", func(r model.EnrichedOrder) string { return r.LifecycleMonth }, true
	case anyPurchase:
		return "order_purchase_timestamp", func(r model.EnrichedOrder) string { return r.Month }, true
	default:
		return "", nil, false
	}
}
