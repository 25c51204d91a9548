package views

import (
	"math/rand"
	"sort"

	"commerce-dashboard/internal/dataset"
	"commerce-dashboard/internal/model"
)

const (
	ltvOrderMultiple  = 5.0  // assumed lifetime orders per customer
	returningRateDemo = 20.0 // placeholder until repeat purchases are tracked
)

var segments = []string{"Consumer", "Corporate", "Home Office"}

// RegionalSummary is the customer/regional-insights tab, computed over
// delivered orders.
type RegionalSummary struct {
	TotalCustomers        int     `json:"total_customers"`
	TopCustomer           string  `json:"top_customer"`
	TopRegion             string  `json:"top_region"`
	ReturningCustomerRate float64 `json:"returning_customer_rate"`
	AvgOrderValue         float64 `json:"avg_order_value"`
	CustomerLTV           float64 `json:"customer_ltv"`

	SalesBySegment       []LabelValue `json:"sales_by_segment"`
	TopCustomersByProfit []LabelValue `json:"top_customers_by_profit"`
	Retention            []MonthValue `json:"retention"`
}

func Regional(b *dataset.Bundle) RegionalSummary {
	s := RegionalSummary{
		TopCustomer:           "N/A",
		TopRegion:             "N/A",
		ReturningCustomerRate: returningRateDemo,
		TotalCustomers:        distinctCustomers(b.Customers),
		Retention:             retentionDemo(),
	}

	paid := deliveredOrders(b)
	rejoinCustomerLocation(paid, b.Customers)

	// Deterministic demo segment per row, pending a real segmentation
	// source.
	rng := rand.New(rand.NewSource(demoSeed))
	rowSegments := make([]string, len(paid))
	for i := range paid {
		rowSegments[i] = segments[rng.Intn(len(segments))]
	}

	var totalSales float64
	salesByCustomer := map[string]float64{}
	salesByRegion := map[string]float64{}
	salesBySegment := map[string]float64{}
	for i, e := range paid {
		totalSales += e.PaymentValue
		salesByCustomer[e.CustomerID] += e.PaymentValue
		salesByRegion[e.CustomerState] += e.PaymentValue
		salesBySegment[rowSegments[i]] += e.PaymentValue
	}

	if len(paid) > 0 {
		s.AvgOrderValue = totalSales / float64(len(paid))
		s.CustomerLTV = s.AvgOrderValue * ltvOrderMultiple
		s.TopCustomer = maxKey(salesByCustomer)

		delete(salesByRegion, "Unknown")
		if len(salesByRegion) > 0 {
			s.TopRegion = maxKey(salesByRegion)
		} else {
			s.TopRegion = "Unknown"
		}
	}

	s.SalesBySegment = sortedLabelValues(salesBySegment)
	s.TopCustomersByProfit = topCustomersByProfit(salesByCustomer, 10)
	return s
}

// rejoinCustomerLocation re-resolves city/state on the delivered subset,
// falling back to customer_unique_id as the join key when the customer
// table carries no plain customer_id. Unresolvable states become "Unknown".
func rejoinCustomerLocation(rows []model.EnrichedOrder, customers []model.Customer) {
	keyOf := func(c model.Customer) string { return c.CustomerID }
	hasPlainID := false
	for _, c := range customers {
		if c.CustomerID != "" {
			hasPlainID = true
			break
		}
	}
	if !hasPlainID {
		keyOf = func(c model.Customer) string { return c.UniqueID }
	}

	byKey := map[string]model.Customer{}
	for _, c := range customers {
		k := keyOf(c)
		if k == "" {
			continue
		}
		if _, ok := byKey[k]; !ok {
			byKey[k] = c
		}
	}

	for i := range rows {
		if c, ok := byKey[rows[i].CustomerID]; ok {
			rows[i].CustomerCity = c.City
			rows[i].CustomerState = c.State
		}
		if rows[i].CustomerState == "" {
			rows[i].CustomerState = "Unknown"
		}
	}
}

// distinctCustomers counts unique customer identities, preferring the
// cross-purchase unique id when the table carries one.
func distinctCustomers(customers []model.Customer) int {
	unique := map[string]struct{}{}
	anyUniqueID := false
	for _, c := range customers {
		if c.UniqueID != "" {
			anyUniqueID = true
			unique[c.UniqueID] = struct{}{}
		}
	}
	if anyUniqueID {
		return len(unique)
	}
	for _, c := range customers {
		if c.CustomerID != "" {
			unique[c.CustomerID] = struct{}{}
		}
	}
	return len(unique)
}

// maxKey returns the key with the largest value; ties resolve to the
// lexicographically smallest key.
func maxKey(m map[string]float64) string {
	best, bestVal, found := "", 0.0, false
	for k, v := range m {
		if !found || v > bestVal || (v == bestVal && k < best) {
			best, bestVal, found = k, v, true
		}
	}
	if !found {
		return "N/A"
	}
	return best
}

func topCustomersByProfit(salesByCustomer map[string]float64, n int) []LabelValue {
	out := make([]LabelValue, 0, len(salesByCustomer))
	for id, sales := range salesByCustomer {
		out = append(out, LabelValue{Label: id, Value: sales * profitMarginDemo})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// retentionDemo is the static retention trend shown until cohort data
// exists.
func retentionDemo() []MonthValue {
	months := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}
	rates := []float64{50, 55, 60, 58, 62, 65}
	out := make([]MonthValue, len(months))
	for i := range months {
		out[i] = MonthValue{Month: months[i], Value: rates[i]}
	}
	return out
}
