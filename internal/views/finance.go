package views

import (
	"sort"

	"commerce-dashboard/internal/dataset"
	"commerce-dashboard/internal/model"
)

const (
	shippingRate     = 0.10 // shipping cost as a share of sales
	installmentFee   = 2.0  // flat fee per installment
	profitMarginDemo = 0.20 // assumed margin for derived profit series
	avgDiscountDemo  = 10.0 // placeholder until discounts land in the export
)

type MonthSalesProfit struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Profit float64 `json:"profit"`
}

type CategoryScatterPoint struct {
	Category string  `json:"category"`
	Discount float64 `json:"discount"`
	Profit   float64 `json:"profit"`
}

type RegionRevenue struct {
	Month   string  `json:"month"`
	State   string  `json:"state"`
	Revenue float64 `json:"revenue"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
	Profit   float64 `json:"profit"`
}

// FinanceSummary is the financial-performance tab, computed over delivered
// orders.
type FinanceSummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalProfit       float64 `json:"total_profit"`
	ProfitMarginPct   float64 `json:"profit_margin_pct"`
	AvgDiscountPct    float64 `json:"avg_discount_pct"`
	TotalShippingCost float64 `json:"total_shipping_cost"`

	// TimestampColumn names the column the monthly series was derived
	// from, empty when no usable timestamps exist.
	TimestampColumn string             `json:"timestamp_column"`
	MonthlySales    []MonthSalesProfit `json:"monthly_sales"`

	CategoryScatter []CategoryScatterPoint `json:"category_scatter"`
	ShippingByMode  []LabelValue           `json:"shipping_by_mode"`
	SalesByCategory []CategorySales        `json:"sales_by_category"`
	RevenueByRegion []RegionRevenue        `json:"revenue_by_region"`
}

func Finance(b *dataset.Bundle) FinanceSummary {
	paid := byStatus(b, "delivered")

	var s FinanceSummary
	var installments float64
	for _, e := range paid {
		s.TotalSales += e.PaymentValue
		if e.PaymentInstallments != nil {
			installments += *e.PaymentInstallments
		}
	}
	s.TotalShippingCost = s.TotalSales * shippingRate
	paymentFees := installments * installmentFee
	s.TotalProfit = s.TotalSales - (s.TotalShippingCost + paymentFees)
	if s.TotalSales > 0 {
		s.ProfitMarginPct = s.TotalProfit / s.TotalSales * 100
	}
	s.AvgDiscountPct = avgDiscountDemo

	if name, month, ok := pickTimestamp(paid); ok {
		s.TimestampColumn = name
		for _, mv := range monthlySums(paid, month, func(e model.EnrichedOrder) float64 { return e.PaymentValue }) {
			s.MonthlySales = append(s.MonthlySales, MonthSalesProfit{
				Month:  mv.Month,
				Sales:  mv.Value,
				Profit: mv.Value * profitMarginDemo,
			})
		}
	}

	s.CategoryScatter = categoryScatter(b.Products)
	s.ShippingByMode = []LabelValue{
		{Label: "Standard", Value: 500},
		{Label: "First Class", Value: 300},
		{Label: "Same Day", Value: 100},
	}
	s.SalesByCategory = salesByCategory(b.Products)
	s.RevenueByRegion = revenueByRegion(b)
	return s
}

// categoryScatter pairs the first five distinct product categories with
// fixed demo discount/profit values.
func categoryScatter(products []model.Product) []CategoryScatterPoint {
	discounts := []float64{10, 15, 5, 20, 8}
	profits := []float64{100, 50, 200, 30, 150}

	seen := map[string]struct{}{}
	var out []CategoryScatterPoint
	for _, p := range products {
		if p.CategoryName == "" {
			continue
		}
		if _, ok := seen[p.CategoryName]; ok {
			continue
		}
		seen[p.CategoryName] = struct{}{}
		i := len(out)
		out = append(out, CategoryScatterPoint{
			Category: p.CategoryName,
			Discount: discounts[i],
			Profit:   profits[i],
		})
		if len(out) == len(discounts) {
			break
		}
	}
	return out
}

// salesByCategory aggregates the deterministic demo sales figures per
// category; the treemap input.
func salesByCategory(products []model.Product) []CategorySales {
	sales := demoSalesFor(products)
	byCat := map[string]float64{}
	for i, p := range products {
		byCat[p.CategoryName] += sales[i]
	}
	out := make([]CategorySales, 0, len(byCat))
	for cat, total := range byCat {
		out = append(out, CategorySales{Category: cat, Sales: total, Profit: total * profitMarginDemo})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// revenueByRegion sums payment_value by (month, customer_state) over rows
// whose lifecycle reached order_paid, falling back to delivered orders when
// no rows carry that event.
func revenueByRegion(b *dataset.Bundle) []RegionRevenue {
	rows := make([]model.EnrichedOrder, 0)
	for _, e := range b.Enriched {
		if e.EventType == "order_paid" {
			rows = append(rows, e)
		}
	}
	if len(rows) == 0 {
		rows = byStatus(b, "delivered")
	}

	_, month, ok := pickTimestamp(rows)
	if !ok {
		return nil
	}
	type key struct{ month, state string }
	sums := map[key]float64{}
	for _, e := range rows {
		m := month(e)
		if m == "" || e.CustomerState == "" {
			continue
		}
		sums[key{m, e.CustomerState}] += e.PaymentValue
	}
	out := make([]RegionRevenue, 0, len(sums))
	for k, v := range sums {
		out = append(out, RegionRevenue{Month: k.month, State: k.state, Revenue: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].State < out[j].State
	})
	return out
}
