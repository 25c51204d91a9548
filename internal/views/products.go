package views

import (
	"sort"

	"commerce-dashboard/internal/dataset"
)

type ProductSales struct {
	ProductID string  `json:"product_id"`
	Category  string  `json:"category"`
	Sales     float64 `json:"sales"`
	Profit    float64 `json:"profit"`
}

// ProductsSummary is the product/inventory tab. Sales and review figures
// are deterministic placeholders until the export carries real ones.
type ProductsSummary struct {
	BestSellingProduct    string  `json:"best_selling_product"`
	MostProfitableProduct string  `json:"most_profitable_product"`
	TotalQuantitySold     int     `json:"total_quantity_sold"`
	AvgReviewScore        float64 `json:"avg_review_score"`
	TopCategory           string  `json:"top_category"`

	TopBySales          []ProductSales `json:"top_by_sales"`
	BottomByProfit      []ProductSales `json:"bottom_by_profit"`
	SalesProfitScatter  []ProductSales `json:"sales_profit_scatter"`
	AvgReviewByCategory []LabelValue   `json:"avg_review_by_category"`
}

func Products(b *dataset.Bundle) ProductsSummary {
	s := ProductsSummary{
		BestSellingProduct:    "N/A",
		MostProfitableProduct: "N/A",
		TopCategory:           "N/A",
		AvgReviewScore:        4.0,
		// One product per order until line items land in the export.
		TotalQuantitySold: len(b.Orders),
	}
	if len(b.Products) == 0 {
		return s
	}

	s.BestSellingProduct = b.Products[0].ProductID
	s.MostProfitableProduct = s.BestSellingProduct
	s.TopCategory = categoryMode(b)

	scores := demoReviewScoresFor(b.Products)
	total := 0
	for _, sc := range scores {
		total += sc
	}
	s.AvgReviewScore = float64(total) / float64(len(scores))

	sales := demoSalesFor(b.Products)
	rows := make([]ProductSales, len(b.Products))
	for i, p := range b.Products {
		rows[i] = ProductSales{
			ProductID: p.ProductID,
			Category:  p.CategoryName,
			Sales:     sales[i],
			Profit:    sales[i] * profitMarginDemo,
		}
	}
	s.SalesProfitScatter = rows
	s.TopBySales = topN(rows, 10, func(a, b ProductSales) bool { return a.Sales > b.Sales })
	s.BottomByProfit = topN(rows, 10, func(a, b ProductSales) bool { return a.Profit < b.Profit })
	s.AvgReviewByCategory = reviewByCategory(b, scores)
	return s
}

// categoryMode is the most frequent category; ties resolve to the
// lexicographically smallest.
func categoryMode(b *dataset.Bundle) string {
	counts := map[string]int{}
	for _, p := range b.Products {
		counts[p.CategoryName]++
	}
	mode, best := "N/A", 0
	for cat, c := range counts {
		if c > best || (c == best && cat < mode) {
			mode, best = cat, c
		}
	}
	return mode
}

// topN returns the first n rows under less, input order preserved on ties.
func topN(rows []ProductSales, n int, less func(a, b ProductSales) bool) []ProductSales {
	sorted := make([]ProductSales, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func reviewByCategory(b *dataset.Bundle, scores []int) []LabelValue {
	sums := map[string]int{}
	counts := map[string]int{}
	for i, p := range b.Products {
		sums[p.CategoryName] += scores[i]
		counts[p.CategoryName]++
	}
	means := make(map[string]float64, len(sums))
	for cat, total := range sums {
		means[cat] = float64(total) / float64(counts[cat])
	}
	return sortedLabelValues(means)
}
