package views

import (
	"sort"

	"commerce-dashboard/internal/dataset"
)

// FunnelStages is the fixed stage order of the lifecycle funnel. Stages
// absent from the data still appear with a zero count.
var FunnelStages = []string{"order_created", "order_paid", "order_shipped", "order_delivered"}

// JourneySummary is the customer-journey tab: order flow KPIs plus the
// processing-time trend, status breakdown, and lifecycle funnel.
type JourneySummary struct {
	AvgProcessingTimeDays float64 `json:"avg_processing_time_days"`
	TotalOrders           int     `json:"total_orders"`
	TotalLateOrders       int     `json:"total_late_orders"`
	LatePercentage        float64 `json:"late_percentage"`
	AvgReviewScore        float64 `json:"avg_review_score"`

	ProcessingTimeTrend []MonthValue `json:"processing_time_trend"`
	StatusCounts        []LabelCount `json:"status_counts"`
	Funnel              []LabelCount `json:"funnel"`
}

func Journey(b *dataset.Bundle) JourneySummary {
	s := JourneySummary{TotalOrders: len(b.Orders)}

	// Average processing time over delivered orders with both timestamps.
	var sum float64
	var n int
	for _, e := range deliveredOrders(b) {
		if e.ProcessingTimeDays != nil {
			sum += *e.ProcessingTimeDays
			n++
		}
	}
	if n > 0 {
		s.AvgProcessingTimeDays = sum / float64(n)
	}

	// Review score proxy: delivered share scaled to a 5-point scale.
	if s.TotalOrders > 0 {
		delivered := 0
		for _, o := range b.Orders {
			if o.OrderStatus == "delivered" {
				delivered++
			}
		}
		s.AvgReviewScore = float64(delivered) / float64(s.TotalOrders) * 5.0
	}

	for _, e := range b.Enriched {
		if e.DeliveredCustomerDate != nil && e.EstimatedDeliveryDate != nil &&
			e.DeliveredCustomerDate.After(*e.EstimatedDeliveryDate) {
			s.TotalLateOrders++
		}
	}
	if s.TotalOrders > 0 {
		s.LatePercentage = float64(s.TotalLateOrders) / float64(s.TotalOrders) * 100
	}

	s.ProcessingTimeTrend = processingTrend(b)
	s.StatusCounts = statusCounts(b)
	s.Funnel = funnel(b)
	return s
}

// processingTrend is the per-month mean of processing_time_days, over rows
// where both the month and the processing time are present.
func processingTrend(b *dataset.Bundle) []MonthValue {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, e := range b.Enriched {
		if e.Month == "" || e.ProcessingTimeDays == nil {
			continue
		}
		sums[e.Month] += *e.ProcessingTimeDays
		counts[e.Month]++
	}
	means := make(map[string]float64, len(sums))
	for m, total := range sums {
		means[m] = total / float64(counts[m])
	}
	return sortedMonthValues(means)
}

// statusCounts is the order count per status, most frequent first.
func statusCounts(b *dataset.Bundle) []LabelCount {
	counts := map[string]int{}
	for _, o := range b.Orders {
		counts[o.OrderStatus]++
	}
	out := make([]LabelCount, 0, len(counts))
	for status, c := range counts {
		out = append(out, LabelCount{Label: status, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func funnel(b *dataset.Bundle) []LabelCount {
	counts := map[string]int{}
	for _, ev := range b.Lifecycle {
		counts[ev.EventType]++
	}
	out := make([]LabelCount, len(FunnelStages))
	for i, stage := range FunnelStages {
		out[i] = LabelCount{Label: stage, Count: counts[stage]}
	}
	return out
}
