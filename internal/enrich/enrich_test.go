package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-dashboard/internal/model"
)

func ts(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", s)
	require.NoError(t, err)
	return &parsed
}

func fpt(v float64) *float64 { return &v }

func TestCardinalityPreservedForEmptySideTables(t *testing.T) {
	orders := []model.Order{{OrderID: "a"}, {OrderID: "b"}, {OrderID: "c"}}

	cases := []struct {
		name      string
		events    []model.LifecycleEvent
		customers []model.Customer
		payments  []model.Payment
	}{
		{name: "all empty"},
		{name: "only events", events: []model.LifecycleEvent{{OrderID: "a", EventType: "order_created"}}},
		{name: "only customers", customers: []model.Customer{{CustomerID: "c1", State: "SP"}}},
		{name: "only payments", payments: []model.Payment{{OrderID: "b", Value: fpt(10)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildEnriched(orders, tc.events, tc.customers, tc.payments)
			assert.Len(t, got, len(orders))
		})
	}

	assert.Empty(t, BuildEnriched(nil, nil, nil, nil))
}

func TestPaymentSelectionSmallestInstallments(t *testing.T) {
	orders := []model.Order{{OrderID: "A"}, {OrderID: "B"}, {OrderID: "C"}}
	payments := []model.Payment{
		{OrderID: "A", Type: "credit_card", Installments: 3, Value: fpt(300)},
		{OrderID: "A", Type: "boleto", Installments: 1, Value: fpt(100)},
		{OrderID: "B", Type: "voucher", Installments: 2, Value: fpt(50)},
	}

	got := BuildEnriched(orders, nil, nil, payments)
	require.Len(t, got, 3)

	assert.Equal(t, 100.0, got[0].PaymentValue, "A takes the installments=1 row")
	assert.Equal(t, "boleto", got[0].PaymentType)
	assert.Equal(t, 50.0, got[1].PaymentValue)
	assert.Equal(t, DefaultPaymentValue, got[2].PaymentValue, "C has no payment row")
	assert.Nil(t, got[2].PaymentInstallments)
}

func TestPaymentTiesKeepFirstRow(t *testing.T) {
	orders := []model.Order{{OrderID: "A"}}
	payments := []model.Payment{
		{OrderID: "A", Type: "first", Installments: 2, Value: fpt(10)},
		{OrderID: "A", Type: "second", Installments: 2, Value: fpt(20)},
	}

	got := BuildEnriched(orders, nil, nil, payments)
	assert.Equal(t, "first", got[0].PaymentType)
}

func TestUnparseablePaymentValueDefaults(t *testing.T) {
	orders := []model.Order{{OrderID: "A"}}
	payments := []model.Payment{{OrderID: "A", Installments: 1, Value: nil}}

	got := BuildEnriched(orders, nil, nil, payments)
	assert.Equal(t, DefaultPaymentValue, got[0].PaymentValue)
}

func TestLifecycleLatestEventWins(t *testing.T) {
	orders := []model.Order{{OrderID: "A"}}
	t1 := ts(t, "2024-01-10 08:00:00")
	t2 := ts(t, "2024-01-12 09:30:00")
	events := []model.LifecycleEvent{
		{OrderID: "A", EventType: "order_created", Timestamp: t1},
		{OrderID: "A", EventType: "order_shipped", Timestamp: t2},
	}

	got := BuildEnriched(orders, events, nil, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "order_shipped", got[0].EventType)
	require.NotNil(t, got[0].EventTimestamp)
	assert.True(t, got[0].EventTimestamp.Equal(*t2))
	assert.Equal(t, "2024-01", got[0].LifecycleMonth)
}

func TestLifecycleMissingTimestampsAndTypes(t *testing.T) {
	orders := []model.Order{{OrderID: "A"}}
	t1 := ts(t, "2024-01-10 08:00:00")
	events := []model.LifecycleEvent{
		{OrderID: "A", EventType: "order_created", Timestamp: t1},
		// Missing timestamp sorts last; its non-empty type still wins.
		{OrderID: "A", EventType: "order_paid", Timestamp: nil},
		{OrderID: "A", EventType: "", Timestamp: nil},
	}

	got := BuildEnriched(orders, events, nil, nil)
	assert.Equal(t, "order_paid", got[0].EventType)
	require.NotNil(t, got[0].EventTimestamp)
	assert.True(t, got[0].EventTimestamp.Equal(*t1), "max timestamp ignores missing values")
}

func TestCustomerJoinFirstOccurrenceWins(t *testing.T) {
	orders := []model.Order{{OrderID: "A", CustomerID: "c1"}, {OrderID: "B", CustomerID: "c2"}}
	customers := []model.Customer{
		{CustomerID: "c1", City: "sao paulo", State: "SP"},
		{CustomerID: "c1", City: "campinas", State: "SP"},
	}

	got := BuildEnriched(orders, nil, customers, nil)
	assert.Equal(t, "sao paulo", got[0].CustomerCity)
	assert.Equal(t, "", got[1].CustomerCity, "unmatched customer stays empty")
}

func TestProcessingTimePresence(t *testing.T) {
	purchase := ts(t, "2024-01-10 00:00:00")
	delivered := ts(t, "2024-01-11 12:00:00")

	orders := []model.Order{
		{OrderID: "both", PurchaseTimestamp: purchase, DeliveredCustomerDate: delivered},
		{OrderID: "no-delivery", PurchaseTimestamp: purchase},
		{OrderID: "no-purchase", DeliveredCustomerDate: delivered},
		{OrderID: "neither"},
	}

	got := BuildEnriched(orders, nil, nil, nil)
	require.NotNil(t, got[0].ProcessingTimeDays)
	assert.InDelta(t, 1.5, *got[0].ProcessingTimeDays, 1e-9)
	assert.Nil(t, got[1].ProcessingTimeDays)
	assert.Nil(t, got[2].ProcessingTimeDays)
	assert.Nil(t, got[3].ProcessingTimeDays)
}

func TestNegativeProcessingTimePassesThrough(t *testing.T) {
	purchase := ts(t, "2024-01-10 00:00:00")
	delivered := ts(t, "2024-01-08 00:00:00")

	got := BuildEnriched([]model.Order{{
		OrderID:               "A",
		PurchaseTimestamp:     purchase,
		DeliveredCustomerDate: delivered,
	}}, nil, nil, nil)

	require.NotNil(t, got[0].ProcessingTimeDays)
	assert.InDelta(t, -2.0, *got[0].ProcessingTimeDays, 1e-9)
}

func TestMonthColumns(t *testing.T) {
	purchase := ts(t, "2024-03-05 10:00:00")
	got := BuildEnriched([]model.Order{
		{OrderID: "A", PurchaseTimestamp: purchase},
		{OrderID: "B"},
	}, nil, nil, nil)

	assert.Equal(t, "2024-03", got[0].Month)
	assert.Equal(t, "", got[1].Month)
	assert.Equal(t, "", got[0].LifecycleMonth)
}
