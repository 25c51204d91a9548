package model

import "time"

// Order is one row of the orders table. Timestamp fields are nil when the
// source value was absent or unparseable.
type Order struct {
	OrderID               string
	CustomerID            string
	OrderStatus           string
	PurchaseTimestamp     *time.Time
	ApprovedAt            *time.Time
	DeliveredCarrierDate  *time.Time
	DeliveredCustomerDate *time.Time
	EstimatedDeliveryDate *time.Time
}

// Payment is one payment row; an order may have several.
type Payment struct {
	OrderID      string
	Type         string
	Installments float64
	// Value is nil when the source cell was missing or non-numeric.
	Value *float64
}

type Product struct {
	ProductID    string
	CategoryName string
}

type Customer struct {
	CustomerID string
	// UniqueID is the cross-purchase customer identity when the source
	// carries one; empty otherwise.
	UniqueID string
	City     string
	State    string
}

type Seller struct {
	SellerID string
}

// LifecycleEvent is a timestamped state transition in an order's life.
type LifecycleEvent struct {
	OrderID   string
	EventType string
	Timestamp *time.Time
}

// EnrichedOrder is one order row widened with the latest lifecycle event,
// customer location, a single payment row, and the computed columns the
// views aggregate over.
type EnrichedOrder struct {
	Order

	EventType      string
	EventTimestamp *time.Time

	CustomerCity  string
	CustomerState string

	PaymentType         string
	PaymentInstallments *float64
	// PaymentValue is always set after enrichment (100.0 when the order
	// had no resolvable payment).
	PaymentValue float64

	// Month and LifecycleMonth are "2006-01" display strings, empty when
	// the underlying timestamp is missing.
	Month          string
	LifecycleMonth string

	// ProcessingTimeDays is set only when both purchase and
	// delivered-to-customer timestamps are present. Negative values are
	// passed through as-is.
	ProcessingTimeDays *float64
}
