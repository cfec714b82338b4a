package entity

import "time"

// OrderLine is a single product reference inside an order.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// Order is a customer order as the backend understands it.
type Order struct {
	ID             string
	OrderType      string
	Currency       string
	Lines          []OrderLine
	Status         OrderStatus
	IsScheduled    bool
	IsCancelled    bool
	PaidAt         *time.Time // nil until payment is confirmed
	CreatedAt      time.Time
	DeliveryCharge float64
}

// OrderSummary carries the counters the backend returns alongside the
// order collection.
type OrderSummary struct {
	TotalOrders           int
	TotalOrdersThisMonth  int
	TotalOrdersToday      int
	PrintReadyCount       int
	PaymentConfirmedCount int
	PaymentPendingCount   int
}

// OrderList is the order collection payload: the orders plus the summary
// counters.
type OrderList struct {
	Orders  []Order
	Summary OrderSummary
}
