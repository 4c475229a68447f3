package entities

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of an order as stored in the orders index.
//
// Only paid and refunded take part in the KPI math; any other value is passed
// through to the listing untouched.

type OrderStatus string

const (
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusRefunded OrderStatus = "refunded"
)

// OrderRow is one order document as returned by the recent-orders listing.
//
// Storage model (Elasticsearch):
//   - index: orders
//   - ID is the store-assigned _id, distinct from the business OrderID.
//
// CreatedAt keeps the string stored in the document; the store owns its format.
type OrderRow struct {
	ID        string
	OrderID   string
	Country   string
	Channel   string
	Category  string
	Amount    decimal.Decimal
	Status    OrderStatus
	CreatedAt string
}

// OrderPage is a capped, newest-first slice of the orders index.
type OrderPage struct {
	Total int64
	Rows  []OrderRow
}
