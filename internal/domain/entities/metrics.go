package entities

import "github.com/shopspring/decimal"

// StatusTotals maps an order status to the summed amount of its orders.
// A status missing from the aggregation sums to zero.
type StatusTotals map[OrderStatus]decimal.Decimal

func (t StatusTotals) Sum(status OrderStatus) decimal.Decimal {
	if v, ok := t[status]; ok {
		return v
	}
	return decimal.Zero
}

// StatusSummary is the outcome of the by-status aggregation.
type StatusSummary struct {
	TotalOrders int64
	Totals      StatusTotals
}

// DailyBucket is the revenue of one calendar day inside the trailing window.
type DailyBucket struct {
	Date    string
	Revenue decimal.Decimal
}

// MetricsResult is the normalized KPI view of the whole orders index.
//
// It is rebuilt on every request and never cached.
type MetricsResult struct {
	TotalOrders    int64
	PaidAmount     decimal.Decimal
	RefundedAmount decimal.Decimal
	Timeseries     []DailyBucket
}

func (m MetricsResult) Profit() decimal.Decimal {
	return m.PaidAmount.Sub(m.RefundedAmount)
}
