package response

import (
	"orders_dashboard/internal/domain/entities"
)

type KPIResponse struct {
	TotalOrders    int64   `json:"totalOrders"`
	PaidAmount     float64 `json:"paidAmount"`
	RefundedAmount float64 `json:"refundedAmount"`
	Profit         float64 `json:"profit"`
}

type TimeseriesPointResponse struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type MetricsResponse struct {
	KPIs       KPIResponse               `json:"kpis"`
	Timeseries []TimeseriesPointResponse `json:"timeseries"`
}

func FromMetrics(m entities.MetricsResult) MetricsResponse {
	return MetricsResponse{
		KPIs:       fromKPIs(m),
		Timeseries: fromTimeseries(m.Timeseries),
	}
}

// fromKPIs converts once, at the edge; profit is subtracted in decimal first.
func fromKPIs(m entities.MetricsResult) KPIResponse {
	return KPIResponse{
		TotalOrders:    m.TotalOrders,
		PaidAmount:     m.PaidAmount.InexactFloat64(),
		RefundedAmount: m.RefundedAmount.InexactFloat64(),
		Profit:         m.Profit().InexactFloat64(),
	}
}

func fromTimeseries(buckets []entities.DailyBucket) []TimeseriesPointResponse {
	out := make([]TimeseriesPointResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, TimeseriesPointResponse{Date: b.Date, Revenue: b.Revenue.InexactFloat64()})
	}
	return out
}
