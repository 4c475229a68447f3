package response

import (
	"orders_dashboard/internal/domain/entities"
	"time"
)

type MetricsSnapshotResponse struct {
	ID         string                    `json:"id"`
	CapturedAt time.Time                 `json:"captured_at"`
	KPIs       KPIResponse               `json:"kpis"`
	Timeseries []TimeseriesPointResponse `json:"timeseries"`
}

type MetricsSnapshotListResponse struct {
	Total int                       `json:"total"`
	Rows  []MetricsSnapshotResponse `json:"rows"`
}

func FromMetricsSnapshot(s entities.MetricsSnapshot) MetricsSnapshotResponse {
	return MetricsSnapshotResponse{
		ID:         s.ID,
		CapturedAt: s.CapturedAt,
		KPIs:       fromKPIs(s.Metrics),
		Timeseries: fromTimeseries(s.Metrics.Timeseries),
	}
}

func FromMetricsSnapshots(list []entities.MetricsSnapshot) MetricsSnapshotListResponse {
	rows := make([]MetricsSnapshotResponse, 0, len(list))
	for _, s := range list {
		rows = append(rows, FromMetricsSnapshot(s))
	}
	return MetricsSnapshotListResponse{Total: len(rows), Rows: rows}
}
