package entities

import "time"

// MetricsSnapshot is a point-in-time copy of MetricsResult archived on demand.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Snapshots are write-once; GET /metrics never reads them.

type MetricsSnapshot struct {
	ID         string
	CapturedAt time.Time
	Metrics    MetricsResult
}
