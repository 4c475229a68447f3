package interfaces

import (
	"context"
	"orders_dashboard/internal/domain/entities"
)

// IMetricsSnapshotRepository abstracts DynamoDB persistence for MetricsSnapshot.

type IMetricsSnapshotRepository interface {
	Create(ctx context.Context, s entities.MetricsSnapshot) (entities.MetricsSnapshot, error)
	ListRecent(ctx context.Context, limit int) ([]entities.MetricsSnapshot, error)
}
