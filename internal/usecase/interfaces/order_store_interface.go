package interfaces

import (
	"context"
	"orders_dashboard/internal/domain/entities"
)

// IOrderStore abstracts the read-only search/aggregation queries against the
// orders index.
//
// Every method is a single round trip; implementations must not retry.

type IOrderStore interface {
	StatusSummary(ctx context.Context) (entities.StatusSummary, error)
	DailyRevenue(ctx context.Context) ([]entities.DailyBucket, error)
	RecentOrders(ctx context.Context, limit int) (entities.OrderPage, error)
}
