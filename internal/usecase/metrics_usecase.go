package usecase

import (
	"context"
	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const (
	queryStatusSummary = "status_summary"
	queryDailyRevenue  = "daily_revenue"
	queryRecentOrders  = "recent_orders"
)

// IMetricsUseCase answers "what are the current KPIs and the weekly revenue trend".

type IMetricsUseCase interface {
	GetMetrics(ctx context.Context) (entities.MetricsResult, error)
}

type MetricsUseCase struct {
	store interfaces.IOrderStore
}

var _ IMetricsUseCase = (*MetricsUseCase)(nil)

func NewMetricsUseCase(store interfaces.IOrderStore) *MetricsUseCase {
	return &MetricsUseCase{store: store}
}

// GetMetrics issues the status and daily aggregations in parallel. Both must
// succeed: the first failure cancels the other query and no partial result
// is returned.
func (u *MetricsUseCase) GetMetrics(ctx context.Context) (entities.MetricsResult, error) {
	var (
		summary entities.StatusSummary
		daily   []entities.DailyBucket
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := u.store.StatusSummary(gctx)
		if err != nil {
			return queryFailure(queryStatusSummary, err)
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		d, err := u.store.DailyRevenue(gctx)
		if err != nil {
			return queryFailure(queryDailyRevenue, err)
		}
		daily = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.MetricsResult{}, err
	}

	if daily == nil {
		daily = []entities.DailyBucket{}
	}

	return entities.MetricsResult{
		TotalOrders:    summary.TotalOrders,
		PaidAmount:     summary.Totals.Sum(entities.OrderStatusPaid),
		RefundedAmount: summary.Totals.Sum(entities.OrderStatusRefunded),
		Timeseries:     daily,
	}, nil
}
