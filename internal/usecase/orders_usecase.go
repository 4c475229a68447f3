package usecase

import (
	"context"
	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase/interfaces"
)

// MaxOrderRows caps a single listing; it is not a full-table guarantee.
const MaxOrderRows = 200

// IOrdersUseCase answers "show me the most recent orders".
//
// Rows sharing the same created_at come back in store order, which is not
// stable across requests.

type IOrdersUseCase interface {
	ListOrders(ctx context.Context) (entities.OrderPage, error)
}

type OrdersUseCase struct {
	store interfaces.IOrderStore
}

var _ IOrdersUseCase = (*OrdersUseCase)(nil)

func NewOrdersUseCase(store interfaces.IOrderStore) *OrdersUseCase {
	return &OrdersUseCase{store: store}
}

func (u *OrdersUseCase) ListOrders(ctx context.Context) (entities.OrderPage, error) {
	page, err := u.store.RecentOrders(ctx, MaxOrderRows)
	if err != nil {
		return entities.OrderPage{}, queryFailure(queryRecentOrders, err)
	}

	rows := page.Rows
	if rows == nil {
		rows = []entities.OrderRow{}
	}
	if len(rows) > MaxOrderRows {
		rows = rows[:MaxOrderRows]
	}

	total := page.Total
	if total <= 0 {
		total = int64(len(rows))
	}
	return entities.OrderPage{Total: total, Rows: rows}, nil
}
