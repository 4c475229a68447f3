package response

import (
	"orders_dashboard/internal/domain/entities"
)

type OrderRowResponse struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	Country   string  `json:"country"`
	Channel   string  `json:"channel"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type OrdersResponse struct {
	Total int64              `json:"total"`
	Rows  []OrderRowResponse `json:"rows"`
}

func FromOrderRow(o entities.OrderRow) OrderRowResponse {
	return OrderRowResponse{
		ID:        o.ID,
		OrderID:   o.OrderID,
		Country:   o.Country,
		Channel:   o.Channel,
		Category:  o.Category,
		Amount:    o.Amount.InexactFloat64(),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func FromOrderPage(p entities.OrderPage) OrdersResponse {
	rows := make([]OrderRowResponse, 0, len(p.Rows))
	for _, o := range p.Rows {
		rows = append(rows, FromOrderRow(o))
	}
	return OrdersResponse{Total: p.Total, Rows: rows}
}
