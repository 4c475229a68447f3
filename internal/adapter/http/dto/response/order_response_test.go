package response

import (
	"encoding/json"
	"testing"

	"orders_dashboard/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromOrderPage(t *testing.T) {
	p := entities.OrderPage{
		Total: 10,
		Rows: []entities.OrderRow{{
			ID:        "doc-1",
			OrderID:   "ORD-1",
			Country:   "BR",
			Channel:   "web",
			Category:  "books",
			Amount:    decimal.RequireFromString("10.25"),
			Status:    entities.OrderStatusRefunded,
			CreatedAt: "2026-10-16T10:00:00Z",
		}},
	}

	res := FromOrderPage(p)
	if res.Total != 10 || len(res.Rows) != 1 {
		t.Fatalf("unexpected response: %+v", res)
	}
	row := res.Rows[0]
	if row.ID != "doc-1" || row.OrderID != "ORD-1" || row.Amount != 10.25 || row.Status != "refunded" || row.CreatedAt != "2026-10-16T10:00:00Z" {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestFromOrderPage_EmptyRowsIsArray(t *testing.T) {
	raw, err := json.Marshal(FromOrderPage(entities.OrderPage{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"total":0,"rows":[]}` {
		t.Fatalf("unexpected json: %s", raw)
	}
}
