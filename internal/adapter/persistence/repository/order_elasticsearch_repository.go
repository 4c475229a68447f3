package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase/interfaces"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/shopspring/decimal"
)

// OrdersIndex is fixed; it is never taken from a request.
const OrdersIndex = "orders"

const (
	statusTermsSize = 50
	dailyWindowFrom = "now-7d/d"
	dailyWindowTo   = "now"
	dailyKeyFormat  = "yyyy-MM-dd"
)

var orderSourceFields = []string{
	"order_id",
	"country",
	"channel",
	"category",
	"amount",
	"status",
	"created_at",
}

var ErrMalformedResponse = errors.New("malformed search response")

// OrderElasticsearchRepository runs the dashboard queries against the orders
// index.
//
// All queries are read-only and zero-hit except RecentOrders. The client is
// shared by the whole process and configured with retries disabled.

type OrderElasticsearchRepository struct {
	es    *elasticsearch.Client
	index string
}

var _ interfaces.IOrderStore = (*OrderElasticsearchRepository)(nil)

func NewOrderElasticsearchRepository(es *elasticsearch.Client) *OrderElasticsearchRepository {
	return &OrderElasticsearchRepository{es: es, index: OrdersIndex}
}

type metricValue struct {
	Value decimal.Decimal `json:"value"`
}

type statusSummaryResponse struct {
	Aggregations *struct {
		ByStatus *struct {
			Buckets []struct {
				Key       string      `json:"key"`
				AmountSum metricValue `json:"amount_sum"`
			} `json:"buckets"`
		} `json:"by_status"`
		TotalOrders *metricValue `json:"total_orders"`
	} `json:"aggregations"`
}

type dailyRevenueResponse struct {
	Aggregations *struct {
		ByDay *struct {
			Buckets []struct {
				Key         int64       `json:"key"`
				KeyAsString string      `json:"key_as_string"`
				Revenue     metricValue `json:"revenue"`
			} `json:"buckets"`
		} `json:"by_day"`
	} `json:"aggregations"`
}

type orderSource struct {
	OrderID   string          `json:"order_id"`
	Country   string          `json:"country"`
	Channel   string          `json:"channel"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

type recentOrdersResponse struct {
	Hits *struct {
		Total *struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string      `json:"_id"`
			Source orderSource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type searchErrorResponse struct {
	Error struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

func statusSummaryQuery() map[string]any {
	return map[string]any{
		"size": 0,
		"aggs": map[string]any{
			"by_status": map[string]any{
				"terms": map[string]any{"field": "status", "size": statusTermsSize},
				"aggs": map[string]any{
					"amount_sum": map[string]any{"sum": map[string]any{"field": "amount"}},
				},
			},
			"total_orders": map[string]any{"value_count": map[string]any{"field": "order_id"}},
		},
	}
}

func dailyRevenueQuery() map[string]any {
	return map[string]any{
		"size": 0,
		"query": map[string]any{
			"range": map[string]any{
				"created_at": map[string]any{"gte": dailyWindowFrom, "lte": dailyWindowTo},
			},
		},
		"aggs": map[string]any{
			"by_day": map[string]any{
				"date_histogram": map[string]any{
					"field":             "created_at",
					"calendar_interval": "day",
					"format":            dailyKeyFormat,
				},
				"aggs": map[string]any{
					"revenue": map[string]any{"sum": map[string]any{"field": "amount"}},
				},
			},
		},
	}
}

func recentOrdersQuery(limit int) map[string]any {
	return map[string]any{
		"size":             limit,
		"sort":             []map[string]any{{"created_at": "desc"}},
		"_source":          orderSourceFields,
		"track_total_hits": true,
	}
}

func (r *OrderElasticsearchRepository) StatusSummary(ctx context.Context) (entities.StatusSummary, error) {
	var out statusSummaryResponse
	if err := r.search(ctx, statusSummaryQuery(), &out); err != nil {
		return entities.StatusSummary{}, err
	}
	if out.Aggregations == nil || out.Aggregations.ByStatus == nil {
		return entities.StatusSummary{}, fmt.Errorf("%w: missing aggregation by_status", ErrMalformedResponse)
	}
	if out.Aggregations.TotalOrders == nil {
		return entities.StatusSummary{}, fmt.Errorf("%w: missing aggregation total_orders", ErrMalformedResponse)
	}

	totals := make(entities.StatusTotals, len(out.Aggregations.ByStatus.Buckets))
	for _, b := range out.Aggregations.ByStatus.Buckets {
		totals[entities.OrderStatus(b.Key)] = b.AmountSum.Value
	}
	return entities.StatusSummary{
		TotalOrders: out.Aggregations.TotalOrders.Value.IntPart(),
		Totals:      totals,
	}, nil
}

// DailyRevenue returns one bucket per calendar day in chronological order.
// Days without orders between the first and last bucket come back with zero
// revenue; days outside that range are omitted.
func (r *OrderElasticsearchRepository) DailyRevenue(ctx context.Context) ([]entities.DailyBucket, error) {
	var out dailyRevenueResponse
	if err := r.search(ctx, dailyRevenueQuery(), &out); err != nil {
		return nil, err
	}
	if out.Aggregations == nil || out.Aggregations.ByDay == nil {
		return nil, fmt.Errorf("%w: missing aggregation by_day", ErrMalformedResponse)
	}

	buckets := make([]entities.DailyBucket, 0, len(out.Aggregations.ByDay.Buckets))
	for _, b := range out.Aggregations.ByDay.Buckets {
		date := b.KeyAsString
		if date == "" {
			date = time.UnixMilli(b.Key).UTC().Format(time.DateOnly)
		}
		buckets = append(buckets, entities.DailyBucket{Date: date, Revenue: b.Revenue.Value})
	}
	return buckets, nil
}

func (r *OrderElasticsearchRepository) RecentOrders(ctx context.Context, limit int) (entities.OrderPage, error) {
	var out recentOrdersResponse
	if err := r.search(ctx, recentOrdersQuery(limit), &out); err != nil {
		return entities.OrderPage{}, err
	}
	if out.Hits == nil {
		return entities.OrderPage{}, fmt.Errorf("%w: missing hits", ErrMalformedResponse)
	}

	rows := make([]entities.OrderRow, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		rows = append(rows, fromOrderSource(h.ID, h.Source))
	}

	total := int64(len(rows))
	if out.Hits.Total != nil {
		total = out.Hits.Total.Value
	}
	return entities.OrderPage{Total: total, Rows: rows}, nil
}

func (r *OrderElasticsearchRepository) search(ctx context.Context, query map[string]any, out any) error {
	body, err := json.Marshal(query)
	if err != nil {
		return err
	}

	res, err := r.es.Search(
		r.es.Search.WithContext(ctx),
		r.es.Search.WithIndex(r.index),
		r.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return searchError(res.StatusCode, res.Body)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func searchError(status int, body io.Reader) error {
	var e searchErrorResponse
	if err := json.NewDecoder(body).Decode(&e); err == nil && e.Error.Type != "" {
		return fmt.Errorf("%s: %s", e.Error.Type, e.Error.Reason)
	}
	return fmt.Errorf("search failed: %d %s", status, http.StatusText(status))
}

func fromOrderSource(id string, s orderSource) entities.OrderRow {
	return entities.OrderRow{
		ID:        id,
		OrderID:   s.OrderID,
		Country:   s.Country,
		Channel:   s.Channel,
		Category:  s.Category,
		Amount:    s.Amount,
		Status:    entities.OrderStatus(s.Status),
		CreatedAt: s.CreatedAt,
	}
}
