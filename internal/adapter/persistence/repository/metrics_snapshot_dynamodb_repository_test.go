package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"orders_dashboard/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/shopspring/decimal"
)

func TestMetricsSnapshotItemMapping(t *testing.T) {
	captured := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	s := entities.MetricsSnapshot{
		ID:         "snap-1",
		CapturedAt: captured,
		Metrics: entities.MetricsResult{
			TotalOrders:    2,
			PaidAmount:     decimal.RequireFromString("100.10"),
			RefundedAmount: decimal.RequireFromString("30.05"),
			Timeseries: []entities.DailyBucket{
				{Date: "2026-10-16", Revenue: decimal.RequireFromString("130.15")},
			},
		},
	}

	it := toMetricsSnapshotItem(s)
	if it.Profit != "70.05" || it.PaidAmount != "100.1" || it.CapturedAt != "2026-10-16T09:30:00Z" {
		t.Fatalf("unexpected item: %+v", it)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["id"]; !ok {
		t.Fatalf("expected id attribute, got %v", av)
	}
	var back metricsSnapshotItem
	if err := attributevalue.UnmarshalMap(av, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	res, err := fromMetricsSnapshotItem(back)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "snap-1" || !res.CapturedAt.Equal(captured) || res.Metrics.TotalOrders != 2 {
		t.Fatalf("unexpected snapshot: %+v", res)
	}
	if !res.Metrics.Profit().Equal(decimal.RequireFromString("70.05")) {
		t.Fatalf("unexpected profit: %s", res.Metrics.Profit())
	}
	if len(res.Metrics.Timeseries) != 1 || !res.Metrics.Timeseries[0].Revenue.Equal(decimal.RequireFromString("130.15")) {
		t.Fatalf("unexpected timeseries: %+v", res.Metrics.Timeseries)
	}
}

func TestNewestSnapshots(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		items := []metricsSnapshotItem{
			{ID: "old", CapturedAt: "2026-10-14T00:00:00Z", PaidAmount: "1", RefundedAmount: "0"},
			{ID: "new", CapturedAt: "2026-10-16T00:00:00Z", PaidAmount: "3", RefundedAmount: "0"},
			{ID: "mid", CapturedAt: "2026-10-15T00:00:00Z", PaidAmount: "2", RefundedAmount: "0"},
		}

		out, err := newestSnapshots(items, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].ID != "new" || out[1].ID != "mid" {
			t.Fatalf("unexpected order: %+v", out)
		}
	})

	cases := []struct {
		name string
		item metricsSnapshotItem
	}{
		{"bad paid amount", metricsSnapshotItem{ID: "bad", CapturedAt: "2026-10-15T00:00:00Z", PaidAmount: "1O0", RefundedAmount: "30"}},
		{"bad refunded amount", metricsSnapshotItem{ID: "bad", CapturedAt: "2026-10-15T00:00:00Z", PaidAmount: "100", RefundedAmount: ""}},
		{"bad captured at", metricsSnapshotItem{ID: "bad", CapturedAt: "yesterday", PaidAmount: "100", RefundedAmount: "30"}},
		{"bad daily revenue", metricsSnapshotItem{ID: "bad", CapturedAt: "2026-10-15T00:00:00Z", PaidAmount: "100", RefundedAmount: "30",
			Timeseries: []dailyBucketItem{{Date: "2026-10-15", Revenue: "n/a"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []metricsSnapshotItem{
				{ID: "ok", CapturedAt: "2026-10-16T00:00:00Z", PaidAmount: "3", RefundedAmount: "1"},
				tc.item,
			}

			out, err := newestSnapshots(items, 10)
			if !errors.Is(err, ErrCorruptSnapshot) {
				t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
			}
			if !strings.Contains(err.Error(), "id=bad") {
				t.Fatalf("expected snapshot id in error, got %v", err)
			}
			if out != nil {
				t.Fatalf("expected no partial list, got %+v", out)
			}
		})
	}
}
