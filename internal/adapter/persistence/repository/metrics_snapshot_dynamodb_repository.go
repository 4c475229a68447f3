package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"orders_dashboard/internal/domain/entities"
	"orders_dashboard/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/shopspring/decimal"
)

const defaultMetricsSnapshotsTableName = "metrics_snapshots"

// ErrCorruptSnapshot reports an archived item whose fields cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt metrics snapshot")

type dailyBucketItem struct {
	Date    string `dynamodbav:"date"`
	Revenue string `dynamodbav:"revenue"`
}

type metricsSnapshotItem struct {
	ID             string            `dynamodbav:"id"`
	CapturedAt     string            `dynamodbav:"captured_at"`
	TotalOrders    int64             `dynamodbav:"total_orders"`
	PaidAmount     string            `dynamodbav:"paid_amount"`
	RefundedAmount string            `dynamodbav:"refunded_amount"`
	Profit         string            `dynamodbav:"profit"`
	Timeseries     []dailyBucketItem `dynamodbav:"timeseries"`
}

// MetricsSnapshotDynamoRepository persists MetricsSnapshot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Amounts are stored as decimal strings so they round-trip exactly.

type MetricsSnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMetricsSnapshotRepository = (*MetricsSnapshotDynamoRepository)(nil)

func NewMetricsSnapshotDynamoRepository(ddb *dynamodb.Client) *MetricsSnapshotDynamoRepository {
	return &MetricsSnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("METRICS_SNAPSHOTS_TABLE", defaultMetricsSnapshotsTableName),
	}
}

func (r *MetricsSnapshotDynamoRepository) Create(ctx context.Context, s entities.MetricsSnapshot) (entities.MetricsSnapshot, error) {
	av, err := attributevalue.MarshalMap(toMetricsSnapshotItem(s))
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	return s, nil
}

// ListRecent scans the whole table and returns the newest limit snapshots.
func (r *MetricsSnapshotDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.MetricsSnapshot, error) {
	var items []metricsSnapshotItem

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []metricsSnapshotItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
	}

	return newestSnapshots(items, limit)
}

func newestSnapshots(items []metricsSnapshotItem, limit int) ([]entities.MetricsSnapshot, error) {
	out := make([]entities.MetricsSnapshot, 0, len(items))
	for _, it := range items {
		s, err := fromMetricsSnapshotItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CapturedAt.After(out[j].CapturedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func toMetricsSnapshotItem(s entities.MetricsSnapshot) metricsSnapshotItem {
	ts := make([]dailyBucketItem, 0, len(s.Metrics.Timeseries))
	for _, b := range s.Metrics.Timeseries {
		ts = append(ts, dailyBucketItem{Date: b.Date, Revenue: b.Revenue.String()})
	}
	return metricsSnapshotItem{
		ID:             s.ID,
		CapturedAt:     s.CapturedAt.UTC().Format(time.RFC3339Nano),
		TotalOrders:    s.Metrics.TotalOrders,
		PaidAmount:     s.Metrics.PaidAmount.String(),
		RefundedAmount: s.Metrics.RefundedAmount.String(),
		Profit:         s.Metrics.Profit().String(),
		Timeseries:     ts,
	}
}

func fromMetricsSnapshotItem(it metricsSnapshotItem) (entities.MetricsSnapshot, error) {
	capturedAt, err := time.Parse(time.RFC3339Nano, it.CapturedAt)
	if err != nil {
		return entities.MetricsSnapshot{}, fmt.Errorf("%w: id=%s captured_at: %v", ErrCorruptSnapshot, it.ID, err)
	}
	paid, err := parseDecimal(it.ID, "paid_amount", it.PaidAmount)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}
	refunded, err := parseDecimal(it.ID, "refunded_amount", it.RefundedAmount)
	if err != nil {
		return entities.MetricsSnapshot{}, err
	}

	ts := make([]entities.DailyBucket, 0, len(it.Timeseries))
	for _, b := range it.Timeseries {
		rev, err := parseDecimal(it.ID, "timeseries.revenue", b.Revenue)
		if err != nil {
			return entities.MetricsSnapshot{}, err
		}
		ts = append(ts, entities.DailyBucket{Date: b.Date, Revenue: rev})
	}
	return entities.MetricsSnapshot{
		ID:         it.ID,
		CapturedAt: capturedAt,
		Metrics: entities.MetricsResult{
			TotalOrders:    it.TotalOrders,
			PaidAmount:     paid,
			RefundedAmount: refunded,
			Timeseries:     ts,
		},
	}, nil
}

func parseDecimal(id, field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: id=%s %s: %v", ErrCorruptSnapshot, id, field, err)
	}
	return d, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
